package service

import (
	"github.com/shopspring/decimal"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

// QuoteService produces fulfillment quotes and minimum-order checks for
// postal codes. All methods are pure and safe for concurrent use.
type QuoteService interface {
	// Quote returns the delivery fee and minimum order for the postal code's
	// zone, or the all-zero unserviceable quote when no zone matches.
	Quote(rawPostalCode string) model.FulfillmentQuote
	// CheckMinimumOrder compares the cart subtotal against the zone minimum.
	CheckMinimumOrder(rawPostalCode string, subtotal decimal.Decimal) model.MinimumOrderCheck
}

// QuoteServiceImpl implements QuoteService over a zone registry.
type QuoteServiceImpl struct {
	registry *ZoneRegistry
}

// NewQuoteService creates a quote service backed by the given registry.
func NewQuoteService(registry *ZoneRegistry) *QuoteServiceImpl {
	return &QuoteServiceImpl{registry: registry}
}

// Quote returns the fulfillment quote for the postal code.
func (s *QuoteServiceImpl) Quote(rawPostalCode string) model.FulfillmentQuote {
	zone, ok := s.registry.Resolve(rawPostalCode)
	if !ok {
		return model.UnserviceableQuote()
	}
	return model.FulfillmentQuote{
		FeeAmount:          zone.FeeAmount,
		MinimumOrderAmount: zone.MinimumOrderAmount,
		ZoneName:           zone.Name,
		IsServiceable:      true,
	}
}

// CheckMinimumOrder validates the subtotal against the zone minimum.
//
// An unserviceable postal code returns {false, 0, 0}: a categorically
// blocked code is not "short", the zone error is surfaced separately.
func (s *QuoteServiceImpl) CheckMinimumOrder(rawPostalCode string, subtotal decimal.Decimal) model.MinimumOrderCheck {
	quote := s.Quote(rawPostalCode)
	if !quote.IsServiceable {
		return model.MinimumOrderCheck{
			IsSatisfied:        false,
			MinimumOrderAmount: decimal.Zero,
			Shortfall:          decimal.Zero,
		}
	}

	shortfall := quote.MinimumOrderAmount.Sub(subtotal)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}

	return model.MinimumOrderCheck{
		IsSatisfied:        shortfall.IsZero(),
		MinimumOrderAmount: quote.MinimumOrderAmount,
		Shortfall:          shortfall,
	}
}
