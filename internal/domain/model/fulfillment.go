package model

import "github.com/shopspring/decimal"

// FulfillmentQuote is the fee/minimum-order/serviceability result for a
// postal code. Computed fresh per call and never persisted.
// An unserviceable quote always carries zero fee and zero minimum.
type FulfillmentQuote struct {
	FeeAmount          decimal.Decimal `json:"fee_amount"`
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount"`
	ZoneName           string          `json:"zone_name,omitempty"`
	IsServiceable      bool            `json:"is_serviceable"`
}

// UnserviceableQuote returns the all-zero quote for postal codes that match
// no delivery zone.
func UnserviceableQuote() FulfillmentQuote {
	return FulfillmentQuote{
		FeeAmount:          decimal.Zero,
		MinimumOrderAmount: decimal.Zero,
		IsServiceable:      false,
	}
}

// MinimumOrderCheck is the result of comparing a cart subtotal against a
// zone's minimum order amount.
//
// Invariant: Shortfall == max(0, MinimumOrderAmount - subtotal), and
// IsSatisfied == (Shortfall == 0) whenever the zone is serviceable.
type MinimumOrderCheck struct {
	IsSatisfied        bool            `json:"is_satisfied"`
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount"`
	Shortfall          decimal.Decimal `json:"shortfall"`
}

// DeliveryWindowSelection is the delivery date and [start, end) time pair a
// customer commits to during checkout. Times are zero-padded 24-hour HH:MM
// strings, so lexical comparison equals chronological comparison within a day.
type DeliveryWindowSelection struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
