package model

import "github.com/shopspring/decimal"

// CartLineItem is a single product line in a checkout cart.
// It is owned by the checkout session; the fulfillment engine only reads it.
type CartLineItem struct {
	ProductID string `json:"product_id"`
	// Name is the customer-facing product name, used when surfacing
	// scheduling errors that point at the slowest-to-prepare items.
	Name                 string          `json:"name"`
	Quantity             int             `json:"quantity"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	PreparationTimeHours int             `json:"preparation_time_hours"`
}

// LineTotal returns quantity times unit price for the line.
func (i CartLineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSubtotal sums the line totals of all items.
func CartSubtotal(items []CartLineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}
