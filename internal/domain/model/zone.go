// Package model defines the core domain types for the fulfillment service.
package model

import "github.com/shopspring/decimal"

// Zone is a named delivery region defined by a set of three-character
// postal-code prefixes, with a flat delivery fee and a minimum order subtotal.
type Zone struct {
	// Name is the customer-facing zone label (e.g. "Zone 1").
	Name string `json:"name"`
	// PostalPrefixes are the normalized three-character prefixes served by
	// this zone. A prefix belongs to at most one zone across the registry.
	PostalPrefixes []string `json:"postal_prefixes"`
	// FeeAmount is the flat delivery fee charged for this zone.
	FeeAmount decimal.Decimal `json:"fee_amount"`
	// MinimumOrderAmount is the minimum cart subtotal required for delivery.
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount"`
}
