// Package dto defines Data Transfer Objects for HTTP request and response
// handling, decoupling the HTTP layer from the domain model.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CartItemRequest is one cart line as sent by the storefront.
// @Description A cart line item with its preparation time
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"prod-croissant-12"`
	Name      string `json:"name" example:"Croissants (12)"`
	// Quantity must be at least 1.
	Quantity int `json:"quantity" binding:"required,gte=1" example:"2" minimum:"1"`
	// UnitPrice is a decimal amount, e.g. "18.50".
	UnitPrice decimal.Decimal `json:"unit_price" example:"18.50"`
	// PreparationTimeHours is how long the item needs before handoff.
	PreparationTimeHours int `json:"preparation_time_hours" binding:"gte=0" example:"24" minimum:"0"`
} // @name CartItemRequest

// ToModel converts the request line to the domain type.
func (r CartItemRequest) ToModel() model.CartLineItem {
	return model.CartLineItem{
		ProductID:            r.ProductID,
		Name:                 r.Name,
		Quantity:             r.Quantity,
		UnitPrice:            r.UnitPrice,
		PreparationTimeHours: r.PreparationTimeHours,
	}
}

// CartItemsToModel converts a slice of request lines.
func CartItemsToModel(items []CartItemRequest) []model.CartLineItem {
	result := make([]model.CartLineItem, len(items))
	for i, item := range items {
		result[i] = item.ToModel()
	}
	return result
}

// MinimumOrderRequest asks whether a subtotal meets the zone minimum.
// @Description Minimum-order validation request
type MinimumOrderRequest struct {
	PostalCode string          `json:"postal_code" binding:"required" example:"H7X 1A1"`
	Subtotal   decimal.Decimal `json:"subtotal" example:"40.00"`
} // @name MinimumOrderRequest

// Validate performs custom validation on the request.
func (r *MinimumOrderRequest) Validate() error {
	if r.Subtotal.IsNegative() {
		return &ValidationError{Field: "subtotal", Message: "must not be negative"}
	}
	return nil
}

// EarliestDateRequest asks for the first selectable delivery date for a cart.
// @Description Earliest delivery date request
type EarliestDateRequest struct {
	Items []CartItemRequest `json:"items" binding:"dive"`
} // @name EarliestDateRequest

// ValidateSlotRequest asks whether a [start, end) pair is well-ordered.
// @Description Time slot validation request
type ValidateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required" example:"10:00"`
	EndTime   string `json:"end_time" binding:"required" example:"10:30"`
} // @name ValidateSlotRequest

// EligibilityRequest is one full checkout attempt to evaluate.
// @Description Fulfillment eligibility decision request
type EligibilityRequest struct {
	// DeliveryType is "delivery" or "pickup".
	DeliveryType string `json:"delivery_type" binding:"required,oneof=delivery pickup" example:"delivery"`
	// PostalCode is required when DeliveryType is "delivery".
	PostalCode string            `json:"postal_code" example:"H7X 1A1"`
	Items      []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	Date       string            `json:"date" binding:"required" example:"2026-09-02"`
	StartTime  string            `json:"start_time" binding:"required" example:"10:00"`
	EndTime    string            `json:"end_time" binding:"required" example:"10:30"`
} // @name EligibilityRequest

// Validate performs custom validation on the request.
func (r *EligibilityRequest) Validate() error {
	if r.DeliveryType == string(model.DeliveryTypeDelivery) && r.PostalCode == "" {
		return &ValidationError{Field: "postal_code", Message: "required for delivery orders"}
	}
	return nil
}

// StartSessionRequest opens a checkout session for a cart snapshot.
// @Description Checkout session creation request
type StartSessionRequest struct {
	Items []CartItemRequest `json:"items" binding:"required,min=1,dive"`
} // @name StartSessionRequest

// ContactStepRequest submits the contact step of checkout.
// @Description Checkout contact step
type ContactStepRequest struct {
	Name         string `json:"name" binding:"required" example:"Marie Tremblay"`
	Email        string `json:"email" binding:"required,email" example:"marie@example.com"`
	Phone        string `json:"phone" binding:"required" example:"514-555-0101"`
	DeliveryType string `json:"delivery_type" binding:"required,oneof=delivery pickup" example:"delivery"`
	PostalCode   string `json:"postal_code" example:"H7X 1A1"`
} // @name ContactStepRequest

// Validate performs custom validation on the request.
func (r *ContactStepRequest) Validate() error {
	if r.DeliveryType == string(model.DeliveryTypeDelivery) && r.PostalCode == "" {
		return &ValidationError{Field: "postal_code", Message: "required for delivery orders"}
	}
	return nil
}

// WindowStepRequest submits the delivery window step of checkout.
// @Description Checkout delivery window step
type WindowStepRequest struct {
	Date      string `json:"date" binding:"required" example:"2026-09-02"`
	StartTime string `json:"start_time" binding:"required" example:"10:00"`
	EndTime   string `json:"end_time" binding:"required" example:"10:30"`
} // @name WindowStepRequest

// UpdateOrderStatusRequest transitions an order's lifecycle status.
// @Description Staff order status update
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending_payment confirmed completed cancelled" example:"confirmed"`
} // @name UpdateOrderStatusRequest
