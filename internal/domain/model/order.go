package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType distinguishes home delivery from in-store pickup.
type DeliveryType string

const (
	// DeliveryTypeDelivery is home delivery to a serviceable postal code.
	DeliveryTypeDelivery DeliveryType = "delivery"
	// DeliveryTypePickup is in-store pickup; no zone or fee checks apply.
	DeliveryTypePickup DeliveryType = "pickup"
)

// Valid reports whether the delivery type is one of the known values.
func (t DeliveryType) Valid() bool {
	return t == DeliveryTypeDelivery || t == DeliveryTypePickup
}

// OrderStatus is the lifecycle state of a persisted order.
type OrderStatus string

const (
	// OrderStatusPendingPayment means checkout was submitted and the order
	// awaits the payment processor.
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	// OrderStatusConfirmed means payment succeeded.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCompleted means the order was delivered or picked up.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled means the order was cancelled by staff.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ContactInfo is the customer contact block collected in the first
// checkout step.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Order is the order record handed to the persistence layer when checkout
// is submitted. The confirmed postal code, fee, and delivery window are
// stored as plain fields.
type Order struct {
	ID           string                  `json:"id,omitempty"`
	Number       string                  `json:"number"`
	Contact      ContactInfo             `json:"contact"`
	Items        []CartLineItem          `json:"items"`
	Subtotal     decimal.Decimal         `json:"subtotal"`
	DeliveryType DeliveryType            `json:"delivery_type"`
	PostalCode   string                  `json:"postal_code,omitempty"`
	ZoneName     string                  `json:"zone_name,omitempty"`
	DeliveryFee  decimal.Decimal         `json:"delivery_fee"`
	Window       DeliveryWindowSelection `json:"window"`
	Status       OrderStatus             `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}
