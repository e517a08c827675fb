package model

import "time"

// CheckoutState is a step in the linear checkout workflow.
// The workflow only moves forward one step at a time, except for an explicit
// "go back one step" action that re-enters the prior state without losing
// previously entered data.
type CheckoutState int

const (
	// StateCollectingContact is the first step: contact info and delivery type.
	StateCollectingContact CheckoutState = iota
	// StateCollectingDeliveryWindow is the second step: date and time slot.
	StateCollectingDeliveryWindow
	// StateCollectingPayment is the final interactive step.
	StateCollectingPayment
	// StatePaymentSubmitted is terminal; the payment collaborator owns it.
	StatePaymentSubmitted
)

// String returns the wire name of the state.
func (s CheckoutState) String() string {
	switch s {
	case StateCollectingContact:
		return "collecting_contact"
	case StateCollectingDeliveryWindow:
		return "collecting_delivery_window"
	case StateCollectingPayment:
		return "collecting_payment"
	case StatePaymentSubmitted:
		return "payment_submitted"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the state as its wire name.
func (s CheckoutState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// CheckoutSession holds the transient, per-session checkout state. It is
// owned exclusively by one customer session and is never persisted; the
// confirmed selections are copied onto the Order at submission.
type CheckoutSession struct {
	ID           string                   `json:"id"`
	State        CheckoutState            `json:"state"`
	Items        []CartLineItem           `json:"items"`
	Contact      *ContactInfo             `json:"contact,omitempty"`
	DeliveryType DeliveryType             `json:"delivery_type,omitempty"`
	PostalCode   string                   `json:"postal_code,omitempty"`
	Quote        *FulfillmentQuote        `json:"quote,omitempty"`
	Window       *DeliveryWindowSelection `json:"window,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}
