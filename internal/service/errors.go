package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Business condition sentinels. Every fulfillment failure is a
// user-correctable condition, never a crash; callers match with errors.Is
// and surface the localized message for the matching condition.
var (
	// ErrZoneNotServiceable: the postal code matches no delivery zone.
	ErrZoneNotServiceable = errors.New("postal code is not in a serviceable zone")
	// ErrMinimumOrderNotMet: the cart subtotal is below the zone minimum.
	ErrMinimumOrderNotMet = errors.New("minimum order amount not met")
	// ErrDateTooEarly: the selected date precedes the earliest eligible date.
	ErrDateTooEarly = errors.New("selected date is before the earliest eligible date")
	// ErrInvalidTimeSlot: the slot is ill-ordered or not in the catalog.
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	// ErrInvalidDate: the selected date is not a parseable calendar date.
	// Distinct from ErrDateTooEarly, which only applies to valid dates.
	ErrInvalidDate = errors.New("selected date is not a valid date")

	// ErrSessionNotFound: no checkout session exists for the given ID.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrInvalidTransition: the requested step is not legal from the
	// session's current state.
	ErrInvalidTransition = errors.New("invalid checkout transition")
)

// MinimumOrderError carries the numeric shortfall for display.
type MinimumOrderError struct {
	MinimumOrderAmount decimal.Decimal
	Shortfall          decimal.Decimal
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order of %s not met, short by %s",
		e.MinimumOrderAmount.StringFixed(2), e.Shortfall.StringFixed(2))
}

// Unwrap makes the error match ErrMinimumOrderNotMet.
func (e *MinimumOrderError) Unwrap() error { return ErrMinimumOrderNotMet }

// DateTooEarlyError carries the earliest eligible date and the names of the
// items whose preparation time caused it.
type DateTooEarlyError struct {
	EarliestDate time.Time
	ItemNames    []string
}

func (e *DateTooEarlyError) Error() string {
	msg := fmt.Sprintf("earliest eligible delivery date is %s", e.EarliestDate.Format(DateLayout))
	if len(e.ItemNames) > 0 {
		msg += " due to preparation time of " + strings.Join(e.ItemNames, ", ")
	}
	return msg
}

// Unwrap makes the error match ErrDateTooEarly.
func (e *DateTooEarlyError) Unwrap() error { return ErrDateTooEarly }

// InvalidTimeSlotError reports an ill-ordered or uncataloged slot selection.
type InvalidTimeSlotError struct {
	StartTime string
	EndTime   string
	Reason    string
}

func (e *InvalidTimeSlotError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("time slot [%s, %s): %s", e.StartTime, e.EndTime, e.Reason)
	}
	return fmt.Sprintf("time slot [%s, %s) is not valid", e.StartTime, e.EndTime)
}

// Unwrap makes the error match ErrInvalidTimeSlot.
func (e *InvalidTimeSlotError) Unwrap() error { return ErrInvalidTimeSlot }
