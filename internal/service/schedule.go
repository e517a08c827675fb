package service

import (
	"time"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

const (
	// DateLayout is the wire format for delivery dates.
	DateLayout = "2006-01-02"

	// noonCutoffHour: next-day-prep items must be ordered before noon to
	// guarantee same-cycle production.
	noonCutoffHour = 12
	// noonCutoffPrepHours: the noon cutoff applies only to items requiring
	// exactly one production cycle of 24 hours. Longer preparations (48h,
	// 72h) intentionally get no analogous extension; the scheduling tests
	// pin this down as a known edge case.
	noonCutoffPrepHours = 24
	// eveningHandoffHour: orders ready at or after 18:00 roll to the next
	// day, no evening handoffs.
	eveningHandoffHour = 18
)

// Slot catalog data. End times are defined once per day type in a
// start-to-ends table used both for listing and membership checks; the
// ordered start lists are kept explicit because the weekday end table also
// answers for half-hour starts that are not offered as starts, and "14:00"
// is offered with no legal ends.
var (
	weekendStartTimes = []string{"08:00", "09:00", "10:00", "11:00"}

	weekdayStartTimes = []string{
		"08:00", "09:00", "10:00", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00",
	}

	// Weekend slots are a fixed hour each; 11:00 maps to the final 12:00 slot.
	weekendEndTimes = map[string][]string{
		"08:00": {"09:00"},
		"09:00": {"10:00"},
		"10:00": {"11:00"},
		"11:00": {"12:00"},
	}

	// Weekday hour-aligned starts offer a 30- and a 60-minute window;
	// half-hour starts offer only the 30-minute window. "14:00" is listed
	// as a start but has no legal ends.
	weekdayEndTimes = map[string][]string{
		"08:00": {"08:30", "09:00"},
		"08:30": {"09:00"},
		"09:00": {"09:30", "10:00"},
		"09:30": {"10:00"},
		"10:00": {"10:30", "11:00"},
		"10:30": {"11:00"},
		"11:00": {"11:30", "12:00"},
		"11:30": {"12:00"},
		"12:00": {"12:30", "13:00"},
		"12:30": {"13:00"},
		"13:00": {"13:30", "14:00"},
		"13:30": {"14:00"},
		"14:00": {},
	}
)

// Scheduler computes the earliest legal delivery date for a cart and the
// permissible time slots for a calendar date. All methods are pure: the
// current instant is always an explicit parameter, never read internally,
// so identical inputs always produce identical output.
type Scheduler interface {
	// EarliestDate returns the first selectable delivery date for the cart,
	// given the order is placed at now. The result is truncated to midnight
	// in now's location.
	EarliestDate(items []model.CartLineItem, now time.Time) time.Time
	// SlowestItems returns the names of the items whose preparation time
	// equals the cart maximum, for surfacing in scheduling errors.
	SlowestItems(items []model.CartLineItem) []string
	// StartTimes returns the ordered permissible start times for the date.
	StartTimes(date time.Time) []string
	// EndTimes returns the ordered permissible end times for the start time
	// on the date. Unknown starts yield an empty list.
	EndTimes(date time.Time, startTime string) []string
	// ValidateSlot confirms the [start, end) pair is well-ordered.
	ValidateSlot(startTime, endTime string) error
}

// SchedulerImpl implements Scheduler.
type SchedulerImpl struct{}

// NewScheduler creates the scheduling engine.
func NewScheduler() *SchedulerImpl {
	return &SchedulerImpl{}
}

// maxPreparationHours returns the largest preparation time over the cart.
// An empty cart requires no preparation.
func maxPreparationHours(items []model.CartLineItem) int {
	maxPrep := 0
	for _, item := range items {
		if item.PreparationTimeHours > maxPrep {
			maxPrep = item.PreparationTimeHours
		}
	}
	return maxPrep
}

// EarliestDate applies the preparation window and cutoff rules:
//
//  1. ready = now + max preparation hours over the cart.
//  2. Noon cutoff: an order placed at or after noon for an exactly-24h item
//     needs two production cycles, one extra day.
//  3. Late readiness: an order ready at or after 18:00 rolls to the next
//     day, no evening handoffs.
//
// The rules are evaluated in that order and may stack.
func (s *SchedulerImpl) EarliestDate(items []model.CartLineItem, now time.Time) time.Time {
	maxPrep := maxPreparationHours(items)
	ready := now.Add(time.Duration(maxPrep) * time.Hour)

	year, month, day := ready.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, now.Location())

	if now.Hour() >= noonCutoffHour && maxPrep == noonCutoffPrepHours {
		date = date.AddDate(0, 0, 1)
	}
	if ready.Hour() >= eveningHandoffHour {
		date = date.AddDate(0, 0, 1)
	}

	return date
}

// SlowestItems returns the names of the items that determine the cart's
// preparation window. An empty cart has no slowest items.
func (s *SchedulerImpl) SlowestItems(items []model.CartLineItem) []string {
	maxPrep := maxPreparationHours(items)
	if len(items) == 0 {
		return nil
	}

	var names []string
	for _, item := range items {
		if item.PreparationTimeHours == maxPrep {
			names = append(names, item.Name)
		}
	}
	return names
}

// isWeekend reports whether the date falls on Saturday or Sunday.
func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// StartTimes returns hour-granularity slots on weekends and half-hour
// granularity in the weekday midday window.
func (s *SchedulerImpl) StartTimes(date time.Time) []string {
	if isWeekend(date) {
		return append([]string(nil), weekendStartTimes...)
	}
	return append([]string(nil), weekdayStartTimes...)
}

// EndTimes returns the legal end times for the chosen start on the date.
func (s *SchedulerImpl) EndTimes(date time.Time, startTime string) []string {
	table := weekdayEndTimes
	if isWeekend(date) {
		table = weekendEndTimes
	}
	return append([]string(nil), table[startTime]...)
}

// ValidateSlot fails when end <= start. Lexical comparison is correct
// because both times are zero-padded HH:MM within the same day.
func (s *SchedulerImpl) ValidateSlot(startTime, endTime string) error {
	if endTime <= startTime {
		return &InvalidTimeSlotError{StartTime: startTime, EndTime: endTime}
	}
	return nil
}
