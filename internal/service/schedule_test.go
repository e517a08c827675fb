package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

func cartWithPrep(hours ...int) []model.CartLineItem {
	items := make([]model.CartLineItem, len(hours))
	for i, h := range hours {
		items[i] = model.CartLineItem{
			ProductID:            "prod",
			Name:                 "Item",
			Quantity:             1,
			PreparationTimeHours: h,
		}
	}
	return items
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return date
}

// TestScheduler_EarliestDate tests the preparation window and cutoff rules.
// 2026-08-31 is a Monday.
func TestScheduler_EarliestDate(t *testing.T) {
	scheduler := NewScheduler()

	tests := []struct {
		name     string
		now      time.Time
		items    []model.CartLineItem
		expected string
	}{
		{
			name:     "no preparation, same day",
			now:      time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
			items:    cartWithPrep(0),
			expected: "2026-08-31",
		},
		{
			name:     "24h item before noon, next day",
			now:      time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			items:    cartWithPrep(24),
			expected: "2026-09-01",
		},
		{
			name:     "24h item at 13:00, noon cutoff adds a day",
			now:      time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
			items:    cartWithPrep(24),
			expected: "2026-09-02",
		},
		{
			name:     "24h item at exactly noon, cutoff applies",
			now:      time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
			items:    cartWithPrep(24),
			expected: "2026-09-02",
		},
		{
			name:     "24h item at 11:59, cutoff does not apply",
			now:      time.Date(2026, 8, 31, 11, 59, 0, 0, time.UTC),
			items:    cartWithPrep(24),
			expected: "2026-09-01",
		},
		{
			name:     "48h item at 13:00, no noon cutoff for longer preparations",
			now:      time.Date(2026, 8, 31, 13, 0, 0, 0, time.UTC),
			items:    cartWithPrep(48),
			expected: "2026-09-02",
		},
		{
			name:     "ready at 18:00 rolls to the next day",
			now:      time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC),
			items:    cartWithPrep(0),
			expected: "2026-09-01",
		},
		{
			name:     "ready at 17:59 stays on the same day",
			now:      time.Date(2026, 8, 31, 17, 59, 0, 0, time.UTC),
			items:    cartWithPrep(0),
			expected: "2026-08-31",
		},
		{
			name:     "noon cutoff and evening handoff stack",
			now:      time.Date(2026, 8, 31, 19, 0, 0, 0, time.UTC),
			items:    cartWithPrep(24),
			expected: "2026-09-03",
		},
		{
			name:     "slowest item wins",
			now:      time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			items:    cartWithPrep(0, 48, 24),
			expected: "2026-09-02",
		},
		{
			name:     "empty cart needs no preparation",
			now:      time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
			items:    nil,
			expected: "2026-08-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earliest := scheduler.EarliestDate(tt.items, tt.now)
			assert.Equal(t, tt.expected, earliest.Format(DateLayout))
			assert.Equal(t, 0, earliest.Hour())
			assert.Equal(t, tt.now.Location(), earliest.Location())
		})
	}
}

// TestScheduler_SlowestItems names the items that drive the window.
func TestScheduler_SlowestItems(t *testing.T) {
	scheduler := NewScheduler()

	items := []model.CartLineItem{
		{Name: "Baguette", PreparationTimeHours: 0},
		{Name: "Wedding Cake", PreparationTimeHours: 72},
		{Name: "Croquembouche", PreparationTimeHours: 72},
		{Name: "Croissants", PreparationTimeHours: 24},
	}

	assert.Equal(t, []string{"Wedding Cake", "Croquembouche"}, scheduler.SlowestItems(items))
	assert.Nil(t, scheduler.SlowestItems(nil))
}

// TestScheduler_StartTimes tests the per-day-type slot catalog.
// 2026-09-05 is a Saturday, 2026-09-02 a Wednesday.
func TestScheduler_StartTimes(t *testing.T) {
	scheduler := NewScheduler()

	t.Run("weekend offers morning hour slots", func(t *testing.T) {
		starts := scheduler.StartTimes(mustDate(t, "2026-09-05"))
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, starts)
	})

	t.Run("sunday matches saturday", func(t *testing.T) {
		starts := scheduler.StartTimes(mustDate(t, "2026-09-06"))
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, starts)
	})

	t.Run("weekday extends into the midday half-hour grid", func(t *testing.T) {
		starts := scheduler.StartTimes(mustDate(t, "2026-09-02"))
		assert.Equal(t, []string{
			"08:00", "09:00", "10:00", "11:00", "11:30",
			"12:00", "12:30", "13:00", "13:30", "14:00",
		}, starts)
	})
}

// TestScheduler_EndTimes tests end time lookup per start.
func TestScheduler_EndTimes(t *testing.T) {
	scheduler := NewScheduler()
	saturday := "2026-09-05"
	wednesday := "2026-09-02"

	tests := []struct {
		name     string
		date     string
		start    string
		expected []string
	}{
		{name: "weekend final slot", date: saturday, start: "11:00", expected: []string{"12:00"}},
		{name: "weekend morning slot", date: saturday, start: "08:00", expected: []string{"09:00"}},
		{name: "weekday hour start offers two windows", date: wednesday, start: "13:00", expected: []string{"13:30", "14:00"}},
		{name: "weekday half-hour start offers one window", date: wednesday, start: "13:30", expected: []string{"14:00"}},
		{name: "weekday 08:30 answers even though it is not offered as a start", date: wednesday, start: "08:30", expected: []string{"09:00"}},
		{name: "weekday 14:00 has no legal ends", date: wednesday, start: "14:00", expected: nil},
		{name: "unknown start yields empty", date: wednesday, start: "07:00", expected: nil},
		{name: "weekday-only start on a weekend yields empty", date: saturday, start: "13:00", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ends := scheduler.EndTimes(mustDate(t, tt.date), tt.start)
			if tt.expected == nil {
				assert.Empty(t, ends)
			} else {
				assert.Equal(t, tt.expected, ends)
			}
		})
	}
}

// TestScheduler_ValidateSlot tests slot ordering validation.
func TestScheduler_ValidateSlot(t *testing.T) {
	scheduler := NewScheduler()

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "well ordered", start: "09:30", end: "10:00", wantErr: false},
		{name: "end before start", start: "10:00", end: "09:30", wantErr: true},
		{name: "equal times", start: "10:00", end: "10:00", wantErr: true},
		{name: "zero padding keeps lexical order correct", start: "08:00", end: "12:00", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scheduler.ValidateSlot(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidTimeSlot))
				var slotErr *InvalidTimeSlotError
				require.ErrorAs(t, err, &slotErr)
				assert.Equal(t, tt.start, slotErr.StartTime)
				assert.Equal(t, tt.end, slotErr.EndTime)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
