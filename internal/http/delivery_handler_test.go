package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// Monday morning, before the noon cutoff.
var handlerTestNow = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

func handlerTestClock() time.Time { return handlerTestNow }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	quotes := service.NewQuoteService(service.MustNewZoneRegistry(service.DefaultZones()))
	scheduler := service.NewScheduler()
	eligibility := service.NewEligibilityService(quotes, scheduler)
	checkout := service.NewCheckoutService(quotes, eligibility, nil,
		service.WithClock(handlerTestClock))

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0 // not under test here
	cfg.Quotes = quotes
	cfg.Scheduler = scheduler
	cfg.Eligibility = eligibility
	cfg.Checkout = checkout
	cfg.Clock = handlerTestClock

	return NewRouter(NewHealthHandler(), cfg)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

// TestDeliveryHandler_Quote tests the fee quote endpoint.
func TestDeliveryHandler_Quote(t *testing.T) {
	router := newTestRouter(t)

	t.Run("serviceable postal code", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/quote?postal_code=H7X+1A1", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "Zone 1", data["zone_name"])
		assert.Equal(t, true, data["is_serviceable"])
		assert.Equal(t, "15", data["fee_amount"])
		assert.Equal(t, "50", data["minimum_order_amount"])
	})

	t.Run("unserviceable postal code still returns 200", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/quote?postal_code=K1A", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, false, data["is_serviceable"])
	})

	t.Run("missing postal code", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/quote", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestDeliveryHandler_CheckMinimumOrder tests the minimum order endpoint.
func TestDeliveryHandler_CheckMinimumOrder(t *testing.T) {
	router := newTestRouter(t)

	t.Run("below minimum reports shortfall", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/delivery/minimum-order",
			`{"postal_code":"H7X 1A1","subtotal":"40.00"}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, false, data["is_satisfied"])
		assert.Equal(t, "10", data["shortfall"])
	})

	t.Run("negative subtotal rejected", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/delivery/minimum-order",
			`{"postal_code":"H7X 1A1","subtotal":"-1.00"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing postal code rejected", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/delivery/minimum-order",
			`{"subtotal":"40.00"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestDeliveryHandler_EarliestDate tests the earliest date endpoint.
func TestDeliveryHandler_EarliestDate(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/delivery/earliest-date",
		`{"items":[{"product_id":"p1","name":"Croissants (12)","quantity":2,"unit_price":"18.50","preparation_time_hours":24}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "2026-09-01", data["earliest_date"])
	assert.Equal(t, []interface{}{"Croissants (12)"}, data["slowest_items"])
}

// TestDeliveryHandler_Slots tests the slot catalog endpoints.
func TestDeliveryHandler_Slots(t *testing.T) {
	router := newTestRouter(t)

	t.Run("weekday start times", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/slots/2026-09-02", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		starts, ok := data["start_times"].([]interface{})
		require.True(t, ok)
		assert.Len(t, starts, 10)
		assert.Equal(t, "08:00", starts[0])
		assert.Equal(t, "14:00", starts[9])
	})

	t.Run("weekend start times", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/slots/2026-09-05", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		starts, ok := data["start_times"].([]interface{})
		require.True(t, ok)
		assert.Len(t, starts, 4)
	})

	t.Run("end times for a weekday start", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/slots/2026-09-02/13:00", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, []interface{}{"13:30", "14:00"}, data["end_times"])
	})

	t.Run("malformed date", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/delivery/slots/not-a-date", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestDeliveryHandler_ValidateSlot tests the slot validation endpoint.
func TestDeliveryHandler_ValidateSlot(t *testing.T) {
	router := newTestRouter(t)

	t.Run("valid slot", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/delivery/validate-slot",
			`{"start_time":"09:30","end_time":"10:00"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ill-ordered slot", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/delivery/validate-slot",
			`{"start_time":"10:00","end_time":"09:30"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_time_slot")
	})
}
