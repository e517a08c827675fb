package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cart above the Zone 1 minimum with a 24 hour preparation item.
const checkoutCartBody = `{"items":[
	{"product_id":"prod-croissant-12","name":"Croissants (12)","quantity":3,"unit_price":"18.50","preparation_time_hours":24}
]}`

const checkoutContactBody = `{
	"name":"Marie Tremblay",
	"email":"marie@example.com",
	"phone":"514-555-0101",
	"delivery_type":"delivery",
	"postal_code":"H7X 1A1"
}`

// Tuesday 2026-09-01 is the earliest date for a 24h item ordered Monday
// morning.
const checkoutWindowBody = `{"date":"2026-09-01","start_time":"10:00","end_time":"10:30"}`

func startSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/checkout/sessions", checkoutCartBody)
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	id, ok := data["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// TestCheckoutHandler_Eligibility tests the single-call eligibility endpoint.
func TestCheckoutHandler_Eligibility(t *testing.T) {
	router := newTestRouter(t)

	t.Run("eligible attempt", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery","postal_code":"H7X 1A1",
			  "items":[{"product_id":"p","name":"Croissants (12)","quantity":3,"unit_price":"18.50","preparation_time_hours":24}],
			  "date":"2026-09-01","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, true, data["eligible"])
		assert.Equal(t, "2026-09-01", data["earliest_date"])
	})

	t.Run("unserviceable zone", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery","postal_code":"K1A 0A6",
			  "items":[{"product_id":"p","name":"Croissants (12)","quantity":3,"unit_price":"18.50","preparation_time_hours":24}],
			  "date":"2026-09-01","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "zone_not_serviceable", decodeError(t, w))
	})

	t.Run("minimum order not met carries details", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery","postal_code":"H7X 1A1",
			  "items":[{"product_id":"p","name":"Baguette","quantity":1,"unit_price":"4.25","preparation_time_hours":0}],
			  "date":"2026-08-31","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "minimum_order_not_met", decodeError(t, w))
		assert.Contains(t, w.Body.String(), "shortfall")
	})

	t.Run("date too early", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery","postal_code":"H7X 1A1",
			  "items":[{"product_id":"p","name":"Croissants (12)","quantity":3,"unit_price":"18.50","preparation_time_hours":24}],
			  "date":"2026-08-31","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "date_too_early", decodeError(t, w))
		assert.Contains(t, w.Body.String(), "earliest_date")
		// The triggering item names are part of the details.
		assert.Contains(t, w.Body.String(), "Croissants (12)")
	})

	t.Run("malformed date is invalid input, not too early", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery","postal_code":"H7X 1A1",
			  "items":[{"product_id":"p","name":"Croissants (12)","quantity":3,"unit_price":"18.50","preparation_time_hours":24}],
			  "date":"tomorrow","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decodeError(t, w))
		assert.NotContains(t, w.Body.String(), "date_too_early")
	})

	t.Run("pickup skips zone checks", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"pickup",
			  "items":[{"product_id":"p","name":"Baguette","quantity":1,"unit_price":"4.25","preparation_time_hours":0}],
			  "date":"2026-08-31","start_time":"10:00","end_time":"10:30"}`)
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeData(t, w)
		assert.Equal(t, true, data["eligible"])
	})

	t.Run("delivery without postal code is a bad request", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/eligibility",
			`{"delivery_type":"delivery",
			  "items":[{"product_id":"p","name":"Baguette","quantity":1,"unit_price":"4.25","preparation_time_hours":0}],
			  "date":"2026-08-31","start_time":"10:00","end_time":"10:30"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestCheckoutHandler_FullFlow drives a session from open to submission over
// HTTP.
func TestCheckoutHandler_FullFlow(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)

	// Contact step advances the session to window collection.
	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/checkout/sessions/%s/contact", id), checkoutContactBody)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "collecting_delivery_window", data["state"])
	quote, ok := data["quote"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Zone 1", quote["zone_name"])

	// Window step advances to payment collection.
	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/checkout/sessions/%s/window", id), checkoutWindowBody)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "collecting_payment", data["state"])

	// The session is readable at any point.
	w = doRequest(t, router, http.MethodGet, "/api/checkout/sessions/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	// Submission finalizes the order in pending payment status.
	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/sessions/%s/submit", id), "")
	require.Equal(t, http.StatusCreated, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, "pending_payment", data["status"])
	assert.NotEmpty(t, data["number"])
	assert.Equal(t, "15", data["delivery_fee"])
	assert.Equal(t, "55.5", data["subtotal"])
}

// TestCheckoutHandler_Back tests stepping back without losing data.
func TestCheckoutHandler_Back(t *testing.T) {
	router := newTestRouter(t)
	id := startSession(t, router)

	w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/checkout/sessions/%s/contact", id), checkoutContactBody)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/sessions/%s/back", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "collecting_contact", data["state"])
	contact, ok := data["contact"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Marie Tremblay", contact["name"])

	// The first step has nowhere to go back to.
	w = doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/sessions/%s/back", id), "")
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_transition", decodeError(t, w))
}

// TestCheckoutHandler_ErrorMapping tests HTTP status codes for workflow
// violations.
func TestCheckoutHandler_ErrorMapping(t *testing.T) {
	router := newTestRouter(t)

	t.Run("unknown session is 404", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/api/checkout/sessions/nope", "")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decodeError(t, w))
	})

	t.Run("window before contact is 409", func(t *testing.T) {
		id := startSession(t, router)
		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/checkout/sessions/%s/window", id), checkoutWindowBody)
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "invalid_transition", decodeError(t, w))
	})

	t.Run("submit before payment step is 409", func(t *testing.T) {
		id := startSession(t, router)
		w := doRequest(t, router, http.MethodPost, fmt.Sprintf("/api/checkout/sessions/%s/submit", id), "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("empty cart is rejected at binding", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/api/checkout/sessions", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unserviceable contact step is 422", func(t *testing.T) {
		id := startSession(t, router)
		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/checkout/sessions/%s/contact", id),
			`{"name":"Marie Tremblay","email":"marie@example.com","phone":"514-555-0101","delivery_type":"delivery","postal_code":"K1A 0A6"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "zone_not_serviceable", decodeError(t, w))
	})
}
