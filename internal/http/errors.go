package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lavalbakery/fulfillment-service/internal/domain/dto"
	"github.com/lavalbakery/fulfillment-service/internal/i18n"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// respondServiceError maps fulfillment business errors onto HTTP responses.
// Every matched condition is user-correctable and carries enough structured
// detail for the storefront to render a precise message; anything unmatched
// is a 500.
func respondServiceError(builder *ResponseBuilder, err error) {
	var minErr *service.MinimumOrderError
	var dateErr *service.DateTooEarlyError
	var slotErr *service.InvalidTimeSlotError

	switch {
	case errors.Is(err, service.ErrZoneNotServiceable):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeNotServiceable, i18n.ErrKeyZoneNotServiceable, nil, err)

	case errors.As(err, &minErr):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeMinimumOrder, i18n.ErrKeyMinimumOrderNotMet, map[string]string{
				"minimum_order_amount": minErr.MinimumOrderAmount.StringFixed(2),
				"shortfall":            minErr.Shortfall.StringFixed(2),
			}, err)

	case errors.As(err, &dateErr):
		details := map[string]string{
			"earliest_date": dateErr.EarliestDate.Format(service.DateLayout),
		}
		if len(dateErr.ItemNames) > 0 {
			details["items"] = strings.Join(dateErr.ItemNames, ", ")
		}
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeDateTooEarly, i18n.ErrKeyDateTooEarly, details, err)

	case errors.As(err, &slotErr):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeInvalidSlot, i18n.ErrKeyInvalidTimeSlot, map[string]string{
				"start_time": slotErr.StartTime,
				"end_time":   slotErr.EndTime,
			}, err)

	case errors.Is(err, service.ErrMinimumOrderNotMet):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeMinimumOrder, i18n.ErrKeyMinimumOrderNotMet, nil, err)

	case errors.Is(err, service.ErrDateTooEarly):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeDateTooEarly, i18n.ErrKeyDateTooEarly, nil, err)

	case errors.Is(err, service.ErrInvalidTimeSlot):
		builder.ErrorWithCode(http.StatusUnprocessableEntity,
			dto.ErrCodeInvalidSlot, i18n.ErrKeyInvalidTimeSlot, nil, err)

	case errors.Is(err, service.ErrInvalidDate):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)

	case errors.Is(err, service.ErrSessionNotFound):
		builder.ErrorWithCode(http.StatusNotFound,
			dto.ErrCodeNotFound, i18n.ErrKeySessionNotFound, nil, err)

	case errors.Is(err, service.ErrInvalidTransition):
		builder.ErrorWithCode(http.StatusConflict,
			dto.ErrCodeInvalidTransition, i18n.ErrKeyInvalidTransition, nil, err)

	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
