package http

import (
	"errors"

	"event-task-suggester/internal/suggestion"
	pkgErrors "event-task-suggester/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrInvalidTimeRange):
		return pkgErrors.NewHTTPError(400, "event end time is before start time")
	case errors.Is(err, suggestion.ErrNoSuggestionsSelected):
		return pkgErrors.NewHTTPError(400, "at least one suggestion must be selected")
	case errors.Is(err, suggestion.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(503, "calendar integration is not configured")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
