package suggestion

import (
	"errors"

	"event-task-suggester/internal/suggestion/engine"
)

var (
	// ErrInvalidTimeRange mirrors the engine's contract violation so
	// callers can match it at the domain boundary.
	ErrInvalidTimeRange = engine.ErrInvalidTimeRange

	ErrNoSuggestionsSelected = errors.New("no suggestions selected")
	ErrCalendarNotConfigured = errors.New("calendar integration is not configured")
)
