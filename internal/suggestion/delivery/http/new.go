package http

import (
	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
	fb feedback.Store
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase, fb feedback.Store) *handler {
	return &handler{
		l:  l,
		uc: uc,
		fb: fb,
	}
}
