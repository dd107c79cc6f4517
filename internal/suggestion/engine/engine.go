// Package engine implements the event classifier and task suggestion engine:
// a rule-based pipeline that inspects free-text event fields and produces a
// ranked set of candidate preparation tasks.
//
// The engine is pure and stateless after construction. The catalog is
// read-only, every result is local to one call, and identical input always
// yields identical output, so a single Engine may be shared across
// goroutines without locking.
package engine

import "errors"

// ErrInvalidTimeRange is returned when an event ends before it starts.
// Zero duration is accepted.
var ErrInvalidTimeRange = errors.New("event end time is before start time")

// Engine generates task suggestions for events. Construct once at startup
// and pass in explicitly wherever suggestions are needed.
type Engine struct {
	catalog *Catalog
}

// New creates an Engine over the default catalog.
func New() *Engine {
	return &Engine{catalog: NewCatalog()}
}
