package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/internal/suggestion/engine"
	"event-task-suggester/internal/suggestion/repository"
	"event-task-suggester/pkg/log"
)

const (
	defaultCacheSize    = 256
	cacheTTL            = 10 * time.Minute
	defaultUpcomingDays = 7
	maxCalendarResults  = 50
)

// implUseCase is the private implementation of suggestion.UseCase.
type implUseCase struct {
	engine     *engine.Engine
	repo       repository.Repository
	fb         feedback.Store
	calendar   suggestion.CalendarClient // nil when not configured
	calendarID string
	// cache holds recent engine results; the engine is deterministic, so
	// identical events can be served from cache safely.
	cache *expirable.LRU[string, model.SuggestionSet]
	l     log.Logger
}

// New creates a new suggestion UseCase implementation. calendar may be nil;
// SuggestUpcoming then returns ErrCalendarNotConfigured.
func New(l log.Logger, eng *engine.Engine, repo repository.Repository, fb feedback.Store,
	calendar suggestion.CalendarClient, calendarID string, cacheSize int) *implUseCase {

	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	return &implUseCase{
		engine:     eng,
		repo:       repo,
		fb:         fb,
		calendar:   calendar,
		calendarID: calendarID,
		cache:      expirable.NewLRU[string, model.SuggestionSet](cacheSize, nil, cacheTTL),
		l:          l,
	}
}
