package usecase

import (
	"context"
	"fmt"

	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion"
)

func (uc *implUseCase) Generate(ctx context.Context, input suggestion.GenerateInput) (suggestion.GenerateOutput, error) {
	key := cacheKey(input.Event)

	if set, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "suggestion.usecase.Generate: cache hit for %q", input.Event.Title)
		return suggestion.GenerateOutput{Suggestions: set.Suggestions, Analysis: set.Analysis}, nil
	}

	set, err := uc.engine.GenerateTaskSuggestions(input.Event)
	if err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.Generate: %v", err)
		return suggestion.GenerateOutput{}, err
	}

	uc.cache.Add(key, set)

	uc.l.Infof(ctx, "suggestion.usecase.Generate: %d suggestions for %q (category=%s, quality=%s)",
		len(set.Suggestions), input.Event.Title, set.Analysis.Category, set.Analysis.Quality)

	return suggestion.GenerateOutput{Suggestions: set.Suggestions, Analysis: set.Analysis}, nil
}

// cacheKey length-prefixes each text field so that field boundaries stay
// unambiguous no matter what characters the fields contain.
func cacheKey(ev model.Event) string {
	return fmt.Sprintf("%d:%s|%d:%s|%d:%s|%d|%d",
		len(ev.Title), ev.Title,
		len(ev.Description), ev.Description,
		len(ev.Location), ev.Location,
		ev.StartTime.Unix(), ev.EndTime.Unix())
}
