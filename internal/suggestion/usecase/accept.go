package usecase

import (
	"context"

	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/internal/suggestion/repository"
)

func (uc *implUseCase) Accept(ctx context.Context, input suggestion.AcceptInput) (suggestion.AcceptOutput, error) {
	if len(input.Selected) == 0 {
		return suggestion.AcceptOutput{}, suggestion.ErrNoSuggestionsSelected
	}

	// Re-classify the event so feedback and tasks stay keyed to the
	// catalog even when the caller edited the suggestion payloads.
	cls := uc.engine.Classify(input.Event.Title, input.Event.Description, input.Event.Location)

	tasks := make([]model.Task, 0, len(input.Selected))
	for _, s := range input.Selected {
		category := s.Category
		if category == "" {
			category = cls.Category
		}

		task, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
			Description:   s.Description,
			ScheduledTime: s.ScheduledTime,
			EventTitle:    input.Event.Title,
			Category:      category,
		})
		if err != nil {
			uc.l.Errorf(ctx, "suggestion.usecase.Accept: create task: %v", err)
			return suggestion.AcceptOutput{}, err
		}

		tasks = append(tasks, task)
	}

	// Reminders and feedback are advisory; their failures must not fail
	// the acceptance.
	if uc.calendar != nil {
		for _, task := range tasks {
			if err := uc.calendar.CreateTaskReminder(ctx, uc.calendarID, task); err != nil {
				uc.l.Warnf(ctx, "suggestion.usecase.Accept: calendar reminder for task %s: %v", task.ID, err)
			}
		}
	}

	if err := uc.fb.Record(ctx, cls.Category, input.Selected, input.Rejected); err != nil {
		uc.l.Warnf(ctx, "suggestion.usecase.Accept: record feedback: %v", err)
	}

	uc.l.Infof(ctx, "suggestion.usecase.Accept: created %d tasks for %q (category=%s, rejected=%d)",
		len(tasks), input.Event.Title, cls.Category, len(input.Rejected))

	return suggestion.AcceptOutput{Tasks: tasks}, nil
}
