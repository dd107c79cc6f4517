package usecase

import (
	"context"

	"event-task-suggester/internal/suggestion"
)

func (uc *implUseCase) ListTasks(ctx context.Context) (suggestion.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.ListTasks: %v", err)
		return suggestion.ListTasksOutput{}, err
	}

	return suggestion.ListTasksOutput{Tasks: tasks, Count: len(tasks)}, nil
}
