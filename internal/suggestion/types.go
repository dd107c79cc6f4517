package suggestion

import (
	"event-task-suggester/internal/model"
)

// --- UseCase Inputs ---

type GenerateInput struct {
	Event model.Event
}

type AcceptInput struct {
	Event    model.Event
	Selected []model.TaskSuggestion
	Rejected []model.TaskSuggestion
}

type UpcomingInput struct {
	// Days is the look-ahead window; defaults to 7 when non-positive.
	Days int
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Suggestions []model.TaskSuggestion
	Analysis    model.SuggestionAnalysis
}

type AcceptOutput struct {
	Tasks []model.Task
}

// EventSuggestions pairs one calendar event with its suggestion set.
type EventSuggestions struct {
	Event       model.Event
	Suggestions []model.TaskSuggestion
	Analysis    model.SuggestionAnalysis
}

type UpcomingOutput struct {
	Events []EventSuggestions
}

type ListTasksOutput struct {
	Tasks []model.Task
	Count int
}
