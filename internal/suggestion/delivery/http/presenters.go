package http

import (
	"time"

	"github.com/google/uuid"

	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/model"
	"event-task-suggester/internal/suggestion"
)

// --- Request DTOs ---

type eventReq struct {
	Title       string    `json:"title"       binding:"required,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Location    string    `json:"location"    binding:"max=255"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"    binding:"required"`
}

func (r eventReq) toModel() model.Event {
	return model.Event{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
}

type generateReq struct {
	Event eventReq `json:"event" binding:"required"`
}

func (r generateReq) validate() error { return nil }

func (r generateReq) toInput() suggestion.GenerateInput {
	return suggestion.GenerateInput{Event: r.Event.toModel()}
}

type suggestionPayload struct {
	Description   string    `json:"description"    binding:"required"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	Relation      string    `json:"relation"       binding:"omitempty,oneof=before after"`
	Confidence    int       `json:"confidence"     binding:"omitempty,min=0,max=100"`
	Category      string    `json:"category"`
}

func (p suggestionPayload) toModel() model.TaskSuggestion {
	return model.TaskSuggestion{
		Description:   p.Description,
		ScheduledTime: p.ScheduledTime,
		Relation:      model.Relation(p.Relation),
		Confidence:    p.Confidence,
		Category:      p.Category,
	}
}

type acceptReq struct {
	Event    eventReq            `json:"event"    binding:"required"`
	Selected []suggestionPayload `json:"selected" binding:"required,dive"`
	Rejected []suggestionPayload `json:"rejected" binding:"omitempty,dive"`
}

func (r acceptReq) validate() error { return nil }

func (r acceptReq) toInput() suggestion.AcceptInput {
	selected := make([]model.TaskSuggestion, len(r.Selected))
	for i, s := range r.Selected {
		selected[i] = s.toModel()
	}
	rejected := make([]model.TaskSuggestion, len(r.Rejected))
	for i, s := range r.Rejected {
		rejected[i] = s.toModel()
	}
	return suggestion.AcceptInput{
		Event:    r.Event.toModel(),
		Selected: selected,
		Rejected: rejected,
	}
}

type upcomingReq struct {
	Days int `form:"days" binding:"omitempty,min=1,max=90"`
}

func (r upcomingReq) validate() error { return nil }

func (r upcomingReq) toInput() suggestion.UpcomingInput {
	return suggestion.UpcomingInput{Days: r.Days}
}

// --- Response DTOs ---

type suggestionResp struct {
	ID               string    `json:"id"`
	Description      string    `json:"description"`
	ScheduledTime    time.Time `json:"scheduled_time"`
	Relation         string    `json:"relation"`
	Confidence       int       `json:"confidence"`
	Category         string    `json:"category"`
	ComplexityFactor float64   `json:"complexity_factor"`
	Notes            string    `json:"notes"`
}

func newSuggestionResp(s model.TaskSuggestion) suggestionResp {
	return suggestionResp{
		ID:               uuid.NewString(),
		Description:      s.Description,
		ScheduledTime:    s.ScheduledTime,
		Relation:         string(s.Relation),
		Confidence:       s.Confidence,
		Category:         s.Category,
		ComplexityFactor: s.ComplexityFactor,
		Notes:            s.Notes,
	}
}

type analysisResp struct {
	Category                 string   `json:"category"`
	ClassificationConfidence float64  `json:"classification_confidence"`
	ComplexityScore          float64  `json:"complexity_score"`
	ComplexityTier           string   `json:"complexity_tier"`
	ComplexityFactors        []string `json:"complexity_factors"`
	PreparationDays          int      `json:"preparation_days"`
	SuggestionCount          int      `json:"suggestion_count"`
	Quality                  string   `json:"quality"`
}

func newAnalysisResp(a model.SuggestionAnalysis) analysisResp {
	return analysisResp{
		Category:                 a.Category,
		ClassificationConfidence: a.ClassificationConfidence,
		ComplexityScore:          a.ComplexityScore,
		ComplexityTier:           string(a.ComplexityTier),
		ComplexityFactors:        a.ComplexityFactors,
		PreparationDays:          a.PreparationDays,
		SuggestionCount:          a.SuggestionCount,
		Quality:                  a.Quality,
	}
}

type generateResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Analysis    analysisResp     `json:"analysis"`
}

func (h *handler) newGenerateResp(out suggestion.GenerateOutput) generateResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = newSuggestionResp(s)
	}
	return generateResp{
		Suggestions: suggestions,
		Analysis:    newAnalysisResp(out.Analysis),
	}
}

type taskResp struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	ScheduledTime time.Time `json:"scheduled_time"`
	EventTitle    string    `json:"event_title"`
	Category      string    `json:"category"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Description:   t.Description,
		ScheduledTime: t.ScheduledTime,
		EventTitle:    t.EventTitle,
		Category:      t.Category,
		Completed:     t.Completed,
		CreatedAt:     t.CreatedAt,
	}
}

type acceptResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newAcceptResp(out suggestion.AcceptOutput) acceptResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return acceptResp{Tasks: tasks}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListTasksResp(out suggestion.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks, Count: out.Count}
}

type eventResp struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type eventSuggestionsResp struct {
	Event       eventResp        `json:"event"`
	Suggestions []suggestionResp `json:"suggestions"`
	Analysis    analysisResp     `json:"analysis"`
}

type upcomingResp struct {
	Events []eventSuggestionsResp `json:"events"`
}

func (h *handler) newUpcomingResp(out suggestion.UpcomingOutput) upcomingResp {
	events := make([]eventSuggestionsResp, len(out.Events))
	for i, es := range out.Events {
		suggestions := make([]suggestionResp, len(es.Suggestions))
		for j, s := range es.Suggestions {
			suggestions[j] = newSuggestionResp(s)
		}
		events[i] = eventSuggestionsResp{
			Event: eventResp{
				Title:       es.Event.Title,
				Description: es.Event.Description,
				Location:    es.Event.Location,
				StartTime:   es.Event.StartTime,
				EndTime:     es.Event.EndTime,
			},
			Suggestions: suggestions,
			Analysis:    newAnalysisResp(es.Analysis),
		}
	}
	return upcomingResp{Events: events}
}

type categoryStatsResp struct {
	EventCount    int            `json:"event_count"`
	AcceptedCount int            `json:"accepted_count"`
	RejectedCount int            `json:"rejected_count"`
	TaskCounts    map[string]int `json:"task_counts"`
}

type feedbackResp struct {
	Categories map[string]categoryStatsResp `json:"categories"`
}

func (h *handler) newFeedbackResp(snap feedback.Snapshot) feedbackResp {
	categories := make(map[string]categoryStatsResp, len(snap.Categories))
	for name, stats := range snap.Categories {
		categories[name] = categoryStatsResp{
			EventCount:    stats.EventCount,
			AcceptedCount: stats.AcceptedCount,
			RejectedCount: stats.RejectedCount,
			TaskCounts:    stats.TaskCounts,
		}
	}
	return feedbackResp{Categories: categories}
}
