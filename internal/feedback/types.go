package feedback

// CategoryStats holds acceptance bookkeeping for one category.
type CategoryStats struct {
	EventCount    int            `json:"event_count"`
	AcceptedCount int            `json:"accepted_count"`
	RejectedCount int            `json:"rejected_count"`
	TaskCounts    map[string]int `json:"task_counts"`
}

// Snapshot is the full feedback state, keyed by category. It is plain
// bookkeeping: nothing feeds back into classification weights.
type Snapshot struct {
	Categories map[string]CategoryStats `json:"categories"`
}
