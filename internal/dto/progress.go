package dto

import "time"

// CompletionResponse is one daily completion record.
type CompletionResponse struct {
	ID          int64     `json:"id"`
	TaskID      int64     `json:"task_id"`
	Day         string    `json:"day"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completed_at"`
}

// CompletionWithTaskResponse is a completion populated with its task.
type CompletionWithTaskResponse struct {
	CompletionResponse
	Task TaskResponse `json:"task"`
}

// ToggleResponse reports the state a toggle left today in. Completion is set
// only when the task was marked complete.
type ToggleResponse struct {
	Completed  bool                `json:"completed"`
	Day        string              `json:"day"`
	Completion *CompletionResponse `json:"completion,omitempty"`
}

// TodayProgressResponse lists today's completions.
type TodayProgressResponse struct {
	Day   string                       `json:"day"`
	Items []CompletionWithTaskResponse `json:"items"`
}

// CleanupResponse counts orphan rows pruned per entity.
type CleanupResponse struct {
	CompletionsPruned  int64 `json:"completions_pruned"`
	FocusEntriesPruned int64 `json:"focus_entries_pruned"`
}
