package domain

import "time"

// Priority of a task. Stored as text; defaults to medium.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Priorities lists all priorities, low to high.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Task is the domain entity for a user's task.
// Completed is the legacy flag; daily state lives in DailyCompletion rows.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Priority    Priority
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
