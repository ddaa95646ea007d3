package domain

import "time"

// DailyCompletion marks a task as completed on one calendar day (reference
// timezone). The row's existence is the state: unmarking deletes it, so
// Completed is true for every persisted row.
type DailyCompletion struct {
	ID          int64
	UserID      int64
	TaskID      int64
	Day         time.Time // date only, midnight
	Completed   bool
	CompletedAt time.Time
}

// DayKey returns the completion's calendar day as YYYY-MM-DD.
func (c DailyCompletion) DayKey() string {
	return c.Day.Format("2006-01-02")
}

// CompletionWithTask is a DailyCompletion joined with its task, for the
// today's-progress listing.
type CompletionWithTask struct {
	DailyCompletion
	Task Task
}
