package domain

import "time"

// FocusEntry puts one task into the user's ordered focus list. At most one
// entry per (user, task); SortOrder is kept dense 1..N by removal.
type FocusEntry struct {
	ID        int64
	UserID    int64
	TaskID    int64
	SortOrder int
	AddedAt   time.Time
}

// FocusEntryWithTask is a FocusEntry joined with its task for listing.
type FocusEntryWithTask struct {
	FocusEntry
	Task Task
}
