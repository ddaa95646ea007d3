package domain

import "time"

// User is an account owning tasks, completions and focus entries.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
