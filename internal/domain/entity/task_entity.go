package entity

import (
	"time"
)

// Task belongs to exactly one User via UserID.
// Status and Priority are free-form strings; the store applies the
// "pending"/"medium" defaults when the caller omits them.
type Task struct {
	TaskID      int64
	UserID      int64
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
