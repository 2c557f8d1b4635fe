package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash and never serialized
// back to callers.
type User struct {
	UserID       int64
	Username     string
	Email        string
	FirstName    *string
	LastName     *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
