package application

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrTaskNotFound  = errors.New("task not found")
	ErrDuplicateUser = errors.New("username or email already registered")
)
