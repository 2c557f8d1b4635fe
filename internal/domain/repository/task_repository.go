package repository

import (
	"context"

	"task-manager-api/internal/domain/entity"
)

// TaskRepository defines the interface for task-related database operations.
// Update and Delete report the number of rows affected so callers can tell a
// vanished row apart from an infrastructure failure.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	ListByUserID(ctx context.Context, userID int64) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
