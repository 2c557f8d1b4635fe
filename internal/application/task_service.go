package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"task-manager-api/internal/domain/entity"
	repo "task-manager-api/internal/domain/repository"
)

type TaskService struct {
	Tasks  repo.TaskRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, users repo.UserRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Users: users, Logger: logger}
}

// TaskInput carries the mutable task fields. Status and Priority arrive
// already defaulted by the request boundary.
type TaskInput struct {
	Title       string
	Description *string
	Status      string
	Priority    string
	DueDate     *time.Time
}

// Create inserts a task for an existing user and reads the row back for the
// store-assigned id and timestamps. Returns ErrUserNotFound when the owner
// does not exist; no row is written in that case.
func (s *TaskService) Create(ctx context.Context, userID int64, in TaskInput) (*entity.Task, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	t := &entity.Task{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("insert task failed")
		}
		return nil, err
	}

	created, err := s.Tasks.GetByID(ctx, t.TaskID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the task by id or ErrTaskNotFound.
func (s *TaskService) Get(ctx context.Context, id int64) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// ListForUser lists the user's tasks in primary-key order. A user with no
// tasks yields an empty slice, not an error.
func (s *TaskService) ListForUser(ctx context.Context, userID int64) ([]entity.Task, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Tasks.ListByUserID(ctx, userID)
}

// Update replaces all mutable fields of an existing task (full replace, not
// a partial patch) and reads back the persisted row.
func (s *TaskService) Update(ctx context.Context, id int64, in TaskInput) (*entity.Task, error) {
	existing, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	t := &entity.Task{
		TaskID:      existing.TaskID,
		UserID:      existing.UserID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	affected, err := s.Tasks.Update(ctx, t)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", id).Error("update task failed")
		}
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTaskNotFound
	}

	return s.Tasks.GetByID(ctx, id)
}

// Delete removes the task by id. Returns ErrTaskNotFound when the task never
// existed or was already deleted.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Tasks.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}

	affected, err := s.Tasks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
