package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-manager-api/internal/domain/entity"
	"task-manager-api/internal/domain/repository"
)

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING task_id
	`, t.UserID, t.Title, t.Description, t.Status, t.Priority, t.DueDate)

	return row.Scan(&t.TaskID)
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	t := &entity.Task{}

	row := r.pool.QueryRow(ctx, `
		SELECT task_id, user_id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks
		WHERE task_id = $1
	`, id)

	if err := row.Scan(&t.TaskID, &t.UserID, &t.Title, &t.Description,
		&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

func (r *TaskRepository) ListByUserID(ctx context.Context, userID int64) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT task_id, user_id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY task_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.TaskID, &t.UserID, &t.Title, &t.Description,
			&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, priority = $4, due_date = $5, updated_at = now()
		WHERE task_id = $6
	`, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.TaskID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks
		WHERE task_id = $1
	`, id)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected(), nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
