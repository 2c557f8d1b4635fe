package application

import (
	"context"
	"sort"
	"time"

	"task-manager-api/internal/domain/entity"
	repo "task-manager-api/internal/domain/repository"
)

// In-memory repositories standing in for the pgx implementations. They mimic
// the store contract: assigned ids, assigned timestamps, rows-affected counts.

type fakeUserRepo struct {
	users  map[int64]entity.User
	nextID int64
	err    error // forced infrastructure failure
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	u.UserID = f.nextID
	now := time.Now()
	stored := *u
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.users[u.UserID] = stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

var _ repo.UserRepository = (*fakeUserRepo)(nil)

type fakeTaskRepo struct {
	tasks  map[int64]entity.Task
	nextID int64
	err    error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]entity.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	t.TaskID = f.nextID
	now := time.Now()
	stored := *t
	stored.CreatedAt = now
	stored.UpdatedAt = now
	f.tasks[t.TaskID] = stored
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tasks[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := t
	return &cp, nil
}

func (f *fakeTaskRepo) ListByUserID(_ context.Context, userID int64) ([]entity.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Task, 0)
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *entity.Task) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	existing, ok := f.tasks[t.TaskID]
	if !ok {
		return 0, nil
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Status = t.Status
	existing.Priority = t.Priority
	existing.DueDate = t.DueDate
	existing.UpdatedAt = time.Now()
	f.tasks[t.TaskID] = existing
	return 1, nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

var _ repo.TaskRepository = (*fakeTaskRepo)(nil)
