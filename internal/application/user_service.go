package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"task-manager-api/internal/domain/entity"
	repo "task-manager-api/internal/domain/repository"
	"task-manager-api/pkg/helpers"
)

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type RegisterUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// Register creates a user after checking username/email uniqueness, then
// reads the row back so the caller gets the store-assigned id and timestamps.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*entity.User, error) {
	existing, err := s.Repo.GetByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("insert user failed")
		}
		return nil, err
	}

	created, err := s.Repo.GetByID(ctx, u.UserID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the user by id or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
