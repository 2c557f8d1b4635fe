package application

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"task-manager-api/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRegisterStoresHashAndReadsBack(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, testLogger())

	u, err := svc.Register(context.Background(), RegisterUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "p1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.UserID == 0 {
		t.Fatal("expected store-assigned id")
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Fatal("expected store-assigned timestamps")
	}
	if u.PasswordHash == "p1" || u.PasswordHash == "" {
		t.Fatalf("password stored without hashing: %q", u.PasswordHash)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, "p1") {
		t.Fatal("stored hash does not verify against the plaintext")
	}
}

func TestRegisterDuplicateUsernameOrEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, testLogger())

	ctx := context.Background()
	if _, err := svc.Register(ctx, RegisterUserInput{Username: "alice", Email: "a@x.com", Password: "p1"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	cases := []RegisterUserInput{
		{Username: "alice", Email: "other@x.com", Password: "p2"}, // same username
		{Username: "other", Email: "a@x.com", Password: "p2"},     // same email
	}
	for _, in := range cases {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrDuplicateUser) {
			t.Fatalf("Register(%q/%q) = %v, want ErrDuplicateUser", in.Username, in.Email, err)
		}
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate attempts wrote rows: %d users", len(users.users))
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), testLogger())

	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("Get = %v, want ErrUserNotFound", err)
	}
}

func TestRegisterSurfacesInfrastructureError(t *testing.T) {
	users := newFakeUserRepo()
	users.err = errors.New("connection refused")
	svc := NewUserService(users, testLogger())

	_, err := svc.Register(context.Background(), RegisterUserInput{Username: "alice", Email: "a@x.com", Password: "p1"})
	if err == nil || errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("Register = %v, want wrapped infrastructure error", err)
	}
}
