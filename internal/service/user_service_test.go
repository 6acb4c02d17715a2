package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/repository"
)

func newTestUserService() (UserService, *repository.Repository) {
	repo := newMockRepository()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestUserCreateAndGet(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Name:     "Thandi Mokoena",
		Email:    "thandi@example.com",
		Password: "s3cret-pass",
		Role:     "manager",
	}, "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != "manager" {
		t.Errorf("role = %s", created.Role)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "thandi@example.com" {
		t.Errorf("email = %s", got.Email)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		Name: "Thandi Mokoena", Email: "thandi@example.com",
		Password: "s3cret-pass", Role: "clerk",
	}
	if _, err := svc.Create(ctx, req, "admin-1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, req, "admin-1"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserGetUnknown(t *testing.T) {
	svc, _ := newTestUserService()

	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestUserList(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := svc.Create(ctx, &dto.CreateUserRequest{
			Name: "Staff Member", Email: email, Password: "s3cret-pass", Role: "clerk",
		}, "admin-1")
		if err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	users, total, err := svc.List(ctx, &dto.UserListRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(users) != 3 {
		t.Errorf("total = %d, len = %d, want 3", total, len(users))
	}
}

func TestUserUpdateRole(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Name: "Thandi Mokoena", Email: "thandi@example.com",
		Password: "s3cret-pass", Role: "clerk",
	}, "admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := "admin"
	updated, err := svc.Update(ctx, created.ID, &dto.UpdateUserRequest{Role: &role}, "admin-1")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != "admin" {
		t.Errorf("role = %s, want admin", updated.Role)
	}
}
