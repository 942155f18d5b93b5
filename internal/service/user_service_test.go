package service_test

import (
	"errors"
	"testing"

	"pharma-dashboard/internal/model"
	"pharma-dashboard/internal/repository"
	"pharma-dashboard/internal/service"
)

func TestUserService(t *testing.T) {
	svc := service.NewUserService(repository.NewUserRepo())

	t.Run("EnsureUser_CreatesOnce", func(t *testing.T) {
		u, created, err := svc.EnsureUser(&model.UserInput{Username: "admin", Password: "admin123"})
		if err != nil {
			t.Fatalf("EnsureUser: %v", err)
		}
		if !created || u.Username != "admin" {
			t.Errorf("expected admin to be created, got created=%v user=%+v", created, u)
		}

		again, created, err := svc.EnsureUser(&model.UserInput{Username: "admin", Password: "other-password"})
		if err != nil {
			t.Fatalf("EnsureUser: %v", err)
		}
		if created || again.ID != u.ID {
			t.Errorf("expected existing admin to be returned")
		}
	})

	t.Run("VerifyPassword", func(t *testing.T) {
		if _, err := svc.VerifyPassword("admin", "admin123"); err != nil {
			t.Errorf("expected password to verify, got %v", err)
		}
		if _, err := svc.VerifyPassword("admin", "other-password"); !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, err := svc.VerifyPassword("nobody", "admin123"); !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
		}
	})

	t.Run("Register_Duplicate_Fails", func(t *testing.T) {
		_, err := svc.Register(&model.UserInput{Username: "admin", Password: "admin123"})
		var vErr *service.ValidationError
		if !errors.As(err, &vErr) || vErr.Details[0].Tag != "unique" {
			t.Errorf("expected unique validation error, got %v", err)
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			t.Errorf("expected error to wrap ErrDuplicate")
		}
	})

	t.Run("Register_ShortPassword_Fails", func(t *testing.T) {
		_, err := svc.Register(&model.UserInput{Username: "operator", Password: "123"})
		var vErr *service.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if vErr.Details[0].FailedField != "password" || vErr.Details[0].Tag != "min" {
			t.Errorf("unexpected details: %+v", vErr.Details[0])
		}
	})
}
