package auth_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/auth"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
)

type fakeUserRepository struct {
	createFn        func(ctx context.Context, u *user.User) error
	getByUsernameFn func(ctx context.Context, username string) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if f.getByUsernameFn != nil {
		return f.getByUsernameFn(ctx, username)
	}
	return nil, appErrors.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, appErrors.ErrUserNotFound
}

func newService(repo *fakeUserRepository) *auth.Service {
	return auth.NewService(repo, user.NewService(repo))
}

func TestPasswordRequirements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no uppercase", password: "alllower1", wantErr: true},
		{name: "no digit", password: "NoDigitsHere", wantErr: true},
		{name: "meets all requirements", password: "Sufficient1", wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := auth.PasswordRequirements(tt.password)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q", tt.password)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("duplicate username", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
				return &user.User{Id: ulid.Make(), Username: username}, nil
			},
		}
		_, err := newService(repo).Register(ctx, auth.Register{
			Username: "rebecca",
			Email:    "rebecca@example.com",
			Password: "Sufficient1",
		})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != "CONFLICT" {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return &user.User{Id: ulid.Make(), Email: email}, nil
			},
		}
		_, err := newService(repo).Register(ctx, auth.Register{
			Username: "rebecca",
			Email:    "rebecca@example.com",
			Password: "Sufficient1",
		})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != appErrors.ErrEmailAlreadyExists.Code {
			t.Fatalf("expected email conflict, got %v", err)
		}
	})

	t.Run("stores a hash and normalizes the email", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		entity, err := newService(repo).Register(ctx, auth.Register{
			Username: "  rebecca  ",
			Email:    "Rebecca@Example.COM",
			Password: "Sufficient1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created == nil {
			t.Fatalf("expected the user persisted")
		}
		if entity.Username != "rebecca" || entity.Email != "rebecca@example.com" {
			t.Fatalf("expected trimmed username and lowercased email, got %q / %q", entity.Username, entity.Email)
		}
		if entity.Password == "Sufficient1" || entity.Password == "" {
			t.Fatalf("password must be stored hashed")
		}
		if err := auth.PasswordValidate("Sufficient1", entity.Password); err != nil {
			t.Fatalf("stored hash must verify against the original password: %v", err)
		}
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	hashed, err := auth.HashPassword("Sufficient1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &fakeUserRepository{
		getByUsernameFn: func(ctx context.Context, username string) (*user.User, error) {
			if username == "rebecca" {
				return &user.User{Id: ulid.Make(), Username: username, Password: hashed}, nil
			}
			return nil, appErrors.ErrUserNotFound
		},
	}
	svc := newService(repo)

	t.Run("unknown user looks like bad credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.Login{Username: "nobody", Password: "Sufficient1"})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.Login{Username: "rebecca", Password: "WrongPassword1"})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != appErrors.ErrInvalidCredentials.Code {
			t.Fatalf("expected invalid credentials, got %v", err)
		}
	})

	t.Run("correct password", func(t *testing.T) {
		entity, err := svc.Login(ctx, auth.Login{Username: "rebecca", Password: "Sufficient1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Username != "rebecca" {
			t.Fatalf("expected the stored user back, got %q", entity.Username)
		}
	})
}
