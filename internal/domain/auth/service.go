package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Service struct {
	Repository  user.Repository
	UserService *user.Service
}

func NewService(repository user.Repository, userService *user.Service) *Service {
	return &Service{Repository: repository, UserService: userService}
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Repository.GetByUsername(ctx, login.Username)
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Register(ctx context.Context, register Register) (*user.User, error) {
	username := strings.TrimSpace(register.Username)
	if username == "" {
		return nil, appErrors.NewValidationError("username", "is required")
	}
	email := strings.TrimSpace(strings.ToLower(register.Email))
	if email == "" {
		return nil, appErrors.NewValidationError("email", "is required")
	}

	if taken, err := s.usernameExists(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, appErrors.NewConflictError("username is already taken")
	}
	if taken, err := s.emailExists(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, appErrors.ErrEmailAlreadyExists
	}

	if err := PasswordRequirements(register.Password); err != nil {
		return nil, err
	}
	hashed, err := HashPassword(register.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &user.User{
		Id:        pkg.GenerateULIDObject(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		FirstName: register.FirstName,
		LastName:  register.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().Str("user_id", entity.Id.String()).Msg("user registered")
	return entity, nil
}

func (s *Service) usernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.Repository.GetByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, err
}

func (s *Service) emailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.Repository.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if appErr, ok := appErrors.AsAppError(err); ok && appErr.Code == appErrors.ErrUserNotFound.Code {
		return false, nil
	}
	return false, err
}

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "must be at least 8 characters long")
	}
	hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
	if !hasUpper {
		return appErrors.NewValidationError("password", "must contain at least one uppercase letter")
	}
	hasDigit, _ := regexp.MatchString(`[0-9]`, password)
	if !hasDigit {
		return appErrors.NewValidationError("password", "must contain at least one digit")
	}
	return nil
}

func PasswordValidate(inputPassword, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "is required")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hashed), nil
}
