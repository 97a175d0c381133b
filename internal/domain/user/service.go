package user

import (
	"context"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
)

type Service struct {
	Repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{Repository: repository}
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	u, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Exists(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}
	return nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.Repository.GetByUsername(ctx, username)
}
