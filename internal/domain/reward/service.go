package reward

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type FundraiserGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
}

type Service struct {
	Repository        Repository
	FundraiserService FundraiserGetter
}

func NewService(repository Repository, fundraiserService FundraiserGetter) *Service {
	return &Service{Repository: repository, FundraiserService: fundraiserService}
}

func (s *Service) Create(ctx context.Context, request *domaincontracts.RewardTierCreateRequest) (*Tier, error) {
	rewardType := Type(request.RewardType)
	if !rewardType.IsValid() {
		return nil, appErrors.NewValidationError("reward_type", "must be one of: money, time, item")
	}
	if strings.TrimSpace(request.Name) == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}
	if request.MinimumContributionValue != nil && *request.MinimumContributionValue < 0 {
		return nil, appErrors.NewValidationError("minimum_contribution_value", "must not be negative")
	}

	parent, err := s.FundraiserService.GetByID(ctx, request.FundraiserId)
	if err != nil {
		return nil, err
	}
	actor := shared.Actor{ID: request.ActorId, Authenticated: !pkg.IsEmptyULID(request.ActorId)}
	if !shared.CanModify(actor, parent) {
		return nil, appErrors.ErrResourceNotOwned
	}

	now := time.Now()
	entity := &Tier{
		Id:                       pkg.GenerateULIDObject(),
		FundraiserId:             request.FundraiserId,
		RewardType:               rewardType,
		Name:                     strings.TrimSpace(request.Name),
		Description:              request.Description,
		MinimumContributionValue: request.MinimumContributionValue,
		ImageURL:                 request.ImageURL,
		SortOrder:                request.SortOrder,
		MaxBackers:               request.MaxBackers,
		CreatedAt:                now,
		UpdatedAt:                now,
		FundraiserOwnerId:        parent.OwnerId,
	}
	entity.Normalize()

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Update(ctx context.Context, request *domaincontracts.RewardTierUpdateRequest) (*Tier, error) {
	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}

	actor := shared.Actor{ID: request.ActorId, Authenticated: !pkg.IsEmptyULID(request.ActorId)}
	if !shared.CanModify(actor, current) {
		return nil, appErrors.ErrResourceNotOwned
	}

	if request.Name != nil {
		if strings.TrimSpace(*request.Name) == "" {
			return nil, appErrors.NewValidationError("name", "is required")
		}
		current.Name = strings.TrimSpace(*request.Name)
	}
	if request.Description != nil {
		current.Description = *request.Description
	}
	if request.ClearMinimum {
		current.MinimumContributionValue = nil
	} else if request.MinimumContributionValue != nil {
		if *request.MinimumContributionValue < 0 {
			return nil, appErrors.NewValidationError("minimum_contribution_value", "must not be negative")
		}
		current.MinimumContributionValue = request.MinimumContributionValue
	}
	if request.ImageURL != nil {
		current.ImageURL = *request.ImageURL
	}
	if request.SortOrder != nil {
		current.SortOrder = *request.SortOrder
	}
	if request.MaxBackers != nil {
		current.MaxBackers = request.MaxBackers
	}
	current.UpdatedAt = time.Now()
	current.Normalize()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, tierID, actorID ulid.ULID) error {
	current, err := s.Repository.GetByID(ctx, tierID)
	if err != nil {
		return err
	}

	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, current) {
		return appErrors.ErrResourceNotOwned
	}

	return s.Repository.Delete(ctx, tierID)
}

func (s *Service) GetByID(ctx context.Context, tierID ulid.ULID) (*Tier, error) {
	return s.Repository.GetByID(ctx, tierID)
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Tier, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Tier, error) {
	return s.Repository.GetByFundraiserID(ctx, fundraiserID)
}
