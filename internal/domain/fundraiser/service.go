package fundraiser

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Service struct {
	Repository  Repository
	UserChecker *shared.UserCheckerService
}

func NewService(repository Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{Repository: repository, UserChecker: userChecker}
}

func (s *Service) Create(ctx context.Context, request *domaincontracts.FundraiserCreateRequest) (*Fundraiser, error) {
	if err := validateCreate(request); err != nil {
		return nil, err
	}

	if err := s.UserChecker.EnsureUserExists(ctx, request.OwnerId); err != nil {
		return nil, err
	}

	status := StatusDraft
	if request.Status != "" {
		status = Status(request.Status)
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("status", "unknown fundraiser status")
		}
	}

	now := time.Now()
	entity := &Fundraiser{
		Id:              pkg.GenerateULIDObject(),
		OwnerId:         request.OwnerId,
		Title:           strings.TrimSpace(request.Title),
		Description:     request.Description,
		Goal:            request.Goal,
		ImageURL:        request.ImageURL,
		Location:        request.Location,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Status:          status,
		EnableRewards:   request.EnableRewards,
		RequireApproval: request.RequireApproval,
		SortOrder:       request.SortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Update(ctx context.Context, request *domaincontracts.FundraiserUpdateRequest) (*Fundraiser, error) {
	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}

	actor := shared.Actor{ID: request.ActorId, Authenticated: !pkg.IsEmptyULID(request.ActorId)}
	if !shared.CanModify(actor, current) {
		return nil, appErrors.ErrResourceNotOwned
	}

	if request.Title != nil {
		current.Title = strings.TrimSpace(*request.Title)
	}
	if request.Description != nil {
		current.Description = *request.Description
	}
	if request.Goal != nil {
		if *request.Goal <= 0 {
			return nil, appErrors.NewValidationError("goal", "must be greater than zero")
		}
		current.Goal = *request.Goal
	}
	if request.ImageURL != nil {
		current.ImageURL = *request.ImageURL
	}
	if request.Location != nil {
		current.Location = *request.Location
	}
	if request.StartDate != nil {
		current.StartDate = request.StartDate
	}
	if request.EndDate != nil {
		current.EndDate = request.EndDate
	}
	if request.Status != nil {
		status := Status(*request.Status)
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("status", "unknown fundraiser status")
		}
		current.Status = status
	}
	if request.EnableRewards != nil {
		current.EnableRewards = *request.EnableRewards
	}
	if request.RequireApproval != nil {
		current.RequireApproval = *request.RequireApproval
	}
	if request.SortOrder != nil {
		current.SortOrder = *request.SortOrder
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete refuses to remove a fundraiser that already has pledges; the owner
// should cancel it instead.
func (s *Service) Delete(ctx context.Context, fundraiserID, actorID ulid.ULID) error {
	current, err := s.Repository.GetByID(ctx, fundraiserID)
	if err != nil {
		return err
	}

	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, current) {
		return appErrors.ErrResourceNotOwned
	}

	pledgeCount, err := s.Repository.CountPledges(ctx, fundraiserID)
	if err != nil {
		return err
	}
	if pledgeCount > 0 {
		return appErrors.NewConflictError("cannot delete a fundraiser that already has pledges; set status to cancelled instead")
	}

	return s.Repository.Delete(ctx, fundraiserID)
}

func (s *Service) GetByID(ctx context.Context, fundraiserID ulid.ULID) (*Fundraiser, error) {
	return s.Repository.GetByID(ctx, fundraiserID)
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Fundraiser, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) GetByOwnerID(ctx context.Context, ownerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Fundraiser, int64, error) {
	return s.Repository.GetByOwnerID(ctx, ownerID, pagination)
}

func validateCreate(request *domaincontracts.FundraiserCreateRequest) error {
	if strings.TrimSpace(request.Title) == "" {
		return appErrors.NewValidationError("title", "is required")
	}
	if request.Goal <= 0 {
		return appErrors.NewValidationError("goal", "must be greater than zero")
	}
	if request.StartDate != nil && request.EndDate != nil && !request.EndDate.After(*request.StartDate) {
		return appErrors.NewValidationError("end_date", "must be after start_date")
	}
	return nil
}
