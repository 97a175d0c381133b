package need

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

func (s *Service) Create(ctx context.Context, request *domaincontracts.NeedCreateRequest) (*Need, error) {
	needType := Type(request.NeedType)
	if !needType.IsValid() {
		return nil, appErrors.NewValidationError("need_type", "must be one of: money, time, item")
	}
	if strings.TrimSpace(request.Title) == "" {
		return nil, appErrors.NewValidationError("title", "is required")
	}

	parent, err := s.FundraiserService.GetByID(ctx, request.FundraiserId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwner(request.ActorId, parent); err != nil {
		return nil, err
	}

	status := StatusOpen
	if request.Status != "" {
		status = Status(request.Status)
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("status", "unknown need status")
		}
	}
	priority := PriorityMedium
	if request.Priority != "" {
		priority = Priority(request.Priority)
		if !priority.IsValid() {
			return nil, appErrors.NewValidationError("priority", "unknown need priority")
		}
	}

	now := time.Now()
	entity := &Need{
		Id:                pkg.GenerateULIDObject(),
		FundraiserId:      request.FundraiserId,
		NeedType:          needType,
		Title:             strings.TrimSpace(request.Title),
		Description:       request.Description,
		Status:            status,
		Priority:          priority,
		SortOrder:         request.SortOrder,
		CreatedAt:         now,
		UpdatedAt:         now,
		FundraiserOwnerId: parent.OwnerId,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update never touches NeedType; it is immutable after creation.
func (s *Service) Update(ctx context.Context, request *domaincontracts.NeedUpdateRequest) (*Need, error) {
	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwner(request.ActorId, current); err != nil {
		return nil, err
	}

	if request.Title != nil {
		if strings.TrimSpace(*request.Title) == "" {
			return nil, appErrors.NewValidationError("title", "is required")
		}
		current.Title = strings.TrimSpace(*request.Title)
	}
	if request.Description != nil {
		current.Description = *request.Description
	}
	if request.Status != nil {
		status := Status(*request.Status)
		if !status.IsValid() {
			return nil, appErrors.NewValidationError("status", "unknown need status")
		}
		current.Status = status
	}
	if request.Priority != nil {
		priority := Priority(*request.Priority)
		if !priority.IsValid() {
			return nil, appErrors.NewValidationError("priority", "unknown need priority")
		}
		current.Priority = priority
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

// Delete refuses to remove a need that already has pledges.
func (s *Service) Delete(ctx context.Context, needID, actorID ulid.ULID) error {
	current, err := s.Repository.GetByID(ctx, needID)
	if err != nil {
		return err
	}
	if err := s.ensureOwner(actorID, current); err != nil {
		return err
	}

	pledgeCount, err := s.Repository.CountPledges(ctx, needID)
	if err != nil {
		return err
	}
	if pledgeCount > 0 {
		return appErrors.NewConflictError("cannot delete a need that already has pledges; set status to cancelled instead")
	}

	return s.Repository.Delete(ctx, needID)
}

func (s *Service) GetByID(ctx context.Context, needID ulid.ULID) (*Need, error) {
	return s.Repository.GetByID(ctx, needID)
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Need, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Need, error) {
	return s.Repository.GetByFundraiserID(ctx, fundraiserID)
}

// ---------------------------------------------------------------------------
// Typed detail rows. Each need owns exactly one detail whose type must match
// the need's NeedType.
// ---------------------------------------------------------------------------

func (s *Service) CreateMoneyDetail(ctx context.Context, request *domaincontracts.MoneyNeedCreateRequest) (*MoneyNeed, error) {
	if _, err := s.guardDetailWrite(ctx, request.NeedId, request.ActorId, TypeMoney); err != nil {
		return nil, err
	}

	if request.TargetAmount <= 0 {
		return nil, appErrors.NewValidationError("target_amount", "must be greater than zero")
	}

	now := time.Now()
	entity := &MoneyNeed{
		Id:           pkg.GenerateULIDObject(),
		NeedId:       request.NeedId,
		TargetAmount: request.TargetAmount,
		Comment:      request.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repository.CreateMoneyDetail(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateMoneyDetail(ctx context.Context, request *domaincontracts.MoneyNeedUpdateRequest) (*MoneyNeed, error) {
	current, err := s.Repository.GetMoneyDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, request.ActorId, TypeMoney); err != nil {
		return nil, err
	}

	if request.TargetAmount != nil {
		if *request.TargetAmount <= 0 {
			return nil, appErrors.NewValidationError("target_amount", "must be greater than zero")
		}
		current.TargetAmount = *request.TargetAmount
	}
	if request.Comment != nil {
		current.Comment = *request.Comment
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.UpdateMoneyDetail(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) CreateTimeDetail(ctx context.Context, request *domaincontracts.TimeNeedCreateRequest) (*TimeNeed, error) {
	if _, err := s.guardDetailWrite(ctx, request.NeedId, request.ActorId, TypeTime); err != nil {
		return nil, err
	}

	if !request.EndDatetime.After(request.StartDatetime) {
		return nil, appErrors.NewValidationError("end_datetime", "must be after start_datetime")
	}
	if request.VolunteersNeeded <= 0 {
		return nil, appErrors.NewValidationError("volunteers_needed", "must be greater than zero")
	}
	if strings.TrimSpace(request.RoleTitle) == "" {
		return nil, appErrors.NewValidationError("role_title", "is required")
	}

	now := time.Now()
	entity := &TimeNeed{
		Id:               pkg.GenerateULIDObject(),
		NeedId:           request.NeedId,
		StartDatetime:    request.StartDatetime,
		EndDatetime:      request.EndDatetime,
		VolunteersNeeded: request.VolunteersNeeded,
		RoleTitle:        strings.TrimSpace(request.RoleTitle),
		Location:         request.Location,
		RewardTierId:     request.RewardTierId,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repository.CreateTimeDetail(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateTimeDetail(ctx context.Context, request *domaincontracts.TimeNeedUpdateRequest) (*TimeNeed, error) {
	current, err := s.Repository.GetTimeDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, request.ActorId, TypeTime); err != nil {
		return nil, err
	}

	if request.StartDatetime != nil {
		current.StartDatetime = *request.StartDatetime
	}
	if request.EndDatetime != nil {
		current.EndDatetime = *request.EndDatetime
	}
	if !current.EndDatetime.After(current.StartDatetime) {
		return nil, appErrors.NewValidationError("end_datetime", "must be after start_datetime")
	}
	if request.VolunteersNeeded != nil {
		if *request.VolunteersNeeded <= 0 {
			return nil, appErrors.NewValidationError("volunteers_needed", "must be greater than zero")
		}
		current.VolunteersNeeded = *request.VolunteersNeeded
	}
	if request.RoleTitle != nil {
		current.RoleTitle = strings.TrimSpace(*request.RoleTitle)
	}
	if request.Location != nil {
		current.Location = *request.Location
	}
	if request.ClearRewardTier {
		current.RewardTierId = nil
	} else if request.RewardTierId != nil {
		current.RewardTierId = request.RewardTierId
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.UpdateTimeDetail(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) CreateItemDetail(ctx context.Context, request *domaincontracts.ItemNeedCreateRequest) (*ItemNeed, error) {
	if _, err := s.guardDetailWrite(ctx, request.NeedId, request.ActorId, TypeItem); err != nil {
		return nil, err
	}

	mode := ItemMode(request.Mode)
	if !mode.IsValid() {
		return nil, appErrors.NewValidationError("mode", "must be one of: donation, loan, either")
	}
	if strings.TrimSpace(request.ItemName) == "" {
		return nil, appErrors.NewValidationError("item_name", "is required")
	}
	if request.QuantityNeeded <= 0 {
		return nil, appErrors.NewValidationError("quantity_needed", "must be greater than zero")
	}

	now := time.Now()
	entity := &ItemNeed{
		Id:                   pkg.GenerateULIDObject(),
		NeedId:               request.NeedId,
		ItemName:             strings.TrimSpace(request.ItemName),
		QuantityNeeded:       request.QuantityNeeded,
		Mode:                 mode,
		Notes:                request.Notes,
		DonationRewardTierId: request.DonationRewardTierId,
		LoanRewardTierId:     request.LoanRewardTierId,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.Repository.CreateItemDetail(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) UpdateItemDetail(ctx context.Context, request *domaincontracts.ItemNeedUpdateRequest) (*ItemNeed, error) {
	current, err := s.Repository.GetItemDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, request.ActorId, TypeItem); err != nil {
		return nil, err
	}

	if request.ItemName != nil {
		if strings.TrimSpace(*request.ItemName) == "" {
			return nil, appErrors.NewValidationError("item_name", "is required")
		}
		current.ItemName = strings.TrimSpace(*request.ItemName)
	}
	if request.QuantityNeeded != nil {
		if *request.QuantityNeeded <= 0 {
			return nil, appErrors.NewValidationError("quantity_needed", "must be greater than zero")
		}
		current.QuantityNeeded = *request.QuantityNeeded
	}
	if request.Mode != nil {
		mode := ItemMode(*request.Mode)
		if !mode.IsValid() {
			return nil, appErrors.NewValidationError("mode", "must be one of: donation, loan, either")
		}
		current.Mode = mode
	}
	if request.Notes != nil {
		current.Notes = *request.Notes
	}
	if request.ClearDonationTier {
		current.DonationRewardTierId = nil
	} else if request.DonationRewardTierId != nil {
		current.DonationRewardTierId = request.DonationRewardTierId
	}
	if request.ClearLoanTier {
		current.LoanRewardTierId = nil
	} else if request.LoanRewardTierId != nil {
		current.LoanRewardTierId = request.LoanRewardTierId
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.UpdateItemDetail(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) DeleteMoneyDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	current, err := s.Repository.GetMoneyDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, actorID, TypeMoney); err != nil {
		return err
	}
	return s.Repository.DeleteMoneyDetail(ctx, detailID)
}

func (s *Service) DeleteTimeDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	current, err := s.Repository.GetTimeDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, actorID, TypeTime); err != nil {
		return err
	}
	return s.Repository.DeleteTimeDetail(ctx, detailID)
}

func (s *Service) DeleteItemDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	current, err := s.Repository.GetItemDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	if _, err := s.guardDetailWrite(ctx, current.NeedId, actorID, TypeItem); err != nil {
		return err
	}
	return s.Repository.DeleteItemDetail(ctx, detailID)
}

func (s *Service) GetMoneyDetailByNeedID(ctx context.Context, needID ulid.ULID) (*MoneyNeed, error) {
	return s.Repository.GetMoneyDetailByNeedID(ctx, needID)
}

func (s *Service) GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*TimeNeed, error) {
	return s.Repository.GetTimeDetailByNeedID(ctx, needID)
}

func (s *Service) GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*ItemNeed, error) {
	return s.Repository.GetItemDetailByNeedID(ctx, needID)
}

// guardDetailWrite loads the need, enforces ownership and the type-match
// invariant between a detail row and its parent need.
func (s *Service) guardDetailWrite(ctx context.Context, needID, actorID ulid.ULID, wantType Type) (*Need, error) {
	parent, err := s.Repository.GetByID(ctx, needID)
	if err != nil {
		return nil, err
	}
	if parent.NeedType != wantType {
		return nil, appErrors.NewValidationError("need_id", "detail type does not match the need's type")
	}
	if err := s.ensureOwner(actorID, parent); err != nil {
		return nil, err
	}
	return parent, nil
}

func (s *Service) ensureOwner(actorID ulid.ULID, obj shared.Ownable) error {
	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, obj) {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}
