package template

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

// FundraiserStore is the slice of the fundraiser persistence the template
// layer needs: the target row plus the emptiness checks that gate application.
type FundraiserStore interface {
	GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
	CountNeeds(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
	CountRewardTiers(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
}

type UserGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*user.User, error)
}

type Service struct {
	Repository      Repository
	FundraiserStore FundraiserStore
	UserService     UserGetter
}

func NewService(repository Repository, fundraiserStore FundraiserStore, userService UserGetter) *Service {
	return &Service{Repository: repository, FundraiserStore: fundraiserStore, UserService: userService}
}

// Create adds a template. Collection writes are staff-only.
func (s *Service) Create(ctx context.Context, request *domaincontracts.TemplateCreateRequest) (*FundraiserTemplate, error) {
	actor, err := s.actor(ctx, request.ActorId)
	if err != nil {
		return nil, err
	}
	if !shared.CanAdministerTemplates(actor) {
		return nil, appErrors.NewPermissionError("template administration requires staff privilege")
	}
	if strings.TrimSpace(request.Name) == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}

	now := time.Now()
	entity := &FundraiserTemplate{
		Id:            pkg.GenerateULIDObject(),
		OwnerId:       request.ActorId,
		Name:          strings.TrimSpace(request.Name),
		Description:   request.Description,
		IsActive:      active,
		Title:         request.Title,
		Goal:          request.Goal,
		ImageURL:      request.ImageURL,
		Location:      request.Location,
		EnableRewards: request.EnableRewards,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) Update(ctx context.Context, request *domaincontracts.TemplateUpdateRequest) (*FundraiserTemplate, error) {
	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTemplateWrite(ctx, request.ActorId, current); err != nil {
		return nil, err
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
	if request.IsActive != nil {
		current.IsActive = *request.IsActive
	}
	if request.Title != nil {
		current.Title = *request.Title
	}
	if request.Goal != nil {
		current.Goal = *request.Goal
	}
	if request.ImageURL != nil {
		current.ImageURL = *request.ImageURL
	}
	if request.Location != nil {
		current.Location = *request.Location
	}
	if request.EnableRewards != nil {
		current.EnableRewards = *request.EnableRewards
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, templateID, actorID ulid.ULID) error {
	current, err := s.Repository.GetByID(ctx, templateID)
	if err != nil {
		return err
	}
	if err := s.ensureTemplateWrite(ctx, actorID, current); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, templateID)
}

func (s *Service) GetByID(ctx context.Context, templateID ulid.ULID) (*FundraiserTemplate, error) {
	return s.Repository.GetByID(ctx, templateID)
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*FundraiserTemplate, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) CreateNeed(ctx context.Context, request *domaincontracts.TemplateNeedCreateRequest) (*TemplateNeed, error) {
	parent, err := s.Repository.GetByID(ctx, request.TemplateId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTemplateWrite(ctx, request.ActorId, parent); err != nil {
		return nil, err
	}

	if !need.Type(request.NeedType).IsValid() {
		return nil, appErrors.NewValidationError("need_type", "must be one of: money, time, item")
	}
	if strings.TrimSpace(request.Title) == "" {
		return nil, appErrors.NewValidationError("title", "is required")
	}

	now := time.Now()
	entity := &TemplateNeed{
		Id:                    pkg.GenerateULIDObject(),
		TemplateId:            request.TemplateId,
		NeedType:              request.NeedType,
		Title:                 strings.TrimSpace(request.Title),
		Description:           request.Description,
		Priority:              request.Priority,
		SortOrder:             request.SortOrder,
		TargetAmount:          request.TargetAmount,
		StartDatetime:         request.StartDatetime,
		EndDatetime:           request.EndDatetime,
		VolunteersNeeded:      request.VolunteersNeeded,
		RoleTitle:             request.RoleTitle,
		Location:              request.Location,
		RewardTierRef:         request.RewardTierRef,
		ItemName:              request.ItemName,
		QuantityNeeded:        request.QuantityNeeded,
		Mode:                  request.Mode,
		Notes:                 request.Notes,
		DonationRewardTierRef: request.DonationRewardTierRef,
		LoanRewardTierRef:     request.LoanRewardTierRef,
		CreatedAt:             now,
		UpdatedAt:             now,
		TemplateOwnerId:       parent.OwnerId,
	}
	if err := s.Repository.CreateNeed(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) DeleteNeed(ctx context.Context, needID, actorID ulid.ULID) error {
	current, err := s.Repository.GetNeedByID(ctx, needID)
	if err != nil {
		return err
	}
	if err := s.ensureTemplateWrite(ctx, actorID, current); err != nil {
		return err
	}
	return s.Repository.DeleteNeed(ctx, needID)
}

func (s *Service) CreateTier(ctx context.Context, request *domaincontracts.TemplateRewardTierCreateRequest) (*TemplateRewardTier, error) {
	parent, err := s.Repository.GetByID(ctx, request.TemplateId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTemplateWrite(ctx, request.ActorId, parent); err != nil {
		return nil, err
	}

	if !reward.Type(request.RewardType).IsValid() {
		return nil, appErrors.NewValidationError("reward_type", "must be one of: money, time, item")
	}
	if strings.TrimSpace(request.Name) == "" {
		return nil, appErrors.NewValidationError("name", "is required")
	}

	now := time.Now()
	entity := &TemplateRewardTier{
		Id:                       pkg.GenerateULIDObject(),
		TemplateId:               request.TemplateId,
		RewardType:               request.RewardType,
		Name:                     strings.TrimSpace(request.Name),
		Description:              request.Description,
		MinimumContributionValue: request.MinimumContributionValue,
		ImageURL:                 request.ImageURL,
		SortOrder:                request.SortOrder,
		MaxBackers:               request.MaxBackers,
		CreatedAt:                now,
		UpdatedAt:                now,
		TemplateOwnerId:          parent.OwnerId,
	}
	if err := s.Repository.CreateTier(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (s *Service) DeleteTier(ctx context.Context, tierID, actorID ulid.ULID) error {
	current, err := s.Repository.GetTierByID(ctx, tierID)
	if err != nil {
		return err
	}
	if err := s.ensureTemplateWrite(ctx, actorID, current); err != nil {
		return err
	}
	return s.Repository.DeleteTier(ctx, tierID)
}

// Apply materializes a template onto a fundraiser. Preconditions are
// re-checked on every call; the clone itself runs in one transaction so a
// failure leaves no partial rows behind.
func (s *Service) Apply(ctx context.Context, fundraiserID, templateID, actorID ulid.ULID) (*fundraiser.Fundraiser, error) {
	target, err := s.FundraiserStore.GetByID(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, target) {
		return nil, appErrors.ErrResourceNotOwned
	}

	needCount, err := s.FundraiserStore.CountNeeds(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	tierCount, err := s.FundraiserStore.CountRewardTiers(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	if needCount > 0 || tierCount > 0 {
		return nil, appErrors.NewConflictError("templates can only be applied to a fundraiser with no needs and no reward tiers")
	}

	tpl, err := s.Repository.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if !tpl.IsActive {
		return nil, appErrors.NewConflictError("template is not active")
	}

	templateNeeds, err := s.Repository.GetNeedsByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	templateTiers, err := s.Repository.GetTiersByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	materialization, err := BuildMaterialization(tpl, templateNeeds, templateTiers, target)
	if err != nil {
		return nil, err
	}
	if err := s.Repository.Apply(ctx, materialization); err != nil {
		return nil, err
	}

	logger.Info().
		Str("fundraiser_id", fundraiserID.String()).
		Str("template_id", templateID.String()).
		Int("needs", len(materialization.Needs)).
		Int("reward_tiers", len(materialization.Tiers)).
		Msg("template applied")

	return target, nil
}

func (s *Service) ensureTemplateWrite(ctx context.Context, actorID ulid.ULID, obj shared.Ownable) error {
	actor, err := s.actor(ctx, actorID)
	if err != nil {
		return err
	}
	if !shared.CanModifyTemplate(actor, obj) {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}

// actor resolves the acting identity, picking up the staff flag from the user
// record.
func (s *Service) actor(ctx context.Context, actorID ulid.ULID) (shared.Actor, error) {
	if pkg.IsEmptyULID(actorID) {
		return shared.Actor{}, nil
	}
	u, err := s.UserService.GetByID(ctx, actorID)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return shared.Actor{ID: actorID, Authenticated: false}, nil
		}
		return shared.Actor{}, err
	}
	return shared.Actor{ID: actorID, Authenticated: true, Staff: u.IsStaff}, nil
}
