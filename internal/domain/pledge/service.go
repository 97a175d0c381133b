package pledge

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type FundraiserGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
}

type NeedGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*need.Need, error)
	GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.TimeNeed, error)
	GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.ItemNeed, error)
}

type TierGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*reward.Tier, error)
}

type Service struct {
	Repository        Repository
	FundraiserService FundraiserGetter
	NeedService       NeedGetter
	RewardService     TierGetter
	Engine            *reward.Engine
}

func NewService(
	repository Repository,
	fundraiserService FundraiserGetter,
	needService NeedGetter,
	rewardService TierGetter,
	engine *reward.Engine,
) *Service {
	return &Service{
		Repository:        repository,
		FundraiserService: fundraiserService,
		NeedService:       needService,
		RewardService:     rewardService,
		Engine:            engine,
	}
}

// Create records a pledge with exactly one typed detail. The detail payload
// is validated before any row is written, so a rejected pledge leaves nothing
// behind. The initial status follows the fundraiser's approval policy, and the
// reward tier is assigned by the allocation rules for the detail type, never
// by the pledger.
func (s *Service) Create(ctx context.Context, request *domaincontracts.PledgeCreateRequest) (*Pledge, error) {
	detailType, err := detailTypeOf(request)
	if err != nil {
		return nil, err
	}
	if err := validateDetailPayload(request, detailType); err != nil {
		return nil, err
	}

	parent, err := s.FundraiserService.GetByID(ctx, request.FundraiserId)
	if err != nil {
		return nil, err
	}
	if !parent.IsOpen() {
		return nil, appErrors.NewConflictError("fundraiser is not open for pledges")
	}

	var targetNeed *need.Need
	if request.NeedId != nil {
		targetNeed, err = s.NeedService.GetByID(ctx, *request.NeedId)
		if err != nil {
			return nil, err
		}
		if targetNeed.FundraiserId != request.FundraiserId {
			return nil, appErrors.NewValidationError("need_id", "need does not belong to this fundraiser")
		}
		if string(targetNeed.NeedType) != string(detailType) {
			return nil, appErrors.NewValidationError("need_id", "pledge type does not match the need's type")
		}
	}

	status := StatusApproved
	if parent.RequireApproval {
		status = StatusPending
	}

	now := time.Now()
	entity := &Pledge{
		Id:                pkg.GenerateULIDObject(),
		FundraiserId:      request.FundraiserId,
		NeedId:            request.NeedId,
		SupporterId:       request.SupporterId,
		Status:            status,
		Comment:           request.Comment,
		Anonymous:         request.Anonymous,
		CreatedAt:         now,
		UpdatedAt:         now,
		FundraiserOwnerId: parent.OwnerId,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	switch detailType {
	case need.TypeMoney:
		if err := s.createMoneyDetail(ctx, entity, request.Money); err != nil {
			return nil, err
		}
	case need.TypeTime:
		if err := s.createTimeDetail(ctx, entity, targetNeed, request.Time); err != nil {
			return nil, err
		}
	case need.TypeItem:
		if err := s.createItemDetail(ctx, entity, targetNeed, request.Item); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Str("pledge_id", entity.Id.String()).
		Str("fundraiser_id", entity.FundraiserId.String()).
		Str("status", string(entity.Status)).
		Msg("pledge created")

	return entity, nil
}

func (s *Service) createMoneyDetail(ctx context.Context, entity *Pledge, payload *domaincontracts.MoneyPledgePayload) error {
	now := time.Now()
	detail := &MoneyPledge{
		Id:        pkg.GenerateULIDObject(),
		PledgeId:  entity.Id,
		Amount:    payload.Amount,
		Comment:   payload.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repository.CreateMoneyDetail(ctx, detail); err != nil {
		return err
	}

	tierID, err := s.Engine.RecomputeMoneyTier(ctx, entity.SupporterId, entity.FundraiserId)
	if err != nil {
		return err
	}
	entity.RewardTierId = tierID
	return nil
}

func (s *Service) createTimeDetail(ctx context.Context, entity *Pledge, targetNeed *need.Need, payload *domaincontracts.TimePledgePayload) error {
	now := time.Now()
	detail := &TimePledge{
		Id:             pkg.GenerateULIDObject(),
		PledgeId:       entity.Id,
		StartDatetime:  payload.StartDatetime,
		EndDatetime:    payload.EndDatetime,
		HoursCommitted: payload.HoursCommitted,
		Comment:        payload.Comment,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repository.CreateTimeDetail(ctx, detail); err != nil {
		return err
	}

	return s.applyTimeTier(ctx, entity, targetNeed)
}

func (s *Service) createItemDetail(ctx context.Context, entity *Pledge, targetNeed *need.Need, payload *domaincontracts.ItemPledgePayload) error {
	mode := ItemMode(payload.Mode)
	now := time.Now()
	detail := &ItemPledge{
		Id:        pkg.GenerateULIDObject(),
		PledgeId:  entity.Id,
		Quantity:  payload.Quantity,
		Mode:      mode,
		Comment:   payload.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repository.CreateItemDetail(ctx, detail); err != nil {
		return err
	}

	return s.applyItemTier(ctx, entity, targetNeed, string(mode))
}

// applyTimeTier fills a missing tier from the need's configured tier; it never
// replaces one already assigned.
func (s *Service) applyTimeTier(ctx context.Context, entity *Pledge, targetNeed *need.Need) error {
	if targetNeed == nil {
		return nil
	}
	detail, err := s.NeedService.GetTimeDetailByNeedID(ctx, targetNeed.Id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	resolved := reward.ResolveTimeTier(detail, entity.RewardTierId)
	if !ulidPtrEqual(resolved, entity.RewardTierId) {
		entity.RewardTierId = resolved
		entity.UpdatedAt = time.Now()
		return s.Repository.Update(ctx, entity)
	}
	return nil
}

// applyItemTier overwrites the tier with whatever the mode resolves to,
// including clearing it when the mode maps to no configured tier.
func (s *Service) applyItemTier(ctx context.Context, entity *Pledge, targetNeed *need.Need, pledgeMode string) error {
	if targetNeed == nil {
		return nil
	}
	detail, err := s.NeedService.GetItemDetailByNeedID(ctx, targetNeed.Id)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	resolved := reward.ResolveItemTier(pledgeMode, detail)
	if !ulidPtrEqual(resolved, entity.RewardTierId) {
		entity.RewardTierId = resolved
		entity.UpdatedAt = time.Now()
		return s.Repository.Update(ctx, entity)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, request *domaincontracts.PledgeUpdateRequest) (*Pledge, error) {
	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSupporter(request.ActorId, current); err != nil {
		return nil, err
	}

	if request.Comment != nil {
		current.Comment = *request.Comment
	}
	if request.Anonymous != nil {
		current.Anonymous = *request.Anonymous
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Transition moves a pledge to a new status. The actor's role is derived from
// identity: the fundraiser owner acts as owner, the supporter as supporter,
// anyone else is rejected before the status rules run.
func (s *Service) Transition(ctx context.Context, pledgeID ulid.ULID, target Status, actorID ulid.ULID) (*Pledge, error) {
	current, err := s.Repository.GetByID(ctx, pledgeID)
	if err != nil {
		return nil, err
	}

	var role ActorRole
	switch actorID {
	case current.FundraiserOwnerId:
		role = RoleOwner
	case current.SupporterId:
		role = RoleSupporter
	default:
		return nil, appErrors.ErrResourceNotOwned
	}

	if err := EnsureAllowedTransition(current.Status, target, role); err != nil {
		return nil, err
	}

	if err := s.Repository.UpdateStatus(ctx, pledgeID, target); err != nil {
		return nil, err
	}

	logger.Info().
		Str("pledge_id", pledgeID.String()).
		Str("from", string(current.Status)).
		Str("to", string(target)).
		Str("role", string(role)).
		Msg("pledge status changed")

	current.Status = target
	current.UpdatedAt = time.Now()
	return current, nil
}

// Delete removes a pledge and its detail. Only the supporter may delete, and
// only while the pledge is still pending; anything later must go through a
// cancellation instead.
func (s *Service) Delete(ctx context.Context, pledgeID, actorID ulid.ULID) error {
	current, err := s.Repository.GetByID(ctx, pledgeID)
	if err != nil {
		return err
	}
	if err := s.ensureSupporter(actorID, current); err != nil {
		return err
	}
	if current.Status != StatusPending {
		return appErrors.NewConflictError("only pending pledges can be deleted; cancel instead")
	}

	hadMoney := false
	if detail, err := s.Repository.GetMoneyDetailByPledgeID(ctx, pledgeID); err == nil && detail != nil {
		hadMoney = true
	} else if err != nil && !appErrors.IsNotFound(err) {
		return err
	}

	if err := s.Repository.Delete(ctx, pledgeID); err != nil {
		return err
	}

	// Removing a money pledge changes the supporter's total, so the earned
	// tier on their remaining pledges has to be recomputed.
	if hadMoney {
		if _, err := s.Engine.RecomputeMoneyTier(ctx, current.SupporterId, current.FundraiserId); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, pledgeID ulid.ULID) (*Pledge, error) {
	return s.Repository.GetByID(ctx, pledgeID)
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Pledge, int64, error) {
	return s.Repository.List(ctx, pagination)
}

func (s *Service) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Pledge, error) {
	return s.Repository.GetByFundraiserID(ctx, fundraiserID)
}

func (s *Service) GetBySupporterID(ctx context.Context, supporterID ulid.ULID) ([]*Pledge, error) {
	return s.Repository.GetBySupporterID(ctx, supporterID)
}

// ---------------------------------------------------------------------------
// Typed detail updates. Money mutations re-run the threshold recompute; time
// and item mutations re-resolve against the need's configuration.
// ---------------------------------------------------------------------------

func (s *Service) UpdateMoneyDetail(ctx context.Context, request *domaincontracts.MoneyPledgeUpdateRequest) (*MoneyPledge, error) {
	detail, err := s.Repository.GetMoneyDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	parent, err := s.Repository.GetByID(ctx, detail.PledgeId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSupporter(request.ActorId, parent); err != nil {
		return nil, err
	}

	if request.Amount != nil {
		if *request.Amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "must be greater than zero")
		}
		detail.Amount = *request.Amount
	}
	if request.Comment != nil {
		detail.Comment = *request.Comment
	}
	detail.UpdatedAt = time.Now()

	if err := s.Repository.UpdateMoneyDetail(ctx, detail); err != nil {
		return nil, err
	}

	if _, err := s.Engine.RecomputeMoneyTier(ctx, parent.SupporterId, parent.FundraiserId); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *Service) UpdateTimeDetail(ctx context.Context, request *domaincontracts.TimePledgeUpdateRequest) (*TimePledge, error) {
	detail, err := s.Repository.GetTimeDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	parent, err := s.Repository.GetByID(ctx, detail.PledgeId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSupporter(request.ActorId, parent); err != nil {
		return nil, err
	}

	if request.StartDatetime != nil {
		detail.StartDatetime = *request.StartDatetime
	}
	if request.EndDatetime != nil {
		detail.EndDatetime = *request.EndDatetime
	}
	if !detail.EndDatetime.After(detail.StartDatetime) {
		return nil, appErrors.NewValidationError("end_datetime", "must be after start_datetime")
	}
	if request.HoursCommitted != nil {
		if *request.HoursCommitted <= 0 {
			return nil, appErrors.NewValidationError("hours_committed", "must be greater than zero")
		}
		detail.HoursCommitted = *request.HoursCommitted
	}
	if request.Comment != nil {
		detail.Comment = *request.Comment
	}
	detail.UpdatedAt = time.Now()

	if err := s.Repository.UpdateTimeDetail(ctx, detail); err != nil {
		return nil, err
	}

	if parent.NeedId != nil {
		targetNeed, err := s.NeedService.GetByID(ctx, *parent.NeedId)
		if err != nil {
			return nil, err
		}
		if err := s.applyTimeTier(ctx, parent, targetNeed); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *Service) UpdateItemDetail(ctx context.Context, request *domaincontracts.ItemPledgeUpdateRequest) (*ItemPledge, error) {
	detail, err := s.Repository.GetItemDetailByID(ctx, request.Id)
	if err != nil {
		return nil, err
	}
	parent, err := s.Repository.GetByID(ctx, detail.PledgeId)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSupporter(request.ActorId, parent); err != nil {
		return nil, err
	}

	if request.Quantity != nil {
		if *request.Quantity <= 0 {
			return nil, appErrors.NewValidationError("quantity", "must be greater than zero")
		}
		detail.Quantity = *request.Quantity
	}
	if request.Mode != nil {
		mode := ItemMode(*request.Mode)
		if !mode.IsValid() {
			return nil, appErrors.NewValidationError("mode", "must be one of: donation, loan")
		}
		detail.Mode = mode
	}
	if request.Comment != nil {
		detail.Comment = *request.Comment
	}
	detail.UpdatedAt = time.Now()

	if err := s.Repository.UpdateItemDetail(ctx, detail); err != nil {
		return nil, err
	}

	if parent.NeedId != nil {
		targetNeed, err := s.NeedService.GetByID(ctx, *parent.NeedId)
		if err != nil {
			return nil, err
		}
		if err := s.applyItemTier(ctx, parent, targetNeed, string(detail.Mode)); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

func (s *Service) DeleteMoneyDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	detail, err := s.Repository.GetMoneyDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	parent, err := s.guardDetailDelete(ctx, detail.PledgeId, actorID)
	if err != nil {
		return err
	}
	if err := s.Repository.DeleteMoneyDetail(ctx, detailID); err != nil {
		return err
	}
	_, err = s.Engine.RecomputeMoneyTier(ctx, parent.SupporterId, parent.FundraiserId)
	return err
}

func (s *Service) DeleteTimeDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	detail, err := s.Repository.GetTimeDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	if _, err := s.guardDetailDelete(ctx, detail.PledgeId, actorID); err != nil {
		return err
	}
	return s.Repository.DeleteTimeDetail(ctx, detailID)
}

func (s *Service) DeleteItemDetail(ctx context.Context, detailID, actorID ulid.ULID) error {
	detail, err := s.Repository.GetItemDetailByID(ctx, detailID)
	if err != nil {
		return err
	}
	if _, err := s.guardDetailDelete(ctx, detail.PledgeId, actorID); err != nil {
		return err
	}
	return s.Repository.DeleteItemDetail(ctx, detailID)
}

// DisplayRewardName derives the reward label a supporter should see for a
// pledge. Time pledges show the need's configured tier regardless of what is
// stored; item pledges re-derive from the pledged mode; money pledges and
// free-floating pledges show the stored assignment.
func (s *Service) DisplayRewardName(ctx context.Context, p *Pledge) (string, error) {
	if p.NeedId != nil {
		targetNeed, err := s.NeedService.GetByID(ctx, *p.NeedId)
		if err != nil {
			return "", err
		}

		switch targetNeed.NeedType {
		case need.TypeTime:
			detail, err := s.NeedService.GetTimeDetailByNeedID(ctx, targetNeed.Id)
			if err != nil {
				if appErrors.IsNotFound(err) {
					return "", nil
				}
				return "", err
			}
			return s.tierName(ctx, detail.RewardTierId)

		case need.TypeItem:
			needDetail, err := s.NeedService.GetItemDetailByNeedID(ctx, targetNeed.Id)
			if err != nil {
				if appErrors.IsNotFound(err) {
					return "", nil
				}
				return "", err
			}
			mode := ""
			if pledgeDetail, err := s.Repository.GetItemDetailByPledgeID(ctx, p.Id); err == nil {
				mode = string(pledgeDetail.Mode)
			} else if !appErrors.IsNotFound(err) {
				return "", err
			}
			return s.tierName(ctx, reward.ResolveItemTier(mode, needDetail))
		}
	}

	return s.tierName(ctx, p.RewardTierId)
}

func (s *Service) tierName(ctx context.Context, tierID *ulid.ULID) (string, error) {
	if tierID == nil {
		return "", nil
	}
	tier, err := s.RewardService.GetByID(ctx, *tierID)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return tier.Name, nil
}

func (s *Service) guardDetailDelete(ctx context.Context, pledgeID, actorID ulid.ULID) (*Pledge, error) {
	parent, err := s.Repository.GetByID(ctx, pledgeID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSupporter(actorID, parent); err != nil {
		return nil, err
	}
	if parent.Status != StatusPending {
		return nil, appErrors.NewConflictError("details can only be removed while the pledge is pending")
	}
	return parent, nil
}

func (s *Service) ensureSupporter(actorID ulid.ULID, p *Pledge) error {
	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, p) {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}

func detailTypeOf(request *domaincontracts.PledgeCreateRequest) (need.Type, error) {
	count := 0
	var detailType need.Type
	if request.Money != nil {
		count++
		detailType = need.TypeMoney
	}
	if request.Time != nil {
		count++
		detailType = need.TypeTime
	}
	if request.Item != nil {
		count++
		detailType = need.TypeItem
	}
	if count != 1 {
		return "", appErrors.NewValidationError("detail", "exactly one of money, time or item detail is required")
	}
	return detailType, nil
}

// validateDetailPayload rejects a bad typed payload before the pledge row
// exists; pledge and detail are created or refused together.
func validateDetailPayload(request *domaincontracts.PledgeCreateRequest, detailType need.Type) error {
	switch detailType {
	case need.TypeMoney:
		if request.Money.Amount <= 0 {
			return appErrors.NewValidationError("amount", "must be greater than zero")
		}
	case need.TypeTime:
		if !request.Time.EndDatetime.After(request.Time.StartDatetime) {
			return appErrors.NewValidationError("end_datetime", "must be after start_datetime")
		}
		if request.Time.HoursCommitted <= 0 {
			return appErrors.NewValidationError("hours_committed", "must be greater than zero")
		}
	case need.TypeItem:
		if request.Item.Mode != "" && !ItemMode(request.Item.Mode).IsValid() {
			return appErrors.NewValidationError("mode", "must be one of: donation, loan")
		}
		if request.Item.Quantity <= 0 {
			return appErrors.NewValidationError("quantity", "must be greater than zero")
		}
	}
	return nil
}

func ulidPtrEqual(a, b *ulid.ULID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
