package report

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type FundraiserGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
}

type NeedReader interface {
	GetByID(ctx context.Context, id ulid.ULID) (*need.Need, error)
	GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*need.Need, error)
	GetMoneyDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.MoneyNeed, error)
	GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.TimeNeed, error)
	GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.ItemNeed, error)
}

type PledgeReader interface {
	GetBySupporterID(ctx context.Context, supporterID ulid.ULID) ([]*pledge.Pledge, error)
	GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*pledge.Pledge, error)
	DisplayRewardName(ctx context.Context, p *pledge.Pledge) (string, error)
}

type Service struct {
	Repository        Repository
	FundraiserService FundraiserGetter
	NeedService       NeedReader
	PledgeService     PledgeReader
}

func NewService(repository Repository, fundraiserService FundraiserGetter, needService NeedReader, pledgeService PledgeReader) *Service {
	return &Service{
		Repository:        repository,
		FundraiserService: fundraiserService,
		NeedService:       needService,
		PledgeService:     pledgeService,
	}
}

func (s *Service) FundraiserSummary(ctx context.Context, fundraiserID ulid.ULID) (*FundraiserSummary, error) {
	f, err := s.FundraiserService.GetByID(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}

	total, err := s.Repository.SumMoneyByFundraiser(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	pledgeCount, err := s.Repository.CountPledgesByFundraiser(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	supporterCount, err := s.Repository.CountSupportersByFundraiser(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}

	needs, err := s.NeedService.GetByFundraiserID(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	progress := make([]NeedProgress, 0, len(needs))
	for _, n := range needs {
		p, err := s.needProgress(ctx, n)
		if err != nil {
			return nil, err
		}
		progress = append(progress, *p)
	}

	return &FundraiserSummary{
		FundraiserId:      f.Id,
		Title:             f.Title,
		Goal:              f.Goal,
		TotalPledgedMoney: total,
		PledgeCount:       pledgeCount,
		SupporterCount:    supporterCount,
		Needs:             progress,
	}, nil
}

func (s *Service) NeedProgress(ctx context.Context, needID ulid.ULID) (*NeedProgress, error) {
	n, err := s.NeedService.GetByID(ctx, needID)
	if err != nil {
		return nil, err
	}
	return s.needProgress(ctx, n)
}

func (s *Service) needProgress(ctx context.Context, n *need.Need) (*NeedProgress, error) {
	out := &NeedProgress{
		NeedId:   n.Id,
		Title:    n.Title,
		NeedType: string(n.NeedType),
		Status:   string(n.Status),
	}

	switch n.NeedType {
	case need.TypeMoney:
		if detail, err := s.NeedService.GetMoneyDetailByNeedID(ctx, n.Id); err == nil {
			out.TargetAmount = detail.TargetAmount
		} else if !appErrors.IsNotFound(err) {
			return nil, err
		}
		pledged, err := s.Repository.SumMoneyByNeed(ctx, n.Id)
		if err != nil {
			return nil, err
		}
		out.PledgedAmount = pledged

	case need.TypeTime:
		if detail, err := s.NeedService.GetTimeDetailByNeedID(ctx, n.Id); err == nil {
			out.VolunteersNeeded = detail.VolunteersNeeded
		} else if !appErrors.IsNotFound(err) {
			return nil, err
		}
		volunteers, err := s.Repository.CountVolunteersByNeed(ctx, n.Id)
		if err != nil {
			return nil, err
		}
		hours, err := s.Repository.SumHoursByNeed(ctx, n.Id)
		if err != nil {
			return nil, err
		}
		out.VolunteerCount = volunteers
		out.HoursCommitted = hours

	case need.TypeItem:
		if detail, err := s.NeedService.GetItemDetailByNeedID(ctx, n.Id); err == nil {
			out.QuantityNeeded = detail.QuantityNeeded
		} else if !appErrors.IsNotFound(err) {
			return nil, err
		}
		quantity, err := s.Repository.SumQuantityByNeed(ctx, n.Id)
		if err != nil {
			return nil, err
		}
		out.QuantityPledged = quantity
	}

	return out, nil
}

// MyPledges lists the supporter's pledges with the read-time reward
// derivation, which may disagree with the stored tier.
func (s *Service) MyPledges(ctx context.Context, supporterID ulid.ULID) ([]*PledgeView, error) {
	pledges, err := s.PledgeService.GetBySupporterID(ctx, supporterID)
	if err != nil {
		return nil, err
	}
	return s.pledgeViews(ctx, pledges)
}

// FundraiserPledges lists a fundraiser's pledges for its owner.
func (s *Service) FundraiserPledges(ctx context.Context, fundraiserID, actorID ulid.ULID) ([]*PledgeView, error) {
	f, err := s.FundraiserService.GetByID(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	actor := shared.Actor{ID: actorID, Authenticated: !pkg.IsEmptyULID(actorID)}
	if !shared.CanModify(actor, f) {
		return nil, appErrors.ErrResourceNotOwned
	}

	pledges, err := s.PledgeService.GetByFundraiserID(ctx, fundraiserID)
	if err != nil {
		return nil, err
	}
	return s.pledgeViews(ctx, pledges)
}

// MyRewards lists the tiers the supporter holds, read from the persisted
// assignments rather than the display derivation.
func (s *Service) MyRewards(ctx context.Context, supporterID ulid.ULID) ([]*EarnedReward, error) {
	return s.Repository.GetEarnedRewards(ctx, supporterID)
}

func (s *Service) pledgeViews(ctx context.Context, pledges []*pledge.Pledge) ([]*PledgeView, error) {
	views := make([]*PledgeView, 0, len(pledges))
	for _, p := range pledges {
		name, err := s.PledgeService.DisplayRewardName(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, &PledgeView{
			PledgeId:       p.Id,
			FundraiserId:   p.FundraiserId,
			NeedId:         p.NeedId,
			Status:         string(p.Status),
			Comment:        p.Comment,
			Anonymous:      p.Anonymous,
			RewardTierId:   p.RewardTierId,
			RewardTierName: name,
		})
	}
	return views, nil
}
