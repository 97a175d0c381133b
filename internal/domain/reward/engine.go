package reward

import (
	"bytes"
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
)

// MoneyTierStore is the transactional slice of the persistence layer the
// engine needs: it must read the supporter's money-pledge total and write the
// resulting tier onto their pledges inside a single transaction, so that two
// concurrent pledges cannot both compute a tier from a stale total.
type MoneyTierStore interface {
	RecomputeMoneyTier(ctx context.Context, supporterID, fundraiserID ulid.ULID) (*ulid.ULID, error)
}

// Engine recomputes earned reward tiers. It is invoked explicitly by the
// pledge write path after every money-detail mutation, never from a save hook.
type Engine struct {
	Store MoneyTierStore
}

func NewEngine(store MoneyTierStore) *Engine {
	return &Engine{Store: store}
}

// RecomputeMoneyTier recalculates the total money this supporter has pledged
// to this fundraiser and overwrites the reward tier on all of their money
// pledges there. Pledges of every status count toward the total. Idempotent.
func (e *Engine) RecomputeMoneyTier(ctx context.Context, supporterID, fundraiserID ulid.ULID) (*ulid.ULID, error) {
	tierID, err := e.Store.RecomputeMoneyTier(ctx, supporterID, fundraiserID)
	if err != nil {
		return nil, err
	}

	event := logger.Debug().
		Str("supporter_id", supporterID.String()).
		Str("fundraiser_id", fundraiserID.String())
	if tierID != nil {
		event = event.Str("reward_tier_id", tierID.String())
	}
	event.Msg("money reward tier recomputed")

	return tierID, nil
}

// SelectMoneyTier picks the highest qualifying money tier for a pledged
// total: tiers with a threshold at or below the total, highest threshold
// first, higher id breaking ties. Returns nil when nothing qualifies.
func SelectMoneyTier(total float64, tiers []*Tier) *Tier {
	var best *Tier
	for _, tier := range tiers {
		if tier.RewardType != TypeMoney || tier.MinimumContributionValue == nil {
			continue
		}
		if *tier.MinimumContributionValue > total {
			continue
		}
		if best == nil {
			best = tier
			continue
		}
		if *tier.MinimumContributionValue > *best.MinimumContributionValue {
			best = tier
			continue
		}
		if *tier.MinimumContributionValue == *best.MinimumContributionValue &&
			bytes.Compare(tier.Id[:], best.Id[:]) > 0 {
			best = tier
		}
	}
	return best
}

// ResolveTimeTier returns the tier a time pledge should receive. The
// configured tier only fills a missing assignment; an existing tier on the
// pledge is never overwritten (unlike the money and item paths).
func ResolveTimeTier(detail *need.TimeNeed, currentTier *ulid.ULID) *ulid.ULID {
	if detail == nil || detail.RewardTierId == nil {
		return currentTier
	}
	if currentTier != nil {
		return currentTier
	}
	return detail.RewardTierId
}

// ResolveItemTier returns the tier an item pledge earns for the given mode,
// falling back to the need's configured mode when the pledge has none. A
// resolved tier overwrites whatever the pledge held before.
func ResolveItemTier(pledgeMode string, detail *need.ItemNeed) *ulid.ULID {
	if detail == nil {
		return nil
	}
	mode := pledgeMode
	if mode == "" {
		mode = string(detail.Mode)
	}
	switch mode {
	case "donation":
		return detail.DonationRewardTierId
	case "loan":
		return detail.LoanRewardTierId
	}
	return nil
}
