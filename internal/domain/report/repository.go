package report

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// Repository holds the aggregate queries reports are built from. Money sums
// carry no status filter on purpose: declined and cancelled pledges still
// count, matching the allocation engine's view of the totals.
type Repository interface {
	SumMoneyByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (float64, error)
	CountPledgesByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
	CountSupportersByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (int64, error)

	SumMoneyByNeed(ctx context.Context, needID ulid.ULID) (float64, error)
	SumHoursByNeed(ctx context.Context, needID ulid.ULID) (float64, error)
	CountVolunteersByNeed(ctx context.Context, needID ulid.ULID) (int64, error)
	SumQuantityByNeed(ctx context.Context, needID ulid.ULID) (int64, error)

	GetEarnedRewards(ctx context.Context, supporterID ulid.ULID) ([]*EarnedReward, error)
}
