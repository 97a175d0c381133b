package reward_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
)

func floatPtr(v float64) *float64 { return &v }

func ulidPtr(id ulid.ULID) *ulid.ULID { return &id }

func moneyTier(min float64) *reward.Tier {
	return &reward.Tier{
		Id:                       ulid.Make(),
		RewardType:               reward.TypeMoney,
		Name:                     "tier",
		MinimumContributionValue: floatPtr(min),
	}
}

func TestSelectMoneyTier(t *testing.T) {
	t.Parallel()

	bronze := moneyTier(10)
	silver := moneyTier(50)
	gold := moneyTier(100)
	tiers := []*reward.Tier{gold, bronze, silver}

	tests := []struct {
		name  string
		total float64
		want  *reward.Tier
	}{
		{name: "below all thresholds", total: 5, want: nil},
		{name: "exactly at lowest", total: 10, want: bronze},
		{name: "between tiers picks highest qualifying", total: 75, want: silver},
		{name: "at top threshold", total: 100, want: gold},
		{name: "above everything", total: 1000, want: gold},
		{name: "zero total", total: 0, want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := reward.SelectMoneyTier(tt.total, tiers)
			if got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSelectMoneyTierIgnoresNonMoneyAndUnthresholded(t *testing.T) {
	t.Parallel()

	timeTier := &reward.Tier{
		Id:                       ulid.Make(),
		RewardType:               reward.TypeTime,
		MinimumContributionValue: floatPtr(1),
	}
	noMinimum := &reward.Tier{
		Id:         ulid.Make(),
		RewardType: reward.TypeMoney,
	}

	if got := reward.SelectMoneyTier(500, []*reward.Tier{timeTier, noMinimum}); got != nil {
		t.Fatalf("expected no tier, got %v", got)
	}
}

func TestSelectMoneyTierIgnoresMaxBackers(t *testing.T) {
	t.Parallel()

	// A tier already at its advertised capacity is still handed out; the
	// limit is informational and never consulted during allocation.
	capacity := uint(1)
	full := moneyTier(50)
	full.MaxBackers = &capacity
	open := moneyTier(10)

	if got := reward.SelectMoneyTier(80, []*reward.Tier{open, full}); got != full {
		t.Fatalf("expected the capped tier selected regardless of max backers, got %v", got)
	}
}

func TestSelectMoneyTierBreaksTiesByHigherId(t *testing.T) {
	t.Parallel()

	a := moneyTier(50)
	b := moneyTier(50)

	// ULIDs are lexicographically ordered byte strings; the higher one wins.
	higher, lower := a, b
	for i := range a.Id {
		if a.Id[i] != b.Id[i] {
			if a.Id[i] < b.Id[i] {
				higher, lower = b, a
			}
			break
		}
	}

	got := reward.SelectMoneyTier(60, []*reward.Tier{lower, higher})
	if got != higher {
		t.Fatalf("expected the tier with the higher id to win the tie")
	}
	got = reward.SelectMoneyTier(60, []*reward.Tier{higher, lower})
	if got != higher {
		t.Fatalf("tie-break must not depend on input order")
	}
}

func TestTierNormalizeClearsMinimumForNonMoney(t *testing.T) {
	t.Parallel()

	tier := &reward.Tier{RewardType: reward.TypeItem, MinimumContributionValue: floatPtr(25)}
	tier.Normalize()
	if tier.MinimumContributionValue != nil {
		t.Fatalf("expected minimum cleared for item tier")
	}

	money := &reward.Tier{RewardType: reward.TypeMoney, MinimumContributionValue: floatPtr(25)}
	money.Normalize()
	if money.MinimumContributionValue == nil || *money.MinimumContributionValue != 25 {
		t.Fatalf("expected minimum kept for money tier")
	}
}

func TestResolveTimeTierFillsButNeverOverwrites(t *testing.T) {
	t.Parallel()

	configured := ulid.Make()
	existing := ulid.Make()
	detail := &need.TimeNeed{RewardTierId: ulidPtr(configured)}

	if got := reward.ResolveTimeTier(detail, nil); got == nil || *got != configured {
		t.Fatalf("expected configured tier to fill a missing assignment")
	}
	if got := reward.ResolveTimeTier(detail, ulidPtr(existing)); got == nil || *got != existing {
		t.Fatalf("expected existing assignment kept, got %v", got)
	}
	if got := reward.ResolveTimeTier(nil, ulidPtr(existing)); got == nil || *got != existing {
		t.Fatalf("expected existing assignment kept when the need has no detail")
	}
	if got := reward.ResolveTimeTier(&need.TimeNeed{}, nil); got != nil {
		t.Fatalf("expected nil when nothing is configured")
	}
}

func TestResolveItemTier(t *testing.T) {
	t.Parallel()

	donationTier := ulid.Make()
	loanTier := ulid.Make()
	detail := &need.ItemNeed{
		Mode:                 need.ItemModeEither,
		DonationRewardTierId: ulidPtr(donationTier),
		LoanRewardTierId:     ulidPtr(loanTier),
	}

	tests := []struct {
		name       string
		pledgeMode string
		detail     *need.ItemNeed
		want       *ulid.ULID
	}{
		{name: "donation mode gets donation tier", pledgeMode: "donation", detail: detail, want: ulidPtr(donationTier)},
		{name: "loan mode gets loan tier not donation", pledgeMode: "loan", detail: detail, want: ulidPtr(loanTier)},
		{
			name:       "missing mode falls back to the need's mode",
			pledgeMode: "",
			detail: &need.ItemNeed{
				Mode:                 need.ItemModeDonation,
				DonationRewardTierId: ulidPtr(donationTier),
			},
			want: ulidPtr(donationTier),
		},
		{name: "either resolves to no tier", pledgeMode: "", detail: detail, want: nil},
		{name: "nil detail", pledgeMode: "donation", detail: nil, want: nil},
		{
			name:       "mode with no configured tier clears",
			pledgeMode: "loan",
			detail:     &need.ItemNeed{Mode: need.ItemModeLoan, DonationRewardTierId: ulidPtr(donationTier)},
			want:       nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := reward.ResolveItemTier(tt.pledgeMode, tt.detail)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

type fakeMoneyTierStore struct {
	recomputeFn func(supporterID, fundraiserID ulid.ULID) (*ulid.ULID, error)
	calls       int
}

func (f *fakeMoneyTierStore) RecomputeMoneyTier(_ context.Context, supporterID, fundraiserID ulid.ULID) (*ulid.ULID, error) {
	f.calls++
	if f.recomputeFn != nil {
		return f.recomputeFn(supporterID, fundraiserID)
	}
	return nil, nil
}

func TestEngineRecomputeIsIdempotent(t *testing.T) {
	t.Parallel()

	tierID := ulid.Make()
	store := &fakeMoneyTierStore{
		recomputeFn: func(_, _ ulid.ULID) (*ulid.ULID, error) {
			return ulidPtr(tierID), nil
		},
	}
	engine := reward.NewEngine(store)

	ctx := context.Background()
	supporterID := ulid.Make()
	fundraiserID := ulid.Make()

	first, err := engine.RecomputeMoneyTier(ctx, supporterID, fundraiserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.RecomputeMoneyTier(ctx, supporterID, fundraiserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || second == nil || *first != *second {
		t.Fatalf("expected the same tier on repeated recompute, got %v then %v", first, second)
	}
	if store.calls != 2 {
		t.Fatalf("expected 2 store calls, got %d", store.calls)
	}
}
