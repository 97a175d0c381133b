package reward_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type fakeTierRepository struct {
	createFn  func(ctx context.Context, t *reward.Tier) error
	updateFn  func(ctx context.Context, t *reward.Tier) error
	getByIDFn func(ctx context.Context, id ulid.ULID) (*reward.Tier, error)
}

func (f *fakeTierRepository) Create(ctx context.Context, t *reward.Tier) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTierRepository) Update(ctx context.Context, t *reward.Tier) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, t)
	}
	return nil
}

func (f *fakeTierRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeTierRepository) GetByID(ctx context.Context, id ulid.ULID) (*reward.Tier, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrRewardTierNotFound
}

func (f *fakeTierRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*reward.Tier, int64, error) {
	return nil, 0, nil
}

func (f *fakeTierRepository) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*reward.Tier, error) {
	return nil, nil
}

type fakeFundraiserGetter struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
}

func (f *fakeFundraiserGetter) GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrFundraiserNotFound
}

func ownedFundraiser(ownerID ulid.ULID) *fakeFundraiserGetter {
	return &fakeFundraiserGetter{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
			return &fundraiser.Fundraiser{Id: id, OwnerId: ownerID}, nil
		},
	}
}

func TestServiceCreateValidations(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	ctx := context.Background()

	tests := []struct {
		name    string
		request *domaincontracts.RewardTierCreateRequest
	}{
		{
			name:    "unknown reward type",
			request: &domaincontracts.RewardTierCreateRequest{ActorId: ownerID, RewardType: "points", Name: "Badge"},
		},
		{
			name:    "blank name",
			request: &domaincontracts.RewardTierCreateRequest{ActorId: ownerID, RewardType: "money", Name: "  "},
		},
		{
			name: "negative threshold",
			request: &domaincontracts.RewardTierCreateRequest{
				ActorId:                  ownerID,
				RewardType:               "money",
				Name:                     "Badge",
				MinimumContributionValue: floatPtr(-5),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := reward.NewService(&fakeTierRepository{}, ownedFundraiser(ownerID))
			_, err := svc.Create(ctx, tt.request)
			appErr, _ := appErrors.AsAppError(err)
			if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	t.Run("only the fundraiser owner may create tiers", func(t *testing.T) {
		svc := reward.NewService(&fakeTierRepository{}, ownedFundraiser(ownerID))
		_, err := svc.Create(ctx, &domaincontracts.RewardTierCreateRequest{
			ActorId:    ulid.Make(),
			RewardType: "money",
			Name:       "Badge",
		})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != appErrors.ErrResourceNotOwned.Code {
			t.Fatalf("expected RESOURCE_NOT_OWNED, got %v", err)
		}
	})
}

func TestServiceCreateNormalizesThreshold(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	svc := reward.NewService(&fakeTierRepository{}, ownedFundraiser(ownerID))

	entity, err := svc.Create(context.Background(), &domaincontracts.RewardTierCreateRequest{
		ActorId:                  ownerID,
		RewardType:               "item",
		Name:                     "Thank-you card",
		MinimumContributionValue: floatPtr(25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.MinimumContributionValue != nil {
		t.Fatalf("non-money tiers must not keep a contribution threshold")
	}

	money, err := svc.Create(context.Background(), &domaincontracts.RewardTierCreateRequest{
		ActorId:                  ownerID,
		RewardType:               "money",
		Name:                     "Bronze",
		MinimumContributionValue: floatPtr(25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if money.MinimumContributionValue == nil || *money.MinimumContributionValue != 25 {
		t.Fatalf("money tiers keep their threshold")
	}
}

func TestServiceUpdateClearMinimum(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	repo := &fakeTierRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*reward.Tier, error) {
			return &reward.Tier{
				Id:                       id,
				RewardType:               reward.TypeMoney,
				Name:                     "Bronze",
				MinimumContributionValue: floatPtr(10),
				FundraiserOwnerId:        ownerID,
			}, nil
		},
	}
	svc := reward.NewService(repo, ownedFundraiser(ownerID))

	entity, err := svc.Update(context.Background(), &domaincontracts.RewardTierUpdateRequest{
		Id:           ulid.Make(),
		ActorId:      ownerID,
		ClearMinimum: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.MinimumContributionValue != nil {
		t.Fatalf("expected the threshold cleared")
	}
}

func TestServiceUpdateKeepsMaxBackersInert(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	var persisted *reward.Tier
	repo := &fakeTierRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*reward.Tier, error) {
			return &reward.Tier{Id: id, RewardType: reward.TypeTime, Name: "Badge", FundraiserOwnerId: ownerID}, nil
		},
		updateFn: func(ctx context.Context, t *reward.Tier) error {
			persisted = t
			return nil
		},
	}
	svc := reward.NewService(repo, ownedFundraiser(ownerID))

	max := uint(50)
	entity, err := svc.Update(context.Background(), &domaincontracts.RewardTierUpdateRequest{
		Id:         ulid.Make(),
		ActorId:    ownerID,
		MaxBackers: &max,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.MaxBackers == nil || *entity.MaxBackers != 50 {
		t.Fatalf("max backers is stored as-is")
	}
	if persisted == nil {
		t.Fatalf("expected the tier persisted")
	}
}
