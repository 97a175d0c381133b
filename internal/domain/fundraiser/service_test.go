package fundraiser_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/shared"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type fakeFundraiserRepository struct {
	createFn       func(ctx context.Context, f *fundraiser.Fundraiser) error
	updateFn       func(ctx context.Context, f *fundraiser.Fundraiser) error
	deleteFn       func(ctx context.Context, id ulid.ULID) error
	getByIDFn      func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
	countPledgesFn func(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
}

func (f *fakeFundraiserRepository) Create(ctx context.Context, entity *fundraiser.Fundraiser) error {
	if f.createFn != nil {
		return f.createFn(ctx, entity)
	}
	return nil
}

func (f *fakeFundraiserRepository) Update(ctx context.Context, entity *fundraiser.Fundraiser) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, entity)
	}
	return nil
}

func (f *fakeFundraiserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeFundraiserRepository) GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrFundraiserNotFound
}

func (f *fakeFundraiserRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*fundraiser.Fundraiser, int64, error) {
	return nil, 0, nil
}

func (f *fakeFundraiserRepository) GetByOwnerID(ctx context.Context, ownerID ulid.ULID, pagination *pkg.PaginationParams) ([]*fundraiser.Fundraiser, int64, error) {
	return nil, 0, nil
}

func (f *fakeFundraiserRepository) CountPledges(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	if f.countPledgesFn != nil {
		return f.countPledgesFn(ctx, fundraiserID)
	}
	return 0, nil
}

func (f *fakeFundraiserRepository) CountNeeds(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	return 0, nil
}

func (f *fakeFundraiserRepository) CountRewardTiers(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	return 0, nil
}

type fakeUserChecker struct{}

func (fakeUserChecker) Exists(ctx context.Context, userID ulid.ULID) error { return nil }

func newChecker() *shared.UserCheckerService {
	return shared.NewUserCheckerService(fakeUserChecker{})
}

func TestServiceCreateValidations(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	start := time.Now()
	end := start.Add(-24 * time.Hour)

	tests := []struct {
		name    string
		request *domaincontracts.FundraiserCreateRequest
	}{
		{
			name:    "blank title",
			request: &domaincontracts.FundraiserCreateRequest{OwnerId: ownerID, Title: "  ", Goal: 100},
		},
		{
			name:    "non-positive goal",
			request: &domaincontracts.FundraiserCreateRequest{OwnerId: ownerID, Title: "Roof repair", Goal: 0},
		},
		{
			name: "end date before start date",
			request: &domaincontracts.FundraiserCreateRequest{
				OwnerId:   ownerID,
				Title:     "Roof repair",
				Goal:      100,
				StartDate: &start,
				EndDate:   &end,
			},
		},
		{
			name: "unknown status",
			request: &domaincontracts.FundraiserCreateRequest{
				OwnerId: ownerID,
				Title:   "Roof repair",
				Goal:    100,
				Status:  "archived",
			},
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := fundraiser.NewService(&fakeFundraiserRepository{}, newChecker())
			_, err := svc.Create(ctx, tt.request)
			appErr, _ := appErrors.AsAppError(err)
			if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	t.Run("defaults to draft", func(t *testing.T) {
		svc := fundraiser.NewService(&fakeFundraiserRepository{}, newChecker())
		entity, err := svc.Create(ctx, &domaincontracts.FundraiserCreateRequest{
			OwnerId: ownerID,
			Title:   "Roof repair",
			Goal:    2500,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != fundraiser.StatusDraft {
			t.Fatalf("expected draft, got %s", entity.Status)
		}
		if entity.IsOpen() {
			t.Fatalf("draft fundraiser must not be open for pledges")
		}
	})
}

func TestServiceUpdateOwnership(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	repo := &fakeFundraiserRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
			return &fundraiser.Fundraiser{Id: id, OwnerId: ownerID, Title: "Roof repair", Goal: 100}, nil
		},
	}
	svc := fundraiser.NewService(repo, newChecker())

	title := "New roof"
	_, err := svc.Update(context.Background(), &domaincontracts.FundraiserUpdateRequest{
		Id:      ulid.Make(),
		ActorId: ulid.Make(),
		Title:   &title,
	})
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected RESOURCE_NOT_OWNED, got %v", err)
	}

	entity, err := svc.Update(context.Background(), &domaincontracts.FundraiserUpdateRequest{
		Id:      ulid.Make(),
		ActorId: ownerID,
		Title:   &title,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Title != "New roof" {
		t.Fatalf("expected updated title, got %q", entity.Title)
	}
}

func TestServiceDeleteRefusesFundraisersWithPledges(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	repo := &fakeFundraiserRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
			return &fundraiser.Fundraiser{Id: id, OwnerId: ownerID}, nil
		},
		countPledgesFn: func(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
			return 1, nil
		},
		deleteFn: func(ctx context.Context, id ulid.ULID) error {
			t.Fatalf("delete must not run when pledges exist")
			return nil
		},
	}
	svc := fundraiser.NewService(repo, newChecker())

	err := svc.Delete(context.Background(), ulid.Make(), ownerID)
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict, got %v", err)
	}
}
