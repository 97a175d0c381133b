package need_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type fakeNeedRepository struct {
	createFn       func(ctx context.Context, n *need.Need) error
	updateFn       func(ctx context.Context, n *need.Need) error
	deleteFn       func(ctx context.Context, id ulid.ULID) error
	getByIDFn      func(ctx context.Context, id ulid.ULID) (*need.Need, error)
	countPledgesFn func(ctx context.Context, needID ulid.ULID) (int64, error)

	createTimeFn      func(ctx context.Context, d *need.TimeNeed) error
	getTimeByIDFn     func(ctx context.Context, id ulid.ULID) (*need.TimeNeed, error)
	updateTimeFn      func(ctx context.Context, d *need.TimeNeed) error
	createMoneyFn     func(ctx context.Context, d *need.MoneyNeed) error
	createItemFn      func(ctx context.Context, d *need.ItemNeed) error
	getItemByNeedIDFn func(ctx context.Context, needID ulid.ULID) (*need.ItemNeed, error)
}

func (f *fakeNeedRepository) Create(ctx context.Context, n *need.Need) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNeedRepository) Update(ctx context.Context, n *need.Need) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, n)
	}
	return nil
}

func (f *fakeNeedRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeNeedRepository) GetByID(ctx context.Context, id ulid.ULID) (*need.Need, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*need.Need, int64, error) {
	return nil, 0, nil
}

func (f *fakeNeedRepository) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*need.Need, error) {
	return nil, nil
}

func (f *fakeNeedRepository) CountPledges(ctx context.Context, needID ulid.ULID) (int64, error) {
	if f.countPledgesFn != nil {
		return f.countPledgesFn(ctx, needID)
	}
	return 0, nil
}

func (f *fakeNeedRepository) CreateMoneyDetail(ctx context.Context, d *need.MoneyNeed) error {
	if f.createMoneyFn != nil {
		return f.createMoneyFn(ctx, d)
	}
	return nil
}

func (f *fakeNeedRepository) UpdateMoneyDetail(ctx context.Context, d *need.MoneyNeed) error {
	return nil
}

func (f *fakeNeedRepository) DeleteMoneyDetail(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (f *fakeNeedRepository) GetMoneyDetailByID(ctx context.Context, id ulid.ULID) (*need.MoneyNeed, error) {
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) GetMoneyDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.MoneyNeed, error) {
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) CreateTimeDetail(ctx context.Context, d *need.TimeNeed) error {
	if f.createTimeFn != nil {
		return f.createTimeFn(ctx, d)
	}
	return nil
}

func (f *fakeNeedRepository) UpdateTimeDetail(ctx context.Context, d *need.TimeNeed) error {
	if f.updateTimeFn != nil {
		return f.updateTimeFn(ctx, d)
	}
	return nil
}

func (f *fakeNeedRepository) DeleteTimeDetail(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (f *fakeNeedRepository) GetTimeDetailByID(ctx context.Context, id ulid.ULID) (*need.TimeNeed, error) {
	if f.getTimeByIDFn != nil {
		return f.getTimeByIDFn(ctx, id)
	}
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.TimeNeed, error) {
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) CreateItemDetail(ctx context.Context, d *need.ItemNeed) error {
	if f.createItemFn != nil {
		return f.createItemFn(ctx, d)
	}
	return nil
}

func (f *fakeNeedRepository) UpdateItemDetail(ctx context.Context, d *need.ItemNeed) error {
	return nil
}

func (f *fakeNeedRepository) DeleteItemDetail(ctx context.Context, id ulid.ULID) error {
	return nil
}

func (f *fakeNeedRepository) GetItemDetailByID(ctx context.Context, id ulid.ULID) (*need.ItemNeed, error) {
	return nil, appErrors.ErrNeedNotFound
}

func (f *fakeNeedRepository) GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.ItemNeed, error) {
	if f.getItemByNeedIDFn != nil {
		return f.getItemByNeedIDFn(ctx, needID)
	}
	return nil, appErrors.ErrNeedNotFound
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

func TestServiceCreateValidations(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	parent := &fundraiser.Fundraiser{Id: ulid.Make(), OwnerId: ownerID, Status: fundraiser.StatusActive}

	fundraisers := &fakeFundraiserGetter{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
			return parent, nil
		},
	}

	tests := []struct {
		name     string
		request  *domaincontracts.NeedCreateRequest
		wantCode string
	}{
		{
			name: "unknown need type",
			request: &domaincontracts.NeedCreateRequest{
				ActorId:      ownerID,
				FundraiserId: parent.Id,
				NeedType:     "services",
				Title:        "Plumbing",
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "blank title",
			request: &domaincontracts.NeedCreateRequest{
				ActorId:      ownerID,
				FundraiserId: parent.Id,
				NeedType:     "money",
				Title:        "   ",
			},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name: "non-owner cannot add needs",
			request: &domaincontracts.NeedCreateRequest{
				ActorId:      ulid.Make(),
				FundraiserId: parent.Id,
				NeedType:     "money",
				Title:        "Materials",
			},
			wantCode: appErrors.ErrResourceNotOwned.Code,
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := need.NewService(&fakeNeedRepository{}, fundraisers)
			_, err := svc.Create(ctx, tt.request)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}

	t.Run("defaults applied", func(t *testing.T) {
		var created *need.Need
		repo := &fakeNeedRepository{
			createFn: func(ctx context.Context, n *need.Need) error {
				created = n
				return nil
			},
		}
		svc := need.NewService(repo, fundraisers)
		entity, err := svc.Create(ctx, &domaincontracts.NeedCreateRequest{
			ActorId:      ownerID,
			FundraiserId: parent.Id,
			NeedType:     "item",
			Title:        "  Folding tables ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entity.Status != need.StatusOpen || entity.Priority != need.PriorityMedium {
			t.Fatalf("expected open/medium defaults, got %s/%s", entity.Status, entity.Priority)
		}
		if entity.Title != "Folding tables" {
			t.Fatalf("expected trimmed title, got %q", entity.Title)
		}
		if created == nil {
			t.Fatalf("expected the need persisted")
		}
	})
}

func TestServiceDeleteRefusesNeedsWithPledges(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	needID := ulid.Make()

	repo := &fakeNeedRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*need.Need, error) {
			return &need.Need{Id: id, NeedType: need.TypeMoney, FundraiserOwnerId: ownerID}, nil
		},
		countPledgesFn: func(ctx context.Context, needID ulid.ULID) (int64, error) {
			return 3, nil
		},
		deleteFn: func(ctx context.Context, id ulid.ULID) error {
			t.Fatalf("delete must not run when pledges exist")
			return nil
		},
	}
	svc := need.NewService(repo, &fakeFundraiserGetter{})

	err := svc.Delete(context.Background(), needID, ownerID)
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "CONFLICT" {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestServiceDetailTypeMustMatchNeed(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	moneyNeed := &need.Need{Id: ulid.Make(), NeedType: need.TypeMoney, FundraiserOwnerId: ownerID}

	repo := &fakeNeedRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*need.Need, error) {
			return moneyNeed, nil
		},
	}
	svc := need.NewService(repo, &fakeFundraiserGetter{})

	start := time.Now()
	_, err := svc.CreateTimeDetail(context.Background(), &domaincontracts.TimeNeedCreateRequest{
		ActorId:          ownerID,
		NeedId:           moneyNeed.Id,
		StartDatetime:    start,
		EndDatetime:      start.Add(2 * time.Hour),
		VolunteersNeeded: 2,
		RoleTitle:        "Setup crew",
	})
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error for type mismatch, got %v", err)
	}
}

func TestServiceTimeDetailWindowValidation(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	timeNeed := &need.Need{Id: ulid.Make(), NeedType: need.TypeTime, FundraiserOwnerId: ownerID}

	repo := &fakeNeedRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*need.Need, error) {
			return timeNeed, nil
		},
	}
	svc := need.NewService(repo, &fakeFundraiserGetter{})

	start := time.Now()

	t.Run("create rejects end at or before start", func(t *testing.T) {
		_, err := svc.CreateTimeDetail(context.Background(), &domaincontracts.TimeNeedCreateRequest{
			ActorId:          ownerID,
			NeedId:           timeNeed.Id,
			StartDatetime:    start,
			EndDatetime:      start,
			VolunteersNeeded: 2,
			RoleTitle:        "Setup crew",
		})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("update revalidates the combined window", func(t *testing.T) {
		detailID := ulid.Make()
		repo.getTimeByIDFn = func(ctx context.Context, id ulid.ULID) (*need.TimeNeed, error) {
			return &need.TimeNeed{
				Id:            id,
				NeedId:        timeNeed.Id,
				StartDatetime: start,
				EndDatetime:   start.Add(3 * time.Hour),
			}, nil
		}
		badEnd := start.Add(-time.Hour)
		_, err := svc.UpdateTimeDetail(context.Background(), &domaincontracts.TimeNeedUpdateRequest{
			Id:          detailID,
			ActorId:     ownerID,
			EndDatetime: &badEnd,
		})
		appErr, _ := appErrors.AsAppError(err)
		if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestServiceItemDetailModeValidation(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	itemNeed := &need.Need{Id: ulid.Make(), NeedType: need.TypeItem, FundraiserOwnerId: ownerID}

	repo := &fakeNeedRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*need.Need, error) {
			return itemNeed, nil
		},
	}
	svc := need.NewService(repo, &fakeFundraiserGetter{})

	_, err := svc.CreateItemDetail(context.Background(), &domaincontracts.ItemNeedCreateRequest{
		ActorId:        ownerID,
		NeedId:         itemNeed.Id,
		ItemName:       "Chairs",
		QuantityNeeded: 10,
		Mode:           "rental",
	})
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error for unknown mode, got %v", err)
	}
}
