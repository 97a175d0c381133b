package template_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"

	domaincontracts "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/contracts"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type fakeTemplateRepository struct {
	createFn      func(ctx context.Context, t *template.FundraiserTemplate) error
	getByIDFn     func(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error)
	getNeedsFn    func(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateNeed, error)
	getTiersFn    func(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateRewardTier, error)
	applyFn       func(ctx context.Context, m *template.Materialization) error
	createNeedFn  func(ctx context.Context, n *template.TemplateNeed) error
	deleteNeedFn  func(ctx context.Context, id ulid.ULID) error
	getNeedByIDFn func(ctx context.Context, id ulid.ULID) (*template.TemplateNeed, error)
}

func (f *fakeTemplateRepository) Create(ctx context.Context, t *template.FundraiserTemplate) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTemplateRepository) Update(ctx context.Context, t *template.FundraiserTemplate) error {
	return nil
}

func (f *fakeTemplateRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeTemplateRepository) GetByID(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrTemplateNotFound
}

func (f *fakeTemplateRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*template.FundraiserTemplate, int64, error) {
	return nil, 0, nil
}

func (f *fakeTemplateRepository) CreateNeed(ctx context.Context, n *template.TemplateNeed) error {
	if f.createNeedFn != nil {
		return f.createNeedFn(ctx, n)
	}
	return nil
}

func (f *fakeTemplateRepository) UpdateNeed(ctx context.Context, n *template.TemplateNeed) error {
	return nil
}

func (f *fakeTemplateRepository) DeleteNeed(ctx context.Context, id ulid.ULID) error {
	if f.deleteNeedFn != nil {
		return f.deleteNeedFn(ctx, id)
	}
	return nil
}

func (f *fakeTemplateRepository) GetNeedByID(ctx context.Context, id ulid.ULID) (*template.TemplateNeed, error) {
	if f.getNeedByIDFn != nil {
		return f.getNeedByIDFn(ctx, id)
	}
	return nil, appErrors.ErrTemplateNotFound
}

func (f *fakeTemplateRepository) GetNeedsByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateNeed, error) {
	if f.getNeedsFn != nil {
		return f.getNeedsFn(ctx, templateID)
	}
	return nil, nil
}

func (f *fakeTemplateRepository) CreateTier(ctx context.Context, t *template.TemplateRewardTier) error {
	return nil
}

func (f *fakeTemplateRepository) UpdateTier(ctx context.Context, t *template.TemplateRewardTier) error {
	return nil
}

func (f *fakeTemplateRepository) DeleteTier(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeTemplateRepository) GetTierByID(ctx context.Context, id ulid.ULID) (*template.TemplateRewardTier, error) {
	return nil, appErrors.ErrTemplateNotFound
}

func (f *fakeTemplateRepository) GetTiersByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateRewardTier, error) {
	if f.getTiersFn != nil {
		return f.getTiersFn(ctx, templateID)
	}
	return nil, nil
}

func (f *fakeTemplateRepository) Apply(ctx context.Context, m *template.Materialization) error {
	if f.applyFn != nil {
		return f.applyFn(ctx, m)
	}
	return nil
}

type fakeFundraiserStore struct {
	getByIDFn          func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error)
	countNeedsFn       func(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
	countRewardTiersFn func(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
}

func (f *fakeFundraiserStore) GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, appErrors.ErrFundraiserNotFound
}

func (f *fakeFundraiserStore) CountNeeds(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	if f.countNeedsFn != nil {
		return f.countNeedsFn(ctx, fundraiserID)
	}
	return 0, nil
}

func (f *fakeFundraiserStore) CountRewardTiers(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	if f.countRewardTiersFn != nil {
		return f.countRewardTiersFn(ctx, fundraiserID)
	}
	return 0, nil
}

type fakeUserGetter struct {
	users map[ulid.ULID]*user.User
}

func (f *fakeUserGetter) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, appErrors.ErrUserNotFound
}

func usersWith(entries ...*user.User) *fakeUserGetter {
	out := &fakeUserGetter{users: map[ulid.ULID]*user.User{}}
	for _, u := range entries {
		out.users[u.Id] = u
	}
	return out
}

func TestServiceCreateIsStaffOnly(t *testing.T) {
	t.Parallel()

	staffID := ulid.Make()
	memberID := ulid.Make()
	users := usersWith(
		&user.User{Id: staffID, IsStaff: true},
		&user.User{Id: memberID},
	)
	svc := template.NewService(&fakeTemplateRepository{}, &fakeFundraiserStore{}, users)

	ctx := context.Background()

	_, err := svc.Create(ctx, &domaincontracts.TemplateCreateRequest{ActorId: memberID, Name: "Bake sale"})
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != "FORBIDDEN" {
		t.Fatalf("expected permission error for non-staff, got %v", err)
	}

	entity, err := svc.Create(ctx, &domaincontracts.TemplateCreateRequest{ActorId: staffID, Name: "  Bake sale  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Name != "Bake sale" {
		t.Fatalf("expected trimmed name, got %q", entity.Name)
	}
	if !entity.IsActive {
		t.Fatalf("templates default to active")
	}
}

func TestServiceApplyPreconditions(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	staffID := ulid.Make()
	users := usersWith(
		&user.User{Id: ownerID},
		&user.User{Id: staffID, IsStaff: true},
	)

	activeTemplate := func(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
		return &template.FundraiserTemplate{Id: id, OwnerId: staffID, IsActive: true}, nil
	}
	ownedFundraiser := func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
		return &fundraiser.Fundraiser{Id: id, OwnerId: ownerID}, nil
	}

	tests := []struct {
		name     string
		repo     *fakeTemplateRepository
		store    *fakeFundraiserStore
		actorID  ulid.ULID
		wantCode string
	}{
		{
			name:     "actor must own the fundraiser",
			repo:     &fakeTemplateRepository{getByIDFn: activeTemplate},
			store:    &fakeFundraiserStore{getByIDFn: ownedFundraiser},
			actorID:  staffID,
			wantCode: appErrors.ErrResourceNotOwned.Code,
		},
		{
			name: "fundraiser with needs",
			repo: &fakeTemplateRepository{getByIDFn: activeTemplate},
			store: &fakeFundraiserStore{
				getByIDFn: ownedFundraiser,
				countNeedsFn: func(ctx context.Context, id ulid.ULID) (int64, error) {
					return 2, nil
				},
			},
			actorID:  ownerID,
			wantCode: "CONFLICT",
		},
		{
			name: "fundraiser with reward tiers",
			repo: &fakeTemplateRepository{getByIDFn: activeTemplate},
			store: &fakeFundraiserStore{
				getByIDFn: ownedFundraiser,
				countRewardTiersFn: func(ctx context.Context, id ulid.ULID) (int64, error) {
					return 1, nil
				},
			},
			actorID:  ownerID,
			wantCode: "CONFLICT",
		},
		{
			name: "inactive template",
			repo: &fakeTemplateRepository{
				getByIDFn: func(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
					return &template.FundraiserTemplate{Id: id, OwnerId: staffID, IsActive: false}, nil
				},
			},
			store:    &fakeFundraiserStore{getByIDFn: ownedFundraiser},
			actorID:  ownerID,
			wantCode: "CONFLICT",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := template.NewService(tt.repo, tt.store, users)
			_, err := svc.Apply(context.Background(), ulid.Make(), ulid.Make(), tt.actorID)
			appErr, _ := appErrors.AsAppError(err)
			if appErr == nil || appErr.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestServiceApplyPersistsMaterialization(t *testing.T) {
	t.Parallel()

	ownerID := ulid.Make()
	staffID := ulid.Make()
	users := usersWith(
		&user.User{Id: ownerID},
		&user.User{Id: staffID, IsStaff: true},
	)

	var applied *template.Materialization
	repo := &fakeTemplateRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
			return &template.FundraiserTemplate{Id: id, OwnerId: staffID, IsActive: true, Title: "Community kitchen", Goal: 3000}, nil
		},
		getNeedsFn: func(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateNeed, error) {
			return []*template.TemplateNeed{
				{Id: ulid.Make(), TemplateId: templateID, NeedType: "money", Title: "Equipment", TargetAmount: floatPtr(3000)},
			}, nil
		},
		applyFn: func(ctx context.Context, m *template.Materialization) error {
			applied = m
			return nil
		},
	}
	store := &fakeFundraiserStore{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
			return &fundraiser.Fundraiser{Id: id, OwnerId: ownerID}, nil
		},
	}
	svc := template.NewService(repo, store, users)

	f, err := svc.Apply(context.Background(), ulid.Make(), ulid.Make(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied == nil {
		t.Fatalf("expected the materialization to reach the repository")
	}
	if f.Title != "Community kitchen" || f.Goal != 3000 {
		t.Fatalf("expected template scalars on the returned fundraiser, got %+v", f)
	}
	if len(applied.Needs) != 1 || applied.Needs[0].Money == nil {
		t.Fatalf("expected one money need in the materialization")
	}
}

func TestServiceTemplateChildWritesRequireStaff(t *testing.T) {
	t.Parallel()

	staffID := ulid.Make()
	memberID := ulid.Make()
	users := usersWith(
		&user.User{Id: staffID, IsStaff: true},
		&user.User{Id: memberID},
	)
	repo := &fakeTemplateRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
			return &template.FundraiserTemplate{Id: id, OwnerId: staffID, IsActive: true}, nil
		},
	}
	svc := template.NewService(repo, &fakeFundraiserStore{}, users)

	_, err := svc.CreateNeed(context.Background(), &domaincontracts.TemplateNeedCreateRequest{
		ActorId:    memberID,
		TemplateId: ulid.Make(),
		NeedType:   "money",
		Title:      "Venue",
	})
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected RESOURCE_NOT_OWNED, got %v", err)
	}

	entity, err := svc.CreateNeed(context.Background(), &domaincontracts.TemplateNeedCreateRequest{
		ActorId:    staffID,
		TemplateId: ulid.Make(),
		NeedType:   "money",
		Title:      "Venue",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.TemplateOwnerId != staffID {
		t.Fatalf("expected the need stamped with the template owner")
	}
}
