package template

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, t *FundraiserTemplate) error
	Update(ctx context.Context, t *FundraiserTemplate) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*FundraiserTemplate, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*FundraiserTemplate, int64, error)

	CreateNeed(ctx context.Context, n *TemplateNeed) error
	UpdateNeed(ctx context.Context, n *TemplateNeed) error
	DeleteNeed(ctx context.Context, id ulid.ULID) error
	GetNeedByID(ctx context.Context, id ulid.ULID) (*TemplateNeed, error)
	GetNeedsByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*TemplateNeed, error)

	CreateTier(ctx context.Context, t *TemplateRewardTier) error
	UpdateTier(ctx context.Context, t *TemplateRewardTier) error
	DeleteTier(ctx context.Context, id ulid.ULID) error
	GetTierByID(ctx context.Context, id ulid.ULID) (*TemplateRewardTier, error)
	GetTiersByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*TemplateRewardTier, error)

	// Apply persists a materialization in a single transaction; on error no
	// row survives.
	Apply(ctx context.Context, m *Materialization) error
}
