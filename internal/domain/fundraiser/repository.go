package fundraiser

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, f *Fundraiser) error
	Update(ctx context.Context, f *Fundraiser) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Fundraiser, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Fundraiser, int64, error)
	GetByOwnerID(ctx context.Context, ownerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Fundraiser, int64, error)
	CountPledges(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
	CountNeeds(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
	CountRewardTiers(ctx context.Context, fundraiserID ulid.ULID) (int64, error)
}
