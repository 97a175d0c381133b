package reward

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, t *Tier) error
	Update(ctx context.Context, t *Tier) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Tier, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Tier, int64, error)
	GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Tier, error)
}
