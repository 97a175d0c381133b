package need

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, n *Need) error
	Update(ctx context.Context, n *Need) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Need, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Need, int64, error)
	GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Need, error)
	CountPledges(ctx context.Context, needID ulid.ULID) (int64, error)

	CreateMoneyDetail(ctx context.Context, d *MoneyNeed) error
	UpdateMoneyDetail(ctx context.Context, d *MoneyNeed) error
	DeleteMoneyDetail(ctx context.Context, id ulid.ULID) error
	GetMoneyDetailByID(ctx context.Context, id ulid.ULID) (*MoneyNeed, error)
	GetMoneyDetailByNeedID(ctx context.Context, needID ulid.ULID) (*MoneyNeed, error)

	CreateTimeDetail(ctx context.Context, d *TimeNeed) error
	UpdateTimeDetail(ctx context.Context, d *TimeNeed) error
	DeleteTimeDetail(ctx context.Context, id ulid.ULID) error
	GetTimeDetailByID(ctx context.Context, id ulid.ULID) (*TimeNeed, error)
	GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*TimeNeed, error)

	CreateItemDetail(ctx context.Context, d *ItemNeed) error
	UpdateItemDetail(ctx context.Context, d *ItemNeed) error
	DeleteItemDetail(ctx context.Context, id ulid.ULID) error
	GetItemDetailByID(ctx context.Context, id ulid.ULID) (*ItemNeed, error)
	GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*ItemNeed, error)
}
