package pledge

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, p *Pledge) error
	Update(ctx context.Context, p *Pledge) error
	UpdateStatus(ctx context.Context, id ulid.ULID, status Status) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Pledge, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Pledge, int64, error)
	GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*Pledge, error)
	GetBySupporterID(ctx context.Context, supporterID ulid.ULID) ([]*Pledge, error)

	CreateMoneyDetail(ctx context.Context, d *MoneyPledge) error
	UpdateMoneyDetail(ctx context.Context, d *MoneyPledge) error
	DeleteMoneyDetail(ctx context.Context, id ulid.ULID) error
	GetMoneyDetailByID(ctx context.Context, id ulid.ULID) (*MoneyPledge, error)
	GetMoneyDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*MoneyPledge, error)

	CreateTimeDetail(ctx context.Context, d *TimePledge) error
	UpdateTimeDetail(ctx context.Context, d *TimePledge) error
	DeleteTimeDetail(ctx context.Context, id ulid.ULID) error
	GetTimeDetailByID(ctx context.Context, id ulid.ULID) (*TimePledge, error)
	GetTimeDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*TimePledge, error)

	CreateItemDetail(ctx context.Context, d *ItemPledge) error
	UpdateItemDetail(ctx context.Context, d *ItemPledge) error
	DeleteItemDetail(ctx context.Context, id ulid.ULID) error
	GetItemDetailByID(ctx context.Context, id ulid.ULID) (*ItemPledge, error)
	GetItemDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*ItemPledge, error)
}
