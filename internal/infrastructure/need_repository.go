package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type NeedRepository struct {
	DB *gorm.DB
}

func NewNeedRepository(db *gorm.DB) *NeedRepository {
	return &NeedRepository{DB: db}
}

type needDB struct {
	Id           string `gorm:"type:varchar(26);primaryKey"`
	FundraiserId string `gorm:"type:varchar(26);index;not null"`
	NeedType     need.Type
	Title        string
	Description  string
	Status       need.Status
	Priority     need.Priority
	SortOrder    int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from fundraisers; not a column of the needs table.
	OwnerId string `gorm:"->"`
}

func toDomainNeed(ndb *needDB) (*need.Need, error) {
	id, err := pkg.ParseULID(ndb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	fundraiserID, err := pkg.ParseULID(ndb.FundraiserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	out := &need.Need{
		Id:           id,
		FundraiserId: fundraiserID,
		NeedType:     ndb.NeedType,
		Title:        ndb.Title,
		Description:  ndb.Description,
		Status:       ndb.Status,
		Priority:     ndb.Priority,
		SortOrder:    ndb.SortOrder,
		CreatedAt:    ndb.CreatedAt,
		UpdatedAt:    ndb.UpdatedAt,
	}
	if ndb.OwnerId != "" {
		ownerID, err := pkg.ParseULID(ndb.OwnerId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out.FundraiserOwnerId = ownerID
	}
	return out, nil
}

func toDBNeed(n *need.Need) *needDB {
	return &needDB{
		Id:           n.Id.String(),
		FundraiserId: n.FundraiserId.String(),
		NeedType:     n.NeedType,
		Title:        n.Title,
		Description:  n.Description,
		Status:       n.Status,
		Priority:     n.Priority,
		SortOrder:    n.SortOrder,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}

func (r *NeedRepository) needQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("needs").
		Select("needs.*, fundraisers.owner_id AS owner_id").
		Joins("JOIN fundraisers ON fundraisers.id = needs.fundraiser_id")
}

func (r *NeedRepository) Create(ctx context.Context, n *need.Need) error {
	ndb := toDBNeed(n)
	if err := r.DB.WithContext(ctx).Table("needs").Create(&ndb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *NeedRepository) Update(ctx context.Context, n *need.Need) error {
	ndb := toDBNeed(n)
	result := r.DB.WithContext(ctx).Table("needs").Where("id = ?", ndb.Id).Save(&ndb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *NeedRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("needs").Where("id = ?", id.String()).Delete(&needDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNeedNotFound
	}
	return nil
}

func (r *NeedRepository) GetByID(ctx context.Context, id ulid.ULID) (*need.Need, error) {
	var ndb needDB
	if err := r.needQuery(ctx).Where("needs.id = ?", id.String()).First(&ndb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainNeed(&ndb)
}

func (r *NeedRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*need.Need, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	var total int64
	if err := r.DB.WithContext(ctx).Table("needs").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []needDB
	if err := r.needQuery(ctx).Order("needs.sort_order ASC, needs.created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*need.Need, 0, len(rows))
	for i := range rows {
		n, err := toDomainNeed(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, n)
	}
	return out, total, nil
}

func (r *NeedRepository) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*need.Need, error) {
	var rows []needDB
	if err := r.needQuery(ctx).Where("needs.fundraiser_id = ?", fundraiserID.String()).
		Order("needs.sort_order ASC, needs.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*need.Need, 0, len(rows))
	for i := range rows {
		n, err := toDomainNeed(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *NeedRepository) CountPledges(ctx context.Context, needID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("pledges").Where("need_id = ?", needID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Money detail
// ---------------------------------------------------------------------------

type moneyNeedDB struct {
	Id           string `gorm:"type:varchar(26);primaryKey"`
	NeedId       string `gorm:"type:varchar(26);uniqueIndex;not null"`
	TargetAmount float64
	Comment      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toDomainMoneyNeed(d *moneyNeedDB) (*need.MoneyNeed, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	needID, err := pkg.ParseULID(d.NeedId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &need.MoneyNeed{
		Id:           id,
		NeedId:       needID,
		TargetAmount: d.TargetAmount,
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func toDBMoneyNeed(d *need.MoneyNeed) *moneyNeedDB {
	return &moneyNeedDB{
		Id:           d.Id.String(),
		NeedId:       d.NeedId.String(),
		TargetAmount: d.TargetAmount,
		Comment:      d.Comment,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *NeedRepository) CreateMoneyDetail(ctx context.Context, d *need.MoneyNeed) error {
	ddb := toDBMoneyNeed(d)
	if err := r.DB.WithContext(ctx).Table("money_needs").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *NeedRepository) UpdateMoneyDetail(ctx context.Context, d *need.MoneyNeed) error {
	ddb := toDBMoneyNeed(d)
	result := r.DB.WithContext(ctx).Table("money_needs").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *NeedRepository) DeleteMoneyDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("money_needs").Where("id = ?", id.String()).Delete(&moneyNeedDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNeedNotFound
	}
	return nil
}

func (r *NeedRepository) GetMoneyDetailByID(ctx context.Context, id ulid.ULID) (*need.MoneyNeed, error) {
	var ddb moneyNeedDB
	if err := r.DB.WithContext(ctx).Table("money_needs").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMoneyNeed(&ddb)
}

func (r *NeedRepository) GetMoneyDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.MoneyNeed, error) {
	var ddb moneyNeedDB
	if err := r.DB.WithContext(ctx).Table("money_needs").Where("need_id = ?", needID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMoneyNeed(&ddb)
}

// ---------------------------------------------------------------------------
// Time detail
// ---------------------------------------------------------------------------

type timeNeedDB struct {
	Id               string `gorm:"type:varchar(26);primaryKey"`
	NeedId           string `gorm:"type:varchar(26);uniqueIndex;not null"`
	StartDatetime    time.Time
	EndDatetime      time.Time
	VolunteersNeeded int
	RoleTitle        string
	Location         string
	RewardTierId     *string `gorm:"type:varchar(26)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func toDomainTimeNeed(d *timeNeedDB) (*need.TimeNeed, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	needID, err := pkg.ParseULID(d.NeedId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tierID, err := pkg.ParseULIDPtr(d.RewardTierId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &need.TimeNeed{
		Id:               id,
		NeedId:           needID,
		StartDatetime:    d.StartDatetime,
		EndDatetime:      d.EndDatetime,
		VolunteersNeeded: d.VolunteersNeeded,
		RoleTitle:        d.RoleTitle,
		Location:         d.Location,
		RewardTierId:     tierID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}, nil
}

func toDBTimeNeed(d *need.TimeNeed) *timeNeedDB {
	return &timeNeedDB{
		Id:               d.Id.String(),
		NeedId:           d.NeedId.String(),
		StartDatetime:    d.StartDatetime,
		EndDatetime:      d.EndDatetime,
		VolunteersNeeded: d.VolunteersNeeded,
		RoleTitle:        d.RoleTitle,
		Location:         d.Location,
		RewardTierId:     pkg.ULIDPtrToStringPtr(d.RewardTierId),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func (r *NeedRepository) CreateTimeDetail(ctx context.Context, d *need.TimeNeed) error {
	ddb := toDBTimeNeed(d)
	if err := r.DB.WithContext(ctx).Table("time_needs").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *NeedRepository) UpdateTimeDetail(ctx context.Context, d *need.TimeNeed) error {
	ddb := toDBTimeNeed(d)
	result := r.DB.WithContext(ctx).Table("time_needs").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *NeedRepository) DeleteTimeDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("time_needs").Where("id = ?", id.String()).Delete(&timeNeedDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNeedNotFound
	}
	return nil
}

func (r *NeedRepository) GetTimeDetailByID(ctx context.Context, id ulid.ULID) (*need.TimeNeed, error) {
	var ddb timeNeedDB
	if err := r.DB.WithContext(ctx).Table("time_needs").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTimeNeed(&ddb)
}

func (r *NeedRepository) GetTimeDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.TimeNeed, error) {
	var ddb timeNeedDB
	if err := r.DB.WithContext(ctx).Table("time_needs").Where("need_id = ?", needID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTimeNeed(&ddb)
}

// ---------------------------------------------------------------------------
// Item detail
// ---------------------------------------------------------------------------

type itemNeedDB struct {
	Id                   string `gorm:"type:varchar(26);primaryKey"`
	NeedId               string `gorm:"type:varchar(26);uniqueIndex;not null"`
	ItemName             string
	QuantityNeeded       int
	Mode                 need.ItemMode
	Notes                string
	DonationRewardTierId *string `gorm:"type:varchar(26)"`
	LoanRewardTierId     *string `gorm:"type:varchar(26)"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func toDomainItemNeed(d *itemNeedDB) (*need.ItemNeed, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	needID, err := pkg.ParseULID(d.NeedId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	donationTierID, err := pkg.ParseULIDPtr(d.DonationRewardTierId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	loanTierID, err := pkg.ParseULIDPtr(d.LoanRewardTierId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &need.ItemNeed{
		Id:                   id,
		NeedId:               needID,
		ItemName:             d.ItemName,
		QuantityNeeded:       d.QuantityNeeded,
		Mode:                 d.Mode,
		Notes:                d.Notes,
		DonationRewardTierId: donationTierID,
		LoanRewardTierId:     loanTierID,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}, nil
}

func toDBItemNeed(d *need.ItemNeed) *itemNeedDB {
	return &itemNeedDB{
		Id:                   d.Id.String(),
		NeedId:               d.NeedId.String(),
		ItemName:             d.ItemName,
		QuantityNeeded:       d.QuantityNeeded,
		Mode:                 d.Mode,
		Notes:                d.Notes,
		DonationRewardTierId: pkg.ULIDPtrToStringPtr(d.DonationRewardTierId),
		LoanRewardTierId:     pkg.ULIDPtrToStringPtr(d.LoanRewardTierId),
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}

func (r *NeedRepository) CreateItemDetail(ctx context.Context, d *need.ItemNeed) error {
	ddb := toDBItemNeed(d)
	if err := r.DB.WithContext(ctx).Table("item_needs").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *NeedRepository) UpdateItemDetail(ctx context.Context, d *need.ItemNeed) error {
	ddb := toDBItemNeed(d)
	result := r.DB.WithContext(ctx).Table("item_needs").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *NeedRepository) DeleteItemDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("item_needs").Where("id = ?", id.String()).Delete(&itemNeedDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrNeedNotFound
	}
	return nil
}

func (r *NeedRepository) GetItemDetailByID(ctx context.Context, id ulid.ULID) (*need.ItemNeed, error) {
	var ddb itemNeedDB
	if err := r.DB.WithContext(ctx).Table("item_needs").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainItemNeed(&ddb)
}

func (r *NeedRepository) GetItemDetailByNeedID(ctx context.Context, needID ulid.ULID) (*need.ItemNeed, error) {
	var ddb itemNeedDB
	if err := r.DB.WithContext(ctx).Table("item_needs").Where("need_id = ?", needID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrNeedNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainItemNeed(&ddb)
}
