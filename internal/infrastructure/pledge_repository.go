package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type PledgeRepository struct {
	DB *gorm.DB
}

func NewPledgeRepository(db *gorm.DB) *PledgeRepository {
	return &PledgeRepository{DB: db}
}

type pledgeDB struct {
	Id           string  `gorm:"type:varchar(26);primaryKey"`
	FundraiserId string  `gorm:"type:varchar(26);index;not null"`
	NeedId       *string `gorm:"type:varchar(26);index"`
	SupporterId  string  `gorm:"type:varchar(26);index;not null"`
	Status       pledge.Status
	RewardTierId *string `gorm:"type:varchar(26)"`
	Comment      string
	Anonymous    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from fundraisers; not a column of the pledges table.
	OwnerId string `gorm:"->"`
}

func toDomainPledge(pdb *pledgeDB) (*pledge.Pledge, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	fundraiserID, err := pkg.ParseULID(pdb.FundraiserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	supporterID, err := pkg.ParseULID(pdb.SupporterId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	needID, err := pkg.ParseULIDPtr(pdb.NeedId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tierID, err := pkg.ParseULIDPtr(pdb.RewardTierId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	out := &pledge.Pledge{
		Id:           id,
		FundraiserId: fundraiserID,
		NeedId:       needID,
		SupporterId:  supporterID,
		Status:       pdb.Status,
		RewardTierId: tierID,
		Comment:      pdb.Comment,
		Anonymous:    pdb.Anonymous,
		CreatedAt:    pdb.CreatedAt,
		UpdatedAt:    pdb.UpdatedAt,
	}
	if pdb.OwnerId != "" {
		ownerID, err := pkg.ParseULID(pdb.OwnerId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out.FundraiserOwnerId = ownerID
	}
	return out, nil
}

func toDBPledge(p *pledge.Pledge) *pledgeDB {
	return &pledgeDB{
		Id:           p.Id.String(),
		FundraiserId: p.FundraiserId.String(),
		NeedId:       pkg.ULIDPtrToStringPtr(p.NeedId),
		SupporterId:  p.SupporterId.String(),
		Status:       p.Status,
		RewardTierId: pkg.ULIDPtrToStringPtr(p.RewardTierId),
		Comment:      p.Comment,
		Anonymous:    p.Anonymous,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *PledgeRepository) pledgeQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("pledges").
		Select("pledges.*, fundraisers.owner_id AS owner_id").
		Joins("JOIN fundraisers ON fundraisers.id = pledges.fundraiser_id")
}

func (r *PledgeRepository) Create(ctx context.Context, p *pledge.Pledge) error {
	pdb := toDBPledge(p)
	if err := r.DB.WithContext(ctx).Table("pledges").Create(&pdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PledgeRepository) Update(ctx context.Context, p *pledge.Pledge) error {
	pdb := toDBPledge(p)
	result := r.DB.WithContext(ctx).Table("pledges").Where("id = ?", pdb.Id).
		Select("need_id", "status", "reward_tier_id", "comment", "anonymous", "updated_at").
		Updates(map[string]interface{}{
			"need_id":        pdb.NeedId,
			"status":         pdb.Status,
			"reward_tier_id": pdb.RewardTierId,
			"comment":        pdb.Comment,
			"anonymous":      pdb.Anonymous,
			"updated_at":     pdb.UpdatedAt,
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

func (r *PledgeRepository) UpdateStatus(ctx context.Context, id ulid.ULID, status pledge.Status) error {
	result := r.DB.WithContext(ctx).Table("pledges").Where("id = ?", id.String()).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

// Delete removes the pledge and any detail row in one transaction.
func (r *PledgeRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("money_pledges").Where("pledge_id = ?", id.String()).Delete(&moneyPledgeDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		if err := tx.Table("time_pledges").Where("pledge_id = ?", id.String()).Delete(&timePledgeDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		if err := tx.Table("item_pledges").Where("pledge_id = ?", id.String()).Delete(&itemPledgeDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		result := tx.Table("pledges").Where("id = ?", id.String()).Delete(&pledgeDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrPledgeNotFound
		}
		return nil
	})
}

func (r *PledgeRepository) GetByID(ctx context.Context, id ulid.ULID) (*pledge.Pledge, error) {
	var pdb pledgeDB
	if err := r.pledgeQuery(ctx).Where("pledges.id = ?", id.String()).First(&pdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainPledge(&pdb)
}

func (r *PledgeRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*pledge.Pledge, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	var total int64
	if err := r.DB.WithContext(ctx).Table("pledges").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []pledgeDB
	if err := r.pledgeQuery(ctx).Order("pledges.created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*pledge.Pledge, 0, len(rows))
	for i := range rows {
		p, err := toDomainPledge(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, nil
}

func (r *PledgeRepository) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*pledge.Pledge, error) {
	var rows []pledgeDB
	if err := r.pledgeQuery(ctx).Where("pledges.fundraiser_id = ?", fundraiserID.String()).
		Order("pledges.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return r.toDomainPledges(rows)
}

func (r *PledgeRepository) GetBySupporterID(ctx context.Context, supporterID ulid.ULID) ([]*pledge.Pledge, error) {
	var rows []pledgeDB
	if err := r.pledgeQuery(ctx).Where("pledges.supporter_id = ?", supporterID.String()).
		Order("pledges.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return r.toDomainPledges(rows)
}

func (r *PledgeRepository) toDomainPledges(rows []pledgeDB) ([]*pledge.Pledge, error) {
	out := make([]*pledge.Pledge, 0, len(rows))
	for i := range rows {
		p, err := toDomainPledge(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RecomputeMoneyTier re-derives the earned money tier for one supporter on
// one fundraiser and stamps it on all of their money pledges there. The row
// lock on the supporter's money pledges spans the sum-read and the tier-write
// so two concurrent pledges cannot both compute a tier from a stale total.
// Pledges of every status count toward the total.
func (r *PledgeRepository) RecomputeMoneyTier(ctx context.Context, supporterID, fundraiserID ulid.ULID) (*ulid.ULID, error) {
	var tierID *ulid.ULID

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		type moneyRow struct {
			PledgeId string
			Amount   float64
		}
		var moneyRows []moneyRow
		if err := tx.Table("money_pledges").
			Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "money_pledges"}}).
			Select("money_pledges.pledge_id, money_pledges.amount").
			Joins("JOIN pledges ON pledges.id = money_pledges.pledge_id").
			Where("pledges.supporter_id = ? AND pledges.fundraiser_id = ?", supporterID.String(), fundraiserID.String()).
			Find(&moneyRows).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		total := 0.0
		pledgeIDs := make([]string, 0, len(moneyRows))
		for _, row := range moneyRows {
			total += row.Amount
			pledgeIDs = append(pledgeIDs, row.PledgeId)
		}

		var tierRows []rewardTierDB
		if err := tx.Table("reward_tiers").
			Where("fundraiser_id = ? AND reward_type = ?", fundraiserID.String(), reward.TypeMoney).
			Find(&tierRows).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		tiers := make([]*reward.Tier, 0, len(tierRows))
		for i := range tierRows {
			t, err := toDomainRewardTier(&tierRows[i])
			if err != nil {
				return err
			}
			tiers = append(tiers, t)
		}

		var newTierID *string
		if best := reward.SelectMoneyTier(total, tiers); best != nil {
			id := best.Id
			tierID = &id
			s := id.String()
			newTierID = &s
		}

		if len(pledgeIDs) == 0 {
			return nil
		}
		if err := tx.Table("pledges").Where("id IN ?", pledgeIDs).
			Updates(map[string]interface{}{
				"reward_tier_id": newTierID,
				"updated_at":     time.Now(),
			}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tierID, nil
}

// ---------------------------------------------------------------------------
// Money detail
// ---------------------------------------------------------------------------

type moneyPledgeDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	PledgeId  string `gorm:"type:varchar(26);uniqueIndex;not null"`
	Amount    float64
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainMoneyPledge(d *moneyPledgeDB) (*pledge.MoneyPledge, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	pledgeID, err := pkg.ParseULID(d.PledgeId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &pledge.MoneyPledge{
		Id:        id,
		PledgeId:  pledgeID,
		Amount:    d.Amount,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func toDBMoneyPledge(d *pledge.MoneyPledge) *moneyPledgeDB {
	return &moneyPledgeDB{
		Id:        d.Id.String(),
		PledgeId:  d.PledgeId.String(),
		Amount:    d.Amount,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PledgeRepository) CreateMoneyDetail(ctx context.Context, d *pledge.MoneyPledge) error {
	ddb := toDBMoneyPledge(d)
	if err := r.DB.WithContext(ctx).Table("money_pledges").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PledgeRepository) UpdateMoneyDetail(ctx context.Context, d *pledge.MoneyPledge) error {
	ddb := toDBMoneyPledge(d)
	result := r.DB.WithContext(ctx).Table("money_pledges").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *PledgeRepository) DeleteMoneyDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("money_pledges").Where("id = ?", id.String()).Delete(&moneyPledgeDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

func (r *PledgeRepository) GetMoneyDetailByID(ctx context.Context, id ulid.ULID) (*pledge.MoneyPledge, error) {
	var ddb moneyPledgeDB
	if err := r.DB.WithContext(ctx).Table("money_pledges").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMoneyPledge(&ddb)
}

func (r *PledgeRepository) GetMoneyDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*pledge.MoneyPledge, error) {
	var ddb moneyPledgeDB
	if err := r.DB.WithContext(ctx).Table("money_pledges").Where("pledge_id = ?", pledgeID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainMoneyPledge(&ddb)
}

// ---------------------------------------------------------------------------
// Time detail
// ---------------------------------------------------------------------------

type timePledgeDB struct {
	Id             string `gorm:"type:varchar(26);primaryKey"`
	PledgeId       string `gorm:"type:varchar(26);uniqueIndex;not null"`
	StartDatetime  time.Time
	EndDatetime    time.Time
	HoursCommitted float64
	Comment        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toDomainTimePledge(d *timePledgeDB) (*pledge.TimePledge, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	pledgeID, err := pkg.ParseULID(d.PledgeId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &pledge.TimePledge{
		Id:             id,
		PledgeId:       pledgeID,
		StartDatetime:  d.StartDatetime,
		EndDatetime:    d.EndDatetime,
		HoursCommitted: d.HoursCommitted,
		Comment:        d.Comment,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}, nil
}

func toDBTimePledge(d *pledge.TimePledge) *timePledgeDB {
	return &timePledgeDB{
		Id:             d.Id.String(),
		PledgeId:       d.PledgeId.String(),
		StartDatetime:  d.StartDatetime,
		EndDatetime:    d.EndDatetime,
		HoursCommitted: d.HoursCommitted,
		Comment:        d.Comment,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *PledgeRepository) CreateTimeDetail(ctx context.Context, d *pledge.TimePledge) error {
	ddb := toDBTimePledge(d)
	if err := r.DB.WithContext(ctx).Table("time_pledges").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PledgeRepository) UpdateTimeDetail(ctx context.Context, d *pledge.TimePledge) error {
	ddb := toDBTimePledge(d)
	result := r.DB.WithContext(ctx).Table("time_pledges").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *PledgeRepository) DeleteTimeDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("time_pledges").Where("id = ?", id.String()).Delete(&timePledgeDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

func (r *PledgeRepository) GetTimeDetailByID(ctx context.Context, id ulid.ULID) (*pledge.TimePledge, error) {
	var ddb timePledgeDB
	if err := r.DB.WithContext(ctx).Table("time_pledges").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTimePledge(&ddb)
}

func (r *PledgeRepository) GetTimeDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*pledge.TimePledge, error) {
	var ddb timePledgeDB
	if err := r.DB.WithContext(ctx).Table("time_pledges").Where("pledge_id = ?", pledgeID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTimePledge(&ddb)
}

// ---------------------------------------------------------------------------
// Item detail
// ---------------------------------------------------------------------------

type itemPledgeDB struct {
	Id        string `gorm:"type:varchar(26);primaryKey"`
	PledgeId  string `gorm:"type:varchar(26);uniqueIndex;not null"`
	Quantity  int
	Mode      pledge.ItemMode
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainItemPledge(d *itemPledgeDB) (*pledge.ItemPledge, error) {
	id, err := pkg.ParseULID(d.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	pledgeID, err := pkg.ParseULID(d.PledgeId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &pledge.ItemPledge{
		Id:        id,
		PledgeId:  pledgeID,
		Quantity:  d.Quantity,
		Mode:      d.Mode,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

func toDBItemPledge(d *pledge.ItemPledge) *itemPledgeDB {
	return &itemPledgeDB{
		Id:        d.Id.String(),
		PledgeId:  d.PledgeId.String(),
		Quantity:  d.Quantity,
		Mode:      d.Mode,
		Comment:   d.Comment,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PledgeRepository) CreateItemDetail(ctx context.Context, d *pledge.ItemPledge) error {
	ddb := toDBItemPledge(d)
	if err := r.DB.WithContext(ctx).Table("item_pledges").Create(&ddb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PledgeRepository) UpdateItemDetail(ctx context.Context, d *pledge.ItemPledge) error {
	ddb := toDBItemPledge(d)
	result := r.DB.WithContext(ctx).Table("item_pledges").Where("id = ?", ddb.Id).Save(&ddb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *PledgeRepository) DeleteItemDetail(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("item_pledges").Where("id = ?", id.String()).Delete(&itemPledgeDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPledgeNotFound
	}
	return nil
}

func (r *PledgeRepository) GetItemDetailByID(ctx context.Context, id ulid.ULID) (*pledge.ItemPledge, error) {
	var ddb itemPledgeDB
	if err := r.DB.WithContext(ctx).Table("item_pledges").Where("id = ?", id.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainItemPledge(&ddb)
}

func (r *PledgeRepository) GetItemDetailByPledgeID(ctx context.Context, pledgeID ulid.ULID) (*pledge.ItemPledge, error) {
	var ddb itemPledgeDB
	if err := r.DB.WithContext(ctx).Table("item_pledges").Where("pledge_id = ?", pledgeID.String()).First(&ddb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPledgeNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainItemPledge(&ddb)
}
