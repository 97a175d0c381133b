package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type RewardTierRepository struct {
	DB *gorm.DB
}

func NewRewardTierRepository(db *gorm.DB) *RewardTierRepository {
	return &RewardTierRepository{DB: db}
}

type rewardTierDB struct {
	Id                       string `gorm:"type:varchar(26);primaryKey"`
	FundraiserId             string `gorm:"type:varchar(26);index;not null"`
	RewardType               reward.Type
	Name                     string
	Description              string
	MinimumContributionValue *float64
	ImageURL                 string
	SortOrder                int
	MaxBackers               *uint
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// Joined from fundraisers; not a column of the reward_tiers table.
	OwnerId string `gorm:"->"`
}

func toDomainRewardTier(tdb *rewardTierDB) (*reward.Tier, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	fundraiserID, err := pkg.ParseULID(tdb.FundraiserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	out := &reward.Tier{
		Id:                       id,
		FundraiserId:             fundraiserID,
		RewardType:               tdb.RewardType,
		Name:                     tdb.Name,
		Description:              tdb.Description,
		MinimumContributionValue: tdb.MinimumContributionValue,
		ImageURL:                 tdb.ImageURL,
		SortOrder:                tdb.SortOrder,
		MaxBackers:               tdb.MaxBackers,
		CreatedAt:                tdb.CreatedAt,
		UpdatedAt:                tdb.UpdatedAt,
	}
	if tdb.OwnerId != "" {
		ownerID, err := pkg.ParseULID(tdb.OwnerId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out.FundraiserOwnerId = ownerID
	}
	return out, nil
}

func toDBRewardTier(t *reward.Tier) *rewardTierDB {
	return &rewardTierDB{
		Id:                       t.Id.String(),
		FundraiserId:             t.FundraiserId.String(),
		RewardType:               t.RewardType,
		Name:                     t.Name,
		Description:              t.Description,
		MinimumContributionValue: t.MinimumContributionValue,
		ImageURL:                 t.ImageURL,
		SortOrder:                t.SortOrder,
		MaxBackers:               t.MaxBackers,
		CreatedAt:                t.CreatedAt,
		UpdatedAt:                t.UpdatedAt,
	}
}

func (r *RewardTierRepository) tierQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("reward_tiers").
		Select("reward_tiers.*, fundraisers.owner_id AS owner_id").
		Joins("JOIN fundraisers ON fundraisers.id = reward_tiers.fundraiser_id")
}

func (r *RewardTierRepository) Create(ctx context.Context, t *reward.Tier) error {
	tdb := toDBRewardTier(t)
	if err := r.DB.WithContext(ctx).Table("reward_tiers").Create(&tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *RewardTierRepository) Update(ctx context.Context, t *reward.Tier) error {
	tdb := toDBRewardTier(t)
	result := r.DB.WithContext(ctx).Table("reward_tiers").Where("id = ?", tdb.Id).Save(&tdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *RewardTierRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("reward_tiers").Where("id = ?", id.String()).Delete(&rewardTierDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRewardTierNotFound
	}
	return nil
}

func (r *RewardTierRepository) GetByID(ctx context.Context, id ulid.ULID) (*reward.Tier, error) {
	var tdb rewardTierDB
	if err := r.tierQuery(ctx).Where("reward_tiers.id = ?", id.String()).First(&tdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRewardTierNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainRewardTier(&tdb)
}

func (r *RewardTierRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*reward.Tier, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	var total int64
	if err := r.DB.WithContext(ctx).Table("reward_tiers").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []rewardTierDB
	if err := r.tierQuery(ctx).Order("reward_tiers.sort_order ASC, reward_tiers.created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*reward.Tier, 0, len(rows))
	for i := range rows {
		t, err := toDomainRewardTier(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, nil
}

func (r *RewardTierRepository) GetByFundraiserID(ctx context.Context, fundraiserID ulid.ULID) ([]*reward.Tier, error) {
	var rows []rewardTierDB
	if err := r.tierQuery(ctx).Where("reward_tiers.fundraiser_id = ?", fundraiserID.String()).
		Order("reward_tiers.sort_order ASC, reward_tiers.created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*reward.Tier, 0, len(rows))
	for i := range rows {
		t, err := toDomainRewardTier(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
