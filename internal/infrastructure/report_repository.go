package infrastructure

import (
	"context"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/report"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

// ReportRepository answers the aggregate queries reports are built from.
// Money sums deliberately carry no pledge-status filter: they mirror the
// totals the allocation engine computes.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) SumMoneyByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Table("money_pledges").
		Select("COALESCE(SUM(money_pledges.amount), 0)").
		Joins("JOIN pledges ON pledges.id = money_pledges.pledge_id").
		Where("pledges.fundraiser_id = ?", fundraiserID.String()).
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *ReportRepository) CountPledgesByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("pledges").
		Where("fundraiser_id = ?", fundraiserID.String()).
		Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *ReportRepository) CountSupportersByFundraiser(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("pledges").
		Where("fundraiser_id = ?", fundraiserID.String()).
		Distinct("supporter_id").
		Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *ReportRepository) SumMoneyByNeed(ctx context.Context, needID ulid.ULID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Table("money_pledges").
		Select("COALESCE(SUM(money_pledges.amount), 0)").
		Joins("JOIN pledges ON pledges.id = money_pledges.pledge_id").
		Where("pledges.need_id = ?", needID.String()).
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *ReportRepository) SumHoursByNeed(ctx context.Context, needID ulid.ULID) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Table("time_pledges").
		Select("COALESCE(SUM(time_pledges.hours_committed), 0)").
		Joins("JOIN pledges ON pledges.id = time_pledges.pledge_id").
		Where("pledges.need_id = ?", needID.String()).
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *ReportRepository) CountVolunteersByNeed(ctx context.Context, needID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("time_pledges").
		Joins("JOIN pledges ON pledges.id = time_pledges.pledge_id").
		Where("pledges.need_id = ?", needID.String()).
		Distinct("pledges.supporter_id").
		Count(&count).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *ReportRepository) SumQuantityByNeed(ctx context.Context, needID ulid.ULID) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Table("item_pledges").
		Select("COALESCE(SUM(item_pledges.quantity), 0)").
		Joins("JOIN pledges ON pledges.id = item_pledges.pledge_id").
		Where("pledges.need_id = ?", needID.String()).
		Scan(&total).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *ReportRepository) GetEarnedRewards(ctx context.Context, supporterID ulid.ULID) ([]*report.EarnedReward, error) {
	type earnedRow struct {
		FundraiserId    string
		FundraiserTitle string
		RewardTierId    string
		RewardTierName  string
		RewardType      string
	}

	var rows []earnedRow
	err := r.DB.WithContext(ctx).Table("pledges").
		Select(`DISTINCT pledges.fundraiser_id,
			fundraisers.title AS fundraiser_title,
			reward_tiers.id AS reward_tier_id,
			reward_tiers.name AS reward_tier_name,
			reward_tiers.reward_type`).
		Joins("JOIN fundraisers ON fundraisers.id = pledges.fundraiser_id").
		Joins("JOIN reward_tiers ON reward_tiers.id = pledges.reward_tier_id").
		Where("pledges.supporter_id = ?", supporterID.String()).
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*report.EarnedReward, 0, len(rows))
	for _, row := range rows {
		fundraiserID, err := pkg.ParseULID(row.FundraiserId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		tierID, err := pkg.ParseULID(row.RewardTierId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out = append(out, &report.EarnedReward{
			FundraiserId:    fundraiserID,
			FundraiserTitle: row.FundraiserTitle,
			RewardTierId:    tierID,
			RewardTierName:  row.RewardTierName,
			RewardType:      row.RewardType,
		})
	}
	return out, nil
}
