package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type FundraiserRepository struct {
	DB *gorm.DB
}

func NewFundraiserRepository(db *gorm.DB) *FundraiserRepository {
	return &FundraiserRepository{DB: db}
}

type fundraiserDB struct {
	Id              string  `gorm:"type:varchar(26);primaryKey"`
	OwnerId         string  `gorm:"type:varchar(26);index;not null"`
	Title           string  `gorm:"not null"`
	Description     string
	Goal            float64 `gorm:"not null"`
	ImageURL        string
	Location        string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          fundraiser.Status `gorm:"not null"`
	EnableRewards   bool
	RequireApproval bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toDomainFundraiser(fdb *fundraiserDB) (*fundraiser.Fundraiser, error) {
	id, err := pkg.ParseULID(fdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(fdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &fundraiser.Fundraiser{
		Id:              id,
		OwnerId:         ownerID,
		Title:           fdb.Title,
		Description:     fdb.Description,
		Goal:            fdb.Goal,
		ImageURL:        fdb.ImageURL,
		Location:        fdb.Location,
		StartDate:       fdb.StartDate,
		EndDate:         fdb.EndDate,
		Status:          fdb.Status,
		EnableRewards:   fdb.EnableRewards,
		RequireApproval: fdb.RequireApproval,
		SortOrder:       fdb.SortOrder,
		CreatedAt:       fdb.CreatedAt,
		UpdatedAt:       fdb.UpdatedAt,
	}, nil
}

func toDBFundraiser(f *fundraiser.Fundraiser) *fundraiserDB {
	return &fundraiserDB{
		Id:              f.Id.String(),
		OwnerId:         f.OwnerId.String(),
		Title:           f.Title,
		Description:     f.Description,
		Goal:            f.Goal,
		ImageURL:        f.ImageURL,
		Location:        f.Location,
		StartDate:       f.StartDate,
		EndDate:         f.EndDate,
		Status:          f.Status,
		EnableRewards:   f.EnableRewards,
		RequireApproval: f.RequireApproval,
		SortOrder:       f.SortOrder,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (r *FundraiserRepository) Create(ctx context.Context, f *fundraiser.Fundraiser) error {
	fdb := toDBFundraiser(f)
	if err := r.DB.WithContext(ctx).Table("fundraisers").Create(&fdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *FundraiserRepository) Update(ctx context.Context, f *fundraiser.Fundraiser) error {
	fdb := toDBFundraiser(f)
	result := r.DB.WithContext(ctx).Table("fundraisers").Where("id = ?", fdb.Id).Save(&fdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *FundraiserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("fundraisers").Where("id = ?", id.String()).Delete(&fundraiserDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrFundraiserNotFound
	}
	return nil
}

func (r *FundraiserRepository) GetByID(ctx context.Context, id ulid.ULID) (*fundraiser.Fundraiser, error) {
	var fdb fundraiserDB
	if err := r.DB.WithContext(ctx).Table("fundraisers").Where("id = ?", id.String()).First(&fdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrFundraiserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainFundraiser(&fdb)
}

func (r *FundraiserRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*fundraiser.Fundraiser, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	baseQuery := r.DB.WithContext(ctx).Table("fundraisers")

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []fundraiserDB
	if err := baseQuery.Order("sort_order ASC, created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*fundraiser.Fundraiser, 0, len(rows))
	for i := range rows {
		f, err := toDomainFundraiser(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, f)
	}
	return out, total, nil
}

func (r *FundraiserRepository) GetByOwnerID(ctx context.Context, ownerID ulid.ULID, pagination *pkg.PaginationParams) ([]*fundraiser.Fundraiser, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	baseQuery := r.DB.WithContext(ctx).Table("fundraisers").Where("owner_id = ?", ownerID.String())

	var total int64
	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []fundraiserDB
	if err := baseQuery.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*fundraiser.Fundraiser, 0, len(rows))
	for i := range rows {
		f, err := toDomainFundraiser(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, f)
	}
	return out, total, nil
}

func (r *FundraiserRepository) CountPledges(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("pledges").Where("fundraiser_id = ?", fundraiserID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *FundraiserRepository) CountNeeds(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("needs").Where("fundraiser_id = ?", fundraiserID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *FundraiserRepository) CountRewardTiers(ctx context.Context, fundraiserID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("reward_tiers").Where("fundraiser_id = ?", fundraiserID.String()).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}
