package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	appErrors "github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/errors"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/pkg"
)

type TemplateRepository struct {
	DB *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

type templateDB struct {
	Id            string `gorm:"type:varchar(26);primaryKey"`
	OwnerId       string `gorm:"type:varchar(26);index;not null"`
	Name          string `gorm:"not null"`
	Description   string
	IsActive      bool
	Title         string
	Goal          float64
	ImageURL      string
	Location      string
	EnableRewards bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toDomainTemplate(tdb *templateDB) (*template.FundraiserTemplate, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	ownerID, err := pkg.ParseULID(tdb.OwnerId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &template.FundraiserTemplate{
		Id:            id,
		OwnerId:       ownerID,
		Name:          tdb.Name,
		Description:   tdb.Description,
		IsActive:      tdb.IsActive,
		Title:         tdb.Title,
		Goal:          tdb.Goal,
		ImageURL:      tdb.ImageURL,
		Location:      tdb.Location,
		EnableRewards: tdb.EnableRewards,
		CreatedAt:     tdb.CreatedAt,
		UpdatedAt:     tdb.UpdatedAt,
	}, nil
}

func toDBTemplate(t *template.FundraiserTemplate) *templateDB {
	return &templateDB{
		Id:            t.Id.String(),
		OwnerId:       t.OwnerId.String(),
		Name:          t.Name,
		Description:   t.Description,
		IsActive:      t.IsActive,
		Title:         t.Title,
		Goal:          t.Goal,
		ImageURL:      t.ImageURL,
		Location:      t.Location,
		EnableRewards: t.EnableRewards,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (r *TemplateRepository) Create(ctx context.Context, t *template.FundraiserTemplate) error {
	tdb := toDBTemplate(t)
	if err := r.DB.WithContext(ctx).Table("fundraiser_templates").Create(&tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *template.FundraiserTemplate) error {
	tdb := toDBTemplate(t)
	result := r.DB.WithContext(ctx).Table("fundraiser_templates").Where("id = ?", tdb.Id).Save(&tdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *TemplateRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("template_needs").Where("template_id = ?", id.String()).Delete(&templateNeedDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		if err := tx.Table("template_reward_tiers").Where("template_id = ?", id.String()).Delete(&templateTierDB{}).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		result := tx.Table("fundraiser_templates").Where("id = ?", id.String()).Delete(&templateDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrTemplateNotFound
		}
		return nil
	})
}

func (r *TemplateRepository) GetByID(ctx context.Context, id ulid.ULID) (*template.FundraiserTemplate, error) {
	var tdb templateDB
	if err := r.DB.WithContext(ctx).Table("fundraiser_templates").Where("id = ?", id.String()).First(&tdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTemplateNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTemplate(&tdb)
}

func (r *TemplateRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*template.FundraiserTemplate, int64, error) {
	if pagination == nil {
		pagination = &pkg.PaginationParams{Page: 1, Limit: 10}
	}
	pagination.Normalize()

	var total int64
	if err := r.DB.WithContext(ctx).Table("fundraiser_templates").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []templateDB
	if err := r.DB.WithContext(ctx).Table("fundraiser_templates").Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	out := make([]*template.FundraiserTemplate, 0, len(rows))
	for i := range rows {
		t, err := toDomainTemplate(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Template needs
// ---------------------------------------------------------------------------

type templateNeedDB struct {
	Id          string `gorm:"type:varchar(26);primaryKey"`
	TemplateId  string `gorm:"type:varchar(26);index;not null"`
	NeedType    string
	Title       string
	Description string
	Priority    string
	SortOrder   int

	TargetAmount *float64

	StartDatetime    *time.Time
	EndDatetime      *time.Time
	VolunteersNeeded *int
	RoleTitle        string
	Location         string
	RewardTierRef    *string `gorm:"type:varchar(26)"`

	ItemName              string
	QuantityNeeded        *int
	Mode                  string
	Notes                 string
	DonationRewardTierRef *string `gorm:"type:varchar(26)"`
	LoanRewardTierRef     *string `gorm:"type:varchar(26)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined from fundraiser_templates; not a column of template_needs.
	OwnerId string `gorm:"->"`
}

func toDomainTemplateNeed(ndb *templateNeedDB) (*template.TemplateNeed, error) {
	id, err := pkg.ParseULID(ndb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	templateID, err := pkg.ParseULID(ndb.TemplateId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tierRef, err := pkg.ParseULIDPtr(ndb.RewardTierRef)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	donationRef, err := pkg.ParseULIDPtr(ndb.DonationRewardTierRef)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	loanRef, err := pkg.ParseULIDPtr(ndb.LoanRewardTierRef)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	out := &template.TemplateNeed{
		Id:                    id,
		TemplateId:            templateID,
		NeedType:              ndb.NeedType,
		Title:                 ndb.Title,
		Description:           ndb.Description,
		Priority:              ndb.Priority,
		SortOrder:             ndb.SortOrder,
		TargetAmount:          ndb.TargetAmount,
		StartDatetime:         ndb.StartDatetime,
		EndDatetime:           ndb.EndDatetime,
		VolunteersNeeded:      ndb.VolunteersNeeded,
		RoleTitle:             ndb.RoleTitle,
		Location:              ndb.Location,
		RewardTierRef:         tierRef,
		ItemName:              ndb.ItemName,
		QuantityNeeded:        ndb.QuantityNeeded,
		Mode:                  ndb.Mode,
		Notes:                 ndb.Notes,
		DonationRewardTierRef: donationRef,
		LoanRewardTierRef:     loanRef,
		CreatedAt:             ndb.CreatedAt,
		UpdatedAt:             ndb.UpdatedAt,
	}
	if ndb.OwnerId != "" {
		ownerID, err := pkg.ParseULID(ndb.OwnerId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out.TemplateOwnerId = ownerID
	}
	return out, nil
}

func toDBTemplateNeed(n *template.TemplateNeed) *templateNeedDB {
	return &templateNeedDB{
		Id:                    n.Id.String(),
		TemplateId:            n.TemplateId.String(),
		NeedType:              n.NeedType,
		Title:                 n.Title,
		Description:           n.Description,
		Priority:              n.Priority,
		SortOrder:             n.SortOrder,
		TargetAmount:          n.TargetAmount,
		StartDatetime:         n.StartDatetime,
		EndDatetime:           n.EndDatetime,
		VolunteersNeeded:      n.VolunteersNeeded,
		RoleTitle:             n.RoleTitle,
		Location:              n.Location,
		RewardTierRef:         pkg.ULIDPtrToStringPtr(n.RewardTierRef),
		ItemName:              n.ItemName,
		QuantityNeeded:        n.QuantityNeeded,
		Mode:                  n.Mode,
		Notes:                 n.Notes,
		DonationRewardTierRef: pkg.ULIDPtrToStringPtr(n.DonationRewardTierRef),
		LoanRewardTierRef:     pkg.ULIDPtrToStringPtr(n.LoanRewardTierRef),
		CreatedAt:             n.CreatedAt,
		UpdatedAt:             n.UpdatedAt,
	}
}

func (r *TemplateRepository) templateNeedQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("template_needs").
		Select("template_needs.*, fundraiser_templates.owner_id AS owner_id").
		Joins("JOIN fundraiser_templates ON fundraiser_templates.id = template_needs.template_id")
}

func (r *TemplateRepository) CreateNeed(ctx context.Context, n *template.TemplateNeed) error {
	ndb := toDBTemplateNeed(n)
	if err := r.DB.WithContext(ctx).Table("template_needs").Create(&ndb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TemplateRepository) UpdateNeed(ctx context.Context, n *template.TemplateNeed) error {
	ndb := toDBTemplateNeed(n)
	result := r.DB.WithContext(ctx).Table("template_needs").Where("id = ?", ndb.Id).Save(&ndb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *TemplateRepository) DeleteNeed(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("template_needs").Where("id = ?", id.String()).Delete(&templateNeedDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) GetNeedByID(ctx context.Context, id ulid.ULID) (*template.TemplateNeed, error) {
	var ndb templateNeedDB
	if err := r.templateNeedQuery(ctx).Where("template_needs.id = ?", id.String()).First(&ndb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTemplateNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTemplateNeed(&ndb)
}

func (r *TemplateRepository) GetNeedsByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateNeed, error) {
	var rows []templateNeedDB
	if err := r.templateNeedQuery(ctx).Where("template_needs.template_id = ?", templateID.String()).
		Order("template_needs.sort_order ASC, template_needs.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*template.TemplateNeed, 0, len(rows))
	for i := range rows {
		n, err := toDomainTemplateNeed(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Template reward tiers
// ---------------------------------------------------------------------------

type templateTierDB struct {
	Id                       string `gorm:"type:varchar(26);primaryKey"`
	TemplateId               string `gorm:"type:varchar(26);index;not null"`
	RewardType               string
	Name                     string
	Description              string
	MinimumContributionValue *float64
	ImageURL                 string
	SortOrder                int
	MaxBackers               *uint
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// Joined from fundraiser_templates; not a column of template_reward_tiers.
	OwnerId string `gorm:"->"`
}

func toDomainTemplateTier(tdb *templateTierDB) (*template.TemplateRewardTier, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	templateID, err := pkg.ParseULID(tdb.TemplateId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	out := &template.TemplateRewardTier{
		Id:                       id,
		TemplateId:               templateID,
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
		out.TemplateOwnerId = ownerID
	}
	return out, nil
}

func toDBTemplateTier(t *template.TemplateRewardTier) *templateTierDB {
	return &templateTierDB{
		Id:                       t.Id.String(),
		TemplateId:               t.TemplateId.String(),
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

func (r *TemplateRepository) templateTierQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Table("template_reward_tiers").
		Select("template_reward_tiers.*, fundraiser_templates.owner_id AS owner_id").
		Joins("JOIN fundraiser_templates ON fundraiser_templates.id = template_reward_tiers.template_id")
}

func (r *TemplateRepository) CreateTier(ctx context.Context, t *template.TemplateRewardTier) error {
	tdb := toDBTemplateTier(t)
	if err := r.DB.WithContext(ctx).Table("template_reward_tiers").Create(&tdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *TemplateRepository) UpdateTier(ctx context.Context, t *template.TemplateRewardTier) error {
	tdb := toDBTemplateTier(t)
	result := r.DB.WithContext(ctx).Table("template_reward_tiers").Where("id = ?", tdb.Id).Save(&tdb)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	return nil
}

func (r *TemplateRepository) DeleteTier(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("template_reward_tiers").Where("id = ?", id.String()).Delete(&templateTierDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepository) GetTierByID(ctx context.Context, id ulid.ULID) (*template.TemplateRewardTier, error) {
	var tdb templateTierDB
	if err := r.templateTierQuery(ctx).Where("template_reward_tiers.id = ?", id.String()).First(&tdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTemplateNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainTemplateTier(&tdb)
}

func (r *TemplateRepository) GetTiersByTemplateID(ctx context.Context, templateID ulid.ULID) ([]*template.TemplateRewardTier, error) {
	var rows []templateTierDB
	if err := r.templateTierQuery(ctx).Where("template_reward_tiers.template_id = ?", templateID.String()).
		Order("template_reward_tiers.sort_order ASC, template_reward_tiers.created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*template.TemplateRewardTier, 0, len(rows))
	for i := range rows {
		t, err := toDomainTemplateTier(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Apply persists everything a materialization produced inside one
// transaction: the fundraiser scalar update, the cloned reward tiers, and the
// cloned needs with their typed details. Any failure rolls the whole clone
// back.
func (r *TemplateRepository) Apply(ctx context.Context, m *template.Materialization) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fdb := toDBFundraiser(m.Fundraiser)
		if err := tx.Table("fundraisers").Where("id = ?", fdb.Id).Save(&fdb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		for _, tier := range m.Tiers {
			tdb := toDBRewardTier(tier)
			if err := tx.Table("reward_tiers").Create(&tdb).Error; err != nil {
				return appErrors.NewDatabaseError(err)
			}
		}

		for _, mn := range m.Needs {
			ndb := toDBNeed(mn.Need)
			if err := tx.Table("needs").Create(&ndb).Error; err != nil {
				return appErrors.NewDatabaseError(err)
			}

			switch {
			case mn.Money != nil:
				ddb := toDBMoneyNeed(mn.Money)
				if err := tx.Table("money_needs").Create(&ddb).Error; err != nil {
					return appErrors.NewDatabaseError(err)
				}
			case mn.Time != nil:
				ddb := toDBTimeNeed(mn.Time)
				if err := tx.Table("time_needs").Create(&ddb).Error; err != nil {
					return appErrors.NewDatabaseError(err)
				}
			case mn.Item != nil:
				ddb := toDBItemNeed(mn.Item)
				if err := tx.Table("item_needs").Create(&ddb).Error; err != nil {
					return appErrors.NewDatabaseError(err)
				}
			default:
				return appErrors.ErrInternalServer.WithError(
					errors.New("materialized need " + mn.Need.Id.String() + " has no typed detail"))
			}
		}

		return nil
	})
}
