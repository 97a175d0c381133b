package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/config"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newFundraiserRepository,
		newNeedRepository,
		newRewardTierRepository,
		newPledgeRepository,
		newTemplateRepository,
		newReportRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newFundraiserRepository(db *gorm.DB) *infrastructure.FundraiserRepository {
	return &infrastructure.FundraiserRepository{DB: db}
}

func newNeedRepository(db *gorm.DB) *infrastructure.NeedRepository {
	return &infrastructure.NeedRepository{DB: db}
}

func newRewardTierRepository(db *gorm.DB) *infrastructure.RewardTierRepository {
	return &infrastructure.RewardTierRepository{DB: db}
}

func newPledgeRepository(db *gorm.DB) *infrastructure.PledgeRepository {
	return &infrastructure.PledgeRepository{DB: db}
}

func newTemplateRepository(db *gorm.DB) *infrastructure.TemplateRepository {
	return &infrastructure.TemplateRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}
