package infrastructure

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/config"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/fundraiser"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/need"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/pledge"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/reward"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/template"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/domain/user"
	"github.com/Rebecca-de-Winter/crowdfunding-back-end/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("failed to connect to the database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("failed to get the underlying database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("running migrations...")

	entities := []interface{}{
		&user.User{},
		&fundraiser.Fundraiser{},
		&need.Need{},
		&need.MoneyNeed{},
		&need.TimeNeed{},
		&need.ItemNeed{},
		&reward.Tier{},
		&pledge.Pledge{},
		&pledge.MoneyPledge{},
		&pledge.TimePledge{},
		&pledge.ItemPledge{},
		&template.FundraiserTemplate{},
		&template.TemplateNeed{},
		&template.TemplateRewardTier{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("failed to migrate entity")
			return err
		}
	}

	logger.Info().Msg("migrations completed")
	return nil
}

func getEntityName(entity interface{}) string {
	name := fmt.Sprintf("%T", entity)
	return strings.TrimPrefix(name, "*")
}
