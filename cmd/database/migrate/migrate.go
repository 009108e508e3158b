package migration

import (
	"FoodLink-Backend/entities"
	"FoodLink-Backend/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		logger.L().Warn("could not create uuid-ossp extension", zap.Error(err))
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"food listing", &entities.FoodListing{}},
		{"fund donation", &entities.FundDonation{}},
		{"order", &entities.Order{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			logger.L().Error("error migrating "+m.name+" table", zap.Error(err))
			return err
		}
	}

	logger.L().Info("database migration complete")
	return nil
}
