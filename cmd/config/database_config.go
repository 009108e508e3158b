package config

import (
	"fmt"

	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/internal/utils"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L().Error("database connection failed",
			zap.String("host", utils.GetConfig("DB_HOST")),
			zap.String("db", utils.GetConfig("DB_NAME")),
			zap.Error(err),
		)
		return nil, err
	}
	return db, nil
}
