package main

import (
	"os"
	"os/signal"
	"syscall"

	"FoodLink-Backend/cmd/config"
	migration "FoodLink-Backend/cmd/database/migrate"
	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/internal/utils"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	logger.Init(utils.GetConfig("APP_ENV"))
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.L().Fatal("database unavailable", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		logger.L().Fatal("migration failed", zap.Error(err))
	}

	app, err := config.NewApp(db)
	if err != nil {
		logger.L().Fatal("failed to build app", zap.Error(err))
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.L().Info("shutting down")
		_ = app.Shutdown()
	}()

	addr := ":" + utils.GetConfig("APP_PORT")
	logger.L().Info("FoodLink server listening", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
