package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"FoodLink-Backend/internal/api/handlers"
	"FoodLink-Backend/internal/api/routes"
	applog "FoodLink-Backend/internal/logger"
	"FoodLink-Backend/internal/middleware"
	"FoodLink-Backend/internal/utils"
	"FoodLink-Backend/internal/utils/storage"
	"FoodLink-Backend/pkg/estimator"
	"FoodLink-Backend/pkg/food"
	"FoodLink-Backend/pkg/fund"
	"FoodLink-Backend/pkg/jwt"
	"FoodLink-Backend/pkg/leaderboard"
	"FoodLink-Backend/pkg/order"
	"FoodLink-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") != "production",
	})
	validator := utils.Validate

	app.Use(applog.RequestIDMiddleware())

	// setting up access logging and limiter
	logFile := utils.GetConfig("ACCESS_LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:request_id} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetRateLimit(),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(context.Background(), storage.Config{
		Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
		Region:    utils.GetConfig("AWS_S3_REGION"),
		AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
		SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
	})
	if err != nil {
		return nil, err
	}
	foodEstimator := estimator.NewGeminiEstimator(
		utils.GetConfig("GEMINI_API_KEY"),
		utils.GetConfig("GEMINI_MODEL"),
	)
	if utils.GetConfig("GEMINI_API_KEY") == "" {
		applog.L().Warn("GEMINI_API_KEY is not set, food details must be supplied by donors")
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	fundRepository := fund.NewFundRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3, foodEstimator)
	fundService := fund.NewFundService(fundRepository)
	orderService := order.NewOrderService(orderRepository)
	leaderboardService := leaderboard.NewLeaderboardService(foodRepository, fundRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	fundHandler := handlers.NewFundHandler(fundService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)

	middlewares := middleware.NewMiddleware(userRepository, utils.GetConfig("CORS_ALLOW_ORIGINS"))

	// routes
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        userHandler,
		FoodHandler:        foodHandler,
		FundHandler:        fundHandler,
		OrderHandler:       orderHandler,
		LeaderboardHandler: leaderboardHandler,
		Middleware:         middlewares,
		JWTService:         jwtService,
	}
	routesConfig.Setup()

	applog.L().Info("application wired", zap.String("env", utils.GetConfig("APP_ENV")))
	return app, nil
}
