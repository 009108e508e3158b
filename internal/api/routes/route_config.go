package routes

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/handlers"
	"FoodLink-Backend/internal/middleware"
	"FoodLink-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	FoodHandler        handlers.FoodHandler
	FundHandler        handlers.FundHandler
	OrderHandler       handlers.OrderHandler
	LeaderboardHandler handlers.LeaderboardHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Foods()
	c.Funds()
	c.Orders()
	c.Leaderboard()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
	)
	users.Get("", c.UserHandler.GetUsers)
	users.Get("/:id", c.UserHandler.GetUserByID)
	users.Put("/:id", c.UserHandler.UpdateUser)
	users.Delete("/:id", c.UserHandler.DeleteUser)
}

func (c *Config) Foods() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	foods := c.App.Group("/api/foods")

	foods.Post("", auth, c.Middleware.RoleMiddleware(domain.RoleDonor), c.Middleware.AccessMiddleware(), c.FoodHandler.CreateFood)
	foods.Get("", c.FoodHandler.GetFoods)
	// must stay ahead of /:id
	foods.Get("/my-foods", auth, c.Middleware.RoleMiddleware(domain.RoleDonor), c.FoodHandler.GetMyFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodByID)
	foods.Put("/:id", auth, c.FoodHandler.UpdateFood)
	foods.Delete("/:id", auth, c.FoodHandler.DeleteFood)
}

func (c *Config) Funds() {
	funds := c.App.Group("/api/funds", c.Middleware.AuthMiddleware(c.JWTService))

	funds.Post("", c.Middleware.RoleMiddleware(domain.RoleDonor), c.Middleware.AccessMiddleware(), c.FundHandler.CreateFund)
	funds.Get("/my", c.Middleware.RoleMiddleware(domain.RoleDonor), c.FundHandler.GetMyFunds)
	funds.Get("", c.Middleware.RoleMiddleware(domain.RoleAdmin), c.FundHandler.GetAllFunds)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders", c.Middleware.AuthMiddleware(c.JWTService))

	orders.Post("", c.Middleware.RoleMiddleware(domain.RoleNGO), c.Middleware.AccessMiddleware(), c.OrderHandler.PlaceOrder)
	orders.Get("", c.Middleware.RoleMiddleware(domain.RoleNGO), c.OrderHandler.GetMyOrders)
	orders.Get("/donor", c.Middleware.RoleMiddleware(domain.RoleDonor), c.OrderHandler.GetDonorOrders)
	orders.Get("/:id", c.OrderHandler.GetOrderByID)
	orders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) Leaderboard() {
	board := c.App.Group("/api/leaderboard",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin),
	)
	board.Get("", c.LeaderboardHandler.GetLeaderboard)
	board.Get("/export", c.LeaderboardHandler.ExportLeaderboard)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
