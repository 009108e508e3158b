package middleware

import (
	"strings"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/presenters"
	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/pkg/jwt"
	"FoodLink-Backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

type (
	Middleware interface {
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		RoleMiddleware(roles ...string) fiber.Handler
		AccessMiddleware() fiber.Handler
		CORSMiddleware() fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
		allowOrigins   string
	}
)

func NewMiddleware(userRepository user.UserRepository, allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{
		userRepository: userRepository,
		allowOrigins:   allowOrigins,
	}
}

// AuthMiddleware resolves the bearer token to a stored user so role and
// access always reflect the current record, not the token's claims.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrTokenNotFound.Error())
		}

		userID, _, err := jwtService.GetUserIDByToken(strings.TrimSpace(parts[1]))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
		}

		u, err := m.userRepository.GetUserByID(c.UserContext(), userID)
		if err != nil {
			logger.FromCtx(c.UserContext()).Warn("token user lookup failed",
				zap.String("user_id", userID), zap.Error(err))
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrTokenInvalid.Error())
		}

		c.Locals("user_id", u.ID.String())
		c.Locals("role", u.Role)
		c.Locals("access", u.Access)
		return c.Next()
	}
}

func (m *middleware) RoleMiddleware(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !allowed[role] {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed)
		}
		return c.Next()
	}
}

func (m *middleware) AccessMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == domain.RoleAdmin {
			return c.Next()
		}
		if access, _ := c.Locals("access").(bool); !access {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAccessNotApproved)
		}
		return c.Next()
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}
