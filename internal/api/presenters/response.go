package presenters

import (
	"context"
	"errors"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/logger"
	"FoodLink-Backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ErrorBody struct {
	Message string `json:"message"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Message: message})
}

// HandleError writes err with the status its kind maps to. Internal failures
// are logged and answered with failedMessage only.
func HandleError(c *fiber.Ctx, err error, failedMessage string) error {
	status := StatusFor(err)
	if status == fiber.StatusInternalServerError {
		logError(c.UserContext(), c, err, failedMessage)
		return ErrorResponse(c, status, failedMessage)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrorResponse(c, status, failedMessage+": "+utils.ValidationMessage(verrs))
	}
	return ErrorResponse(c, status, err.Error())
}

func StatusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &verrs):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedAccess),
		errors.Is(err, domain.ErrUnauthorizedOrderAccess),
		errors.Is(err, domain.ErrUserNotAllowed),
		errors.Is(err, domain.ErrAccessNotApproved):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrFoodStatusConflict),
		errors.Is(err, domain.ErrFoodInUse),
		errors.Is(err, domain.ErrOrderStatusConflict),
		errors.Is(err, domain.ErrUserInUse):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrFoodNotAvailable),
		errors.Is(err, domain.ErrInvalidOrderStatus),
		errors.Is(err, domain.ErrInvalidOrderTransition),
		errors.Is(err, domain.ErrInvalidFoodType),
		errors.Is(err, domain.ErrInvalidFoodStatus),
		errors.Is(err, domain.ErrInvalidFoodTransition),
		errors.Is(err, domain.ErrInvalidExpiryDate),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrQuantityRequired),
		errors.Is(err, domain.ErrFoodNameRequired),
		errors.Is(err, domain.ErrInvalidImageFormat),
		errors.Is(err, domain.ErrInvalidEstimatedDetails),
		errors.Is(err, domain.ErrNoUpdatableFieldProvided),
		errors.Is(err, domain.ErrFundAmountRequired),
		errors.Is(err, domain.ErrInvalidFundAmount),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func logError(ctx context.Context, c *fiber.Ctx, err error, message string) {
	logger.FromCtx(ctx).Error(message,
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
}
