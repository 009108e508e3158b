package handlers

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/presenters"
	"FoodLink-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if image, err := c.FormFile("image"); err == nil {
		req.Image = image
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedCreateFood)
	}

	res, err := h.foodService.CreateFood(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedCreateFood)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	res, err := h.foodService.GetAllFoods(c.UserContext())
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetFoods)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodService.GetMyFoods(c.UserContext(), userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetFoods)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	res, err := h.foodService.GetFoodByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetFoods)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedUpdateFood)
	}

	res, err := h.foodService.UpdateFood(c.UserContext(), c.Params("id"), *req, userID, role)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedUpdateFood)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	if err := h.foodService.DeleteFood(c.UserContext(), c.Params("id"), userID, role); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedDeleteFood)
	}
	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}
