package handlers

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/presenters"
	"FoodLink-Backend/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		GetDonorOrders(c *fiber.Ctx) error
		GetOrderByID(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.PlaceOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedPlaceOrder)
	}

	res, err := h.orderService.PlaceOrder(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedPlaceOrder)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetMyOrders(c.UserContext(), userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetOrders)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *orderHandler) GetDonorOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.orderService.GetDonorOrders(c.UserContext(), userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetOrders)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *orderHandler) GetOrderByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.orderService.GetOrderByID(c.UserContext(), c.Params("id"), userID, role)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetOrders)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrInvalidOrderStatus.Error())
	}

	res, err := h.orderService.UpdateOrderStatus(c.UserContext(), c.Params("id"), req.Status, userID, role)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedUpdateStatus)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
