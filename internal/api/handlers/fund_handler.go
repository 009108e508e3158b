package handlers

import (
	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/presenters"
	"FoodLink-Backend/pkg/fund"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FundHandler interface {
		CreateFund(c *fiber.Ctx) error
		GetMyFunds(c *fiber.Ctx) error
		GetAllFunds(c *fiber.Ctx) error
	}

	fundHandler struct {
		fundService fund.FundService
		validator   *validator.Validate
	}
)

func NewFundHandler(fundService fund.FundService, validator *validator.Validate) FundHandler {
	return &fundHandler{
		fundService: fundService,
		validator:   validator,
	}
}

func (h *fundHandler) CreateFund(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFundRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if req.Amount == nil || req.PaymentMethod == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrFundAmountRequired.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedCreateFund)
	}

	res, err := h.fundService.CreateFund(c.UserContext(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedCreateFund)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *fundHandler) GetMyFunds(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fundService.GetMyFunds(c.UserContext(), userID)
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetFunds)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *fundHandler) GetAllFunds(c *fiber.Ctx) error {
	res, err := h.fundService.GetAllFunds(c.UserContext())
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetFunds)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
