package handlers

import (
	"bytes"
	"fmt"
	"time"

	"FoodLink-Backend/domain"
	"FoodLink-Backend/internal/api/presenters"
	"FoodLink-Backend/pkg/leaderboard"

	"github.com/gofiber/fiber/v2"
)

type (
	LeaderboardHandler interface {
		GetLeaderboard(c *fiber.Ctx) error
		ExportLeaderboard(c *fiber.Ctx) error
	}

	leaderboardHandler struct {
		leaderboardService leaderboard.LeaderboardService
	}
)

func NewLeaderboardHandler(leaderboardService leaderboard.LeaderboardService) LeaderboardHandler {
	return &leaderboardHandler{leaderboardService: leaderboardService}
}

func (h *leaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	res, err := h.leaderboardService.GetLeaderboard(c.UserContext())
	if err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedGetLeaderboard)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *leaderboardHandler) ExportLeaderboard(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.leaderboardService.ExportXLSX(c.UserContext(), &buf); err != nil {
		return presenters.HandleError(c, err, domain.MessageFailedExportBoard)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=leaderboard_%s.xlsx", time.Now().Format("20060102")))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
