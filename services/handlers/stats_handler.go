package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/shared"
)

type StatsHandler struct {
	statsSvc StatsServiceInterface
}

func NewStatsHandler(statsSvc StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

// @Summary Get user stats
// @Description Get swipe totals, streaks, points and achievements
// @Tags stats
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.StatsResponse}
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.statsSvc.GetStats(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Claim daily login bonus
// @Tags stats
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.DailyLoginResponse}
// @Router /api/v1/stats/daily-login [post]
func (h *StatsHandler) ClaimDailyLogin(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.statsSvc.ClaimDailyLogin(userID)
	if err != nil {
		return err
	}

	if !resp.Claimed {
		return shared.ResponseJSON(c, fiber.StatusOK, "Daily bonus already claimed", resp)
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Daily bonus claimed", resp)
}
