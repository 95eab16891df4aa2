package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/shared"
	log "github.com/sirupsen/logrus"
)

type ChallengeHandler struct {
	challengeSvc ChallengeServiceInterface
	statsSvc     StatsServiceInterface
}

func NewChallengeHandler(challengeSvc ChallengeServiceInterface, statsSvc StatsServiceInterface) *ChallengeHandler {
	return &ChallengeHandler{
		challengeSvc: challengeSvc,
		statsSvc:     statsSvc,
	}
}

// @Summary Get challenge state
// @Description Get today's challenges, spins, points and unspent rewards
// @Tags challenges
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ChallengeSnapshot}
// @Router /api/v1/challenges [get]
func (h *ChallengeHandler) GetChallenges(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.challengeSvc.GetSnapshot(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Record a swipe
// @Description Track one swipe against challenges, streaks and points
// @Tags challenges
// @Accept json
// @Produce json
// @Security Bearer
// @Param swipeEvent body dto.SwipeEventRequest true "Swipe direction"
// @Success 200 {object} shared.Response{data=dto.ChallengeSnapshot}
// @Router /api/v1/swipes [post]
func (h *ChallengeHandler) RecordSwipe(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SwipeEventRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.challengeSvc.TrackSwipe(userID, req.Liked)
	if err != nil {
		return err
	}

	if _, err := h.statsSvc.RecordSwipe(userID, req.Liked); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to record swipe stats")
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Swipe recorded", resp)
}

// @Summary Record a detail view
// @Tags challenges
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.ChallengeSnapshot}
// @Router /api/v1/toys/{toyId}/view [post]
func (h *ChallengeHandler) RecordViewDetails(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.challengeSvc.TrackViewDetails(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "View recorded", resp)
}

// @Summary Spin the prize wheel
// @Description Spend one spin credit for a weighted random prize
// @Tags challenges
// @Produce json
// @Security Bearer
// @Success 200 {object} shared.Response{data=dto.SpinResponse}
// @Router /api/v1/wheel/spin [post]
func (h *ChallengeHandler) Spin(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.challengeSvc.Spin(userID)
	if err != nil {
		return err
	}

	if resp.Prize == nil {
		return shared.ResponseJSON(c, fiber.StatusOK, "No spins available", resp)
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Spin resolved", resp)
}

// @Summary Use a reward
// @Description Mark a won reward as used
// @Tags challenges
// @Produce json
// @Security Bearer
// @Param rewardId path string true "Reward ID"
// @Success 200 {object} shared.Response{data=dto.ChallengeSnapshot}
// @Router /api/v1/rewards/{rewardId}/use [post]
func (h *ChallengeHandler) UseReward(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	rewardID := c.Params("rewardId")

	resp, err := h.challengeSvc.UseReward(userID, rewardID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Reward used", resp)
}
