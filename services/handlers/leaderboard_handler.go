package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/shared"
)

type LeaderboardHandler struct {
	userSvc UserServiceInterface
	jwtSvc  JWTServiceInterface
}

func NewLeaderboardHandler(userSvc UserServiceInterface, jwtSvc JWTServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		userSvc: userSvc,
		jwtSvc:  jwtSvc,
	}
}

// @Summary Get Leaderboard
// @Description Get all-time points leaderboard
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Limit results (default 50)"
// @Success 200 {object} shared.Response{data=dto.LeaderboardResponse}
// @Router /api/v1/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	var userID string
	if authHeader := c.Get("Authorization"); authHeader != "" {
		if token, err := h.jwtSvc.ExtractTokenFromHeader(authHeader); err == nil {
			if uid, err := h.jwtSvc.VerifyJWTToken(token); err == nil {
				userID = uid
			}
		}
	}

	leaderboard, err := h.userSvc.GetLeaderboard(limit, userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", leaderboard)
}
