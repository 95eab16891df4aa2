package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/dto"
	"github.com/pup-picks/pawmatch_api/shared"
)

type ToyHandler struct {
	toySvc ToyServiceInterface
}

func NewToyHandler(toySvc ToyServiceInterface) *ToyHandler {
	return &ToyHandler{
		toySvc: toySvc,
	}
}

func parseToyID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("toyId"), 10, 32)
	if err != nil {
		return 0, shared.NewBadRequestError(err, "Invalid toy id")
	}
	return uint(id), nil
}

func optionalUserID(c *fiber.Ctx) string {
	if userID, ok := c.Locals(shared.UserID).(string); ok {
		return userID
	}
	return ""
}

// @Summary List toys
// @Description List the catalog ranked by match score for the caller's dog
// @Tags toys
// @Produce json
// @Success 200 {object} shared.Response{data=dto.ToyListResponse}
// @Router /api/v1/toys [get]
func (h *ToyHandler) ListToys(c *fiber.Ctx) error {
	resp, err := h.toySvc.ListToys(optionalUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get toy
// @Tags toys
// @Produce json
// @Param toyId path int true "Toy ID"
// @Success 200 {object} shared.Response{data=dto.ToyResponse}
// @Router /api/v1/toys/{toyId} [get]
func (h *ToyHandler) GetToy(c *fiber.Ctx) error {
	toyID, err := parseToyID(c)
	if err != nil {
		return err
	}

	resp, err := h.toySvc.GetToy(toyID, optionalUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Get featured toy
// @Description Get today's featured toy with its discount
// @Tags toys
// @Produce json
// @Success 200 {object} shared.Response{data=dto.FeaturedToyResponse}
// @Router /api/v1/toys/featured [get]
func (h *ToyHandler) GetFeaturedToy(c *fiber.Ctx) error {
	resp, err := h.toySvc.FeaturedToy()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary List reviews for a toy
// @Tags reviews
// @Produce json
// @Param toyId path int true "Toy ID"
// @Success 200 {object} shared.Response{data=dto.ReviewListResponse}
// @Router /api/v1/toys/{toyId}/reviews [get]
func (h *ToyHandler) GetReviews(c *fiber.Ctx) error {
	toyID, err := parseToyID(c)
	if err != nil {
		return err
	}

	resp, err := h.toySvc.GetReviews(toyID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", resp)
}

// @Summary Review a toy
// @Tags reviews
// @Accept json
// @Produce json
// @Security Bearer
// @Param toyId path int true "Toy ID"
// @Param reviewRequest body dto.ReviewRequest true "Review"
// @Success 201 {object} shared.Response{data=dto.ReviewResponse}
// @Router /api/v1/toys/{toyId}/reviews [post]
func (h *ToyHandler) AddReview(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	toyID, err := parseToyID(c)
	if err != nil {
		return err
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	resp, err := h.toySvc.AddReview(userID, toyID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Review saved", resp)
}
