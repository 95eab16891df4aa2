package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pup-picks/pawmatch_api/shared"
)

type MediaHandler struct {
	mediaSvc MediaServiceInterface
}

func NewMediaHandler(mediaSvc MediaServiceInterface) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// @Summary Upload dog photo
// @Description Upload a photo for the caller's dog profile
// @Tags dog
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param photo formData file true "Photo file (JPG, PNG, WEBP, max 5MB)"
// @Success 201 {object} shared.Response{data=dto.MediaUploadResponse}
// @Router /api/v1/dog/photo [post]
func (h *MediaHandler) UploadDogPhoto(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	file, err := c.FormFile("photo")
	if err != nil {
		return shared.NewBadRequestError(err, "Photo file is required")
	}

	resp, err := h.mediaSvc.UploadDogPhoto(userID, file)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusCreated, "Photo uploaded", resp)
}
