package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobtrail/jobtrail-backend/internal/dto"
	"github.com/jobtrail/jobtrail-backend/internal/services"
)

type UserHandler struct {
	analyses *services.AnalysisService
}

func NewUserHandler(analyses *services.AnalysisService) *UserHandler {
	return &UserHandler{analyses: analyses}
}

// PublicProfile serves the public subset of a user's profile. A private
// or unknown username yields the same 404.
func (h *UserHandler) PublicProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := h.analyses.PublicProfile(username)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Public profile not found or is set to private",
		})
	}
	return c.JSON(profile)
}
