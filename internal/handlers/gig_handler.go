package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/linkwork-app/linkwork_be/internal/services/data"
)

type GigHandler struct {
	Data *data.DataService
}

func NewGigHandler(svc *data.DataService) *GigHandler {
	return &GigHandler{Data: svc}
}

// List returns the seeded gig catalog. Gigs are read-only; nothing ever
// creates or edits one.
func (h *GigHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Data.Gigs(),
	})
}
