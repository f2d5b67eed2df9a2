package handlers

import "github.com/gofiber/fiber/v2"

// states the location filter offers; same fixed catalog the frontend ships.
var states = map[string][]string{
	"Delhi":       {"New Delhi", "Dwarka", "Saket"},
	"Maharashtra": {"Mumbai", "Pune", "Nagpur"},
	"Karnataka":   {"Bengaluru", "Mysuru"},
}

type LocationHandler struct{}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

func (h *LocationHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    states,
	})
}
