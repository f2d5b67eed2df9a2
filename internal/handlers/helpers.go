package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func getUserID(c *fiber.Ctx) (string, error) {
	v := c.Locals("userId")
	if v == nil {
		return "", fmt.Errorf("unauthorized")
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return "", fmt.Errorf("invalid userId type: %T", v)
	}
}
