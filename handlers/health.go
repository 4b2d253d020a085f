package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth reports whether the fixture directory is readable.
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{"status": "ok"}

	if err := deps.Store.Ping(); err != nil {
		health["status"] = "unhealthy"
		health["data"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["data"] = "up"
	}

	return c.JSON(health)
}
