package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/signup"
)

// HandleSignup accepts a newsletter signup as JSON or form data. Nothing is stored.
func HandleSignup(c *fiber.Ctx) error {
	var req signup.Request
	if err := c.BodyParser(&req); err != nil {
		// An unreadable body is treated like an empty one.
		log.Printf("[signup] could not parse body: %v", err)
	}

	resp, err := signup.Submit(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}
	return c.JSON(resp)
}
