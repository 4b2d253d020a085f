package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/haruko-imports/site/ui"
)

// CustomErrorHandler answers API routes with a JSON {error} body and every
// other route with the HTML error page.
func CustomErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := utils.StatusMessage(code)

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("[error] %s %s: %v", c.Method(), c.Path(), err)
	}

	c.Status(code)
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.JSON(fiber.Map{"error": message})
	}
	return render(c, ui.ErrorPage(code, message))
}
