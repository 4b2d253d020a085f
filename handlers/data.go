package handlers

import (
	"errors"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/fixture"
)

// HandleData returns the JSON fixture named by :filename, re-read on every request.
func HandleData(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("filename"))
	if err != nil {
		log.Printf("[data] bad file name %q: %v", c.Params("filename"), err)
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}
	data, err := deps.Store.Read(name)
	switch {
	case errors.Is(err, fixture.ErrNotFound):
		log.Printf("[data] file not found: %s", name)
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	case errors.Is(err, fixture.ErrMalformed):
		log.Printf("[data] invalid JSON in %s", name)
		return fiber.NewError(fiber.StatusInternalServerError, "Malformed JSON")
	case err != nil:
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(data)
}
