package local

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/cookie"
	"github.com/haruko-imports/site/page"
)

const stateKey = "uiState"

// GetState returns the request's UI state, decoding the cookie on first use.
func GetState(c *fiber.Ctx) page.State {
	if s, ok := c.Locals(stateKey).(page.State); ok {
		return s
	}
	s := cookie.GetState(c)
	c.Locals(stateKey, s)
	return s
}

// SetState records the new UI state for the rest of the request and the next one.
func SetState(c *fiber.Ctx, s page.State) {
	c.Locals(stateKey, s)
	cookie.SetState(c, s)
}
