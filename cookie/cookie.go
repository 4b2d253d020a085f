package cookie

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/page"
)

// GetState returns the UI state carried by the request, or the zero state.
func GetState(c *fiber.Ctx) page.State {
	return page.DecodeState(c.Cookies(config.StateCookie))
}

// SetState stores the UI state for the next request.
func SetState(c *fiber.Ctx, s page.State) {
	c.Cookie(&fiber.Cookie{
		Name:     config.StateCookie,
		Value:    s.Encode(),
		MaxAge:   30 * 24 * 60 * 60, // 30 days
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		Path:     "/",
		SameSite: "Lax",
	})
}
