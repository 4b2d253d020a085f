package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/haruko-imports/site/config"
	"github.com/haruko-imports/site/signup"
)

// signupRateLimiter is a strict rate limiter for newsletter signups (per IP).
// Each call builds a fresh limiter with its own counters.
func signupRateLimiter() fiber.Handler {
	if config.SignupRateLimitMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        config.SignupRateLimitMax,
		Expiration: config.SignupRateLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(signup.Response{
				Success: false,
				Message: "Too many signup attempts. Please try again later.",
			})
		},
	})
}
