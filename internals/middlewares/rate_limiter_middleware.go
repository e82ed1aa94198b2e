package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "github.com/z-anah/nomor-surat/internals/helpers"
)

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter() fiber.Handler {
	return rateLimiter(100, time.Minute, "Too many requests. Please try again later.")
}

// IssueRateLimiter lebih ketat karena endpoint ini mencoba password ke Supabase Auth.
func IssueRateLimiter() fiber.Handler {
	return rateLimiter(5, time.Minute, "Too many number requests. Please wait a moment.")
}
