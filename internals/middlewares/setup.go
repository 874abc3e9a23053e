// file: internals/middlewares/setup.go
package middlewares

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"

	"medicku_backend/internals/configs"
	"medicku_backend/internals/helpers/logger"
)

// SetupMiddlewares wires the cross-cutting request pipeline: panic recovery,
// CORS, rate limiting, and request logging with a request id.
func SetupMiddlewares(app *fiber.App) {
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(RequestLogger())
}

func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS", "http://localhost:5173")
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(strings.Split(origins, ","), ", "),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}

func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"status":  "error",
				"message": "Too many requests, slow down",
			})
		},
	})
}

// LoginRateLimiter throttles credential guessing per IP.
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"status":  "error",
				"message": "Too many login attempts, try again later",
			})
		},
	})
}

func RegisterRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":    fiber.StatusTooManyRequests,
				"status":  "error",
				"message": "Too many registrations, try again later",
			})
		},
	})
}

// RequestLogger stamps a request id and logs method/path/status/duration.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		start := time.Now()
		err := c.Next()

		logger.WithFields(map[string]interface{}{
			"reqid":    id,
			"method":   c.Method(),
			"path":     c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Info("request")
		return err
	}
}
