// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medicku_backend/internals/features/users/auth/controller"
	"medicku_backend/internals/middlewares"
)

// AuthRoutes mounts the public endpoints. Everything else in the API sits
// behind the auth middleware.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
}
