// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medicku_backend/internals/constants"
	"medicku_backend/internals/features/users/controller"
	userModel "medicku_backend/internals/features/users/model"
	authMiddleware "medicku_backend/internals/middlewares/auth"
)

// UserRoutes expects api to already carry the auth middleware.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	api.Get("/me", userController.Me)

	admin := api.Group("/admin",
		authMiddleware.OnlyRoles(constants.MsgOnlyAdmins, userModel.RoleAdmin),
	)
	admin.Get("/users", userController.ListUsers)
}
