// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	credRoute "medicku_backend/internals/features/credentials/route"
	fileRoute "medicku_backend/internals/features/medicalfiles/route"
	authRoute "medicku_backend/internals/features/users/auth/route"
	userRoute "medicku_backend/internals/features/users/route"
	"medicku_backend/internals/helpers/logger"
	authMiddleware "medicku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	logger.L().Info("Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PROTECTED =====================
	// One authed group; role gates live in the feature routes.
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	logger.L().Info("Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	logger.L().Info("Setting up CredentialRoutes...")
	credRoute.CredentialRoutes(api, db)

	logger.L().Info("Setting up MedicalFileRoutes...")
	fileRoute.MedicalFileRoutes(api, db)
}
