// file: internals/features/credentials/route/credential_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medicku_backend/internals/constants"
	"medicku_backend/internals/features/credentials/controller"
	userModel "medicku_backend/internals/features/users/model"
	authMiddleware "medicku_backend/internals/middlewares/auth"
)

// CredentialRoutes mounts the academic-validation endpoints: admins approve
// professionals, students ask a professional, professionals resolve. The api
// router must already carry the auth middleware.
func CredentialRoutes(api fiber.Router, db *gorm.DB) {
	credController := controller.NewCredentialController(db, validator.New())

	admin := api.Group("/admin",
		authMiddleware.OnlyRoles(constants.MsgOnlyAdmins, userModel.RoleAdmin),
	)
	admin.Post("/professionals/:id/approve", credController.ApproveProfessional)

	student := api.Group("/student",
		authMiddleware.OnlyRoles(constants.MsgOnlyStudents, userModel.RoleStudent),
	)
	student.Get("/professionals", credController.ListApprovedProfessionals)
	student.Post("/professionals/:id/request", credController.RequestValidation)

	professional := api.Group("/professional",
		authMiddleware.OnlyRoles(constants.MsgOnlyProfessionals, userModel.RoleProfessional),
	)
	professional.Get("/student-requests", credController.ListPendingStudentRequests)
	professional.Put("/students/:id/validation", credController.ResolveStudentRequest)

	patient := api.Group("/patient",
		authMiddleware.OnlyRoles(constants.MsgOnlyPatients, userModel.RolePatient),
	)
	patient.Get("/students", credController.ListApprovedStudents)
}
