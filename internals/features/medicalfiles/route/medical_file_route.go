// file: internals/features/medicalfiles/route/medical_file_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"medicku_backend/internals/constants"
	"medicku_backend/internals/features/medicalfiles/controller"
	userModel "medicku_backend/internals/features/users/model"
	authMiddleware "medicku_backend/internals/middlewares/auth"
)

// MedicalFileRoutes mounts the patient-student assignment and medical-file
// workflow endpoints. The api router must already carry the auth middleware.
func MedicalFileRoutes(api fiber.Router, db *gorm.DB) {
	fileController := controller.NewMedicalFileController(db, validator.New())

	patient := api.Group("/patient",
		authMiddleware.OnlyRoles(constants.MsgOnlyPatients, userModel.RolePatient),
	)
	patient.Post("/students/:id/request", fileController.RequestStudent)

	student := api.Group("/student",
		authMiddleware.OnlyRoles(constants.MsgOnlyStudents, userModel.RoleStudent),
	)
	student.Get("/patient-requests", fileController.ListPendingPatientRequests)
	student.Put("/patients/:id/validation", fileController.ResolvePatientRequest)
	student.Get("/patients", fileController.ListAssignedPatients)
	student.Patch("/files/:id/backgrounds", fileController.UpsertBackgrounds)
	student.Post("/files/:id/backgrounds/submit", fileController.SubmitBackgrounds)
	student.Put("/files/:id/review-request", fileController.MarkUnderReview)

	professional := api.Group("/professional",
		authMiddleware.OnlyRoles(constants.MsgOnlyProfessionals, userModel.RoleProfessional),
	)
	professional.Get("/review-queue", fileController.ListReviewQueue)
	professional.Put("/files/:id/review", fileController.ReviewFile)

	// Detail and snapshot are role-agnostic here; per-file access is decided
	// in the controller against the file itself.
	api.Get("/files/:id", fileController.GetFileDetail)
	api.Post("/files/:id/snapshot", fileController.RegenerateSnapshot)
}
