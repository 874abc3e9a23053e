// file: internals/features/credentials/controller/credential_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medicku_backend/internals/constants"
	credDTO "medicku_backend/internals/features/credentials/dto"
	credModel "medicku_backend/internals/features/credentials/model"
	credService "medicku_backend/internals/features/credentials/service"
	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

type CredentialController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCredentialController(db *gorm.DB, v *validator.Validate) *CredentialController {
	return &CredentialController{DB: db, Validate: v}
}

/* ===================== ADMIN → PROFESSIONAL ===================== */

// POST /api/admin/professionals/:id/approve
func (ctrl *CredentialController) ApproveProfessional(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	professionalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid professional id")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		target, cred, err := loadUserWithCredential(tx, professionalID)
		if err != nil {
			return err
		}
		if err := credService.ApproveProfessional(caller, target, cred, now); err != nil {
			return err
		}
		if err := tx.Save(target).Error; err != nil {
			return errs.Internal("failed to persist professional", err)
		}
		if err := tx.Save(cred).Error; err != nil {
			return errs.Internal("failed to persist credential", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Professional approved", nil)
}

/* ===================== STUDENT → PROFESSIONAL ===================== */

// POST /api/student/professionals/:id/request
func (ctrl *CredentialController) RequestValidation(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	professionalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid professional id")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		student, cred, err := loadUserWithCredential(tx, caller.ID)
		if err != nil {
			return err
		}
		var professional userModel.UserModel
		if err := tx.First(&professional, "id = ?", professionalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("PROFESSIONAL_NOT_FOUND", "Professional not found")
			}
			return errs.Internal("failed to load professional", err)
		}
		if err := credService.RequestValidation(caller, student, &professional, cred, now); err != nil {
			return err
		}
		if err := tx.Save(cred).Error; err != nil {
			return errs.Internal("failed to persist credential", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Validation request sent to professional", nil)
}

// PUT /api/professional/students/:id/validation  body: {action}
func (ctrl *CredentialController) ResolveStudentRequest(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req credDTO.ResolveStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	action, ok := constants.ParseResolveAction(req.Action)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Action must be 'approve' or 'reject'")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		student, cred, err := loadUserWithCredential(tx, studentID)
		if err != nil {
			return err
		}
		if err := credService.ResolveStudentRequest(caller, student, cred, action, now); err != nil {
			return err
		}
		if err := tx.Save(student).Error; err != nil {
			return errs.Internal("failed to persist student", err)
		}
		if err := tx.Save(cred).Error; err != nil {
			return errs.Internal("failed to persist credential", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Student request resolved", fiber.Map{"action": string(action)})
}

/* ===================== READ PROJECTIONS ===================== */

// GET /api/professional/student-requests
func (ctrl *CredentialController) ListPendingStudentRequests(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var creds []credModel.AcademicCredentialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("requested_professional_id = ?", caller.ID).
		Order("requested_at ASC").
		Find(&creds).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student requests")
	}

	out := make([]credDTO.StudentRequestResponse, 0, len(creds))
	for _, cred := range creds {
		var student userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).First(&student, "id = ?", cred.UserID).Error; err != nil {
			continue
		}
		out = append(out, credDTO.NewStudentRequestResponse(student, cred))
	}
	return helper.JsonSuccess(c, "Pending student requests", out)
}

// GET /api/patient/students: approved students a patient may pick from.
// Query: page, per_page|limit.
func (ctrl *CredentialController) ListApprovedStudents(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "first_surname", "asc", helper.DefaultOpts)

	var students []userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("role = ? AND status = ?", userModel.RoleStudent, userModel.StatusApproved).
		Order("first_surname ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	out := make([]credDTO.ApprovedStudentResponse, 0, len(students))
	for _, student := range students {
		var cred credModel.AcademicCredentialModel
		if err := ctrl.DB.WithContext(c.Context()).First(&cred, "user_id = ?", student.ID).Error; err != nil {
			continue
		}
		out = append(out, credDTO.NewApprovedStudentResponse(student, cred))
	}
	return helper.JsonSuccess(c, "Approved students", out)
}

// GET /api/student/professionals: approved professionals students can ask.
// Query: page, per_page|limit.
func (ctrl *CredentialController) ListApprovedProfessionals(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "first_surname", "asc", helper.DefaultOpts)

	var pros []userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("role = ? AND status = ?", userModel.RoleProfessional, userModel.StatusApproved).
		Order("first_surname ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&pros).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load professionals")
	}

	out := make([]fiber.Map, 0, len(pros))
	for _, p := range pros {
		out = append(out, fiber.Map{
			"professional_id": p.ID,
			"full_name":       p.FullName(),
		})
	}
	return helper.JsonSuccess(c, "Approved professionals", out)
}

/* ===================== SHARED LOADERS ===================== */

func loadUserWithCredential(tx *gorm.DB, userID uuid.UUID) (*userModel.UserModel, *credModel.AcademicCredentialModel, error) {
	var user userModel.UserModel
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errs.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, nil, errs.Internal("failed to load user", err)
	}
	var cred credModel.AcademicCredentialModel
	if err := tx.First(&cred, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &user, nil, nil
		}
		return nil, nil, errs.Internal("failed to load credential", err)
	}
	return &user, &cred, nil
}
