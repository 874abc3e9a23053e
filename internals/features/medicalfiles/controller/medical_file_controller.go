// file: internals/features/medicalfiles/controller/medical_file_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"medicku_backend/internals/constants"
	fileDTO "medicku_backend/internals/features/medicalfiles/dto"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	fileService "medicku_backend/internals/features/medicalfiles/service"
	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

type MedicalFileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMedicalFileController(db *gorm.DB, v *validator.Validate) *MedicalFileController {
	return &MedicalFileController{DB: db, Validate: v}
}

/* ===================== PATIENT → STUDENT ===================== */

// POST /api/patient/students/:id/request
func (ctrl *MedicalFileController) RequestStudent(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		patient, err := loadUser(tx, caller.ID)
		if err != nil {
			return err
		}
		student, err := loadUser(tx, studentID)
		if err != nil {
			return err
		}

		// Files are normally created at registration; patients registered
		// before that behavior get one lazily here.
		var file fileModel.MedicalFileModel
		if err := tx.First(&file, "user_id = ?", caller.ID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.Internal("failed to load medical file", err)
			}
			file = fileModel.MedicalFileModel{UserID: caller.ID, FileStatus: fileModel.FileStatusEmpty}
			if err := tx.Create(&file).Error; err != nil {
				return errs.Internal("failed to create medical file", err)
			}
		}

		if err := fileService.RequestStudent(caller, patient, student, &file, now); err != nil {
			return err
		}
		if err := tx.Save(&file).Error; err != nil {
			return errs.Internal("failed to persist medical file", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Request sent to student", nil)
}

// PUT /api/student/patients/:id/validation  body: {action}
func (ctrl *MedicalFileController) ResolvePatientRequest(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid patient id")
	}

	var req fileDTO.ResolvePatientRequest
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
		student, err := loadUser(tx, caller.ID)
		if err != nil {
			return err
		}
		patient, err := loadUser(tx, patientID)
		if err != nil {
			return err
		}
		file, err := loadFileByPatient(tx, patientID)
		if err != nil {
			return err
		}
		if err := fileService.ResolvePatientRequest(caller, student, patient, file, action, now); err != nil {
			return err
		}
		if err := tx.Save(file).Error; err != nil {
			return errs.Internal("failed to persist medical file", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Patient request resolved", fiber.Map{"action": string(action)})
}

/* ===================== PROFESSIONAL REVIEW ===================== */

// PUT /api/professional/files/:id/review  body: {action}
func (ctrl *MedicalFileController) ReviewFile(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	var req fileDTO.ReviewFileRequest
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
		file, err := loadFile(tx, fileID)
		if err != nil {
			return err
		}
		if err := fileService.ReviewFile(caller, file, action, now); err != nil {
			return err
		}
		if err := tx.Save(file).Error; err != nil {
			return errs.Internal("failed to persist medical file", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Medical file reviewed", fiber.Map{"action": string(action)})
}

/* ===================== READ PROJECTIONS ===================== */

// GET /api/student/patient-requests
func (ctrl *MedicalFileController) ListPendingPatientRequests(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var files []fileModel.MedicalFileModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("patient_requested_student_id = ?", caller.ID).
		Order("patient_requested_student_at ASC").
		Find(&files).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load patient requests")
	}

	out := make([]fileDTO.PatientRequestResponse, 0, len(files))
	for _, file := range files {
		var patient userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).First(&patient, "id = ?", file.UserID).Error; err != nil {
			continue
		}
		out = append(out, fileDTO.NewPatientRequestResponse(patient, file))
	}
	return helper.JsonSuccess(c, "Pending patient requests", out)
}

// GET /api/student/patients
func (ctrl *MedicalFileController) ListAssignedPatients(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var files []fileModel.MedicalFileModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("selected_student_id = ?", caller.ID).
		Order("student_validated_patient_at ASC").
		Find(&files).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assigned patients")
	}

	out := make([]fileDTO.AssignedPatientResponse, 0, len(files))
	for _, file := range files {
		var patient userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).First(&patient, "id = ?", file.UserID).Error; err != nil {
			continue
		}
		out = append(out, fileDTO.NewAssignedPatientResponse(patient, file))
	}
	return helper.JsonSuccess(c, "Assigned patients", out)
}

// GET /api/professional/review-queue
func (ctrl *MedicalFileController) ListReviewQueue(c *fiber.Ctx) error {
	var files []fileModel.MedicalFileModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("file_status = ?", fileModel.FileStatusReview).
		Order("reviewed_at ASC").
		Find(&files).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load review queue")
	}

	out := make([]fileDTO.ReviewQueueResponse, 0, len(files))
	for _, file := range files {
		var patient userModel.UserModel
		if err := ctrl.DB.WithContext(c.Context()).First(&patient, "id = ?", file.UserID).Error; err != nil {
			continue
		}
		out = append(out, fileDTO.NewReviewQueueResponse(patient, file))
	}
	return helper.JsonSuccess(c, "Review queue", out)
}

// GET /api/files/:id
func (ctrl *MedicalFileController) GetFileDetail(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	file, err := loadFile(ctrl.DB.WithContext(c.Context()), fileID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if !fileService.CanViewFile(caller, file) {
		return helper.FromAppError(c, errs.Forbidden("NOT_ALLOWED", "You may not view this medical file"))
	}

	detail := fileDTO.FileDetailResponse{File: *file}
	detail.NonPathological, detail.Pathological, detail.Family, detail.Gynecological = loadSections(ctrl.DB.WithContext(c.Context()), file.ID)
	return helper.JsonSuccess(c, "Medical file detail", detail)
}

/* ===================== SNAPSHOT ===================== */

// POST /api/files/:id/snapshot: recompute review_html from the sections.
// Idempotent; never part of any transition guard.
func (ctrl *MedicalFileController) RegenerateSnapshot(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	var rendered string
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		file, err := loadFile(tx, fileID)
		if err != nil {
			return err
		}
		if !fileService.CanViewFile(caller, file) {
			return errs.Forbidden("NOT_ALLOWED", "You may not view this medical file")
		}
		nonPath, path, family, gyn := loadSections(tx, file.ID)
		rendered = fileService.RenderReviewHTML(nonPath, path, family, gyn)
		file.ReviewHTML = &rendered
		if err := tx.Save(file).Error; err != nil {
			return errs.Internal("failed to persist snapshot", err)
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	return helper.JsonSuccess(c, "Snapshot regenerated", fiber.Map{"review_html": rendered})
}

/* ===================== SHARED LOADERS ===================== */

func loadUser(tx *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("USER_NOT_FOUND", "User not found")
		}
		return nil, errs.Internal("failed to load user", err)
	}
	return &user, nil
}

func loadFile(tx *gorm.DB, id uuid.UUID) (*fileModel.MedicalFileModel, error) {
	var file fileModel.MedicalFileModel
	if err := tx.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("FILE_NOT_FOUND", "Medical file not found")
		}
		return nil, errs.Internal("failed to load medical file", err)
	}
	return &file, nil
}

func loadFileByPatient(tx *gorm.DB, patientID uuid.UUID) (*fileModel.MedicalFileModel, error) {
	var file fileModel.MedicalFileModel
	if err := tx.First(&file, "user_id = ?", patientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("FILE_NOT_FOUND", "Medical file not found")
		}
		return nil, errs.Internal("failed to load medical file", err)
	}
	return &file, nil
}

func loadSections(tx *gorm.DB, fileID uuid.UUID) (*fileModel.NonPathologicalBackgroundModel, *fileModel.PathologicalBackgroundModel, *fileModel.FamilyBackgroundModel, *fileModel.GynecologicalBackgroundModel) {
	var (
		nonPath fileModel.NonPathologicalBackgroundModel
		path    fileModel.PathologicalBackgroundModel
		family  fileModel.FamilyBackgroundModel
		gyn     fileModel.GynecologicalBackgroundModel
	)
	var outNonPath *fileModel.NonPathologicalBackgroundModel
	var outPath *fileModel.PathologicalBackgroundModel
	var outFamily *fileModel.FamilyBackgroundModel
	var outGyn *fileModel.GynecologicalBackgroundModel

	if err := tx.First(&nonPath, "medical_file_id = ?", fileID).Error; err == nil {
		outNonPath = &nonPath
	}
	if err := tx.First(&path, "medical_file_id = ?", fileID).Error; err == nil {
		outPath = &path
	}
	if err := tx.First(&family, "medical_file_id = ?", fileID).Error; err == nil {
		outFamily = &family
	}
	if err := tx.First(&gyn, "medical_file_id = ?", fileID).Error; err == nil {
		outGyn = &gyn
	}
	return outNonPath, outPath, outFamily, outGyn
}
