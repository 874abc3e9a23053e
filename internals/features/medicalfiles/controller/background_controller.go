// file: internals/features/medicalfiles/controller/background_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fileDTO "medicku_backend/internals/features/medicalfiles/dto"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	fileService "medicku_backend/internals/features/medicalfiles/service"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
	"medicku_backend/internals/helpers/errs"
)

/* ===================== BACKGROUND UPSERTS ===================== */

// PATCH /api/student/files/:id/backgrounds
// Merge-only: supplied fields overwrite, absent fields survive. The file
// stays in progress.
func (ctrl *MedicalFileController) UpsertBackgrounds(c *fiber.Ctx) error {
	return ctrl.upsertBackgrounds(c, false)
}

// POST /api/student/files/:id/backgrounds/submit
// Same merge, then the progress → review transition in the same transaction.
func (ctrl *MedicalFileController) SubmitBackgrounds(c *fiber.Ctx) error {
	return ctrl.upsertBackgrounds(c, true)
}

func (ctrl *MedicalFileController) upsertBackgrounds(c *fiber.Ctx, submit bool) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	var req fileDTO.SubmitBackgroundsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		file, err := loadFile(tx, fileID)
		if err != nil {
			return err
		}
		if err := fileService.EnsureCanFill(caller, file); err != nil {
			return err
		}

		if req.NonPathological != nil {
			var section fileModel.NonPathologicalBackgroundModel
			if err := firstOrInitSection(tx, &section, file.ID); err != nil {
				return err
			}
			section.MedicalFileID = file.ID
			req.NonPathological.ApplyTo(&section)
			if err := tx.Save(&section).Error; err != nil {
				return errs.Internal("failed to persist non-pathological background", err)
			}
		}
		if req.Pathological != nil {
			var section fileModel.PathologicalBackgroundModel
			if err := firstOrInitSection(tx, &section, file.ID); err != nil {
				return err
			}
			section.MedicalFileID = file.ID
			req.Pathological.ApplyTo(&section)
			if err := tx.Save(&section).Error; err != nil {
				return errs.Internal("failed to persist pathological background", err)
			}
		}
		if req.Family != nil {
			var section fileModel.FamilyBackgroundModel
			if err := firstOrInitSection(tx, &section, file.ID); err != nil {
				return err
			}
			section.MedicalFileID = file.ID
			req.Family.ApplyTo(&section)
			if err := tx.Save(&section).Error; err != nil {
				return errs.Internal("failed to persist family background", err)
			}
		}
		if req.Gynecological != nil {
			var section fileModel.GynecologicalBackgroundModel
			if err := firstOrInitSection(tx, &section, file.ID); err != nil {
				return err
			}
			section.MedicalFileID = file.ID
			req.Gynecological.ApplyTo(&section)
			if err := tx.Save(&section).Error; err != nil {
				return errs.Internal("failed to persist gynecological background", err)
			}
		}

		if submit {
			if err := fileService.MarkUnderReview(caller, file, now); err != nil {
				return err
			}
			if err := tx.Save(file).Error; err != nil {
				return errs.Internal("failed to persist medical file", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}
	if submit {
		return helper.JsonSuccess(c, "Backgrounds saved, file sent to review", nil)
	}
	return helper.JsonSuccess(c, "Backgrounds saved", nil)
}

// PUT /api/student/files/:id/review-request
// The progress → review transition without touching section content.
func (ctrl *MedicalFileController) MarkUnderReview(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid file id")
	}

	now := time.Now().UTC()
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		file, err := loadFile(tx, fileID)
		if err != nil {
			return err
		}
		if err := fileService.MarkUnderReview(caller, file, now); err != nil {
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
	return helper.JsonSuccess(c, "Medical file sent to review", nil)
}

// firstOrInitSection loads the section row owned by the file or leaves the
// zero value for a lazy create. dest must be a pointer to a section model.
func firstOrInitSection(tx *gorm.DB, dest interface{}, fileID uuid.UUID) error {
	if err := tx.First(dest, "medical_file_id = ?", fileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return errs.Internal("failed to load background section", err)
	}
	return nil
}
