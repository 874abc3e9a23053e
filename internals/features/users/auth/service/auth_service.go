// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	credModel "medicku_backend/internals/features/credentials/model"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	authDTO "medicku_backend/internals/features/users/auth/dto"
	userDTO "medicku_backend/internals/features/users/dto"
	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	"medicku_backend/internals/helpers/errs"
)

var validate = validator.New()

// Registration is everything a valid register request materializes into:
// the user row plus, depending on the role, its academic credential or an
// empty medical file. Credential and File are mutually exclusive.
type Registration struct {
	User       userModel.UserModel
	Credential *credModel.AcademicCredentialModel
	File       *fileModel.MedicalFileModel
}

// BuildRegistration turns a parsed request into the rows to persist. All
// shape checks happen here, before anything touches the database: role and
// birth date decode, and students/professionals must carry a complete
// credential. Gated roles start pre_approved, everyone else approved.
func BuildRegistration(req authDTO.RegisterRequest, hashedPassword string) (Registration, error) {
	role, ok := userModel.ParseUserRole(req.Role)
	if !ok {
		return Registration{}, errs.Validation("INVALID_ROLE", "Role must be admin, student, professional or patient")
	}
	birthDay, err := time.Parse("2006-01-02", req.BirthDay)
	if err != nil {
		return Registration{}, errs.Validation("INVALID_BIRTH_DAY", "birth_day must be YYYY-MM-DD")
	}
	if role.RequiresCredential() {
		if emptyPtr(req.Institution) || emptyPtr(req.Career) || emptyPtr(req.AcademicGrade) || emptyPtr(req.RegisterNumber) {
			return Registration{}, errs.Validation("MISSING_CREDENTIAL",
				"institution, career, academic_grade and register_number are required for this role")
		}
	}

	status := userModel.StatusApproved
	if role.Gated() {
		status = userModel.StatusPreApproved
	}

	reg := Registration{
		User: userModel.UserModel{
			FirstName:     req.FirstName,
			SecondName:    req.SecondName,
			FirstSurname:  req.FirstSurname,
			SecondSurname: req.SecondSurname,
			BirthDay:      birthDay,
			Phone:         req.Phone,
			Email:         req.Email,
			Password:      hashedPassword,
			Role:          role,
			Status:        status,
			IsActive:      true,
		},
	}

	if role.RequiresCredential() {
		reg.Credential = &credModel.AcademicCredentialModel{
			Institution:    *req.Institution,
			Career:         *req.Career,
			AcademicGrade:  *req.AcademicGrade,
			RegisterNumber: *req.RegisterNumber,
		}
	}
	if role == userModel.RolePatient {
		reg.File = &fileModel.MedicalFileModel{FileStatus: fileModel.FileStatusEmpty}
	}
	return reg, nil
}

// mapCreateUserErr keeps a racing duplicate email a conflict instead of an
// opaque 500; the unique index fires where the pre-check cannot see the
// other transaction.
func mapCreateUserErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.Conflict("EMAIL_TAKEN", "Email is already registered")
	}
	return errs.Internal("failed to create user", err)
}

// ========================== REGISTER ==========================
// One transaction: user + credential (students/professionals) or user +
// empty medical file (patients). A user without its required credential must
// never persist.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	reg, buildErr := BuildRegistration(req, string(hashed))
	if buildErr != nil {
		return helper.FromAppError(c, buildErr)
	}

	txErr := db.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return errs.Internal("failed to check email", err)
		}
		if count > 0 {
			return errs.Conflict("EMAIL_TAKEN", "Email is already registered")
		}

		if err := tx.Create(&reg.User).Error; err != nil {
			return mapCreateUserErr(err)
		}

		if reg.Credential != nil {
			reg.Credential.UserID = reg.User.ID
			if err := tx.Create(reg.Credential).Error; err != nil {
				return errs.Internal("failed to create credential", err)
			}
		}
		if reg.File != nil {
			reg.File.UserID = reg.User.ID
			if err := tx.Create(reg.File).Error; err != nil {
				return errs.Internal("failed to create medical file", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.FromAppError(c, txErr)
	}

	return helper.JsonCreated(c, "User registered", userDTO.NewUserResponse(reg.User))
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// One message for both unknown email and wrong password, so login
	// cannot be used to enumerate accounts.
	var user userModel.UserModel
	if err := db.WithContext(c.Context()).First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	token, err := IssueAccessToken(&user, time.Now().UTC())
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.JsonSuccess(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		User:  userDTO.NewUserResponse(user),
	})
}

func emptyPtr(s *string) bool {
	return s == nil || *s == ""
}
