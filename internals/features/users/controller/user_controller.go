// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	credDTO "medicku_backend/internals/features/credentials/dto"
	credModel "medicku_backend/internals/features/credentials/model"
	userDTO "medicku_backend/internals/features/users/dto"
	userModel "medicku_backend/internals/features/users/model"
	helper "medicku_backend/internals/helpers"
	helperAuth "medicku_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/me
// Students and professionals also get their academic credential, including
// the pending-request and validation stamps, so the client can show where
// they stand in the approval chain.
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	caller, err := helperAuth.GetCaller(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).First(&user, "id = ?", caller.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	var credential *credDTO.CredentialResponse
	if user.Role.RequiresCredential() {
		var cred credModel.AcademicCredentialModel
		if err := ctrl.DB.WithContext(c.Context()).First(&cred, "user_id = ?", user.ID).Error; err == nil {
			resp := credDTO.NewCredentialResponse(cred)
			credential = &resp
		}
	}

	return helper.JsonSuccess(c, "Current user", fiber.Map{
		"user":       userDTO.NewUserResponse(user),
		"credential": credential,
	})
}

/* ===================== LIST (ADMIN) ===================== */
// GET /api/admin/users
// Query: page, per_page|limit, sort_by(created_at|email), order,
//        role, status, q (name/email ILIKE)
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	allowedSort := map[string]string{
		"created_at": "created_at",
		"email":      "email",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort_by")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	tx := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{})

	if roleStr := strings.TrimSpace(c.Query("role")); roleStr != "" {
		role, ok := userModel.ParseUserRole(roleStr)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "role invalid")
		}
		tx = tx.Where("role = ?", role)
	}
	if statusStr := strings.ToLower(strings.TrimSpace(c.Query("status"))); statusStr != "" {
		tx = tx.Where("status = ?", statusStr)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pat := "%" + q + "%"
		tx = tx.Where(`(first_name ILIKE ? OR first_surname ILIKE ? OR email ILIKE ?)`, pat, pat, pat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []userModel.UserModel
	if err := tx.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	out := make([]userDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userDTO.NewUserResponse(u))
	}
	return helper.JsonSuccess(c, "Users", fiber.Map{
		"items": out,
		"meta":  helper.BuildMeta(total, p),
	})
}
