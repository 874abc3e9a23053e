// file: internals/seeds/runner.go
package seeds

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medicku_backend/internals/configs"
	userModel "medicku_backend/internals/features/users/model"
	"medicku_backend/internals/helpers/logger"
)

// RunAllSeeds is idempotent and safe to run on every boot.
func RunAllSeeds(db *gorm.DB) {
	seedInitialAdmin(db)
}

// seedInitialAdmin creates the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Without at least one admin nobody can approve
// professionals, so a fresh deployment would be stuck.
func seedInitialAdmin(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.L().Info("seed: ADMIN_EMAIL/ADMIN_PASSWORD unset, skipping admin seed")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		logger.L().WithError(err).Error("seed: failed to check admin user")
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.L().WithError(err).Error("seed: failed to hash admin password")
		return
	}

	admin := userModel.UserModel{
		FirstName:    "System",
		FirstSurname: "Admin",
		Email:        email,
		Password:     string(hashed),
		Role:         userModel.RoleAdmin,
		Status:       userModel.StatusApproved,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		logger.L().WithError(err).Error("seed: failed to create admin user")
		return
	}
	logger.L().WithField("email", email).Info("seed: initial admin created")
}
