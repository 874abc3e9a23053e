// file: internals/databases/database.go
package database

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	credentialModel "medicku_backend/internals/features/credentials/model"
	fileModel "medicku_backend/internals/features/medicalfiles/model"
	userModel "medicku_backend/internals/features/users/model"
	"medicku_backend/internals/helpers/logger"
)

var DB *gorm.DB

func ConnectDB() {
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=medicku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.L().Fatalf("failed to connect database: %v", err)
	}
	DB = db
	logger.L().Info("database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.WithField("error", err.Error()).Warn("pool tune failed")
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema aligned with the models. gen_random_uuid defaults
// need pgcrypto on Postgres < 13.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		logger.WithField("error", err.Error()).Warn("pgcrypto extension")
	}
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&credentialModel.AcademicCredentialModel{},
		&fileModel.MedicalFileModel{},
		&fileModel.NonPathologicalBackgroundModel{},
		&fileModel.PathologicalBackgroundModel{},
		&fileModel.FamilyBackgroundModel{},
		&fileModel.GynecologicalBackgroundModel{},
	); err != nil {
		logger.L().Fatalf("automigrate failed: %v", err)
	}
	logger.L().Info("migrations applied")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
