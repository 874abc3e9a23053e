// file: internals/features/medicalfiles/model/family_background_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: family_backgrounds
   Heredofamilial history, one flag per condition group.
   ========================================================= */

type FamilyBackgroundModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalFileID uuid.UUID `gorm:"column:medical_file_id;type:uuid;not null;uniqueIndex"    json:"medical_file_id"`

	Hypertension       *bool `gorm:"column:hypertension"        json:"hypertension,omitempty"`
	Diabetes           *bool `gorm:"column:diabetes"            json:"diabetes,omitempty"`
	Cancer             *bool `gorm:"column:cancer"              json:"cancer,omitempty"`
	MentalIllnesses    *bool `gorm:"column:mental_illnesses"    json:"mental_illnesses,omitempty"`
	CongenitalDiseases *bool `gorm:"column:congenital_diseases" json:"congenital_diseases,omitempty"`
	HeartDiseases      *bool `gorm:"column:heart_diseases"      json:"heart_diseases,omitempty"`
	LiverDiseases      *bool `gorm:"column:liver_diseases"      json:"liver_diseases,omitempty"`
	KidneyDiseases     *bool `gorm:"column:kidney_diseases"     json:"kidney_diseases,omitempty"`

	OtherInfo string `gorm:"column:other_info;type:text" json:"other_info,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (FamilyBackgroundModel) TableName() string { return "family_backgrounds" }
