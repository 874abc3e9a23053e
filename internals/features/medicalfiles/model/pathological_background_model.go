// file: internals/features/medicalfiles/model/pathological_background_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: pathological_backgrounds
   ========================================================= */

type PathologicalBackgroundModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalFileID uuid.UUID `gorm:"column:medical_file_id;type:uuid;not null;uniqueIndex"    json:"medical_file_id"`

	DisabilityDescription  string `gorm:"column:disability_description;type:text" json:"disability_description,omitempty"`
	VisualDisability       *bool  `gorm:"column:visual_disability"                json:"visual_disability,omitempty"`
	HearingDisability      *bool  `gorm:"column:hearing_disability"               json:"hearing_disability,omitempty"`
	MotorDisability        *bool  `gorm:"column:motor_disability"                 json:"motor_disability,omitempty"`
	IntellectualDisability *bool  `gorm:"column:intellectual_disability"          json:"intellectual_disability,omitempty"`

	ChronicDiseases    string `gorm:"column:chronic_diseases;type:text"    json:"chronic_diseases,omitempty"`
	CurrentMedications string `gorm:"column:current_medications;type:text" json:"current_medications,omitempty"`
	Hospitalizations   string `gorm:"column:hospitalizations;type:text"    json:"hospitalizations,omitempty"`
	Surgeries          string `gorm:"column:surgeries;type:text"           json:"surgeries,omitempty"`
	Accidents          string `gorm:"column:accidents;type:text"           json:"accidents,omitempty"`
	Transfusions       string `gorm:"column:transfusions;type:text"        json:"transfusions,omitempty"`
	Allergies          string `gorm:"column:allergies;type:text"           json:"allergies,omitempty"`

	OtherInfo string `gorm:"column:other_info;type:text" json:"other_info,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PathologicalBackgroundModel) TableName() string { return "pathological_backgrounds" }
