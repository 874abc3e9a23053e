// file: internals/features/medicalfiles/model/non_pathological_background_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =========================================================
   MODEL: non_pathological_backgrounds
   Demographics and lifestyle. Owned by one medical file,
   created lazily on first upsert.
   ========================================================= */

type NonPathologicalBackgroundModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalFileID uuid.UUID `gorm:"column:medical_file_id;type:uuid;not null;uniqueIndex"    json:"medical_file_id"`

	// Identity & origin
	Sex         string         `gorm:"column:sex;size:30"                json:"sex,omitempty"`
	Nationality string         `gorm:"column:nationality;size:80"        json:"nationality,omitempty"`
	EthnicGroup string         `gorm:"column:ethnic_group;size:80"       json:"ethnic_group,omitempty"`
	Languages   pq.StringArray `gorm:"column:languages;type:text[]"      json:"languages,omitempty"`
	BloodType   string         `gorm:"column:blood_type;size:10"         json:"blood_type,omitempty"`

	// Living situation
	CivilStatus string `gorm:"column:civil_status;size:40"  json:"civil_status,omitempty"`
	Address     string `gorm:"column:address;size:255"      json:"address,omitempty"`
	HousingType string `gorm:"column:housing_type;size:80"  json:"housing_type,omitempty"`
	Cohabitants string `gorm:"column:cohabitants;size:160"  json:"cohabitants,omitempty"`
	Dependents  *int   `gorm:"column:dependents"            json:"dependents,omitempty"`

	// Education & occupation
	EducationInstitution string `gorm:"column:education_institution;size:160" json:"education_institution,omitempty"`
	AcademicDegree       string `gorm:"column:academic_degree;size:120"       json:"academic_degree,omitempty"`
	Career               string `gorm:"column:career;size:120"                json:"career,omitempty"`
	EconomicActivity     string `gorm:"column:economic_activity;size:160"     json:"economic_activity,omitempty"`

	// Insurance
	HasMedicalInsurance  *bool  `gorm:"column:has_medical_insurance"          json:"has_medical_insurance,omitempty"`
	InsuranceInstitution string `gorm:"column:insurance_institution;size:120" json:"insurance_institution,omitempty"`
	InsuranceNumber      string `gorm:"column:insurance_number;size:80"       json:"insurance_number,omitempty"`

	// Habits
	Diet                    string   `gorm:"column:diet_quality;size:80"         json:"diet_quality,omitempty"`
	MealsPerDay             *int     `gorm:"column:meals_per_day"                json:"meals_per_day,omitempty"`
	DailyLiquidIntakeLiters *float64 `gorm:"column:daily_liquid_intake_liters"   json:"daily_liquid_intake_liters,omitempty"`
	Supplements             string   `gorm:"column:supplements;size:255"         json:"supplements,omitempty"`
	Hygiene                 string   `gorm:"column:hygiene_quality;size:80"      json:"hygiene_quality,omitempty"`
	Exercise                string   `gorm:"column:exercise_quality;size:160"    json:"exercise_quality,omitempty"`
	Sleep                   string   `gorm:"column:sleep_quality;size:160"       json:"sleep_quality,omitempty"`
	Hobbies                 string   `gorm:"column:hobbies;size:255"             json:"hobbies,omitempty"`
	RecentTravel            string   `gorm:"column:recent_travel;size:255"       json:"recent_travel,omitempty"`

	// Body & substance use
	HasPiercings *bool  `gorm:"column:has_piercings"            json:"has_piercings,omitempty"`
	HasTattoos   *bool  `gorm:"column:has_tattoos"              json:"has_tattoos,omitempty"`
	AlcoholUse   string `gorm:"column:alcohol_use;size:160"     json:"alcohol_use,omitempty"`
	TobaccoUse   string `gorm:"column:tobacco_use;size:160"     json:"tobacco_use,omitempty"`
	OtherDrugUse string `gorm:"column:other_drug_use;size:160"  json:"other_drug_use,omitempty"`
	Addictions   string `gorm:"column:addictions;size:160"      json:"addictions,omitempty"`

	OtherInfo string `gorm:"column:other_info;type:text" json:"other_info,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NonPathologicalBackgroundModel) TableName() string { return "non_pathological_backgrounds" }
