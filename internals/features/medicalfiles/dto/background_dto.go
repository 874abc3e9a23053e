// file: internals/features/medicalfiles/dto/background_dto.go
//
// Partial-update DTOs for the four background sections. Every field is a
// pointer: nil means "leave unchanged", non-nil sets the value (including
// empty strings). ApplyTo walks a static field list, never reflection.
package dto

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"

	fileModel "medicku_backend/internals/features/medicalfiles/model"
)

//
// ========== NON-PATHOLOGICAL ==========
//

type NonPathologicalBackgroundUpsert struct {
	Sex         *string   `json:"sex" validate:"omitempty,max=30"`
	Nationality *string   `json:"nationality" validate:"omitempty,max=80"`
	EthnicGroup *string   `json:"ethnic_group" validate:"omitempty,max=80"`
	Languages   *[]string `json:"languages" validate:"omitempty"`
	BloodType   *string   `json:"blood_type" validate:"omitempty,max=10"`

	CivilStatus *string `json:"civil_status" validate:"omitempty,max=40"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	HousingType *string `json:"housing_type" validate:"omitempty,max=80"`
	Cohabitants *string `json:"cohabitants" validate:"omitempty,max=160"`
	Dependents  *int    `json:"dependents" validate:"omitempty,min=0"`

	EducationInstitution *string `json:"education_institution" validate:"omitempty,max=160"`
	AcademicDegree       *string `json:"academic_degree" validate:"omitempty,max=120"`
	Career               *string `json:"career" validate:"omitempty,max=120"`
	EconomicActivity     *string `json:"economic_activity" validate:"omitempty,max=160"`

	HasMedicalInsurance  *bool   `json:"has_medical_insurance" validate:"omitempty"`
	InsuranceInstitution *string `json:"insurance_institution" validate:"omitempty,max=120"`
	InsuranceNumber      *string `json:"insurance_number" validate:"omitempty,max=80"`

	Diet                    *string  `json:"diet_quality" validate:"omitempty,max=80"`
	MealsPerDay             *int     `json:"meals_per_day" validate:"omitempty,min=0"`
	DailyLiquidIntakeLiters *float64 `json:"daily_liquid_intake_liters" validate:"omitempty,min=0"`
	Supplements             *string  `json:"supplements" validate:"omitempty,max=255"`
	Hygiene                 *string  `json:"hygiene_quality" validate:"omitempty,max=80"`
	Exercise                *string  `json:"exercise_quality" validate:"omitempty,max=160"`
	Sleep                   *string  `json:"sleep_quality" validate:"omitempty,max=160"`
	Hobbies                 *string  `json:"hobbies" validate:"omitempty,max=255"`
	RecentTravel            *string  `json:"recent_travel" validate:"omitempty,max=255"`

	HasPiercings *bool   `json:"has_piercings" validate:"omitempty"`
	HasTattoos   *bool   `json:"has_tattoos" validate:"omitempty"`
	AlcoholUse   *string `json:"alcohol_use" validate:"omitempty,max=160"`
	TobaccoUse   *string `json:"tobacco_use" validate:"omitempty,max=160"`
	OtherDrugUse *string `json:"other_drug_use" validate:"omitempty,max=160"`
	Addictions   *string `json:"addictions" validate:"omitempty,max=160"`

	OtherInfo *string `json:"other_info" validate:"omitempty"`
}

func (r NonPathologicalBackgroundUpsert) ApplyTo(m *fileModel.NonPathologicalBackgroundModel) {
	if r.Sex != nil {
		m.Sex = *r.Sex
	}
	if r.Nationality != nil {
		m.Nationality = *r.Nationality
	}
	if r.EthnicGroup != nil {
		m.EthnicGroup = *r.EthnicGroup
	}
	if r.Languages != nil {
		m.Languages = pq.StringArray(*r.Languages)
	}
	if r.BloodType != nil {
		m.BloodType = *r.BloodType
	}
	if r.CivilStatus != nil {
		m.CivilStatus = *r.CivilStatus
	}
	if r.Address != nil {
		m.Address = *r.Address
	}
	if r.HousingType != nil {
		m.HousingType = *r.HousingType
	}
	if r.Cohabitants != nil {
		m.Cohabitants = *r.Cohabitants
	}
	if r.Dependents != nil {
		m.Dependents = r.Dependents
	}
	if r.EducationInstitution != nil {
		m.EducationInstitution = *r.EducationInstitution
	}
	if r.AcademicDegree != nil {
		m.AcademicDegree = *r.AcademicDegree
	}
	if r.Career != nil {
		m.Career = *r.Career
	}
	if r.EconomicActivity != nil {
		m.EconomicActivity = *r.EconomicActivity
	}
	if r.HasMedicalInsurance != nil {
		m.HasMedicalInsurance = r.HasMedicalInsurance
	}
	if r.InsuranceInstitution != nil {
		m.InsuranceInstitution = *r.InsuranceInstitution
	}
	if r.InsuranceNumber != nil {
		m.InsuranceNumber = *r.InsuranceNumber
	}
	if r.Diet != nil {
		m.Diet = *r.Diet
	}
	if r.MealsPerDay != nil {
		m.MealsPerDay = r.MealsPerDay
	}
	if r.DailyLiquidIntakeLiters != nil {
		m.DailyLiquidIntakeLiters = r.DailyLiquidIntakeLiters
	}
	if r.Supplements != nil {
		m.Supplements = *r.Supplements
	}
	if r.Hygiene != nil {
		m.Hygiene = *r.Hygiene
	}
	if r.Exercise != nil {
		m.Exercise = *r.Exercise
	}
	if r.Sleep != nil {
		m.Sleep = *r.Sleep
	}
	if r.Hobbies != nil {
		m.Hobbies = *r.Hobbies
	}
	if r.RecentTravel != nil {
		m.RecentTravel = *r.RecentTravel
	}
	if r.HasPiercings != nil {
		m.HasPiercings = r.HasPiercings
	}
	if r.HasTattoos != nil {
		m.HasTattoos = r.HasTattoos
	}
	if r.AlcoholUse != nil {
		m.AlcoholUse = *r.AlcoholUse
	}
	if r.TobaccoUse != nil {
		m.TobaccoUse = *r.TobaccoUse
	}
	if r.OtherDrugUse != nil {
		m.OtherDrugUse = *r.OtherDrugUse
	}
	if r.Addictions != nil {
		m.Addictions = *r.Addictions
	}
	if r.OtherInfo != nil {
		m.OtherInfo = *r.OtherInfo
	}
}

//
// ========== PATHOLOGICAL ==========
//

type PathologicalBackgroundUpsert struct {
	DisabilityDescription  *string `json:"disability_description" validate:"omitempty"`
	VisualDisability       *bool   `json:"visual_disability" validate:"omitempty"`
	HearingDisability      *bool   `json:"hearing_disability" validate:"omitempty"`
	MotorDisability        *bool   `json:"motor_disability" validate:"omitempty"`
	IntellectualDisability *bool   `json:"intellectual_disability" validate:"omitempty"`

	ChronicDiseases    *string `json:"chronic_diseases" validate:"omitempty"`
	CurrentMedications *string `json:"current_medications" validate:"omitempty"`
	Hospitalizations   *string `json:"hospitalizations" validate:"omitempty"`
	Surgeries          *string `json:"surgeries" validate:"omitempty"`
	Accidents          *string `json:"accidents" validate:"omitempty"`
	Transfusions       *string `json:"transfusions" validate:"omitempty"`
	Allergies          *string `json:"allergies" validate:"omitempty"`

	OtherInfo *string `json:"other_info" validate:"omitempty"`
}

func (r PathologicalBackgroundUpsert) ApplyTo(m *fileModel.PathologicalBackgroundModel) {
	if r.DisabilityDescription != nil {
		m.DisabilityDescription = *r.DisabilityDescription
	}
	if r.VisualDisability != nil {
		m.VisualDisability = r.VisualDisability
	}
	if r.HearingDisability != nil {
		m.HearingDisability = r.HearingDisability
	}
	if r.MotorDisability != nil {
		m.MotorDisability = r.MotorDisability
	}
	if r.IntellectualDisability != nil {
		m.IntellectualDisability = r.IntellectualDisability
	}
	if r.ChronicDiseases != nil {
		m.ChronicDiseases = *r.ChronicDiseases
	}
	if r.CurrentMedications != nil {
		m.CurrentMedications = *r.CurrentMedications
	}
	if r.Hospitalizations != nil {
		m.Hospitalizations = *r.Hospitalizations
	}
	if r.Surgeries != nil {
		m.Surgeries = *r.Surgeries
	}
	if r.Accidents != nil {
		m.Accidents = *r.Accidents
	}
	if r.Transfusions != nil {
		m.Transfusions = *r.Transfusions
	}
	if r.Allergies != nil {
		m.Allergies = *r.Allergies
	}
	if r.OtherInfo != nil {
		m.OtherInfo = *r.OtherInfo
	}
}

//
// ========== FAMILY ==========
//

type FamilyBackgroundUpsert struct {
	Hypertension       *bool `json:"hypertension" validate:"omitempty"`
	Diabetes           *bool `json:"diabetes" validate:"omitempty"`
	Cancer             *bool `json:"cancer" validate:"omitempty"`
	MentalIllnesses    *bool `json:"mental_illnesses" validate:"omitempty"`
	CongenitalDiseases *bool `json:"congenital_diseases" validate:"omitempty"`
	HeartDiseases      *bool `json:"heart_diseases" validate:"omitempty"`
	LiverDiseases      *bool `json:"liver_diseases" validate:"omitempty"`
	KidneyDiseases     *bool `json:"kidney_diseases" validate:"omitempty"`

	OtherInfo *string `json:"other_info" validate:"omitempty"`
}

func (r FamilyBackgroundUpsert) ApplyTo(m *fileModel.FamilyBackgroundModel) {
	if r.Hypertension != nil {
		m.Hypertension = r.Hypertension
	}
	if r.Diabetes != nil {
		m.Diabetes = r.Diabetes
	}
	if r.Cancer != nil {
		m.Cancer = r.Cancer
	}
	if r.MentalIllnesses != nil {
		m.MentalIllnesses = r.MentalIllnesses
	}
	if r.CongenitalDiseases != nil {
		m.CongenitalDiseases = r.CongenitalDiseases
	}
	if r.HeartDiseases != nil {
		m.HeartDiseases = r.HeartDiseases
	}
	if r.LiverDiseases != nil {
		m.LiverDiseases = r.LiverDiseases
	}
	if r.KidneyDiseases != nil {
		m.KidneyDiseases = r.KidneyDiseases
	}
	if r.OtherInfo != nil {
		m.OtherInfo = *r.OtherInfo
	}
}

//
// ========== GYNECOLOGICAL ==========
//

type GynecologicalBackgroundUpsert struct {
	MenarcheAge *int `json:"menarche_age" validate:"omitempty,min=0"`
	Pregnancies *int `json:"pregnancies" validate:"omitempty,min=0"`
	Births      *int `json:"births" validate:"omitempty,min=0"`
	CSections   *int `json:"c_sections" validate:"omitempty,min=0"`
	Abortions   *int `json:"abortions" validate:"omitempty,min=0"`

	ContraceptiveMethods *datatypes.JSON `json:"contraceptive_methods" validate:"omitempty"`

	OtherInfo *string `json:"other_info" validate:"omitempty"`
}

func (r GynecologicalBackgroundUpsert) ApplyTo(m *fileModel.GynecologicalBackgroundModel) {
	if r.MenarcheAge != nil {
		m.MenarcheAge = r.MenarcheAge
	}
	if r.Pregnancies != nil {
		m.Pregnancies = r.Pregnancies
	}
	if r.Births != nil {
		m.Births = r.Births
	}
	if r.CSections != nil {
		m.CSections = r.CSections
	}
	if r.Abortions != nil {
		m.Abortions = r.Abortions
	}
	if r.ContraceptiveMethods != nil {
		m.ContraceptiveMethods = *r.ContraceptiveMethods
	}
	if r.OtherInfo != nil {
		m.OtherInfo = *r.OtherInfo
	}
}

//
// ========== ENVELOPE ==========
//

// SubmitBackgroundsRequest carries any subset of the four sections. A nil
// section is not touched at all.
type SubmitBackgroundsRequest struct {
	NonPathological *NonPathologicalBackgroundUpsert `json:"non_pathological_background" validate:"omitempty"`
	Pathological    *PathologicalBackgroundUpsert    `json:"pathological_background" validate:"omitempty"`
	Family          *FamilyBackgroundUpsert          `json:"family_background" validate:"omitempty"`
	Gynecological   *GynecologicalBackgroundUpsert   `json:"gynecological_background" validate:"omitempty"`
}
