// file: internals/features/medicalfiles/model/gynecological_background_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   MODEL: gynecological_backgrounds
   ========================================================= */

type GynecologicalBackgroundModel struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MedicalFileID uuid.UUID `gorm:"column:medical_file_id;type:uuid;not null;uniqueIndex"    json:"medical_file_id"`

	MenarcheAge *int `gorm:"column:menarche_age" json:"menarche_age,omitempty"`
	Pregnancies *int `gorm:"column:pregnancies"  json:"pregnancies,omitempty"`
	Births      *int `gorm:"column:births"       json:"births,omitempty"`
	CSections   *int `gorm:"column:c_sections"   json:"c_sections,omitempty"`
	Abortions   *int `gorm:"column:abortions"    json:"abortions,omitempty"`

	// JSON array of methods, e.g. ["oral contraceptive","iud"].
	ContraceptiveMethods datatypes.JSON `gorm:"column:contraceptive_methods;type:jsonb" json:"contraceptive_methods,omitempty"`

	OtherInfo string `gorm:"column:other_info;type:text" json:"other_info,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GynecologicalBackgroundModel) TableName() string { return "gynecological_backgrounds" }
