// file: internals/features/medicalfiles/service/snapshot_service_test.go
package service

import (
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	fileModel "medicku_backend/internals/features/medicalfiles/model"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func TestRenderReviewHTML_Empty(t *testing.T) {
	out := RenderReviewHTML(nil, nil, nil, nil)

	assert.True(t, strings.HasPrefix(out, `<article class="medical-file-review">`))
	assert.True(t, strings.HasSuffix(out, `</article>`))
	assert.Equal(t, 4, strings.Count(out, "<section>"))
	assert.Equal(t, 4, strings.Count(out, "Not recorded."))
}

func TestRenderReviewHTML_Sections(t *testing.T) {
	nonPath := &fileModel.NonPathologicalBackgroundModel{
		Sex:         "female",
		Nationality: "Mexican",
		Languages:   pq.StringArray{"Spanish", "English"},
		BloodType:   "O+",
		Dependents:  intPtr(2),
	}
	path := &fileModel.PathologicalBackgroundModel{
		VisualDisability: boolPtr(true),
		Allergies:        "penicillin",
	}
	family := &fileModel.FamilyBackgroundModel{
		Diabetes: boolPtr(true),
		Cancer:   boolPtr(false),
	}
	gyn := &fileModel.GynecologicalBackgroundModel{
		MenarcheAge:          intPtr(12),
		Pregnancies:          intPtr(1),
		ContraceptiveMethods: datatypes.JSON(`["IUD","condom"]`),
	}

	out := RenderReviewHTML(nonPath, path, family, gyn)

	assert.Contains(t, out, "<dt>Sex</dt><dd>female</dd>")
	assert.Contains(t, out, "<dt>Languages</dt><dd>Spanish, English</dd>")
	assert.Contains(t, out, "<dt>Dependents</dt><dd>2</dd>")
	assert.Contains(t, out, "<dt>Visual disability</dt><dd>yes</dd>")
	assert.Contains(t, out, "<dt>Allergies</dt><dd>penicillin</dd>")
	assert.Contains(t, out, "<dt>Diabetes</dt><dd>yes</dd>")
	assert.Contains(t, out, "<dt>Cancer</dt><dd>no</dd>")
	assert.Contains(t, out, "<dt>Menarche age</dt><dd>12</dd>")
	assert.Contains(t, out, "<dt>Contraceptive methods</dt><dd>IUD, condom</dd>")

	// Unset fields leave no row behind.
	assert.NotContains(t, out, "Blood pressure")
	assert.NotContains(t, out, "<dt>Diet</dt>")
}

func TestRenderReviewHTML_Escapes(t *testing.T) {
	nonPath := &fileModel.NonPathologicalBackgroundModel{
		Address: `<script>alert("x")</script>`,
	}
	out := RenderReviewHTML(nonPath, nil, nil, nil)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRenderReviewHTML_Deterministic(t *testing.T) {
	nonPath := &fileModel.NonPathologicalBackgroundModel{Sex: "male", Diet: "omnivore"}
	family := &fileModel.FamilyBackgroundModel{Hypertension: boolPtr(true)}

	first := RenderReviewHTML(nonPath, nil, family, nil)
	second := RenderReviewHTML(nonPath, nil, family, nil)
	assert.Equal(t, first, second)
}
