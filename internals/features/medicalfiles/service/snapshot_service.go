// file: internals/features/medicalfiles/service/snapshot_service.go
package service

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	fileModel "medicku_backend/internals/features/medicalfiles/model"
)

// RenderReviewHTML rebuilds the cached review_html rollup from the current
// background sections. It is a pure function of its inputs: calling it twice
// with the same sections yields the same string. The result is a cached view
// only and is never consulted by any transition guard.
func RenderReviewHTML(nonPath *fileModel.NonPathologicalBackgroundModel, path *fileModel.PathologicalBackgroundModel, family *fileModel.FamilyBackgroundModel, gyn *fileModel.GynecologicalBackgroundModel) string {
	var b strings.Builder
	b.WriteString(`<article class="medical-file-review">`)

	writeSection(&b, "Non-pathological background", nonPathologicalRows(nonPath))
	writeSection(&b, "Pathological background", pathologicalRows(path))
	writeSection(&b, "Family background", familyRows(family))
	writeSection(&b, "Gynecological background", gynecologicalRows(gyn))

	b.WriteString(`</article>`)
	return b.String()
}

type row struct {
	label string
	value string
}

func writeSection(b *strings.Builder, title string, rows []row) {
	b.WriteString(`<section><h3>`)
	b.WriteString(html.EscapeString(title))
	b.WriteString(`</h3>`)
	if len(rows) == 0 {
		b.WriteString(`<p>Not recorded.</p>`)
	} else {
		b.WriteString(`<dl>`)
		for _, r := range rows {
			b.WriteString(`<dt>`)
			b.WriteString(html.EscapeString(r.label))
			b.WriteString(`</dt><dd>`)
			b.WriteString(html.EscapeString(r.value))
			b.WriteString(`</dd>`)
		}
		b.WriteString(`</dl>`)
	}
	b.WriteString(`</section>`)
}

func addText(rows []row, label, value string) []row {
	if strings.TrimSpace(value) == "" {
		return rows
	}
	return append(rows, row{label: label, value: value})
}

func addBool(rows []row, label string, value *bool) []row {
	if value == nil {
		return rows
	}
	v := "no"
	if *value {
		v = "yes"
	}
	return append(rows, row{label: label, value: v})
}

func addInt(rows []row, label string, value *int) []row {
	if value == nil {
		return rows
	}
	return append(rows, row{label: label, value: fmt.Sprintf("%d", *value)})
}

func nonPathologicalRows(m *fileModel.NonPathologicalBackgroundModel) []row {
	if m == nil {
		return nil
	}
	var rows []row
	rows = addText(rows, "Sex", m.Sex)
	rows = addText(rows, "Nationality", m.Nationality)
	rows = addText(rows, "Ethnic group", m.EthnicGroup)
	if len(m.Languages) > 0 {
		rows = append(rows, row{label: "Languages", value: strings.Join(m.Languages, ", ")})
	}
	rows = addText(rows, "Blood type", m.BloodType)
	rows = addText(rows, "Civil status", m.CivilStatus)
	rows = addText(rows, "Address", m.Address)
	rows = addText(rows, "Housing", m.HousingType)
	rows = addText(rows, "Cohabitants", m.Cohabitants)
	rows = addInt(rows, "Dependents", m.Dependents)
	rows = addText(rows, "Education institution", m.EducationInstitution)
	rows = addText(rows, "Academic degree", m.AcademicDegree)
	rows = addText(rows, "Career", m.Career)
	rows = addText(rows, "Economic activity", m.EconomicActivity)
	rows = addBool(rows, "Medical insurance", m.HasMedicalInsurance)
	rows = addText(rows, "Insurance institution", m.InsuranceInstitution)
	rows = addText(rows, "Diet", m.Diet)
	rows = addInt(rows, "Meals per day", m.MealsPerDay)
	rows = addText(rows, "Supplements", m.Supplements)
	rows = addText(rows, "Hygiene", m.Hygiene)
	rows = addText(rows, "Exercise", m.Exercise)
	rows = addText(rows, "Sleep", m.Sleep)
	rows = addText(rows, "Hobbies", m.Hobbies)
	rows = addText(rows, "Recent travel", m.RecentTravel)
	rows = addBool(rows, "Piercings", m.HasPiercings)
	rows = addBool(rows, "Tattoos", m.HasTattoos)
	rows = addText(rows, "Alcohol use", m.AlcoholUse)
	rows = addText(rows, "Tobacco use", m.TobaccoUse)
	rows = addText(rows, "Other drug use", m.OtherDrugUse)
	rows = addText(rows, "Addictions", m.Addictions)
	rows = addText(rows, "Other", m.OtherInfo)
	return rows
}

func pathologicalRows(m *fileModel.PathologicalBackgroundModel) []row {
	if m == nil {
		return nil
	}
	var rows []row
	rows = addText(rows, "Disability", m.DisabilityDescription)
	rows = addBool(rows, "Visual disability", m.VisualDisability)
	rows = addBool(rows, "Hearing disability", m.HearingDisability)
	rows = addBool(rows, "Motor disability", m.MotorDisability)
	rows = addBool(rows, "Intellectual disability", m.IntellectualDisability)
	rows = addText(rows, "Chronic diseases", m.ChronicDiseases)
	rows = addText(rows, "Current medications", m.CurrentMedications)
	rows = addText(rows, "Hospitalizations", m.Hospitalizations)
	rows = addText(rows, "Surgeries", m.Surgeries)
	rows = addText(rows, "Accidents", m.Accidents)
	rows = addText(rows, "Transfusions", m.Transfusions)
	rows = addText(rows, "Allergies", m.Allergies)
	rows = addText(rows, "Other", m.OtherInfo)
	return rows
}

func familyRows(m *fileModel.FamilyBackgroundModel) []row {
	if m == nil {
		return nil
	}
	var rows []row
	rows = addBool(rows, "Hypertension", m.Hypertension)
	rows = addBool(rows, "Diabetes", m.Diabetes)
	rows = addBool(rows, "Cancer", m.Cancer)
	rows = addBool(rows, "Mental illnesses", m.MentalIllnesses)
	rows = addBool(rows, "Congenital diseases", m.CongenitalDiseases)
	rows = addBool(rows, "Heart diseases", m.HeartDiseases)
	rows = addBool(rows, "Liver diseases", m.LiverDiseases)
	rows = addBool(rows, "Kidney diseases", m.KidneyDiseases)
	rows = addText(rows, "Other", m.OtherInfo)
	return rows
}

func gynecologicalRows(m *fileModel.GynecologicalBackgroundModel) []row {
	if m == nil {
		return nil
	}
	var rows []row
	rows = addInt(rows, "Menarche age", m.MenarcheAge)
	rows = addInt(rows, "Pregnancies", m.Pregnancies)
	rows = addInt(rows, "Births", m.Births)
	rows = addInt(rows, "C-sections", m.CSections)
	rows = addInt(rows, "Abortions", m.Abortions)
	if len(m.ContraceptiveMethods) > 0 {
		var methods []string
		if err := json.Unmarshal(m.ContraceptiveMethods, &methods); err == nil && len(methods) > 0 {
			rows = append(rows, row{label: "Contraceptive methods", value: strings.Join(methods, ", ")})
		}
	}
	rows = addText(rows, "Other", m.OtherInfo)
	return rows
}
