// Package questionnaire describes the risk factor form: labels, allowed
// options and the order the fields are shown and written into the prompt.
package questionnaire

import (
	"strconv"

	"AlzheimerRiskPredictor/internal/models"
)

type Field struct {
	Name string
	// Label is used on the form.
	Label string
	// PromptLabel is used on the labelled line of the prompt.
	PromptLabel string
	Options     []string
	Min, Max    int
}

// Numeric reports whether the field is entered as a number instead of chosen from options.
func (f Field) Numeric() bool {
	return len(f.Options) == 0
}

var fields = []Field{
	{Name: "age", Label: "Age", PromptLabel: "Age", Min: models.MinAge, Max: models.MaxAge},
	{Name: "gender", Label: "Gender", PromptLabel: "Gender",
		Options: []string{string(models.GenderMale), string(models.GenderFemale)}},
	{Name: "smoking", Label: "Current Smoking Status", PromptLabel: "Smoking Status",
		Options: []string{string(models.NonSmoker), string(models.Smoker)}},
	{Name: "physical_activity", Label: "Physical Activity Level", PromptLabel: "Physical Activity Level",
		Options: levels()},
	{Name: "head_trauma", Label: "History of Head Injury", PromptLabel: "History of Head Injury",
		Options: answers()},
	{Name: "family_history", Label: "Family History of Memory Loss or Dementia", PromptLabel: "Family History of Memory Loss or Dementia",
		Options: answers()},
	{Name: "chronic_inflammation", Label: "Chronic Conditions (e.g., Arthritis)", PromptLabel: "Chronic Conditions",
		Options: answers()},
	{Name: "socioeconomic_factors", Label: "Social Support and Lifestyle Factors", PromptLabel: "Social Support and Lifestyle Factors",
		Options: levels()},
}

func levels() []string {
	return []string{string(models.LevelHigh), string(models.LevelModerate), string(models.LevelLow)}
}

func answers() []string {
	return []string{string(models.AnswerNo), string(models.AnswerYes)}
}

// Fields returns the form fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func GetField(name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Values returns the profile's values keyed by field name, formatted as they
// appear on the form and in the prompt.
func Values(p models.RiskProfile) map[string]string {
	return map[string]string{
		"age":                   strconv.Itoa(p.Age),
		"gender":                string(p.Gender),
		"smoking":               string(p.Smoking),
		"physical_activity":     string(p.PhysicalActivity),
		"head_trauma":           string(p.HeadTrauma),
		"family_history":        string(p.FamilyHistory),
		"chronic_inflammation":  string(p.ChronicInflammation),
		"socioeconomic_factors": string(p.SocioeconomicFactors),
	}
}
