package models

import "fmt"

const (
	MinAge = 30
	MaxAge = 120
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type SmokingStatus string

const (
	NonSmoker SmokingStatus = "Non-Smoker"
	Smoker    SmokingStatus = "Smoker"
)

// Level is shared by physical activity and social support answers.
type Level string

const (
	LevelHigh     Level = "High"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

// Answer is a No/Yes history question.
type Answer string

const (
	AnswerNo  Answer = "No"
	AnswerYes Answer = "Yes"
)

func (g Gender) Valid() bool        { return g == GenderMale || g == GenderFemale }
func (s SmokingStatus) Valid() bool { return s == NonSmoker || s == Smoker }
func (l Level) Valid() bool         { return l == LevelHigh || l == LevelModerate || l == LevelLow }
func (a Answer) Valid() bool        { return a == AnswerNo || a == AnswerYes }

// RiskProfile is the set of risk factors submitted with one assessment request.
// It is built per submission and never persisted.
type RiskProfile struct {
	Age                  int           `json:"age" form:"age"`
	Gender               Gender        `json:"gender" form:"gender"`
	Smoking              SmokingStatus `json:"smoking" form:"smoking"`
	PhysicalActivity     Level         `json:"physical_activity" form:"physical_activity"`
	HeadTrauma           Answer        `json:"head_trauma" form:"head_trauma"`
	FamilyHistory        Answer        `json:"family_history" form:"family_history"`
	ChronicInflammation  Answer        `json:"chronic_inflammation" form:"chronic_inflammation"`
	SocioeconomicFactors Level         `json:"socioeconomic_factors" form:"socioeconomic_factors"`
}

// ValidationError names the first profile field that is missing or out of range.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid profile: %s is required", e.Field)
	}
	return fmt.Sprintf("invalid profile: %s has unsupported value %q", e.Field, e.Value)
}

// Validate checks that every field is present and inside its domain.
func (p RiskProfile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		value := ""
		if p.Age != 0 {
			value = fmt.Sprint(p.Age)
		}
		return &ValidationError{Field: "age", Value: value}
	}
	checks := []struct {
		field string
		value string
		ok    bool
	}{
		{"gender", string(p.Gender), p.Gender.Valid()},
		{"smoking", string(p.Smoking), p.Smoking.Valid()},
		{"physical_activity", string(p.PhysicalActivity), p.PhysicalActivity.Valid()},
		{"head_trauma", string(p.HeadTrauma), p.HeadTrauma.Valid()},
		{"family_history", string(p.FamilyHistory), p.FamilyHistory.Valid()},
		{"chronic_inflammation", string(p.ChronicInflammation), p.ChronicInflammation.Valid()},
		{"socioeconomic_factors", string(p.SocioeconomicFactors), p.SocioeconomicFactors.Valid()},
	}
	for _, c := range checks {
		if !c.ok {
			return &ValidationError{Field: c.field, Value: c.value}
		}
	}
	return nil
}
