package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() RiskProfile {
	return RiskProfile{
		Age:                  72,
		Gender:               GenderFemale,
		Smoking:              NonSmoker,
		PhysicalActivity:     LevelModerate,
		HeadTrauma:           AnswerNo,
		FamilyHistory:        AnswerYes,
		ChronicInflammation:  AnswerNo,
		SocioeconomicFactors: LevelLow,
	}
}

func TestRiskProfileValidate(t *testing.T) {
	require.NoError(t, validProfile().Validate())

	tests := []struct {
		name   string
		mutate func(p *RiskProfile)
		field  string
	}{
		{"missing age", func(p *RiskProfile) { p.Age = 0 }, "age"},
		{"age below range", func(p *RiskProfile) { p.Age = 29 }, "age"},
		{"age above range", func(p *RiskProfile) { p.Age = 121 }, "age"},
		{"unknown gender", func(p *RiskProfile) { p.Gender = "Other" }, "gender"},
		{"lowercase smoking", func(p *RiskProfile) { p.Smoking = "smoker" }, "smoking"},
		{"missing activity", func(p *RiskProfile) { p.PhysicalActivity = "" }, "physical_activity"},
		{"bad head trauma", func(p *RiskProfile) { p.HeadTrauma = "Maybe" }, "head_trauma"},
		{"bad family history", func(p *RiskProfile) { p.FamilyHistory = "yes" }, "family_history"},
		{"bad inflammation", func(p *RiskProfile) { p.ChronicInflammation = "" }, "chronic_inflammation"},
		{"bad socioeconomic", func(p *RiskProfile) { p.SocioeconomicFactors = "None" }, "socioeconomic_factors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)

			err := p.Validate()
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestRiskProfileAgeBounds(t *testing.T) {
	p := validProfile()
	p.Age = MinAge
	assert.NoError(t, p.Validate())
	p.Age = MaxAge
	assert.NoError(t, p.Validate())
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "invalid profile: gender is required", (&ValidationError{Field: "gender"}).Error())
	assert.Equal(t, `invalid profile: age has unsupported value "12"`, (&ValidationError{Field: "age", Value: "12"}).Error())
}
