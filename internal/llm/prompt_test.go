package llm

import (
	"strings"
	"testing"

	"AlzheimerRiskPredictor/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptContainsEachFieldOnce(t *testing.T) {
	prompt := BuildPrompt(testProfile())

	lines := []string{
		"Age: 67\n",
		"Gender: Female\n",
		"Smoking Status: Smoker\n",
		"Physical Activity Level: Low\n",
		"History of Head Injury: Yes\n",
		"Family History of Memory Loss or Dementia: No\n",
		"Chronic Conditions: Yes\n",
		"Social Support and Lifestyle Factors: Moderate\n",
	}
	for _, line := range lines {
		assert.Equal(t, 1, strings.Count(prompt, line), "line %q", line)
	}
	assert.True(t, strings.HasPrefix(prompt, "Given the following user details"))
	assert.True(t, strings.HasSuffix(prompt, "suitable for a layperson's understanding."))
}

func TestBuildPromptDistinctValuesAppearOnce(t *testing.T) {
	p := models.RiskProfile{
		Age:                  88,
		Gender:               models.GenderMale,
		Smoking:              models.NonSmoker,
		PhysicalActivity:     models.LevelHigh,
		HeadTrauma:           models.AnswerYes,
		FamilyHistory:        models.AnswerNo,
		ChronicInflammation:  models.AnswerYes,
		SocioeconomicFactors: models.LevelLow,
	}
	prompt := BuildPrompt(p)

	for _, v := range []string{"88", "Male", "Non-Smoker", "High", "Low"} {
		assert.Equal(t, 1, strings.Count(prompt, v), "value %q", v)
	}
}

func TestBuildPromptFieldOrder(t *testing.T) {
	prompt := BuildPrompt(testProfile())
	age := strings.Index(prompt, "Age: ")
	gender := strings.Index(prompt, "Gender: ")
	social := strings.Index(prompt, "Social Support and Lifestyle Factors: ")
	assert.True(t, age < gender && gender < social)
}
