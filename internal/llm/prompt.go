package llm

import (
	"fmt"
	"strings"

	"AlzheimerRiskPredictor/internal/models"
	"AlzheimerRiskPredictor/internal/questionnaire"
)

const (
	promptIntro = "Given the following user details related to risk factors for Alzheimer's disease, provide an assessment of\n" +
		"potential onset risks in clear, easy-to-understand terms. Consider age, lifestyle, past injuries, family history,\n" +
		"and chronic conditions."
	promptOutro = "Provide an assessment and potential predictive analysis on the Alzheimer's disease onset risk, " +
		"suitable for a layperson's understanding."
)

// BuildPrompt renders the assessment prompt with one labelled line per profile field.
func BuildPrompt(profile models.RiskProfile) string {
	values := questionnaire.Values(profile)

	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString("\n\nUser details:\n")
	for _, f := range questionnaire.Fields() {
		fmt.Fprintf(&b, "%s: %s\n", f.PromptLabel, values[f.Name])
	}
	b.WriteString("\n")
	b.WriteString(promptOutro)
	return b.String()
}
