package handler

import (
	"errors"
	"net/http"
	"strconv"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/middleware"
	"AlzheimerRiskPredictor/internal/questionnaire"

	"github.com/gin-gonic/gin"
)

const duplicateSubmitMessage = "This form was already submitted. Please wait for the result or start a new assessment."

type formPage struct {
	Fields             []questionnaire.Field
	Values             map[string]string
	Token              string
	Error              string
	AccessCodeRequired bool
	AccessCode         string
}

type resultPage struct {
	Fields  []questionnaire.Field
	Values  map[string]string
	Success bool
	Message string
}

// defaultFormValues mirrors the first option of every field.
func defaultFormValues() map[string]string {
	values := map[string]string{}
	for _, f := range questionnaire.Fields() {
		if f.Numeric() {
			values[f.Name] = strconv.Itoa(f.Min)
			continue
		}
		values[f.Name] = f.Options[0]
	}
	return values
}

// ShowForm renders the risk factor form with a fresh submission token.
func (h *Handler) ShowForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, defaultFormValues(), "")
}

// SubmitForm is the submit handler of the HTML form. Each rendered form
// carries a single-use token, so a repeated submit is not dispatched again.
func (h *Handler) SubmitForm(c *gin.Context) {
	logger := middleware.Logger(c)

	var req AssessmentRequest
	bindErr := c.ShouldBind(&req)
	values := formValues(c)

	// every response below re-renders the form with a new token, so the token is spent first
	if err := h.tokens.ConsumeSubmissionToken(c.PostForm("submission_token")); err != nil {
		if errors.Is(err, auth.ErrTokenReused) {
			logger.Warn().Msg("SubmitForm(): duplicate submission ignored")
			h.renderForm(c, http.StatusConflict, values, duplicateSubmitMessage)
			return
		}
		logger.Warn().Err(err).Msg("SubmitForm(): invalid submission token")
		h.renderForm(c, http.StatusBadRequest, values, "Your form has expired. Please submit it again.")
		return
	}

	if bindErr != nil {
		h.renderForm(c, http.StatusBadRequest, values, "Please check your inputs: "+bindErr.Error())
		return
	}
	if !req.hasKey() {
		h.renderForm(c, http.StatusBadRequest, values, missingKeyMessage)
		return
	}

	result, err := h.assess(c, ChannelForm, req)
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, values, preconditionMessage(err))
		return
	}

	c.HTML(http.StatusOK, "result.html", resultPage{
		Fields:  questionnaire.Fields(),
		Values:  questionnaire.Values(req.Profile()),
		Success: result.OK(),
		Message: result.Display(),
	})
}

func (h *Handler) renderForm(c *gin.Context, status int, values map[string]string, message string) {
	token, err := h.tokens.GenerateSubmissionToken()
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("renderForm(): failed to issue submission token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to prepare the form"})
		return
	}
	c.HTML(status, "index.html", formPage{
		Fields:             questionnaire.Fields(),
		Values:             values,
		Token:              token,
		Error:              message,
		AccessCodeRequired: h.accessCodeRequired,
		AccessCode:         c.PostForm("access_code"),
	})
}

// formValues keeps what the user entered so a re-rendered form is not reset.
func formValues(c *gin.Context) map[string]string {
	values := defaultFormValues()
	for _, f := range questionnaire.Fields() {
		if v, ok := c.GetPostForm(f.Name); ok {
			values[f.Name] = v
		}
	}
	return values
}
