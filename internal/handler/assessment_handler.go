package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateAssessment godoc
// @Summary      Request a risk assessment
// @Description  Sends the eight risk factors to the language model with the caller's OpenAI API key and returns the classified outcome.
// @Description  The key is used for this single call only and is never stored.
// @Tags         Assessment
// @Accept       json
// @Produce      json
// @Param        request body handler.AssessmentRequest true "Risk factors and OpenAI API key"
// @Success      200 {object} handler.AssessmentResponse "kind=success"
// @Failure      400 {object} handler.ErrorResponse "Missing key or invalid risk factors"
// @Failure      401 {object} handler.AssessmentResponse "kind=auth_error"
// @Failure      429 {object} handler.AssessmentResponse "kind=rate_limited"
// @Failure      502 {object} handler.AssessmentResponse "kind=api_error or transport_error"
// @Failure      500 {object} handler.AssessmentResponse "kind=unexpected_error"
// @Router       /api/assessments [post]
func (h *Handler) CreateAssessment(c *gin.Context) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please check your inputs: " + err.Error()})
		return
	}
	if !req.hasKey() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: missingKeyMessage})
		return
	}

	result, err := h.assess(c, ChannelAPI, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: preconditionMessage(err)})
		return
	}
	c.JSON(httpStatusFor(result.Kind), newAssessmentResponse(c, result, req.Profile()))
}
