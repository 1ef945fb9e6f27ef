package handler

import (
	"errors"
	"net/http"

	"AlzheimerRiskPredictor/internal/llm"
	"AlzheimerRiskPredictor/internal/middleware"

	"github.com/gin-gonic/gin"
)

type NarrationRequest struct {
	Text string `json:"text" binding:"required" example:"Based on the details provided, ..."`
}

// Narrate godoc
// @Summary      Read an assessment aloud
// @Description  Converts assessment text to MP3 audio. Available when narration is enabled.
// @Tags         Assessment
// @Accept       json
// @Produce      audio/mpeg
// @Param        request body handler.NarrationRequest true "Text to narrate"
// @Success      200 {file} file "MP3 audio"
// @Failure      400 {object} handler.ErrorResponse
// @Failure      502 {object} handler.ErrorResponse
// @Router       /api/narration [post]
func (h *Handler) Narrate(c *gin.Context) {
	if h.narrator == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Narration is not enabled"})
		return
	}

	var req NarrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text to narrate is required"})
		return
	}
	if err := llm.CheckNarrationText(req.Text); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	audio, err := h.narrator.Narrate(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, llm.ErrNarrationTooLarge) || errors.Is(err, llm.ErrEmptyNarration) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.Logger(c).Error().Err(err).Msg("Narrate(): synthesis failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to narrate the assessment"})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
