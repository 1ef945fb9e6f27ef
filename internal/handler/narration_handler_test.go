package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/llm"

	"github.com/stretchr/testify/assert"
)

type fakeNarrator struct {
	audio []byte
	err   error
	text  string
}

func (f *fakeNarrator) Narrate(ctx context.Context, text string) ([]byte, error) {
	f.text = text
	return f.audio, f.err
}

func TestNarrate(t *testing.T) {
	narrator := &fakeNarrator{audio: []byte("ID3-mp3")}
	h := New(&fakeAssessor{}, auth.NewManager("secret", time.Hour), WithNarrator(narrator))
	assert.True(t, h.NarrationEnabled())
	r := newTestRouter(t, h)

	w := postJSON(t, r, "/api/narration", NarrationRequest{Text: "Your risk is moderate."})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, "ID3-mp3", w.Body.String())
	assert.Equal(t, "Your risk is moderate.", narrator.text)
}

func TestNarrateRejectsBadText(t *testing.T) {
	narrator := &fakeNarrator{audio: []byte("x")}
	r := newTestRouter(t, New(&fakeAssessor{}, auth.NewManager("secret", time.Hour), WithNarrator(narrator)))

	assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/api/narration", NarrationRequest{}).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/api/narration", NarrationRequest{Text: "   "}).Code)
	long := strings.Repeat("a", llm.MaxNarrationBytes+1)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/api/narration", NarrationRequest{Text: long}).Code)
	assert.Empty(t, narrator.text)
}

func TestNarrateUpstreamFailure(t *testing.T) {
	narrator := &fakeNarrator{err: errors.New("quota exceeded")}
	r := newTestRouter(t, New(&fakeAssessor{}, auth.NewManager("secret", time.Hour), WithNarrator(narrator)))

	w := postJSON(t, r, "/api/narration", NarrationRequest{Text: "hello"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "quota")
}

func TestNarrateDisabled(t *testing.T) {
	h := New(&fakeAssessor{}, auth.NewManager("secret", time.Hour))
	assert.False(t, h.NarrationEnabled())
	w := postJSON(t, newTestRouter(t, h), "/api/narration", NarrationRequest{Text: "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
