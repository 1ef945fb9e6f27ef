package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"AlzheimerRiskPredictor/internal/auth"
	"AlzheimerRiskPredictor/internal/llm"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialAssessment(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestRouter(t, h))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/assessment"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readSocket(t *testing.T, conn *websocket.Conn) SocketMessage {
	t.Helper()
	var msg SocketMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestAssessmentSocketSuccess(t *testing.T) {
	assessor := &fakeAssessor{result: llm.Success("Elevated risk.")}
	recorder := &fakeRecorder{}
	conn := dialAssessment(t, New(assessor, auth.NewManager("secret", time.Hour), WithRecorder(recorder)))

	require.NoError(t, conn.WriteJSON(validRequest()))

	assert.Equal(t, StatusPending, readSocket(t, conn).Status)

	final := readSocket(t, conn)
	assert.Equal(t, StatusComplete, final.Status)
	require.NotNil(t, final.Result)
	assert.Equal(t, llm.KindSuccess, final.Result.Kind)
	assert.Equal(t, "Elevated risk.", final.Result.Text)

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	assert.Equal(t, 1, assessor.callCount())
	records := recorder.all()
	require.Len(t, records, 1)
	assert.Equal(t, ChannelWebSocket, records[0].Channel)
}

func TestAssessmentSocketFailureResult(t *testing.T) {
	conn := dialAssessment(t, New(&fakeAssessor{result: llm.RateLimited()}, auth.NewManager("secret", time.Hour)))

	require.NoError(t, conn.WriteJSON(validRequest()))
	assert.Equal(t, StatusPending, readSocket(t, conn).Status)

	final := readSocket(t, conn)
	assert.Equal(t, StatusComplete, final.Status)
	require.NotNil(t, final.Result)
	assert.Equal(t, llm.KindRateLimited, final.Result.Kind)
	assert.Equal(t, 429, final.Result.StatusCode)
}

func TestAssessmentSocketRejectsBeforeDispatch(t *testing.T) {
	tests := []struct {
		name    string
		send    func(*websocket.Conn) error
		message string
	}{
		{"missing key", func(c *websocket.Conn) error {
			req := validRequest()
			req.APIKey = ""
			return c.WriteJSON(req)
		}, missingKeyMessage},
		{"invalid age", func(c *websocket.Conn) error {
			req := validRequest()
			req.Age = 10
			return c.WriteJSON(req)
		}, "Please check your inputs"},
		{"not json", func(c *websocket.Conn) error {
			return c.WriteMessage(websocket.TextMessage, []byte("hello"))
		}, "Please check your inputs"},
		{"binary", func(c *websocket.Conn) error {
			return c.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3})
		}, "JSON text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessor := &fakeAssessor{result: llm.Success("x")}
			conn := dialAssessment(t, New(assessor, auth.NewManager("secret", time.Hour)))

			require.NoError(t, tt.send(conn))
			msg := readSocket(t, conn)
			assert.Equal(t, StatusError, msg.Status)
			assert.Contains(t, msg.Error, tt.message)
			assert.Nil(t, msg.Result)
			assert.Zero(t, assessor.callCount())
		})
	}
}

func TestAssessmentSocketOrigin(t *testing.T) {
	h := New(&fakeAssessor{result: llm.Success("ok")}, auth.NewManager("secret", time.Hour),
		WithAllowedOrigins([]string{"https://clinic.example"}))
	srv := httptest.NewServer(newTestRouter(t, h))
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/assessment"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://elsewhere.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, http.Header{"Origin": {"https://clinic.example"}})
	require.NoError(t, err)
	conn.Close()

	conn, _, err = websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	conn.Close()
}

func TestCheckOrigin(t *testing.T) {
	open := New(&fakeAssessor{}, auth.NewManager("secret", time.Hour), WithAllowedOrigins([]string{"*"}))
	closed := New(&fakeAssessor{}, auth.NewManager("secret", time.Hour), WithAllowedOrigins([]string{"https://a.example"}))

	req := httptest.NewRequest(http.MethodGet, "/ws/assessment", nil)
	req.Header.Set("Origin", "https://b.example")
	assert.True(t, open.checkOrigin(req))
	assert.False(t, closed.checkOrigin(req))

	req.Header.Set("Origin", "https://A.example")
	assert.True(t, closed.checkOrigin(req))
}
