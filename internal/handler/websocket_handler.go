package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"AlzheimerRiskPredictor/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
)

const (
	socketReadTimeout  = time.Minute
	socketWriteTimeout = 10 * time.Second
	maxSubmissionBytes = 16 << 10
)

// checkOrigin applies the CORS origin list to WebSocket handshakes.
// Requests without an Origin header do not come from a browser page.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// Socket message statuses.
const (
	StatusPending  = "pending"
	StatusComplete = "complete"
	StatusError    = "error"
)

type SocketMessage struct {
	Status string              `json:"status"`
	Result *AssessmentResponse `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// HandleAssessmentSocket godoc
// @Summary      Assessment over WebSocket
// @Description  Upgrades to a WebSocket. The client sends one AssessmentRequest as a JSON text message;
// @Description  the server answers with {"status":"pending"} and then {"status":"complete","result":{...}}
// @Description  (or {"status":"error","error":"..."}) and closes the connection.
// @Tags         Assessment
// @Success      101 {string} string "Switching Protocols"
// @Router       /ws/assessment [get]
func (h *Handler) HandleAssessmentSocket(c *gin.Context) {
	logger := middleware.Logger(c)

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("HandleAssessmentSocket(): failed to upgrade to WebSocket")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxSubmissionBytes)
	conn.SetReadDeadline(time.Now().Add(socketReadTimeout))

	messageType, payload, err := conn.ReadMessage()
	if err != nil {
		logger.Info().Err(err).Msg("HandleAssessmentSocket(): client left before submitting")
		return
	}
	if messageType != websocket.TextMessage {
		h.closeSocket(c, conn, SocketMessage{Status: StatusError, Error: "Submissions must be JSON text messages"})
		return
	}

	var req AssessmentRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		h.closeSocket(c, conn, SocketMessage{Status: StatusError, Error: "Please check your inputs: " + err.Error()})
		return
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		h.closeSocket(c, conn, SocketMessage{Status: StatusError, Error: "Please check your inputs: " + err.Error()})
		return
	}
	if !req.hasKey() {
		h.closeSocket(c, conn, SocketMessage{Status: StatusError, Error: missingKeyMessage})
		return
	}

	if err := writeSocket(conn, SocketMessage{Status: StatusPending}); err != nil {
		logger.Info().Err(err).Msg("HandleAssessmentSocket(): failed to send pending status")
		return
	}

	result, err := h.assess(c, ChannelWebSocket, req)
	if err != nil {
		h.closeSocket(c, conn, SocketMessage{Status: StatusError, Error: preconditionMessage(err)})
		return
	}
	resp := newAssessmentResponse(c, result, req.Profile())
	h.closeSocket(c, conn, SocketMessage{Status: StatusComplete, Result: &resp})
}

// closeSocket sends the final message followed by a normal close frame.
func (h *Handler) closeSocket(c *gin.Context, conn *websocket.Conn, msg SocketMessage) {
	if err := writeSocket(conn, msg); err != nil {
		middleware.Logger(c).Info().Err(err).Msg("closeSocket(): failed to send final message")
		return
	}
	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, msg.Status)
	conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(socketWriteTimeout))
}

func writeSocket(conn *websocket.Conn, msg SocketMessage) error {
	conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout))
	return conn.WriteJSON(msg)
}
