package ws

import (
	"net/http"
	"slices"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/middleware"
	"jobportal_front/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	Manager  *WebSocketManager
	upgrader websocket.Upgrader
}

// NewWebSocketHandler - пустой allowedOrigins пропускает любой Origin (development)
func NewWebSocketHandler(manager *WebSocketManager, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				return slices.Contains(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

// ServeWS подключает вкладку к изменениям состояния ее сессии
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		apperrors.HandleError(c, apperrors.ErrSessionNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "WebSocket upgrade error", "error", err)
		return
	}

	client := newClient(uuid.NewString(), sess.ID, conn, h.Manager)
	if !h.Manager.join(client) {
		conn.Close()
		return
	}

	logger.CtxInfo(c.Request.Context(), "WebSocket client connected", "client_id", client.ID)

	go client.readPump()
	go client.writePump()
}
