package ws

import (
	"encoding/json"
	"sync"
	"time"

	"jobportal_front/internal/logger"
	"jobportal_front/internal/store"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

const (
	EventStateChanged = "state_changed"
	EventSnapshot     = "snapshot"
	EventReset        = "state_reset"
	EventPong         = "pong"
	EventError        = "error"
)

// IncomingWSMessage - команда от браузера: snapshot или ping
type IncomingWSMessage struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Event - то, что уходит в браузер. После state_changed страница
// перечитывает нужный срез (или просит snapshot).
type Event struct {
	Type   string              `json:"type"`
	Slice  store.SliceName     `json:"slice,omitempty"`
	Action string              `json:"action,omitempty"`
	Status store.RequestStatus `json:"status,omitempty"`
	Error  string              `json:"error,omitempty"`
	At     time.Time           `json:"at"`
	State  *store.State        `json:"state,omitempty"`
}

type Client struct {
	ID        string
	SessionID string
	Conn      *websocket.Conn
	Send      chan any

	Manager *WebSocketManager

	mu     sync.Mutex
	closed bool
}

func newClient(id, sessionID string, conn *websocket.Conn, manager *WebSocketManager) *Client {
	return &Client{
		ID:        id,
		SessionID: sessionID,
		Conn:      conn,
		Send:      make(chan any, sendBuffer),
		Manager:   manager,
	}
}

// trySend не блокируется; false - буфер полон или клиент уже закрыт
func (c *Client) trySend(message any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.Send <- message:
		return true
	default:
		return false
	}
}

// detach закрывает Send. Повторный вызов ничего не делает.
func (c *Client) detach() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.leave(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WS read error", "client_id", c.ID, "error", err)
			}
			break
		}

		var msg IncomingWSMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			logger.Debug("WS message is not JSON", "client_id", c.ID, "error", err)
			c.Manager.deliver(c, Event{Type: EventError, Error: "Invalid message", At: time.Now().UTC()})
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteJSON(msg); err != nil {
				logger.Warn("WS write error", "client_id", c.ID, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg IncomingWSMessage) {
	now := time.Now().UTC()

	switch msg.Action {
	case "snapshot":
		snap := c.Manager.stores.For(c.SessionID).Snapshot()
		c.Manager.deliver(c, Event{Type: EventSnapshot, State: &snap, At: now})

	case "ping":
		c.Manager.deliver(c, Event{Type: EventPong, At: now})

	default:
		logger.Debug("WS unhandled action", "client_id", c.ID, "action", msg.Action)
		c.Manager.deliver(c, Event{Type: EventError, Error: "Unknown action " + msg.Action, At: now})
	}
}
