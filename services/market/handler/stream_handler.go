package handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"bomul-market/internal/events"
	"bomul-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	sendBufferSize = 256
)

// EventSource is the local fan-out the stream attaches to
type EventSource interface {
	Subscribe(listener events.Listener) (unsubscribe func())
}

// StreamMessage is one event as written to a websocket client
type StreamMessage struct {
	events.Event
	FromRemote bool `json:"from_remote"`
}

type StreamHandler struct {
	source   EventSource
	upgrader websocket.Upgrader
}

func NewStreamHandler(source EventSource) *StreamHandler {
	return &StreamHandler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// sessions are served from any origin during development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// streamClient is one websocket connection. Sends after close are dropped.
type streamClient struct {
	id        string
	productID string
	conn      *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

// StreamEventsHandler handles GET /ws. The optional product_id query narrows
// product events to one listing; user and report events always pass.
func (h *StreamHandler) StreamEventsHandler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("StreamEventsHandler: upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := &streamClient{
		id:        utils.GenerateID(),
		productID: c.Query("product_id"),
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
	}
	unsubscribe := h.source.Subscribe(client.deliver)
	defer func() {
		unsubscribe()
		client.close()
		utils.Info("StreamEventsHandler: client disconnected", map[string]any{"client_id": client.id})
	}()

	welcome, _ := json.Marshal(map[string]string{
		"type":       "connected",
		"client_id":  client.id,
		"product_id": client.productID,
	})
	client.enqueue(welcome)
	utils.Info("StreamEventsHandler: client connected", map[string]any{"client_id": client.id, "product_id": client.productID})

	go client.writePump()
	client.readPump()
}

func (s *streamClient) deliver(e events.Event) {
	if s.productID != "" && e.ProductID != "" && e.ProductID != s.productID {
		return
	}
	payload, err := json.Marshal(StreamMessage{Event: e, FromRemote: e.FromRemote})
	if err != nil {
		utils.Error("StreamEventsHandler: failed to encode event", map[string]any{"event_id": e.ID, "error": err.Error()})
		return
	}
	if !s.enqueue(payload) {
		utils.Warn("StreamEventsHandler: slow client dropped", map[string]any{"client_id": s.id})
		s.close()
	}
}

// enqueue reports false when the buffer is full
func (s *streamClient) enqueue(payload []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

func (s *streamClient) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

func (s *streamClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client input and returns when the connection ends
func (s *streamClient) readPump() {
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				utils.Warn("StreamEventsHandler: unexpected close", map[string]any{"client_id": s.id, "error": err.Error()})
			}
			return
		}
	}
}
