package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"deepdive/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgInterviewTurn MessageType = "interview_turn"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// TurnEvent is pushed to observers after every interview turn
type TurnEvent struct {
	ResponseID string `json:"response_id"`
	Content    string `json:"content"`
	IsLast     bool   `json:"is_last"`
}

// Hub fans interview-turn events out to admin observers watching a
// survey. Observers are read-only; nothing flows back into the
// interview from here.
type Hub struct {
	// surveyID -> connection set
	observers map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage

	logger *zap.Logger
}

// Connection represents one observer's WebSocket connection
type Connection struct {
	SurveyID string
	Admin    string
	Send     chan []byte
	Hub      *Hub
}

type broadcastMessage struct {
	surveyID string
	message  *Message
}

// NewHub creates a new observer hub
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		observers:  make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *broadcastMessage, 256),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.observers[conn.SurveyID] == nil {
				h.observers[conn.SurveyID] = make(map[*Connection]struct{})
			}
			h.observers[conn.SurveyID][conn] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("observer connected",
				zap.String("survey", conn.SurveyID),
				zap.String("admin", conn.Admin))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.observers[conn.SurveyID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.observers, conn.SurveyID)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Info("observer disconnected",
				zap.String("survey", conn.SurveyID),
				zap.String("admin", conn.Admin))

		case bm := <-h.broadcast:
			data, err := json.Marshal(bm.message)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for conn := range h.observers[bm.surveyID] {
				select {
				case conn.Send <- data:
				default:
					// Slow observer; drop the event rather than block
					// the interview turn.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds an observer connection to the hub
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes an observer connection from the hub
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastTurn implements service.Broadcaster.
func (h *Hub) BroadcastTurn(surveyID, responseID string, turn *model.ChatTurn) {
	payload, err := json.Marshal(TurnEvent{
		ResponseID: responseID,
		Content:    turn.Content,
		IsLast:     turn.IsLast,
	})
	if err != nil {
		return
	}
	h.broadcast <- &broadcastMessage{
		surveyID: surveyID,
		message:  &Message{Type: MsgInterviewTurn, Payload: payload},
	}
}
