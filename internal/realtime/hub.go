package realtime

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Client is one websocket connection scoped to a single project room.
type Client struct {
	ID        string
	UserID    string
	ProjectID string
	Conn      *WebSocketConn
	Send      chan []byte
}

// Hub fans chat messages out to everyone viewing the same project. Messages
// are never persisted; a room lives only as long as its connections.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan roomMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        zerolog.Logger
}

type roomMessage struct {
	projectID string
	payload   []byte
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan roomMessage, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// ClientCount reports how many connections are currently registered.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) RegisterClient(client *Client) {
	h.register <- client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

// SendToProject broadcasts to every connection in the project's room.
func (h *Hub) SendToProject(projectID string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal chat payload")
		return
	}
	h.broadcast <- roomMessage{projectID: projectID, payload: payload}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.log.Debug().Str("client", client.ID).Str("project", client.ProjectID).Msg("chat client joined")

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.Send)
				h.log.Debug().Str("client", client.ID).Msg("chat client left")
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for id, client := range h.clients {
				if client.ProjectID != msg.projectID {
					continue
				}
				select {
				case client.Send <- msg.payload:
				default:
					close(client.Send)
					delete(h.clients, id)
				}
			}
			h.mu.Unlock()
		}
	}
}
