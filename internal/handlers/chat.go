package handlers

import (
	"encoding/json"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/realtime"
	"github.com/linkwork-app/linkwork_be/internal/utils"
)

// ChatHandler serves the lightweight per-project chat. Messages only live in
// the hub; closing the last connection of a room drops its history.
type ChatHandler struct {
	Hub       *realtime.Hub
	JWTSecret string
	Log       zerolog.Logger
}

func NewChatHandler(hub *realtime.Hub, jwtSecret string, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{Hub: hub, JWTSecret: jwtSecret, Log: log}
}

type ChatMessage struct {
	ProjectID string `json:"projectId"`
	From      string `json:"from"`
	Text      string `json:"text"`
}

type inboundChat struct {
	Text string `json:"text"`
}

// WebSocketHandler authenticates via query params (cookies do not reach the
// upgraded connection) and joins the caller to the project's room.
func (h *ChatHandler) WebSocketHandler(c *websocket.Conn) {
	claims, err := utils.ParseJWT(h.JWTSecret, c.Query("token"))
	if err != nil {
		c.Close()
		return
	}
	projectID := c.Query("project_id")
	if projectID == "" {
		c.Close()
		return
	}

	client := &realtime.Client{
		ID:        uuid.NewString(),
		UserID:    claims.UserID,
		ProjectID: projectID,
		Conn:      realtime.NewWebSocketConn(c),
		Send:      make(chan []byte, 64),
	}

	h.Hub.RegisterClient(client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for payload := range client.Send {
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}()

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			break
		}
		var in inboundChat
		if err := json.Unmarshal(raw, &in); err != nil || in.Text == "" {
			continue
		}
		h.Hub.SendToProject(projectID, ChatMessage{
			ProjectID: projectID,
			From:      claims.UserID,
			Text:      in.Text,
		})
	}

	// unregister before waiting: the hub closing Send is what ends the
	// writer, so deferring this would deadlock both goroutines
	h.Hub.UnregisterClient(client)
	<-done
	c.Close()
}
