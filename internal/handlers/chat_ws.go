package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"github.com/mindgarden/mindgarden-backend/internal/services"
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

// WSClientMessage represents frames coming from the frontend over WebSocket.
type WSClientMessage struct {
	Type string   `json:"type"` // "message", "ping"
	Text string   `json:"text,omitempty"`
	Save bool     `json:"save,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// WSServerMessage is a frame pushed back to the client.
type WSServerMessage struct {
	Type      string                    `json:"type"` // "reply", "echo", "pong"
	Text      string                    `json:"text,omitempty"`
	Sender    models.MessageSender      `json:"sender,omitempty"`
	Source    string                    `json:"source,omitempty"`
	Emergency bool                      `json:"emergency,omitempty"`
	Resources []services.CrisisResource `json:"resources,omitempty"`
	Timestamp time.Time                 `json:"timestamp"`
}

const wsWelcome = "I'm MindGarden AI 🌱. I'm here to listen and help with mental wellness. How are you feeling today?"

// ChatWebSocket runs the companion reply pipeline per inbound frame.
// Authentication via session token (Authorization header or ?token= for
// browser clients). Each reply goes through the same crisis-first,
// remote-then-fallback flow as POST /api/chat.
func ChatWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	conn, err := chatUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	greeting := "Hi there! " + wsWelcome
	if username, err := services.GetUsernameByID(userID.String()); err == nil && username != "" {
		greeting = "Hi " + username + "! " + wsWelcome
	}
	_ = conn.WriteJSON(WSServerMessage{
		Type:      "reply",
		Text:      greeting,
		Sender:    models.SenderCompanion,
		Timestamp: time.Now().UTC(),
	})

	conn.SetReadLimit(64 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))

		var msg WSClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case "ping":
			_ = conn.WriteJSON(WSServerMessage{Type: "pong", Timestamp: time.Now().UTC()})
		case "message":
			if msg.Text == "" {
				continue
			}

			// Acknowledge receipt before the reply, which may take up to the
			// companion timeout to arrive.
			_ = conn.WriteJSON(WSServerMessage{
				Type:      "echo",
				Text:      msg.Text,
				Sender:    models.SenderUser,
				Timestamp: time.Now().UTC(),
			})

			reply := companionClient.Reply(r.Context(), msg.Text)

			if msg.Save {
				tags := msg.Tags
				if reply.Category != "" && reply.Category != services.CategoryDefault {
					tags = append(tags, string(reply.Category))
				}
				services.SaveConversationAsync(models.Conversation{
					UserID:      userID.String(),
					UserMessage: msg.Text,
					BotReply:    reply.Text,
					Tags:        tags,
					IsEmergency: reply.Emergency,
					CreatedAt:   time.Now().UTC(),
				})
			}

			if err := conn.WriteJSON(WSServerMessage{
				Type:      "reply",
				Text:      reply.Text,
				Sender:    models.SenderCompanion,
				Source:    string(reply.Source),
				Emergency: reply.Emergency,
				Resources: reply.Resources,
				Timestamp: time.Now().UTC(),
			}); err != nil {
				return
			}
		}
	}
}
