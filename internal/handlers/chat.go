package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/config"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"github.com/mindgarden/mindgarden-backend/internal/services"
)

var companionClient *services.CompanionClient

// InitChatService wires the companion relay client from configuration.
// Called once at startup (and from tests with a stub endpoint).
func InitChatService(cfg *config.Config) {
	companionClient = services.NewCompanionClient(cfg.CompanionURL, cfg.CompanionTimeout)
}

type ChatRequest struct {
	Message string   `json:"message"`
	Save    bool     `json:"save"`
	Tags    []string `json:"tags,omitempty"`
}

type ChatResponse struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message,omitempty"`
	Reply     string                    `json:"reply,omitempty"`
	Source    string                    `json:"source,omitempty"`
	Emergency bool                      `json:"emergency"`
	Resources []services.CrisisResource `json:"resources,omitempty"`
}

// Chat handles one companion exchange: crisis check, bounded remote call,
// local fallback. Works with or without a session; persistence is opt-in and
// requires one.
func Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ChatResponse{Success: false, Message: "Invalid request body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, ChatResponse{Success: false, Message: "Message is required"})
		return
	}

	reply := companionClient.Reply(r.Context(), req.Message)

	// Best-effort save, decoupled from the reply path. A failed write is
	// logged inside the service and never affects the response.
	if req.Save {
		if userID, ok := requireAuth(r); ok {
			tags := req.Tags
			if reply.Category != "" && reply.Category != services.CategoryDefault {
				tags = append(tags, string(reply.Category))
			}
			services.SaveConversationAsync(models.Conversation{
				UserID:      userID,
				UserMessage: req.Message,
				BotReply:    reply.Text,
				Tags:        tags,
				IsEmergency: reply.Emergency,
				CreatedAt:   time.Now().UTC(),
			})
		}
	}

	writeJSON(w, http.StatusOK, ChatResponse{
		Success:   true,
		Reply:     reply.Text,
		Source:    string(reply.Source),
		Emergency: reply.Emergency,
		Resources: reply.Resources,
	})
}

type ChatHistoryResponse struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message,omitempty"`
	Conversations []models.Conversation `json:"conversations"`
	HasMore       bool                  `json:"has_more"`
}

// ChatHistory loads the authenticated user's saved exchanges, newest first.
// Query params: limit (default 50, max 100), skip.
func ChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ChatHistoryResponse{
			Success:       false,
			Message:       "Authentication required",
			Conversations: []models.Conversation{},
		})
		return
	}

	limit := int64(50)
	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if parsed, err := strconv.ParseInt(lStr, 10, 64); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	skip := int64(0)
	if sStr := r.URL.Query().Get("skip"); sStr != "" {
		if parsed, err := strconv.ParseInt(sStr, 10, 64); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	convs, hasMore, err := services.LoadConversations(ctx, userID, limit, skip)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ChatHistoryResponse{
			Success:       false,
			Message:       "Failed to load conversations",
			Conversations: []models.Conversation{},
		})
		return
	}
	if convs == nil {
		convs = []models.Conversation{}
	}

	writeJSON(w, http.StatusOK, ChatHistoryResponse{
		Success:       true,
		Conversations: convs,
		HasMore:       hasMore,
	})
}
