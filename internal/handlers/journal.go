package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateJournalRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateJournalResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Journal *models.Journal `json:"journal,omitempty"`
}

type GetJournalsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Journals []models.Journal `json:"journals"`
	Total    int64            `json:"total"`
}

// CreateJournal creates a new journal entry for a logged-in user.
func CreateJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, CreateJournalResponse{Success: false, Message: "Authentication required"})
		return
	}

	var req CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateJournalResponse{Success: false, Message: "Invalid request body"})
		return
	}

	if req.Title == "" || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, CreateJournalResponse{Success: false, Message: "Title and content are required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	journal := models.Journal{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := database.DB.Collection("journals").InsertOne(ctx, journal); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateJournalResponse{Success: false, Message: "Failed to create journal entry"})
		return
	}

	writeJSON(w, http.StatusCreated, CreateJournalResponse{
		Success: true,
		Message: "Journal created successfully",
		Journal: &journal,
	})
}

// GetJournals returns journal entries for the authenticated user only,
// newest first. Query params: limit (default 20), skip.
func GetJournals(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, GetJournalsResponse{Success: false, Message: "Authentication required", Journals: []models.Journal{}})
		return
	}

	limit := 20
	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if parsed, err := strconv.Atoi(lStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	skip := 0
	if sStr := r.URL.Query().Get("skip"); sStr != "" {
		if parsed, err := strconv.Atoi(sStr); err == nil && parsed >= 0 {
			skip = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}

	total, err := database.DB.Collection("journals").CountDocuments(ctx, filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetJournalsResponse{Success: false, Message: "Failed to load journal entries", Journals: []models.Journal{}})
		return
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := database.DB.Collection("journals").Find(ctx, filter, findOptions)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetJournalsResponse{Success: false, Message: "Failed to load journal entries", Journals: []models.Journal{}})
		return
	}
	defer cursor.Close(ctx)

	journals := []models.Journal{}
	if err = cursor.All(ctx, &journals); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetJournalsResponse{Success: false, Message: "Failed to load journal entries", Journals: []models.Journal{}})
		return
	}

	writeJSON(w, http.StatusOK, GetJournalsResponse{Success: true, Journals: journals, Total: total})
}

// DeleteJournal removes one of the caller's journal entries. Idempotent
// against nonexistent or foreign ids.
func DeleteJournal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Authentication required"})
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "id is required"})
		return
	}
	objectID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"success": false, "message": "Invalid id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := database.DB.Collection("journals").DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to delete journal entry"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": res.DeletedCount > 0,
	})
}
