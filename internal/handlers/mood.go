package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"github.com/mindgarden/mindgarden-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CreateMoodRequest struct {
	Mood       string   `json:"mood"`
	Journal    string   `json:"journal,omitempty"`
	Activities []string `json:"activities,omitempty"`
}

type CreateMoodResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Entry   *models.MoodEntry `json:"entry,omitempty"`
}

type GetMoodsResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Entries []models.MoodEntry `json:"entries"`
	Total   int64              `json:"total"`
}

// CreateMood records a mood entry for the authenticated user. The label is
// validated against the fixed mood set and normalized to lowercase before
// storage.
func CreateMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, CreateMoodResponse{Success: false, Message: "Authentication required"})
		return
	}

	var req CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateMoodResponse{Success: false, Message: "Invalid request body"})
		return
	}

	mood := models.NormalizeMood(req.Mood)
	if req.Mood == "" {
		writeJSON(w, http.StatusBadRequest, CreateMoodResponse{Success: false, Message: "Please select a mood before submitting"})
		return
	}
	if !models.ValidMood(mood) {
		writeJSON(w, http.StatusBadRequest, CreateMoodResponse{Success: false, Message: "Unknown mood label"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entry := models.MoodEntry{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Mood:       mood,
		Journal:    req.Journal,
		Activities: req.Activities,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := database.DB.Collection("moods").InsertOne(ctx, entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateMoodResponse{Success: false, Message: "Failed to save mood entry"})
		return
	}

	writeJSON(w, http.StatusCreated, CreateMoodResponse{
		Success: true,
		Message: "Mood saved successfully",
		Entry:   &entry,
	})
}

// GetMoods returns mood entries for the authenticated user only, newest
// first. Query params: limit (default 20), skip.
func GetMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, GetMoodsResponse{Success: false, Message: "Authentication required", Entries: []models.MoodEntry{}})
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

	total, err := database.DB.Collection("moods").CountDocuments(ctx, filter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetMoodsResponse{Success: false, Message: "Failed to load mood entries", Entries: []models.MoodEntry{}})
		return
	}

	findOptions := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := database.DB.Collection("moods").Find(ctx, filter, findOptions)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetMoodsResponse{Success: false, Message: "Failed to load mood entries", Entries: []models.MoodEntry{}})
		return
	}
	defer cursor.Close(ctx)

	entries := []models.MoodEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetMoodsResponse{Success: false, Message: "Failed to load mood entries", Entries: []models.MoodEntry{}})
		return
	}

	writeJSON(w, http.StatusOK, GetMoodsResponse{Success: true, Entries: entries, Total: total})
}

// DeleteMood removes one of the caller's mood entries. Idempotent: deleting
// a nonexistent id succeeds with deleted=false.
func DeleteMood(w http.ResponseWriter, r *http.Request) {
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

	// Owner filter on the delete itself: a foreign id behaves like a
	// nonexistent one.
	res, err := database.DB.Collection("moods").DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to delete mood entry"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": res.DeletedCount > 0,
	})
}

// GetMoodTrends aggregates the user's entries into weekly and monthly
// buckets with per-mood frequency stats.
func GetMoodTrends(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := services.FetchMoodEntries(ctx, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to load mood entries"})
		return
	}

	trends := services.ComputeTrends(entries, time.Now())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"trends":  trends,
	})
}

// GetMoodCalendar renders the current month's grid with one representative
// mood per day (latest entry wins).
func GetMoodCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Authentication required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := services.FetchMoodEntries(ctx, userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "Failed to load mood entries"})
		return
	}

	cal := services.BuildCalendar(entries, time.Now())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"calendar": cal,
	})
}
