package services

import (
	"context"

	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchMoodEntries returns every mood entry owned by the user, newest first.
// The owner filter is applied on every query; cross-user reads cannot occur.
func FetchMoodEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	col := database.DB.Collection("moods")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.MoodEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
