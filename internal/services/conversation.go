package services

import (
	"context"
	"log"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/database"
	"github.com/mindgarden/mindgarden-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes configures indexes for the owner-scoped collections.
// Called on startup from main after Mongo has connected.
func EnsureIndexes(ctx context.Context) error {
	// Compound (user_id, created_at) indexes support the owner filter plus
	// newest-first ordering every read path uses.
	for _, name := range []string{"conversations", "moods", "journals"} {
		col := database.DB.Collection(name)
		model := mongo.IndexModel{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_created"),
		}
		if _, err := col.Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}

// SaveConversationAsync persists a companion exchange to MongoDB in a
// detached goroutine. Best-effort: the caller never blocks on it and a
// failure is logged, not surfaced.
func SaveConversationAsync(conv models.Conversation) {
	go func(c models.Conversation) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = time.Now().UTC()
		}

		if _, err := database.DB.Collection("conversations").InsertOne(ctx, c); err != nil {
			log.Printf("failed to save conversation for user %s: %v", c.UserID, err)
		}
	}(conv)
}

// LoadConversations returns the user's saved exchanges, newest first, with a
// limit+1 probe for pagination.
func LoadConversations(ctx context.Context, userID string, limit, skip int64) ([]models.Conversation, bool, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}

	col := database.DB.Collection("conversations")
	filter := bson.M{"user_id": userID}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit + 1)

	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, false, err
	}
	defer cur.Close(ctx)

	var convs []models.Conversation
	if err := cur.All(ctx, &convs); err != nil {
		return nil, false, err
	}

	hasMore := int64(len(convs)) > limit
	if hasMore {
		convs = convs[:limit]
	}

	return convs, hasMore, nil
}
