package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageSender identifies who produced a chat message.
type MessageSender string

const (
	SenderUser      MessageSender = "user"
	SenderCompanion MessageSender = "companion"
)

// Conversation is one saved companion exchange: the user's message paired
// with the reply that was shown. Saving is best-effort and opt-in; most chat
// traffic is transient and never reaches this collection.
type Conversation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotReply    string             `bson:"bot_reply" json:"bot_reply"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsEmergency bool               `bson:"is_emergency,omitempty" json:"is_emergency,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
