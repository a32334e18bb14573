package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodLabel is the canonical (lowercase) mood name. Labels are normalized on
// write so display casing and aggregation keys never diverge.
type MoodLabel string

const (
	MoodExcited MoodLabel = "excited"
	MoodHappy   MoodLabel = "happy"
	MoodNeutral MoodLabel = "neutral"
	MoodSad     MoodLabel = "sad"
	MoodAnxious MoodLabel = "anxious"
)

// MoodLabels lists every valid mood in display order.
var MoodLabels = []MoodLabel{MoodExcited, MoodHappy, MoodNeutral, MoodSad, MoodAnxious}

// NormalizeMood lowercases and trims a user-supplied mood label.
func NormalizeMood(s string) MoodLabel {
	return MoodLabel(strings.ToLower(strings.TrimSpace(s)))
}

// ValidMood reports whether the label is one of the fixed mood set.
func ValidMood(label MoodLabel) bool {
	for _, m := range MoodLabels {
		if m == label {
			return true
		}
	}
	return false
}

// MoodEntry is a single timestamped mood record with optional journal text
// and activity tags. Entries are create/delete only, never edited.
type MoodEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Mood       MoodLabel          `bson:"mood" json:"mood"`
	Journal    string             `bson:"journal,omitempty" json:"journal,omitempty"`
	Activities []string           `bson:"activities,omitempty" json:"activities,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
