package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ReplyCategory
	}{
		{"anxiety keyword", "I feel anxious today", CategoryAnxiety},
		{"anxiety uppercase", "SO MUCH ANXIETY", CategoryAnxiety},
		{"sadness", "I'm feeling down", CategorySadness},
		{"crying", "I can't stop crying", CategorySadness},
		{"depression", "everything feels hopeless", CategoryDepression},
		{"depress stem", "I'm depressed", CategoryDepression},
		{"motivation", "I need some motivation", CategoryMotivation},
		{"lazy", "I feel so lazy lately", CategoryMotivation},
		{"relaxation", "help me relax", CategoryRelaxation},
		{"stress", "work stress is too much", CategoryRelaxation},
		{"no keywords", "tell me about your day", CategoryDefault},
		{"empty", "", CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMessage(tt.input))
		})
	}
}

// Priority is first-match-wins in fixed order: a message hitting both the
// anxiety and motivation groups resolves to anxiety.
func TestClassifyMessagePriority(t *testing.T) {
	assert.Equal(t, CategoryAnxiety, ClassifyMessage("I'm anxious and need motivation"))
	assert.Equal(t, CategorySadness, ClassifyMessage("feeling sad and stressed"))
	assert.Equal(t, CategoryAnxiety, ClassifyMessage("worry about stress and energy"))
}

func TestClassifyMessageDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Equal(t, CategoryAnxiety, ClassifyMessage("anxious"))
	}
}

func TestFallbackReply(t *testing.T) {
	reply, category := FallbackReply("I feel anxious")
	assert.Equal(t, CategoryAnxiety, category)
	assert.Contains(t, ReplyPool(CategoryAnxiety), reply)

	reply, category = FallbackReply("hello there")
	assert.Equal(t, CategoryDefault, category)
	assert.Contains(t, ReplyPool(CategoryDefault), reply)
}

// The template within a pool is random, but every draw stays inside the
// matched pool and is never empty.
func TestFallbackReplyStaysInPool(t *testing.T) {
	pool := ReplyPool(CategoryRelaxation)
	require.NotEmpty(t, pool)
	for i := 0; i < 50; i++ {
		reply, category := FallbackReply("help me relax and stay calm")
		assert.Equal(t, CategoryRelaxation, category)
		assert.Contains(t, pool, reply)
		assert.NotEmpty(t, reply)
	}
}

func TestReplyPoolsNonEmpty(t *testing.T) {
	for _, c := range []ReplyCategory{CategoryAnxiety, CategorySadness, CategoryDepression, CategoryMotivation, CategoryRelaxation, CategoryDefault} {
		assert.NotEmpty(t, ReplyPool(c), "pool for %s", c)
	}
}
