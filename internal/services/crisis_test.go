package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCrisis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"exact phrase", "I want to kill myself", true},
		{"uppercase", "I WANT TO KILL MYSELF", true},
		{"mixed case", "thinking about Suicide", true},
		{"phrase inside longer sentence", "sometimes I feel like I want to die but I don't know why", true},
		{"self harm", "I've been thinking about self harm lately", true},
		{"hurting myself", "I keep hurting myself", true},
		{"end my life", "I'm going to end my life", true},
		{"ordinary sadness", "I'm feeling really sad today", false},
		{"anxiety", "I'm anxious about my exam", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCrisis(tt.input))
		})
	}
}

func TestCrisisResources(t *testing.T) {
	resources := CrisisResources()
	assert.Len(t, resources, 3)
	assert.Equal(t, "Suicide Prevention Lifeline", resources[0].Name)
	assert.Equal(t, "988", resources[0].Phone)
	for _, res := range resources {
		assert.NotEmpty(t, res.URL)
	}

	// Callers get a copy, not the shared slice.
	resources[0].Name = "changed"
	assert.Equal(t, "Suicide Prevention Lifeline", CrisisResources()[0].Name)
}
