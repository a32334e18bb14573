package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mindgarden/mindgarden-backend/internal/config"
	"github.com/mindgarden/mindgarden-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postChat(t *testing.T, body ChatRequest) (*httptest.ResponseRecorder, ChatResponse) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	Chat(rec, req)

	var res ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return rec, res
}

func TestChatValidation(t *testing.T) {
	InitChatService(&config.Config{CompanionTimeout: time.Second})

	rec, res := postChat(t, ChatRequest{Message: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "Message is required", res.Message)
}

func TestChatCrisisFlow(t *testing.T) {
	// A reachable relay must not matter: the crisis check runs first.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("crisis input must not reach the companion relay")
	}))
	defer srv.Close()

	InitChatService(&config.Config{CompanionURL: srv.URL, CompanionTimeout: time.Second})

	rec, res := postChat(t, ChatRequest{Message: "I can't go on, I want to end my life"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.True(t, res.Emergency)
	assert.Equal(t, string(services.SourceCrisis), res.Source)
	assert.Equal(t, services.CrisisReply, res.Reply)
	require.Len(t, res.Resources, 3)
	assert.Equal(t, "988", res.Resources[0].Phone)
}

func TestChatRemoteReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "how are you?", body["message"])
		w.Write([]byte(`{"response":"I'm here for you."}`))
	}))
	defer srv.Close()

	InitChatService(&config.Config{CompanionURL: srv.URL, CompanionTimeout: time.Second})

	rec, res := postChat(t, ChatRequest{Message: "how are you?"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.False(t, res.Emergency)
	assert.Equal(t, string(services.SourceCompanion), res.Source)
	assert.Equal(t, "I'm here for you.", res.Reply)
}

func TestChatFallbackOnRelayFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	InitChatService(&config.Config{CompanionURL: srv.URL, CompanionTimeout: time.Second})

	rec, res := postChat(t, ChatRequest{Message: "I feel anxious about everything"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.False(t, res.Emergency)
	assert.Equal(t, string(services.SourceFallback), res.Source)
	assert.Contains(t, services.ReplyPool(services.CategoryAnxiety), res.Reply)
}
