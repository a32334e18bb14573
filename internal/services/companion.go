package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ReplySource records which path produced a companion reply.
type ReplySource string

const (
	SourceCompanion ReplySource = "companion"
	SourceFallback  ReplySource = "fallback"
	SourceCrisis    ReplySource = "crisis"
)

// CompanionClient talks to the hosted text-generation relay. The zero-value
// BaseURL means fallback-only mode; every remote failure degrades to the
// local responder, never to a user-visible error.
type CompanionClient struct {
	BaseURL string
	Timeout time.Duration
	HTTP    *http.Client
}

// NewCompanionClient builds a client with the configured endpoint and
// per-call timeout.
func NewCompanionClient(baseURL string, timeout time.Duration) *CompanionClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CompanionClient{
		BaseURL: baseURL,
		Timeout: timeout,
		HTTP:    &http.Client{},
	}
}

type companionRequest struct {
	Message string `json:"message"`
}

type companionResponse struct {
	Response string `json:"response"`
}

// generate performs the single bounded POST to {baseUrl}/chat. Exactly one
// attempt, no retries; the context deadline aborts a hung endpoint.
func (c *CompanionClient) generate(ctx context.Context, message string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("companion endpoint not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	body, err := json.Marshal(companionRequest{Message: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return "", fmt.Errorf("companion returned HTTP %d", res.StatusCode)
	}

	var payload companionResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Response == "" {
		return "", fmt.Errorf("companion returned empty response")
	}

	return payload.Response, nil
}

// CompanionReply is the outcome of the full reply pipeline for one message.
type CompanionReply struct {
	Text      string
	Source    ReplySource
	Category  ReplyCategory
	Emergency bool
	Resources []CrisisResource
}

// Reply runs the full pipeline for one user message: crisis check first
// (always, before any network call), then the bounded remote attempt, then
// the local keyword fallback.
func (c *CompanionClient) Reply(ctx context.Context, message string) CompanionReply {
	if DetectCrisis(message) {
		return CompanionReply{
			Text:      CrisisReply,
			Source:    SourceCrisis,
			Emergency: true,
			Resources: CrisisResources(),
		}
	}

	if text, err := c.generate(ctx, message); err == nil {
		return CompanionReply{Text: text, Source: SourceCompanion}
	} else if c.BaseURL != "" {
		log.Printf("companion relay failed, using local responder: %v", err)
	}

	text, category := FallbackReply(message)
	return CompanionReply{Text: text, Source: SourceFallback, Category: category}
}
