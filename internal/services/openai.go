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

	"github.com/google/uuid"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type openAIService struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	modelName  string
}

// NewOpenAIService talks to any OpenAI-compatible chat completions endpoint
// (Cerebras, OpenAI, Groq, ...). Deadlines come from the caller's context.
func NewOpenAIService(apiURL, apiKey, modelName string, httpClient *http.Client) LLMService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &openAIService{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		modelName:  modelName,
	}
}

// Complete implements LLMService.
func (o *openAIService) Complete(ctx context.Context, prompt string) (string, error) {
	reqID := uuid.New().String()
	start := time.Now()

	body, err := json.Marshal(chatCompletionRequest{
		Model:    o.modelName,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ [%s] LLM request failed after %dms: %v\n", reqID, time.Since(start).Milliseconds(), err)
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read llm response: %w", err)
	}

	log.Printf("📊 [%s] LLM responded %d (%d bytes) in %dms\n", reqID, resp.StatusCode, len(raw), time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("llm returned status %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("failed to decode llm response: %w", err)
	}

	return firstCompletion(payload), nil
}

// firstCompletion reads choices[0].message.content. Every step is optional and
// any other shape yields "".
func firstCompletion(payload any) string {
	root, ok := payload.(map[string]any)
	if !ok {
		return ""
	}
	choices, ok := root["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}
	choice, ok := choices[0].(map[string]any)
	if !ok {
		return ""
	}
	message, ok := choice["message"].(map[string]any)
	if !ok {
		return ""
	}
	content, _ := message["content"].(string)
	return content
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
