package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/internal/infrastructure/oauth"
	"skytrak-service/pkg/logger"
)

const (
	// DefaultOpenAIBaseURL is the public OpenAI API
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	// ProviderOpenAI names the OpenAI responder
	ProviderOpenAI = "openai"
)

// OpenAIResponder answers chat questions through the chat completions API
type OpenAIResponder struct {
	logger  logger.Logger
	client  *http.Client
	baseURL string
	model   string
}

// NewOpenAIResponder creates a responder authenticated with apiKey
func NewOpenAIResponder(apiKey, model, baseURL string, timeout time.Duration, logger logger.Logger) repository.Responder {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIResponder{
		logger:  logger,
		client:  oauth.NewBearerClient(context.Background(), apiKey, timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	Messages    []openAIMessage `json:"messages"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// Provider returns the provider name
func (r *OpenAIResponder) Provider() string {
	return ProviderOpenAI
}

// Reply sends the prompts and returns the first choice
func (r *OpenAIResponder) Reply(ctx context.Context, req repository.LLMRequest) (*entity.LLMReply, error) {
	system, user := buildPrompts(req)

	jsonData, err := json.Marshal(openAIRequest{
		Model:       r.model,
		Temperature: 0.2,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", r.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAI HTTP %d", resp.StatusCode)
	}

	var response openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		return nil, errors.New("OpenAI returned an empty answer")
	}

	r.logger.Debug("OpenAI answer received", "model", r.model, "chars", len(content))

	return &entity.LLMReply{
		Resposta: content,
		Provider: ProviderOpenAI,
		Model:    r.model,
	}, nil
}
