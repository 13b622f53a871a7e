package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/pkg/logger"

	"google.golang.org/genai"
)

// ProviderGemini names the Gemini responder
const ProviderGemini = "gemini"

// GeminiResponder answers chat questions through the Gemini API
type GeminiResponder struct {
	logger logger.Logger
	client *genai.Client
	model  string
}

// NewGeminiResponder creates a Gemini client. baseURL is optional.
func NewGeminiResponder(ctx context.Context, apiKey, model, baseURL string, logger logger.Logger) (repository.Responder, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	return &GeminiResponder{
		logger: logger,
		client: client,
		model:  model,
	}, nil
}

// Provider returns the provider name
func (r *GeminiResponder) Provider() string {
	return ProviderGemini
}

// Reply generates one answer from the prompts
func (r *GeminiResponder) Reply(ctx context.Context, req repository.LLMRequest) (*entity.LLMReply, error) {
	system, user := buildPrompts(req)

	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return nil, errors.New("Gemini returned an empty answer")
	}

	r.logger.Debug("Gemini answer received", "model", r.model, "chars", len(content))

	return &entity.LLMReply{
		Resposta: content,
		Provider: ProviderGemini,
		Model:    r.model,
	}, nil
}
