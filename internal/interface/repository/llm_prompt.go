package repository

import (
	"fmt"
	"strings"

	"skytrak-service/internal/domain/repository"
	"skytrak-service/internal/usecase/assistant"
	"skytrak-service/templates"
)

const (
	promptTopAirlines = 8
	promptSampleSize  = 20
	promptHistorySize = 8
)

// buildPrompts renders the system and user prompts shared by every provider
func buildPrompts(req repository.LLMRequest) (system, user string) {
	counts := assistant.CountStatuses(req.Voos)

	sample := make([]string, 0, promptSampleSize)
	for i, f := range req.Voos {
		if i == promptSampleSize {
			break
		}
		sample = append(sample, fmt.Sprintf("- %s | %s | %s | %s | %s -> %s | R$ %.2f",
			orDash(f.NumeroVoo), orDash(f.Companhia), orDash(f.Status), orDash(f.HorarioPrevisto),
			f.Origin(), f.Destination(), f.PrecoMedio.Float64()))
	}

	history := req.Historico
	if len(history) > promptHistorySize {
		history = history[len(history)-promptHistorySize:]
	}
	turns := make([]string, 0, len(history))
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		turns = append(turns, fmt.Sprintf("%s: %s", turn.Role, content))
	}

	digest := templates.PromptDigest{
		Total:       len(req.Voos),
		Delayed:     counts.Delayed,
		InFlight:    counts.InFlight,
		Scheduled:   counts.Scheduled,
		Canceled:    counts.Canceled,
		Completed:   counts.Completed,
		TopAirlines: assistant.JoinRanked(assistant.TopAirlines(req.Voos, promptTopAirlines)),
		Sample:      sample,
		History:     turns,
		Question:    strings.TrimSpace(req.Pergunta),
	}

	return templates.SystemPrompt(req.Modo, req.UserName), templates.UserPrompt(digest)
}

func orDash(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "-"
	}
	return s
}
