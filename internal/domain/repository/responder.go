package repository

import (
	"context"

	"skytrak-service/internal/domain/entity"
)

// LLMRequest is everything an alternate responder needs to answer a question.
type LLMRequest struct {
	Pergunta  string
	Historico []entity.ChatTurn
	Voos      []entity.Flight
	Modo      string
	UserName  string
}

// Responder defines the interface for an external language-model answerer
type Responder interface {
	Reply(ctx context.Context, req LLMRequest) (*entity.LLMReply, error)
	Provider() string
}
