package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/internal/usecase/assistant"
	"skytrak-service/pkg/errx"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

// ChatInput is one question from an authenticated user
type ChatInput struct {
	UserID       uint
	Pergunta     string
	Historico    []entity.ChatTurn
	VoosContexto []entity.Flight
	Modo         string
	Idioma       string
	Modelo       string
	Page         int
	Limit        int
	UsarLLM      bool
}

// ChatOutput is the answer returned to the client
type ChatOutput struct {
	Pergunta string `json:"pergunta"`
	assistant.Response
	Source             string  `json:"source"`
	Provider           *string `json:"provider"`
	Model              *string `json:"model"`
	TotalVoosAvaliados int     `json:"totalVoosAvaliados"`
}

// ChatService answers questions with the rule engine, optionally asking a
// language model first and falling back to the rules on any failure.
type ChatService struct {
	flights     *FlightService
	userRepo    repository.UserRepository
	chatLogRepo repository.ChatLogRepository
	responder   repository.Responder
	engine      *assistant.Engine
	audit       *AuditService
	now         func() time.Time
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewChatService creates a new chat service. responder may be nil when no
// language model is configured.
func NewChatService(
	flights *FlightService,
	userRepo repository.UserRepository,
	chatLogRepo repository.ChatLogRepository,
	responder repository.Responder,
	engine *assistant.Engine,
	audit *AuditService,
	m *metrics.Metrics,
	logger logger.Logger,
) *ChatService {
	return &ChatService{
		flights:     flights,
		userRepo:    userRepo,
		chatLogRepo: chatLogRepo,
		responder:   responder,
		engine:      engine,
		audit:       audit,
		now:         time.Now,
		metrics:     m,
		logger:      logger,
	}
}

// Ask answers one question.
func (s *ChatService) Ask(ctx context.Context, in ChatInput) (*ChatOutput, error) {
	if strings.TrimSpace(in.Pergunta) == "" {
		return nil, errx.BadRequest("Pergunta obrigatoria")
	}
	start := time.Now()

	stored, err := s.flights.List(ctx)
	if err != nil {
		return nil, err
	}
	flights := MergeFlights(in.VoosContexto, stored)
	userName := s.userName(ctx, in.UserID)

	resp := s.engine.Generate(assistant.Request{
		Question:  in.Pergunta,
		History:   in.Historico,
		Flights:   flights,
		Mode:      in.Modo,
		Page:      in.Page,
		Limit:     in.Limit,
		UserName:  userName,
		Lang:      in.Idioma,
		RiskModel: in.Modelo,
		Now:       s.now(),
	})

	out := &ChatOutput{
		Pergunta:           in.Pergunta,
		Response:           resp,
		Source:             entity.SourceRules,
		TotalVoosAvaliados: len(flights),
	}

	var fallbackReason string
	if in.UsarLLM && s.responder != nil {
		reply, err := s.responder.Reply(ctx, repository.LLMRequest{
			Pergunta:  in.Pergunta,
			Historico: in.Historico,
			Voos:      flights,
			Modo:      assistant.ParseMode(in.Modo),
			UserName:  userName,
		})
		switch {
		case err != nil:
			fallbackReason = err.Error()
		case reply == nil || strings.TrimSpace(reply.Resposta) == "":
			fallbackReason = "empty reply"
		default:
			out.Resposta = reply.Resposta
			out.Source = entity.SourceLLM
			out.Provider = &reply.Provider
			out.Model = &reply.Model
		}
		if fallbackReason != "" {
			s.logger.Warn("LLM failed, answering with rules", "provider", s.responder.Provider(), "error", fallbackReason)
			s.metrics.LLMFallbacks.WithLabelValues(s.responder.Provider()).Inc()
		}
	}

	s.audit.Record(ctx, in.UserID, entity.ActionChat, entity.EntityChat, map[string]interface{}{
		"pergunta":  in.Pergunta,
		"topico":    out.Topico,
		"source":    out.Source,
		"totalVoos": out.TotalVoosAvaliados,
	})
	s.saveTranscript(ctx, in, out, fallbackReason)

	s.metrics.ChatRequests.WithLabelValues(out.Topico, out.Source).Inc()
	s.metrics.ChatLatency.Observe(time.Since(start).Seconds())
	return out, nil
}

func (s *ChatService) userName(ctx context.Context, userID uint) string {
	if userID == 0 {
		return ""
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			s.logger.Warn("Failed to load user for greeting", "userId", userID, "error", err)
		}
		return ""
	}
	return strings.TrimSpace(user.Nome)
}

func (s *ChatService) saveTranscript(ctx context.Context, in ChatInput, out *ChatOutput, fallbackReason string) {
	log := &entity.ChatLog{
		UsuarioID:  in.UserID,
		Pergunta:   in.Pergunta,
		Resposta:   out.Resposta,
		Topico:     out.Topico,
		Confianca:  out.Confianca,
		Modo:       assistant.ParseMode(in.Modo),
		Source:     out.Source,
		TotalVoos:  out.TotalVoosAvaliados,
		FallbackOf: fallbackReason,
		CreatedAt:  s.now(),
	}
	if out.Provider != nil {
		log.Provider = *out.Provider
	}
	if out.Model != nil {
		log.Model = *out.Model
	}
	if err := s.chatLogRepo.Save(ctx, log); err != nil {
		s.logger.Error("Failed to save chat transcript", "userId", in.UserID, "error", err)
		s.metrics.ErrorsCount.WithLabelValues("chat_log").Inc()
	}
}
