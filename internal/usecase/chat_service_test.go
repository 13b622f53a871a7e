package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/domain/repository"
	"skytrak-service/internal/usecase/assistant"
	"skytrak-service/pkg/errx"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type chatFixture struct {
	svc       *ChatService
	flights   *fakeFlightRepo
	users     *fakeUserRepo
	chatLogs  *fakeChatLogRepo
	access    *fakeAccessLogRepo
	responder *fakeResponder
}

func newChatFixture(withResponder bool) *chatFixture {
	f := &chatFixture{
		flights: &fakeFlightRepo{flights: []entity.Flight{
			{NumeroVoo: "LA1234", Companhia: "LATAM", Status: "ATRASADO", HorarioPrevisto: "2026-03-01T10:00:00Z"},
			{NumeroVoo: "G31000", Companhia: "GOL", Status: "PREVISTO", HorarioPrevisto: "2026-03-01T15:00:00Z"},
		}},
		users:     newFakeUserRepo(),
		chatLogs:  &fakeChatLogRepo{},
		access:    &fakeAccessLogRepo{},
		responder: &fakeResponder{},
	}
	_ = f.users.Create(context.Background(), &entity.User{Nome: "Ana", Email: "ana@skytrak.io"})

	m := testMetrics()
	audit := NewAuditService(f.access, m, nopLogger)
	var responder repository.Responder
	if withResponder {
		responder = f.responder
	}
	f.svc = NewChatService(NewFlightService(f.flights, nopLogger), f.users, f.chatLogs, responder,
		assistant.NewEngine(assistant.DefaultOptions()), audit, m, nopLogger)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestAskRequiresQuestion(t *testing.T) {
	f := newChatFixture(false)
	_, err := f.svc.Ask(context.Background(), ChatInput{Pergunta: "   "})
	assert.Equal(t, http.StatusBadRequest, errx.StatusOf(err))
}

func TestAskWithRules(t *testing.T) {
	f := newChatFixture(false)

	out, err := f.svc.Ask(context.Background(), ChatInput{
		UserID:   1,
		Pergunta: "o que voce faz?",
		UsarLLM:  true,
		VoosContexto: []entity.Flight{
			{NumeroVoo: "la1234", Companhia: "LATAM", Status: "CANCELADO"},
			{NumeroVoo: "", Companhia: "Sem numero"},
			{NumeroVoo: "AD4000", Companhia: "Azul", Status: "PREVISTO"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceRules, out.Source)
	assert.Nil(t, out.Provider)
	assert.Equal(t, 4, out.TotalVoosAvaliados)
	assert.Equal(t, "capacidade", out.Topico)
	assert.Contains(t, out.Resposta, "Ana, ")

	require.Len(t, f.access.logs, 1)
	assert.Equal(t, entity.ActionChat, f.access.logs[0].Acao)
	require.Len(t, f.chatLogs.logs, 1)
	assert.Equal(t, "capacidade", f.chatLogs.logs[0].Topico)
	assert.Equal(t, fixedNow, f.chatLogs.logs[0].CreatedAt)
}

func TestAskPrefersLLM(t *testing.T) {
	f := newChatFixture(true)
	f.responder.reply = &entity.LLMReply{Resposta: "Resumo: tudo certo", Provider: "openai", Model: "gpt-4.1-mini"}

	out, err := f.svc.Ask(context.Background(), ChatInput{UserID: 1, Pergunta: "quais voos estao atrasados?", Modo: "tecnico", UsarLLM: true})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceLLM, out.Source)
	assert.Equal(t, "Resumo: tudo certo", out.Resposta)
	require.NotNil(t, out.Provider)
	assert.Equal(t, "openai", *out.Provider)
	assert.Equal(t, "gpt-4.1-mini", *out.Model)
	assert.Equal(t, "atrasos", out.Topico)

	require.Len(t, f.responder.calls, 1)
	call := f.responder.calls[0]
	assert.Equal(t, "Ana", call.UserName)
	assert.Equal(t, assistant.ModeTechnical, call.Modo)
	assert.Len(t, call.Voos, 2)
	assert.Equal(t, "openai", f.chatLogs.logs[0].Provider)
}

func TestAskFallsBackOnLLMError(t *testing.T) {
	f := newChatFixture(true)
	f.responder.err = errors.New("circuit breaker is open")

	out, err := f.svc.Ask(context.Background(), ChatInput{UserID: 1, Pergunta: "quais voos estao atrasados?", UsarLLM: true})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceRules, out.Source)
	assert.Contains(t, out.Resposta, "Resumo:")
	assert.Equal(t, "circuit breaker is open", f.chatLogs.logs[0].FallbackOf)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.LLMFallbacks.WithLabelValues("fake")))

	f.responder.err = nil
	f.responder.reply = &entity.LLMReply{Resposta: "  "}
	out, err = f.svc.Ask(context.Background(), ChatInput{UserID: 1, Pergunta: "quais voos estao atrasados?", UsarLLM: true})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceRules, out.Source)
}

func TestAskSkipsLLMWhenNotRequested(t *testing.T) {
	f := newChatFixture(true)
	f.responder.reply = &entity.LLMReply{Resposta: "llm"}

	out, err := f.svc.Ask(context.Background(), ChatInput{Pergunta: "resumo geral"})
	require.NoError(t, err)
	assert.Equal(t, entity.SourceRules, out.Source)
	assert.Empty(t, f.responder.calls)
}

func TestAskSurvivesAuditFailures(t *testing.T) {
	f := newChatFixture(false)
	f.access.err = errors.New("db down")
	f.chatLogs.err = errors.New("mongo down")

	out, err := f.svc.Ask(context.Background(), ChatInput{UserID: 1, Pergunta: "resumo geral"})
	require.NoError(t, err)
	assert.Equal(t, "resumo", out.Topico)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.ErrorsCount.WithLabelValues("chat_log")))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.ErrorsCount.WithLabelValues("access_log")))
}

func TestAskFlightStoreFailure(t *testing.T) {
	f := newChatFixture(false)
	f.flights.err = errors.New("mongo down")

	_, err := f.svc.Ask(context.Background(), ChatInput{Pergunta: "resumo geral"})
	assert.Equal(t, http.StatusInternalServerError, errx.StatusOf(err))
}

func TestMergeFlights(t *testing.T) {
	supplied := []entity.Flight{
		{NumeroVoo: "la1234", Status: "CANCELADO"},
		{NumeroVoo: ""},
		{NumeroVoo: "LA1234", Status: "duplicado"},
	}
	stored := []entity.Flight{
		{NumeroVoo: "LA1234", Status: "ATRASADO"},
		{NumeroVoo: ""},
		{NumeroVoo: "G31000"},
	}

	merged := MergeFlights(supplied, stored)
	require.Len(t, merged, 4)
	assert.Equal(t, "CANCELADO", merged[0].Status)
	assert.Equal(t, "", merged[1].NumeroVoo)
	assert.Equal(t, "", merged[2].NumeroVoo)
	assert.Equal(t, "G31000", merged[3].NumeroVoo)
	assert.Empty(t, MergeFlights(nil, nil))
}
