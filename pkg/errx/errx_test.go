package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "Erro ao listar voos")

	assert.Equal(t, "Erro ao listar voos: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Erro ao listar voos", BadRequest("Erro ao listar voos").Error())
}

func TestStatusAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"bad request", BadRequest("pergunta obrigatoria"), http.StatusBadRequest, "pergunta obrigatoria"},
		{"wrapped", fmt.Errorf("login: %w", Unauthorized("Credenciais invalidas")), http.StatusUnauthorized, "Credenciais invalidas"},
		{"plain error", errors.New("secret detail"), http.StatusInternalServerError, SystemErrorMessage},
		{"not found", NotFound("Voo nao encontrado"), http.StatusNotFound, "Voo nao encontrado"},
		{"conflict", Conflict("Email ja cadastrado"), http.StatusConflict, "Email ja cadastrado"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusOf(tt.err))
			assert.Equal(t, tt.message, MessageOf(tt.err))
		})
	}
}
