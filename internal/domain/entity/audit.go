package entity

import (
	"time"
)

// Access log actions
const (
	ActionListFlights = "LISTAR_VOOS"
	ActionQueryRisk   = "CONSULTAR_RISCO"
	ActionChat        = "CHAT_IA"
)

// Access log entities
const (
	EntityFlight = "VOO"
	EntityChat   = "CHAT"
)

// LGPD request types and states
const (
	LGPDExport = "EXPORTACAO"
	LGPDErase  = "EXCLUSAO"
	LGPDOpen   = "ABERTA"
)

// AccessLog is one data-access audit row (log_acesso_dado).
type AccessLog struct {
	ID        uint
	UsuarioID uint
	Acao      string
	Entidade  string
	Detalhes  map[string]interface{}
	CriadoEm  time.Time
}

// LGPDRequest is a data-subject request (export or erasure).
type LGPDRequest struct {
	ID        uint
	UsuarioID uint
	Tipo      string
	Status    string
	Detalhes  *string
	CriadoEm  time.Time
}

// ValidLGPDType reports whether t is a supported request type.
func ValidLGPDType(t string) bool {
	return t == LGPDExport || t == LGPDErase
}
