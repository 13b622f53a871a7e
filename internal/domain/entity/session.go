package entity

import "time"

// Session is a login session, identified by the token's jti.
type Session struct {
	ID         uint       `json:"id"`
	UsuarioID  uint       `json:"-"`
	JTI        string     `json:"jti"`
	UserAgent  *string    `json:"user_agent"`
	IP         *string    `json:"ip"`
	Ativa      bool       `json:"ativa"`
	CriadoEm   time.Time  `json:"criado_em"`
	RevogadaEm *time.Time `json:"revogada_em"`
}

// SecuritySettings holds per-user account security flags.
type SecuritySettings struct {
	UsuarioID        uint
	TwoFactorEnabled bool
	AtualizadoEm     time.Time
}
