package entity

import (
	"time"
)

// User profiles
const (
	ProfileAdmin     = "ADMIN"
	ProfileOperator  = "OPERADOR"
	ProfileAirline   = "CIA"
	ProfilePassenger = "PASSAGEIRO"
)

// User represents an account of the operations dashboard
type User struct {
	ID           uint      `json:"id"`
	Nome         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Perfil       string    `json:"perfil"`
	Companhia    *string   `json:"companhia"`
	CriadoEm     time.Time `json:"criado_em"`
}

// ValidProfile reports whether p is one of the known profiles.
func ValidProfile(p string) bool {
	switch p {
	case ProfileAdmin, ProfileOperator, ProfileAirline, ProfilePassenger:
		return true
	}
	return false
}
