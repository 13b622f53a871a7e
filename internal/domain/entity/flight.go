// internal/domain/entity/flight.go
package entity

import (
	"strings"
	"time"

	"skytrak-service/pkg/utils"
)

// StatusCategory is the coarse operational state derived from a free-text status.
type StatusCategory string

const (
	StatusDelayed   StatusCategory = "atrasado"
	StatusInFlight  StatusCategory = "em_voo"
	StatusScheduled StatusCategory = "previsto"
	StatusCanceled  StatusCategory = "cancelado"
	StatusCompleted StatusCategory = "concluido"
)

// Flight is one operational flight row (table/collection "voo").
type Flight struct {
	NumeroVoo       string          `json:"numero_voo" bson:"numero_voo"`
	Companhia       string          `json:"companhia" bson:"companhia"`
	HorarioPrevisto string          `json:"horario_previsto" bson:"horario_previsto"`
	Status          string          `json:"status" bson:"status"`
	PrecoMedio      utils.FlexFloat `json:"preco_medio" bson:"preco_medio"`
	OrigemCidade    string          `json:"origem_cidade" bson:"origem_cidade"`
	OrigemEstado    string          `json:"origem_estado" bson:"origem_estado"`
	DestinoCidade   string          `json:"destino_cidade" bson:"destino_cidade"`
	DestinoEstado   string          `json:"destino_estado" bson:"destino_estado"`
	UpdatedAt       time.Time       `json:"-" bson:"updatedAt"`
}

// Key is the deduplication and lookup key: the upper-cased flight number.
func (f Flight) Key() string {
	return strings.ToUpper(strings.TrimSpace(f.NumeroVoo))
}

// ScheduledAt parses HorarioPrevisto.
func (f Flight) ScheduledAt() (time.Time, bool) {
	return utils.ParseSchedule(f.HorarioPrevisto)
}

// Category classifies the status text by substring, ignoring case and accents.
func (f Flight) Category() StatusCategory {
	return ClassifyStatus(f.Status)
}

// IsDomestic is true when both origin and destination carry a state.
func (f Flight) IsDomestic() bool {
	return strings.TrimSpace(f.OrigemEstado) != "" && strings.TrimSpace(f.DestinoEstado) != ""
}

// Origin renders the origin as "city/state", "city" or "-".
func (f Flight) Origin() string {
	return place(f.OrigemCidade, f.OrigemEstado)
}

// Destination renders the destination as "city/state", "city" or "-".
func (f Flight) Destination() string {
	return place(f.DestinoCidade, f.DestinoEstado)
}

// ClassifyStatus maps free-text status into a StatusCategory.
func ClassifyStatus(status string) StatusCategory {
	s := utils.Normalize(status)
	switch {
	case utils.ContainsAny(s, "atras", "delay"):
		return StatusDelayed
	case utils.ContainsAny(s, "em_voo", "em voo", "in flight", "in_flight", "airborne", "en route"):
		return StatusInFlight
	case strings.Contains(s, "cancel"):
		return StatusCanceled
	case utils.ContainsAny(s, "conclu", "complet", "landed", "pousou"):
		return StatusCompleted
	default:
		return StatusScheduled
	}
}

func place(city, state string) string {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	switch {
	case city == "" && state == "":
		return "-"
	case state == "":
		return city
	case city == "":
		return state
	default:
		return city + "/" + state
	}
}
