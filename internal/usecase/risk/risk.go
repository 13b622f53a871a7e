// Package risk scores the chance that a flight departs late.
package risk

import (
	"fmt"
	"math"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

const (
	minPercent = 5
	maxPercent = 98
)

// Thresholds are the lower bounds (inclusive) of each label above BAIXO.
type Thresholds struct {
	Critical int
	High     int
	Medium   int
}

// DefaultThresholds returns CRITICO >= 85, ALTO >= 70, MEDIO >= 45.
func DefaultThresholds() Thresholds {
	return Thresholds{Critical: 85, High: 70, Medium: 45}
}

// Percent returns the delay risk of f in [5,98]. The score only moves up
// with worse status, higher fare, a closer (or past) departure and the
// generative model flag.
func Percent(f entity.Flight, model string, now time.Time) int {
	status := utils.Normalize(f.Status)

	var percent float64
	switch {
	case utils.ContainsAny(status, "cancel"):
		percent = 95
	case utils.ContainsAny(status, "atras", "delay"):
		percent = 78
	case utils.ContainsAny(status, "embarque", "boarding"):
		percent = 35
	case utils.ContainsAny(status, "final", "cheg"):
		percent = 10
	case utils.ContainsAny(status, "previsto", "scheduled"):
		percent = 40
	default:
		percent = 20
	}

	switch fare := f.PrecoMedio.Float64(); {
	case fare >= 700:
		percent += 8
	case fare >= 500:
		percent += 4
	}

	if at, ok := f.ScheduledAt(); ok {
		diff := at.Sub(now).Minutes()
		switch {
		case diff < -30:
			percent += 12
		case diff < 60:
			percent += 6
		}
	}

	if model == entity.RiskModelGenerative {
		percent += 3
	}

	p := int(math.Round(percent))
	return max(minPercent, min(maxPercent, p))
}

// Label discretizes a percentage.
func Label(percent int, t Thresholds) string {
	switch {
	case percent >= t.Critical:
		return entity.RiskCritical
	case percent >= t.High:
		return entity.RiskHigh
	case percent >= t.Medium:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

// Explain renders a one-sentence explanation of the score.
func Explain(f entity.Flight, percent int, model string) string {
	status := f.Status
	if status == "" {
		status = "previsto"
	}
	when := utils.FormatSchedule(f.HorarioPrevisto)
	if model == entity.RiskModelGenerative {
		return fmt.Sprintf("Modelo generativo sintetizou sinais do status %q, janela %s e padrao tarifario para chegar em %d%%.", status, when, percent)
	}
	return fmt.Sprintf("Modelo tradicional cruzou status %q, horario previsto %s e preco medio para chegar em %d%%.", status, when, percent)
}

// Assess computes the full delay-risk payload for f.
func Assess(f entity.Flight, model string, now time.Time, t Thresholds) entity.DelayRisk {
	model = entity.ParseRiskModel(model)
	percent := Percent(f, model, now)
	return entity.DelayRisk{
		Percent:    percent,
		Label:      Label(percent, t),
		Modelo:     model,
		Explicacao: Explain(f, percent, model),
	}
}
