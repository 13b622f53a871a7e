package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestPercent(t *testing.T) {
	far := "2026-03-10T12:00:00Z"
	tests := []struct {
		name   string
		flight entity.Flight
		model  string
		want   int
	}{
		{"canceled", entity.Flight{Status: "CANCELADO", HorarioPrevisto: far}, entity.RiskModelTraditional, 95},
		{"delayed", entity.Flight{Status: "Atrasado", HorarioPrevisto: far}, entity.RiskModelTraditional, 78},
		{"boarding", entity.Flight{Status: "EMBARQUE", HorarioPrevisto: far}, entity.RiskModelTraditional, 35},
		{"final call", entity.Flight{Status: "chegou", HorarioPrevisto: far}, entity.RiskModelTraditional, 10},
		{"scheduled", entity.Flight{Status: "PREVISTO", HorarioPrevisto: far}, entity.RiskModelTraditional, 40},
		{"unknown status", entity.Flight{Status: "???", HorarioPrevisto: far}, entity.RiskModelTraditional, 20},
		{"high fare", entity.Flight{Status: "PREVISTO", PrecoMedio: 750, HorarioPrevisto: far}, entity.RiskModelTraditional, 48},
		{"mid fare", entity.Flight{Status: "PREVISTO", PrecoMedio: 500, HorarioPrevisto: far}, entity.RiskModelTraditional, 44},
		{"departed", entity.Flight{Status: "PREVISTO", HorarioPrevisto: "2026-03-01T11:00:00Z"}, entity.RiskModelTraditional, 52},
		{"departing soon", entity.Flight{Status: "PREVISTO", HorarioPrevisto: "2026-03-01T12:30:00Z"}, entity.RiskModelTraditional, 46},
		{"no schedule", entity.Flight{Status: "PREVISTO"}, entity.RiskModelTraditional, 40},
		{"generative", entity.Flight{Status: "PREVISTO", HorarioPrevisto: far}, entity.RiskModelGenerative, 43},
		{"clamped high", entity.Flight{Status: "cancelado", PrecoMedio: 900, HorarioPrevisto: "2026-02-01T00:00:00Z"}, entity.RiskModelGenerative, 98},
		{"final status", entity.Flight{Status: "final", HorarioPrevisto: far}, entity.RiskModelTraditional, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.flight, tt.model, now))
		})
	}
}

func TestPercentBounds(t *testing.T) {
	statuses := []string{"", "cancelado", "atrasado", "embarque", "final", "previsto", "em voo"}
	fares := []float64{0, 499, 500, 699, 700, 5000}
	times := []string{"", "garbage", "2020-01-01T00:00:00Z", "2026-03-01T12:10:00Z", "2030-01-01T00:00:00Z"}
	for _, s := range statuses {
		for _, fare := range fares {
			for _, at := range times {
				f := entity.Flight{Status: s, HorarioPrevisto: at, PrecoMedio: utils.FlexFloat(fare)}
				for _, m := range []string{entity.RiskModelTraditional, entity.RiskModelGenerative} {
					p := Percent(f, m, now)
					assert.GreaterOrEqual(t, p, 5)
					assert.LessOrEqual(t, p, 98)
				}
			}
		}
	}
}

func TestLabel(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, entity.RiskCritical, Label(85, th))
	assert.Equal(t, entity.RiskHigh, Label(84, th))
	assert.Equal(t, entity.RiskHigh, Label(70, th))
	assert.Equal(t, entity.RiskMedium, Label(45, th))
	assert.Equal(t, entity.RiskLow, Label(44, th))
	assert.Equal(t, entity.RiskLow, Label(5, th))

	custom := Thresholds{Critical: 90, High: 80, Medium: 50}
	assert.Equal(t, entity.RiskHigh, Label(85, custom))
}

func TestAssess(t *testing.T) {
	f := entity.Flight{NumeroVoo: "LA1234", Status: "ATRASADO", HorarioPrevisto: "2026-03-01T10:00:00Z"}

	got := Assess(f, "", now, DefaultThresholds())
	assert.Equal(t, 90, got.Percent)
	assert.Equal(t, entity.RiskCritical, got.Label)
	assert.Equal(t, entity.RiskModelTraditional, got.Modelo)
	assert.Contains(t, got.Explicacao, "Modelo tradicional")
	assert.Contains(t, got.Explicacao, "90%")
	assert.Contains(t, got.Explicacao, "2026-03-01 10:00 UTC")

	gen := Assess(f, entity.RiskModelGenerative, now, DefaultThresholds())
	assert.Equal(t, 93, gen.Percent)
	assert.Contains(t, gen.Explicacao, "Modelo generativo")
}
