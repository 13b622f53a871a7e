package entity

// Risk models
const (
	RiskModelTraditional = "tradicional"
	RiskModelGenerative  = "generativa"
)

// Risk labels
const (
	RiskLow      = "BAIXO"
	RiskMedium   = "MEDIO"
	RiskHigh     = "ALTO"
	RiskCritical = "CRITICO"
)

// DelayRisk is the canonical delay-risk payload.
type DelayRisk struct {
	Percent    int    `json:"percent"`
	Label      string `json:"label"`
	Modelo     string `json:"modelo"`
	Explicacao string `json:"explicacao"`
}

// ParseRiskModel returns the generative model only when asked for explicitly.
func ParseRiskModel(v string) string {
	if v == RiskModelGenerative {
		return RiskModelGenerative
	}
	return RiskModelTraditional
}
