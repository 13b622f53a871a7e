// Package assistant answers free-text questions about the flight board.
// Everything here is a pure function of its arguments.
package assistant

import (
	"skytrak-service/internal/usecase/risk"
	"skytrak-service/pkg/utils"
)

// Output layouts
const (
	ModeExecutive = "executivo"
	ModeTechnical = "tecnico"
)

// Options are the engine's tunable constants.
type Options struct {
	// ShortQueryLen is the rune count below which a question borrows the
	// previous user turn as context.
	ShortQueryLen int
	// HistoryWindow is how many trailing turns are searched.
	HistoryWindow int
	// TopN caps airline and airport rankings.
	TopN   int
	Paging utils.PageBounds
	Risk   risk.Thresholds
}

// DefaultOptions returns the stock engine constants.
func DefaultOptions() Options {
	return Options{
		ShortQueryLen: 10,
		HistoryWindow: 8,
		TopN:          8,
		Paging:        utils.DefaultPageBounds(),
		Risk:          risk.DefaultThresholds(),
	}
}

// ParseMode returns tecnico when asked for explicitly, executivo otherwise.
func ParseMode(v string) string {
	if utils.Normalize(v) == ModeTechnical {
		return ModeTechnical
	}
	return ModeExecutive
}
