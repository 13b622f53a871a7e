package assistant

import (
	"strings"
	"unicode/utf8"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

// ExpandWithHistory normalizes question and, when it is shorter than
// opts.ShortQueryLen, prefixes the most recent non-empty user turn found in
// the last opts.HistoryWindow turns.
func ExpandWithHistory(question string, history []entity.ChatTurn, opts Options) string {
	q := utils.Normalize(question)
	if utf8.RuneCountInString(q) >= opts.ShortQueryLen {
		return q
	}

	start := max(0, len(history)-opts.HistoryWindow)
	for i := len(history) - 1; i >= start; i-- {
		turn := history[i]
		if turn.Role != entity.RoleUser || strings.TrimSpace(turn.Content) == "" {
			continue
		}
		return strings.TrimSpace(utils.Normalize(turn.Content) + " " + q)
	}
	return q
}
