package assistant

import (
	"strings"

	"skytrak-service/templates"
)

// Confidence levels
const (
	ConfidenceHigh   = "alta"
	ConfidenceMedium = "media"
	ConfidenceLow    = "baixa"
)

// ConfidenceLevel discretizes a score: >= 0.8 alta, >= 0.5 media, else baixa.
func ConfidenceLevel(score float64) string {
	switch {
	case score >= 0.8:
		return ConfidenceHigh
	case score >= 0.5:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Compose renders an answer in the given mode and language. userName is
// used as a greeting on capability and site answers only.
func Compose(lang templates.Lang, mode string, a Answer, userName string) string {
	render := func(t Text) string {
		return templates.Render(lang, t.Key, t.Args...)
	}

	summary := render(a.Summary)
	if userName != "" && (a.Topic == string(IntentCapabilities) || a.Topic == string(IntentSite)) {
		summary = templates.Render(lang, "greeting", userName) + summary
	}

	lines := make([]string, len(a.Lines))
	for i, l := range a.Lines {
		lines[i] = render(l)
	}
	confidence := templates.Render(lang, "confidence."+ConfidenceLevel(a.Score))

	label := func(key string) string { return templates.Render(lang, key) }

	var b strings.Builder
	if ParseMode(mode) == ModeTechnical {
		data := render(a.Data)
		if len(lines) > 0 {
			data += "\n- " + strings.Join(lines, "\n- ")
		}
		b.WriteString(label("label.summary") + ": " + summary)
		b.WriteString("\n\n" + label("label.data") + ":\n" + data)
		b.WriteString("\n\n" + label("label.action") + ": " + render(a.Action))
		b.WriteString("\n\n" + label("label.followup") + ": " + render(a.FollowUp))
		b.WriteString("\n\n" + label("label.confidence") + ": " + confidence)
		if p := a.Page; p != nil {
			b.WriteString("\n" + templates.Render(lang, "page.long", p.Page, p.TotalPages, p.Limit, p.Total))
		}
		return b.String()
	}

	data := render(a.Data)
	if len(lines) > 0 {
		data += " " + strings.Join(lines, "; ")
	}
	b.WriteString(label("label.summary") + ": " + summary)
	b.WriteString(" | " + label("label.data.short") + ": " + data)
	b.WriteString(" | " + label("label.action.short") + ": " + render(a.Action))
	b.WriteString(" | " + label("label.followup.short") + ": " + render(a.FollowUp))
	b.WriteString(" | " + label("label.confidence") + ": " + confidence)
	if p := a.Page; p != nil {
		b.WriteString(" | " + templates.Render(lang, "page.short", p.Page, p.TotalPages))
	}
	return b.String()
}
