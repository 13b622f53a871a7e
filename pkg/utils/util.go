package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var flightNumberPattern = regexp.MustCompile(`[A-Z]{2}\d{3,5}`)

// Normalize lower-cases text, strips diacritics and trims surrounding space.
func Normalize(text string) string {
	// transform.Chain keeps state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.TrimSpace(strings.ToLower(folded))
}

// ContainsAny reports whether text contains at least one of the fragments.
func ContainsAny(text string, fragments ...string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(text, f) {
			return true
		}
	}
	return false
}

// ExtractFlightNumber returns the first flight number (two letters followed
// by 3-5 digits) found in the upper-cased text, or "" when there is none.
func ExtractFlightNumber(text string) string {
	return flightNumberPattern.FindString(strings.ToUpper(text))
}

// ParseSchedule parses a scheduled date-time in any of the accepted layouts.
func ParseSchedule(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatSchedule renders a scheduled time for display; unparseable values
// are returned as given and empty ones as "-".
func FormatSchedule(value string) string {
	if t, ok := ParseSchedule(value); ok {
		return t.UTC().Format(DISPLAY_LAYOUT) + " UTC"
	}
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
