package templates

import (
	"fmt"
	"strings"
)

// Lang is a presentation language.
type Lang string

const (
	LangPT Lang = "pt"
	LangEN Lang = "en"
)

// ParseLang maps a request value to a supported language, pt by default.
func ParseLang(v string) Lang {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "en", "en-us", "en_us", "english", "ingles":
		return LangEN
	default:
		return LangPT
	}
}

var catalogs = map[Lang]map[string]string{
	LangPT: messagesPT,
	LangEN: messagesEN,
}

// Render formats the message key in lang. Keys missing from lang fall back
// to Portuguese; unknown keys render as the key itself.
func Render(lang Lang, key string, args ...interface{}) string {
	format, ok := catalogs[lang][key]
	if !ok {
		format, ok = messagesPT[key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Has reports whether key exists in the Portuguese catalog.
func Has(key string) bool {
	_, ok := messagesPT[key]
	return ok
}

// Suggestions returns the follow-up questions for a topic, or the generic
// set when the topic has none.
func Suggestions(lang Lang, topic string) []string {
	table, ok := suggestions[lang]
	if !ok {
		table = suggestions[LangPT]
	}
	list, ok := table[topic]
	if !ok {
		list = table[GenericTopic]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// GenericTopic keys the fallback suggestion set.
const GenericTopic = "*"
