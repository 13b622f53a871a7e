package templates

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	assert.Equal(t, keys(messagesPT), keys(messagesEN))
	assert.Equal(t, keys(suggestionsPT), keys(suggestionsEN))
}

func TestCatalogPlaceholdersMatch(t *testing.T) {
	for key, pt := range messagesPT {
		assert.Equal(t, strings.Count(pt, "%"), strings.Count(messagesEN[key], "%"), key)
	}
}

func TestSuggestionsSize(t *testing.T) {
	for lang, table := range suggestions {
		for topic, list := range table {
			assert.GreaterOrEqual(t, len(list), 2, "%s/%s", lang, topic)
			assert.LessOrEqual(t, len(list), 3, "%s/%s", lang, topic)
		}
	}
	assert.Len(t, Suggestions(LangPT, GenericTopic), 2)
}

func TestRender(t *testing.T) {
	assert.Equal(t, "Nao encontrei o voo ZZ9999 na base atual.", Render(LangPT, "flight.notfound.summary", "ZZ9999"))
	assert.Equal(t, "I could not find flight ZZ9999 in the current base.", Render(LangEN, "flight.notfound.summary", "ZZ9999"))
	assert.Equal(t, "Resumo", Render(Lang("fr"), "label.summary"))
	assert.Equal(t, "missing.key", Render(LangPT, "missing.key"))
}

func TestSuggestionsFallback(t *testing.T) {
	assert.Equal(t, suggestionsPT[GenericTopic], Suggestions(LangPT, "sem_dados"))
	assert.Equal(t, suggestionsEN["atrasos"], Suggestions(LangEN, "atrasos"))

	got := Suggestions(LangPT, "atrasos")
	got[0] = "changed"
	assert.NotEqual(t, "changed", suggestionsPT["atrasos"][0])
}

func TestParseLang(t *testing.T) {
	assert.Equal(t, LangEN, ParseLang("EN"))
	assert.Equal(t, LangEN, ParseLang(" en-US "))
	assert.Equal(t, LangPT, ParseLang(""))
	assert.Equal(t, LangPT, ParseLang("es"))
}

func TestPrompts(t *testing.T) {
	sys := SystemPrompt("tecnico", "Ana")
	assert.Contains(t, sys, "estrutura tecnica")
	assert.Contains(t, sys, "Nome do usuario atual: Ana.")
	assert.NotContains(t, SystemPrompt("executivo", ""), "Nome do usuario")

	user := UserPrompt(PromptDigest{Total: 3, Delayed: 1, Question: "quais atrasos?"})
	assert.Contains(t, user, "- Total de voos: 3")
	assert.Contains(t, user, "atrasado=1")
	assert.Contains(t, user, "Top companhias: sem dados")
	assert.Contains(t, user, "(sem historico)")
	assert.True(t, strings.HasSuffix(user, "Proxima pergunta util:"))
}
