package assistant

import (
	"strings"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
)

// Intent is the topic a question is about.
type Intent string

const (
	IntentHelp         Intent = "ajuda"
	IntentCapabilities Intent = "capacidade"
	IntentSite         Intent = "site"
	IntentFlightNumber Intent = "voo_numero"
	IntentAirline      Intent = "companhia"
	IntentListFlights  Intent = "lista_voos"
	IntentDelays       Intent = "atrasos"
	IntentCancellation Intent = "cancelados"
	IntentUpcoming     Intent = "proximos"
	IntentScope        Intent = "escopo"
	IntentAirports     Intent = "aeroportos"
	IntentOverview     Intent = "resumo"
	IntentFallback     Intent = "fallback"
)

// TopicNoData is reported when there are no flights at all.
const TopicNoData = "sem_dados"

// Classification is the outcome of matching a query against the rules.
type Classification struct {
	Intent Intent
	Score  float64
	// Airline is the detected company name for IntentAirline.
	Airline string
}

type rule struct {
	intent   Intent
	score    float64
	canMatch func(q string, flights []entity.Flight) bool
}

func keywords(fragments ...string) func(string, []entity.Flight) bool {
	return func(q string, _ []entity.Flight) bool {
		return utils.ContainsAny(q, fragments...)
	}
}

// rules is evaluated top to bottom and the first match wins. The
// flight-number rule sits right after the empty query so that a flight
// token always takes priority over any keyword.
var rules = []rule{
	{IntentHelp, 0.4, func(q string, _ []entity.Flight) bool { return strings.TrimSpace(q) == "" }},
	{IntentFlightNumber, 0.97, func(q string, _ []entity.Flight) bool { return utils.ExtractFlightNumber(q) != "" }},
	{IntentCapabilities, 0.95, keywords(
		"o que voce", "o que vc", "como pode ajudar", "como voce pode", "me ajuda", "ajuda",
		"help", "what can you", "capacidade", "funcionalidades",
	)},
	{IntentSite, 0.9, keywords(
		"dashboard", "painel", "mapa", "map", "login", "privacidade", "privacy", "lgpd",
		"relatorio", "configurac", "settings", "senha", "exportar", "csv", "pdf", "site", "navega",
	)},
	{IntentAirline, 0.86, func(q string, flights []entity.Flight) bool { return DetectAirline(q, flights) != "" }},
	{IntentListFlights, 0.9, keywords(
		"listar", "lista de voos", "todos os voos", "mostrar todos", "mostre todos",
		"all flights", "list flights", "list all", "show all",
	)},
	{IntentDelays, 0.93, keywords("atras", "delay")},
	{IntentCancellation, 0.92, keywords("cancel")},
	{IntentUpcoming, 0.84, keywords("proxim", "partida", "decola", "hoje", "next", "departure", "today", "upcoming")},
	{IntentScope, 0.86, keywords("nacion", "domestic", "international")},
	{IntentAirports, 0.82, keywords("aeroporto", "airport", "origem", "destino", "origin", "destination")},
	{IntentOverview, 0.8, keywords(
		"resumo", "geral", "status", "total", "panorama", "overview", "summary", "overall", "situacao",
	)},
}

// Classify picks the intent of a normalized query. It is deterministic for
// a given query and flight list.
func Classify(q string, flights []entity.Flight) Classification {
	for _, r := range rules {
		if !r.canMatch(q, flights) {
			continue
		}
		c := Classification{Intent: r.intent, Score: r.score}
		if r.intent == IntentAirline {
			c.Airline = DetectAirline(q, flights)
		}
		return c
	}
	return Classification{Intent: IntentFallback, Score: 0.45}
}

// DetectAirline returns the first airline, in order of first appearance,
// whose normalized name occurs in the normalized query. Records without a
// flight number are ignored.
func DetectAirline(q string, flights []entity.Flight) string {
	if q == "" {
		return ""
	}
	for _, name := range airlines(flights) {
		if strings.Contains(q, utils.Normalize(name)) {
			return name
		}
	}
	return ""
}

func airlines(flights []entity.Flight) []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range flights {
		if f.Key() == "" {
			continue
		}
		key := utils.Normalize(f.Companhia)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f.Companhia)
	}
	return out
}
