package templates

var messagesEN = map[string]string{
	// layout
	"label.summary":        "Summary",
	"label.data":           "Key data",
	"label.action":         "Suggested action",
	"label.followup":       "Useful next question",
	"label.confidence":     "Confidence",
	"label.data.short":     "Data",
	"label.action.short":   "Action",
	"label.followup.short": "Next",
	"page.long":            "Page: %d/%d (items per page: %d, total: %d)",
	"page.short":           "Page %d/%d",
	"confidence.alta":      "high",
	"confidence.media":     "medium",
	"confidence.baixa":     "low",
	"greeting":             "%s, ",

	// shared
	"flight.line": "%s | %s | %s -> %s | %s | %s",
	"list.header": "Flights on this page:",
	"list.none":   "No flights in this selection.",

	"nodata.summary":  "There are no flights loaded to analyse yet.",
	"nodata.data":     "The flight base is currently empty.",
	"nodata.action":   "Refresh the flight list or import the operational data.",
	"nodata.followup": "Once flights are loaded, ask for an overall summary.",

	"help.summary":  "I could not understand the question.",
	"help.data":     "I can answer about delays, cancellations, upcoming departures, airlines, airports and specific flights.",
	"help.action":   "Rephrase the question with a topic or a flight number.",
	"help.followup": "Example: which flights are delayed?",

	"capability.summary":  "I am the SkyTrak operations assistant.",
	"capability.data":     "I look up status by flight number, list delays and cancellations, upcoming departures, flights by airline, domestic/international scope, busiest airports and an overall summary, with pagination.",
	"capability.action":   "Ask about a topic or give a flight number such as LA1234.",
	"capability.followup": "Would you like the overall operations summary?",

	"site.summary":  "I can guide you around SkyTrak.",
	"site.data":     "Dashboard: indicators and the flight map. Reports: CSV/PDF export. Settings: password, 2FA, active sessions and LGPD data export or erasure requests.",
	"site.action":   "Use the side menu to open the section you need.",
	"site.followup": "Would you like to know how to review your active sessions?",

	"flight.notfound.summary":  "I could not find flight %s in the current base.",
	"flight.notfound.data":     "%d flights were checked and none matches that number.",
	"flight.notfound.action":   "Check the flight number or ask for the full list.",
	"flight.notfound.followup": "Would you like to list all flights?",

	"flight.found.summary":  "Flight %s has status %s, from %s to %s.",
	"flight.found.data":     "Flight %s | Airline %s | Status %s | Route %s -> %s | Scheduled %s | Delay risk %d%% (%s)",
	"flight.found.followup": "Would you like to see other %s flights?",

	"risk.action.BAIXO":   "Normal monitoring, no immediate action.",
	"risk.action.MEDIO":   "Monitor the flight and confirm the boarding window.",
	"risk.action.ALTO":    "Notify passengers and prepare connection alternatives.",
	"risk.action.CRITICO": "Escalate to the operations center and prepare rebooking.",

	"airline.summary":  "Airline %s has %d flights in the base.",
	"airline.action":   "Check this airline's delays and cancellations.",
	"airline.followup": "Would you like to compare with the overall summary?",

	"list.summary":  "There are %d flights in the base, ordered by scheduled time.",
	"list.action":   "Use pagination to go through the full list.",
	"list.followup": "Would you like only the delayed ones?",

	"delayed.summary":  "%d flights are delayed out of %d.",
	"delayed.action":   "Prioritise the delayed flights departing soonest.",
	"delayed.followup": "Would you like the delay risk of a specific flight?",

	"canceled.summary":  "%d flights are canceled out of %d.",
	"canceled.action":   "Check rebooking for the affected passengers.",
	"canceled.followup": "Would you like to see the delayed flights too?",

	"upcoming.summary":  "%d flights are scheduled to depart from now on.",
	"upcoming.action":   "Follow the first ones on the list to avoid knock-on delays.",
	"upcoming.followup": "Would you like the delay risk of the next flight?",

	"scope.summary":  "The base has %d domestic and %d international flights.",
	"scope.data":     "Domestic: %d | International: %d | Total: %d",
	"scope.action":   "Compare punctuality between both groups.",
	"scope.followup": "Would you like the busiest airports?",

	"airports.summary":  "%d airports appear as origin or destination.",
	"airports.header":   "Busiest:",
	"airports.line":     "%s (%d)",
	"airports.none":     "No airport informed in the flights.",
	"airports.action":   "Reinforce operations at the busiest airports.",
	"airports.followup": "Would you like the upcoming departures?",

	"overview.summary":  "Overview of %d flights in the base.",
	"overview.data":     "Delayed: %d | In flight: %d | Scheduled: %d | Canceled: %d | Completed: %d",
	"overview.airlines": "Top airlines: %s",
	"overview.action":   "Focus on the delayed and canceled flights.",
	"overview.followup": "Would you like the list of delayed flights?",

	"fallback.summary":  "I did not identify a specific topic, here is the overview of %d flights.",
	"fallback.action":   "Ask about delays, cancellations, airlines or a flight number.",
	"fallback.followup": "Would you like to know what I can answer?",

	"none": "no data",
}

var suggestionsEN = map[string][]string{
	GenericTopic: {"What is the overall flight summary?", "Which flights are delayed?"},
	"capacidade": {"What is the overall flight summary?", "Which flights are delayed?", "Status of flight LA1234"},
	"site":       {"How do I request an LGPD data export?", "Where can I see my active sessions?"},
	"voo_numero": {"Which flights are delayed?", "What are the next departures?"},
	"companhia":  {"Which flights are delayed?", "What is the overall flight summary?"},
	"lista_voos": {"Which flights are delayed?", "Which flights were canceled?", "What are the next departures?"},
	"atrasos":    {"Which flights were canceled?", "What are the next departures?"},
	"cancelados": {"Which flights are delayed?", "What is the overall flight summary?"},
	"proximos":   {"Which flights are delayed?", "What are the busiest airports?"},
	"escopo":     {"What are the busiest airports?", "What is the overall flight summary?"},
	"aeroportos": {"How many flights are domestic and international?", "What are the next departures?"},
	"resumo":     {"Which flights are delayed?", "List all flights", "Which flights were canceled?"},
}

var suggestions = map[Lang]map[string][]string{
	LangPT: suggestionsPT,
	LangEN: suggestionsEN,
}
