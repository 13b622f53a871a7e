package assistant

import (
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/usecase/risk"
	"skytrak-service/pkg/utils"
)

// query is everything a handler may look at.
type query struct {
	number    string
	airline   string
	score     float64
	flights   []entity.Flight
	page      int
	limit     int
	riskModel string
	now       time.Time
	opts      Options
}

type handlerFunc func(q query) Answer

var handlers = map[Intent]handlerFunc{
	IntentHelp:         staticHandler(IntentHelp, "help"),
	IntentCapabilities: staticHandler(IntentCapabilities, "capability"),
	IntentSite:         staticHandler(IntentSite, "site"),
	IntentFlightNumber: flightNumberHandler,
	IntentAirline:      airlineHandler,
	IntentListFlights:  listHandler,
	IntentDelays:       delaysHandler,
	IntentCancellation: canceledHandler,
	IntentUpcoming:     upcomingHandler,
	IntentScope:        scopeHandler,
	IntentAirports:     airportsHandler,
	IntentOverview:     overviewHandler,
	IntentFallback:     fallbackHandler,
}

func staticHandler(intent Intent, prefix string) handlerFunc {
	return func(q query) Answer {
		return Answer{
			Summary:  T(prefix + ".summary"),
			Data:     T(prefix + ".data"),
			Action:   T(prefix + ".action"),
			FollowUp: T(prefix + ".followup"),
			Topic:    string(intent),
			Score:    q.score,
		}
	}
}

func flightNumberHandler(q query) Answer {
	f, ok := FindByNumber(q.flights, q.number)
	if !ok {
		return Answer{
			Summary:  T("flight.notfound.summary", q.number),
			Data:     T("flight.notfound.data", len(q.flights)),
			Action:   T("flight.notfound.action"),
			FollowUp: T("flight.notfound.followup"),
			Topic:    string(IntentFlightNumber),
			Score:    0.5,
		}
	}

	r := risk.Assess(f, q.riskModel, q.now, q.opts.Risk)
	return Answer{
		Summary: T("flight.found.summary", f.NumeroVoo, f.Status, f.Origin(), f.Destination()),
		Data: T("flight.found.data", f.NumeroVoo, f.Companhia, f.Status, f.Origin(), f.Destination(),
			utils.FormatSchedule(f.HorarioPrevisto), r.Percent, r.Label),
		Action:   T("risk.action." + r.Label),
		FollowUp: T("flight.found.followup", f.Companhia),
		Topic:    string(IntentFlightNumber),
		Score:    q.score,
	}
}

func airlineHandler(q query) Answer {
	matched := FilterByAirline(q.flights, q.airline)
	a := pagedAnswer(q, matched)
	a.Summary = T("airline.summary", q.airline, len(matched))
	a.Action = T("airline.action")
	a.FollowUp = T("airline.followup")
	a.Topic = string(IntentAirline)
	return a
}

func listHandler(q query) Answer {
	a := pagedAnswer(q, SortBySchedule(q.flights))
	a.Summary = T("list.summary", len(q.flights))
	a.Action = T("list.action")
	a.FollowUp = T("list.followup")
	a.Topic = string(IntentListFlights)
	return a
}

func delaysHandler(q query) Answer {
	delayed := FilterByCategory(q.flights, entity.StatusDelayed)
	a := pagedAnswer(q, delayed)
	a.Summary = T("delayed.summary", len(delayed), len(q.flights))
	a.Action = T("delayed.action")
	a.FollowUp = T("delayed.followup")
	a.Topic = string(IntentDelays)
	return a
}

func canceledHandler(q query) Answer {
	canceled := FilterByCategory(q.flights, entity.StatusCanceled)
	a := pagedAnswer(q, canceled)
	a.Summary = T("canceled.summary", len(canceled), len(q.flights))
	a.Action = T("canceled.action")
	a.FollowUp = T("canceled.followup")
	a.Topic = string(IntentCancellation)
	return a
}

func upcomingHandler(q query) Answer {
	next := Upcoming(q.flights, q.now)
	a := pagedAnswer(q, next)
	a.Summary = T("upcoming.summary", len(next))
	a.Action = T("upcoming.action")
	a.FollowUp = T("upcoming.followup")
	a.Topic = string(IntentUpcoming)
	return a
}

func scopeHandler(q query) Answer {
	domestic := 0
	for _, f := range q.flights {
		if f.IsDomestic() {
			domestic++
		}
	}
	international := len(q.flights) - domestic
	return Answer{
		Summary:  T("scope.summary", domestic, international),
		Data:     T("scope.data", domestic, international, len(q.flights)),
		Action:   T("scope.action"),
		FollowUp: T("scope.followup"),
		Topic:    string(IntentScope),
		Score:    q.score,
	}
}

func airportsHandler(q query) Answer {
	top, distinct := TopAirports(q.flights, q.opts.TopN)
	a := Answer{
		Summary:  T("airports.summary", distinct),
		Data:     T("airports.header"),
		Action:   T("airports.action"),
		FollowUp: T("airports.followup"),
		Topic:    string(IntentAirports),
		Score:    q.score,
	}
	if len(top) == 0 {
		a.Data = T("airports.none")
	}
	for _, r := range top {
		a.Lines = append(a.Lines, T("airports.line", r.Name, r.Count))
	}
	return a
}

func overviewHandler(q query) Answer {
	a := overview(q)
	a.Summary = T("overview.summary", len(q.flights))
	a.Topic = string(IntentOverview)
	return a
}

func fallbackHandler(q query) Answer {
	a := overview(q)
	a.Summary = T("fallback.summary", len(q.flights))
	a.Action = T("fallback.action")
	a.FollowUp = T("fallback.followup")
	a.Topic = string(IntentFallback)
	return a
}

func overview(q query) Answer {
	c := CountStatuses(q.flights)
	a := Answer{
		Data:     T("overview.data", c.Delayed, c.InFlight, c.Scheduled, c.Canceled, c.Completed),
		Action:   T("overview.action"),
		FollowUp: T("overview.followup"),
		Score:    q.score,
	}
	if top := TopAirlines(q.flights, q.opts.TopN); len(top) > 0 {
		a.Lines = []Text{T("overview.airlines", JoinRanked(top))}
	}
	return a
}

// pagedAnswer paginates items and renders the current page as data lines.
func pagedAnswer(q query, items []entity.Flight) Answer {
	page := utils.Paginate(items, q.page, q.limit, q.opts.Paging)
	a := Answer{Data: T("list.header"), Score: q.score, Page: &page}
	if len(page.Items) == 0 {
		a.Data = T("list.none")
	}
	for _, f := range page.Items {
		a.Lines = append(a.Lines, T("flight.line",
			f.NumeroVoo, f.Companhia, f.Origin(), f.Destination(), utils.FormatSchedule(f.HorarioPrevisto), f.Status))
	}
	return a
}
