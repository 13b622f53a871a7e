package assistant

import (
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/pkg/utils"
	"skytrak-service/templates"
)

// Request is one question to the engine. Flights must already be
// deduplicated by flight number.
type Request struct {
	Question  string
	History   []entity.ChatTurn
	Flights   []entity.Flight
	Mode      string
	Page      int
	Limit     int
	UserName  string
	Lang      string
	RiskModel string
	// Now is the reference time for upcoming departures and risk; zero
	// means the wall clock.
	Now time.Time
}

// Response is the composed answer.
type Response struct {
	Resposta  string                     `json:"resposta"`
	Topico    string                     `json:"topico"`
	Confianca string                     `json:"confianca"`
	Sugestoes []string                   `json:"sugestoes"`
	Paginacao *utils.Page[entity.Flight] `json:"paginacao"`
}

// Engine answers questions with a fixed set of options. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	opts Options
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Generate answers req with the default options.
func Generate(req Request) Response {
	return NewEngine(DefaultOptions()).Generate(req)
}

// Generate classifies the question, runs the matching handler and composes
// the answer. It never fails: bad paging input is clamped and unknown
// questions fall through to the overview.
func (e *Engine) Generate(req Request) Response {
	lang := templates.ParseLang(req.Lang)
	mode := ParseMode(req.Mode)

	if len(req.Flights) == 0 {
		a := Answer{
			Summary:  T("nodata.summary"),
			Data:     T("nodata.data"),
			Action:   T("nodata.action"),
			FollowUp: T("nodata.followup"),
			Topic:    TopicNoData,
			Score:    0,
		}
		return Response{
			Resposta:  Compose(lang, mode, a, req.UserName),
			Topico:    TopicNoData,
			Confianca: ConfidenceLow,
			Sugestoes: templates.Suggestions(lang, templates.GenericTopic),
		}
	}

	a := e.Answer(req)
	return Response{
		Resposta:  Compose(lang, mode, a, req.UserName),
		Topico:    a.Topic,
		Confianca: ConfidenceLevel(a.Score),
		Sugestoes: templates.Suggestions(lang, a.Topic),
		Paginacao: a.Page,
	}
}

// Answer runs classification and the intent handler without composing.
func (e *Engine) Answer(req Request) Answer {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	text := ExpandWithHistory(req.Question, req.History, e.opts)
	c := Classify(text, req.Flights)

	// the number in the current question wins over one borrowed from history
	number := utils.ExtractFlightNumber(utils.Normalize(req.Question))
	if number == "" {
		number = utils.ExtractFlightNumber(text)
	}

	q := query{
		number:    number,
		airline:   c.Airline,
		score:     c.Score,
		flights:   req.Flights,
		page:      req.Page,
		limit:     req.Limit,
		riskModel: req.RiskModel,
		now:       now,
		opts:      e.opts,
	}
	return handlers[c.Intent](q)
}
