package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	ChatRequests    *prometheus.CounterVec
	ChatLatency     prometheus.Histogram
	LLMFallbacks    *prometheus.CounterVec
	RiskQueries     *prometheus.CounterVec
	LoginAttempts   *prometheus.CounterVec
	FlightCacheHits *prometheus.CounterVec
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg. A nil reg
// uses the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ChatRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "The total number of answered chat questions",
		}, []string{"topic", "source"}),
		ChatLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_processing_time_seconds",
			Help:      "Time taken to answer a chat question",
			Buckets:   prometheus.DefBuckets,
		}),
		LLMFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_fallbacks_total",
			Help:      "The total number of LLM failures answered by the rule engine",
		}, []string{"provider"}),
		RiskQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_queries_total",
			Help:      "The total number of delay-risk queries",
		}, []string{"label"}),
		LoginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "The total number of login attempts",
		}, []string{"result"}),
		FlightCacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_cache_lookups_total",
			Help:      "Flight list cache lookups",
		}, []string{"result"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
