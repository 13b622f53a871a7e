package router

import (
	"time"

	"skytrak-service/internal/interface/handler"
	"skytrak-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth    *handler.AuthHandler
	Flights *handler.FlightHandler
	IA      *handler.IAHandler
	Health  *handler.HealthHandler
	// Authenticated guards /auth/* (except register and login), /voos and /ia
	Authenticated gin.HandlerFunc
	// Gatherer backs /metrics; nil uses the default registry
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with every route
func NewRouter(h Handlers, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/health", h.Health.Health)
	gatherer := h.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	handler.RegisterDocs(r)

	authPublic := r.Group("/auth")
	authProtected := r.Group("/auth", h.Authenticated)
	h.Auth.RegisterRoutes(authPublic, authProtected)

	h.Flights.RegisterRoutes(r.Group("/voos", h.Authenticated))
	h.IA.RegisterRoutes(r.Group("/ia", h.Authenticated))

	return r
}

func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String())
	}
}
