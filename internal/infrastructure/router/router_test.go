package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skytrak-service/internal/interface/handler"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/metrics"
)

func newTestRouter(t *testing.T, checks map[string]handler.HealthCheck) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNopLogger()
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", reg)

	deny := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token nao enviado"})
	}
	r := NewRouter(Handlers{
		Auth:          handler.NewAuthHandler(nil, log),
		Flights:       handler.NewFlightHandler(nil, log),
		IA:            handler.NewIAHandler(nil, nil, log),
		Health:        handler.NewHealthHandler("test", checks),
		Authenticated: deny,
		Gatherer:      reg,
	}, log)
	return r, m
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_ProtectedRoutesUseGuard(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	for _, path := range []string{"/voos", "/ia/risco-atraso/LA1234", "/auth/me", "/auth/sessions"} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Token nao enviado")
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	r, m := newTestRouter(t, nil)
	m.ChatRequests.WithLabelValues("resumo", "regras").Inc()

	w := get(r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `test_chat_requests_total{source="regras",topic="resumo"} 1`)
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t, map[string]handler.HealthCheck{
		"mongodb": func(ctx context.Context) error { return nil },
	})
	w := get(r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)

	r, _ = newTestRouter(t, map[string]handler.HealthCheck{
		"postgres": func(ctx context.Context) error { return errors.New("down") },
	})
	w = get(r, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "degraded")
}

func TestRouter_DocsArePublic(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w := get(r, "/openapi.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/ia/chat")
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, nil)
	assert.Equal(t, http.StatusNotFound, get(r, "/nada").Code)
}
