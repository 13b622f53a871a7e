package handler

import (
	"net/http"

	"skytrak-service/internal/usecase"
	"skytrak-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// FlightHandler serves /voos
type FlightHandler struct {
	flights *usecase.FlightService
	logger  logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(flights *usecase.FlightService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{flights: flights, logger: logger}
}

// RegisterRoutes mounts the flight endpoints on an authenticated group
func (h *FlightHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("", h.list)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.flights.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}
