package handler

import (
	"net/http"

	"skytrak-service/pkg/errx"
	"skytrak-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError writes {"error": message} with the status carried by err.
// Unexpected errors are logged and answered with a generic message.
func respondError(c *gin.Context, log logger.Logger, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errx.MessageOf(err)})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}
