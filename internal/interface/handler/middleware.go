package handler

import (
	"context"
	"net/http"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/infrastructure/auth"
	"skytrak-service/internal/usecase"
	"skytrak-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ctxUserID = "userID"
	ctxPerfil = "perfil"
	ctxJTI    = "jti"
)

// TokenParser validates a bearer token
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// SessionChecker reports whether a session is still active
type SessionChecker interface {
	IsActive(ctx context.Context, userID uint, jti string) (bool, error)
}

// AuthMiddleware requires a valid bearer token bound to an active session and
// records one access-log row per authenticated request.
func AuthMiddleware(tokens TokenParser, sessions SessionChecker, audit *usecase.AuditService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Token nao enviado")
			return
		}

		raw, err := auth.ExtractBearerToken(header)
		if err != nil {
			unauthorized(c, "Formato de token invalido")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			log.Debug("Rejected token", "error", err)
			unauthorized(c, "Token invalido ou expirado")
			return
		}

		active, err := sessions.IsActive(c.Request.Context(), claims.ID, claims.RegisteredClaims.ID)
		if err != nil {
			log.Error("Session lookup failed", "userId", claims.ID, "error", err)
			unauthorized(c, "Token invalido ou expirado")
			return
		}
		if !active {
			unauthorized(c, "Token invalido ou expirado")
			return
		}

		c.Set(ctxUserID, claims.ID)
		c.Set(ctxPerfil, claims.Perfil)
		c.Set(ctxJTI, claims.RegisteredClaims.ID)

		audit.Record(c.Request.Context(), claims.ID, entity.ActionListFlights, entity.EntityFlight, map[string]interface{}{
			"path": c.Request.URL.Path,
		})

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// currentUserID returns the authenticated user id
func currentUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}
