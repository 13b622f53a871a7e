package handler

import (
	"net/http"
	"strconv"

	"skytrak-service/internal/usecase"
	"skytrak-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves /auth
type AuthHandler struct {
	auth   *usecase.AuthService
	logger logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *usecase.AuthService, logger logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// RegisterRoutes mounts the public and the authenticated endpoints
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/register", h.register)
	public.POST("/login", h.login)

	protected.GET("/me", h.me)
	protected.POST("/change-password", h.changePassword)
	protected.GET("/2fa", h.twoFactor)
	protected.POST("/2fa", h.setTwoFactor)
	protected.GET("/sessions", h.sessions)
	protected.POST("/sessions/:id/revoke", h.revokeSession)
	protected.POST("/lgpd/request", h.lgpdRequest)
}

type registerRequest struct {
	Nome      string  `json:"nome"`
	Email     string  `json:"email"`
	Senha     string  `json:"senha"`
	Perfil    string  `json:"perfil"`
	Companhia *string `json:"companhia"`
}

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dados invalidos")
		return
	}

	in := usecase.RegisterInput{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		Perfil: req.Perfil,
	}
	if req.Companhia != nil {
		in.Companhia = *req.Companhia
	}

	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Usuario cadastrado com sucesso", "id": user.ID})
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dados invalidos")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Senha, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) me(c *gin.Context) {
	user, err := h.auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AuthHandler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dados invalidos")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso"})
}

func (h *AuthHandler) twoFactor(c *gin.Context) {
	enabled, err := h.auth.TwoFactor(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}

type twoFactorRequest struct {
	Enabled *bool `json:"enabled"`
}

func (h *AuthHandler) setTwoFactor(c *gin.Context) {
	var req twoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		badRequest(c, "Campo enabled e obrigatorio")
		return
	}

	if err := h.auth.SetTwoFactor(c.Request.Context(), currentUserID(c), *req.Enabled); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message := "2FA desativado"
	if *req.Enabled {
		message = "2FA ativado"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "enabled": *req.Enabled})
}

func (h *AuthHandler) sessions(c *gin.Context) {
	items, err := h.auth.Sessions(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *AuthHandler) revokeSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "ID de sessao invalido")
		return
	}

	if err := h.auth.RevokeSession(c.Request.Context(), currentUserID(c), uint(id)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sessao revogada"})
}

type lgpdRequest struct {
	Tipo     string `json:"tipo"`
	Detalhes string `json:"detalhes"`
}

func (h *AuthHandler) lgpdRequest(c *gin.Context) {
	var req lgpdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dados invalidos")
		return
	}

	id, err := h.auth.RequestLGPD(c.Request.Context(), currentUserID(c), req.Tipo, req.Detalhes)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Solicitacao registrada", "id": id})
}
