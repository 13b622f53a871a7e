package handler

import (
	"net/http"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/usecase"
	"skytrak-service/pkg/logger"
	"skytrak-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// IAHandler serves /ia: delay risk and the assistant chat
type IAHandler struct {
	risk   *usecase.RiskService
	chat   *usecase.ChatService
	logger logger.Logger
}

// NewIAHandler creates a new IA handler
func NewIAHandler(risk *usecase.RiskService, chat *usecase.ChatService, logger logger.Logger) *IAHandler {
	return &IAHandler{risk: risk, chat: chat, logger: logger}
}

// RegisterRoutes mounts the IA endpoints on an authenticated group
func (h *IAHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/risco-atraso/:numero_voo", h.delayRisk)
	group.POST("/chat", h.ask)
}

func (h *IAHandler) delayRisk(c *gin.Context) {
	result, err := h.risk.Assess(c.Request.Context(), currentUserID(c), c.Param("numero_voo"), c.Query("modelo"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// chatRequest accepts loosely typed page/limit. usarLLM defaults to true.
type chatRequest struct {
	Pergunta     string            `json:"pergunta"`
	Historico    []entity.ChatTurn `json:"historico"`
	VoosContexto []entity.Flight   `json:"voosContexto"`
	Modo         string            `json:"modo"`
	Idioma       string            `json:"idioma"`
	Modelo       string            `json:"modelo"`
	Page         utils.FlexInt     `json:"page"`
	Limit        utils.FlexInt     `json:"limit"`
	UsarLLM      *bool             `json:"usarLLM"`
}

func (h *IAHandler) ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Dados invalidos")
		return
	}

	useLLM := true
	if req.UsarLLM != nil {
		useLLM = *req.UsarLLM
	}

	out, err := h.chat.Ask(c.Request.Context(), usecase.ChatInput{
		UserID:       currentUserID(c),
		Pergunta:     req.Pergunta,
		Historico:    req.Historico,
		VoosContexto: req.VoosContexto,
		Modo:         req.Modo,
		Idioma:       req.Idioma,
		Modelo:       req.Modelo,
		Page:         req.Page.Int(),
		Limit:        req.Limit.Int(),
		UsarLLM:      useLLM,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
