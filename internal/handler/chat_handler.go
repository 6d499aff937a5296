package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"github.com/virpal-singh/portfolio-backend/internal/validator"
)

// ChatHandler handles the chat widget endpoints.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send godoc
// POST /api/chat
// Runs one chat turn. Upstream failure is absorbed: the response is still
// 200 success with a fallback payload, flagged by data.fallback and the
// message text.
func (h *ChatHandler) Send(c *gin.Context) {
	var req model.SendChatRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m, fallback, err := h.chatService.Send(c.Request.Context(), req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	message := "Response generated successfully"
	if fallback {
		message = "Response generated (fallback)"
	}

	response.Success(c, http.StatusOK, message, gin.H{
		"id":          m.ID,
		"userMessage": m.UserMessage,
		"botResponse": m.BotResponse,
		"fallback":    fallback,
		"timestamp":   m.CreatedAt,
	})
}

// History godoc
// GET /api/chat/:sessionId
// Public session transcript, oldest-first.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.Param("sessionId")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, pagination, err := h.chatService.History(c.Request.Context(), sessionID, page, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, messages, pagination)
}

// Stats godoc
// GET /api/chat/admin/stats
func (h *ChatHandler) Stats(c *gin.Context) {
	stats, err := h.chatService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "", stats)
}

// Test godoc
// GET /api/chat/test
// Upstream connectivity diagnostic, not part of the product surface.
func (h *ChatHandler) Test(c *gin.Context) {
	text, err := h.chatService.Ping(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrUpstream)
		return
	}

	response.Success(c, http.StatusOK, "AI provider is reachable", gin.H{"response": text})
}
