package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/virpal-singh/portfolio-backend/internal/model"
	"github.com/virpal-singh/portfolio-backend/internal/repository"
	"github.com/virpal-singh/portfolio-backend/internal/response"
	"github.com/virpal-singh/portfolio-backend/internal/service"
	"github.com/virpal-singh/portfolio-backend/internal/validator"
)

// MessageHandler handles the contact inbox endpoints.
type MessageHandler struct {
	contactService *service.ContactMessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(contactService *service.ContactMessageService) *MessageHandler {
	return &MessageHandler{contactService: contactService}
}

// Create godoc
// POST /api/messages
// Public contact form submission; rate limited upstream.
func (h *MessageHandler) Create(c *gin.Context) {
	var req model.CreateContactRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m, err := h.contactService.Create(c.Request.Context(), req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent successfully!", gin.H{
		"id":        m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"createdAt": m.CreatedAt,
	})
}

// List godoc
// GET /api/messages
// Admin inbox listing, newest-first, optional ?isRead=true|false filter.
func (h *MessageHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	var isRead *bool
	if raw := c.Query("isRead"); raw != "" {
		v := raw == "true"
		isRead = &v
	}

	messages, pagination, err := h.contactService.List(c.Request.Context(), isRead, page, limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, messages, pagination)
}

// Get godoc
// GET /api/messages/:id
func (h *MessageHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
		return
	}

	m, err := h.contactService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "", m)
}

// ToggleRead godoc
// PATCH /api/messages/:id/read
// Flips the read flag; applying it twice restores the original value.
func (h *MessageHandler) ToggleRead(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
		return
	}

	m, err := h.contactService.ToggleRead(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	state := "unread"
	if m.IsRead {
		state = "read"
	}
	response.Success(c, http.StatusOK, "Message marked as "+state, m)
}

// Delete godoc
// DELETE /api/messages/:id
// Permanent removal; deleting again reports not-found.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrMessageNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "Message deleted successfully", nil)
}

// Stats godoc
// GET /api/messages/stats
func (h *MessageHandler) Stats(c *gin.Context) {
	stats, err := h.contactService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, "", stats)
}
