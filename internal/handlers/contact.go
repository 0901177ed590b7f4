package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/services"
	"studio-api/internal/utils"
)

type ContactHandler struct {
	service *services.ContactService
	log     *logger.Logger
}

func NewContactHandler(service *services.ContactService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{service: service, log: log}
}

// Submit handles POST /api/contact, the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, utils.ValidationErrorResponse("Validation error", verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error sending message"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Message sent successfully",
		"messageId": msg.ID,
	})
}

// List handles GET /api/admin/messages.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching contact messages"))
		return
	}
	if messages == nil {
		messages = []*models.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// UpdateReadStatus handles PATCH /api/admin/messages/:id.
func (h *ContactHandler) UpdateReadStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ReadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsRead == nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid isRead value"))
		return
	}

	msg, err := h.service.SetReadStatus(c.Request.Context(), id, *req.IsRead)
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error updating message read status"))
		return
	}
	c.JSON(http.StatusOK, msg)
}

// Delete handles DELETE /api/admin/messages/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Message not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error deleting message"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}

// MarkAllRead handles POST /api/admin/messages/read-all.
func (h *ContactHandler) MarkAllRead(c *gin.Context) {
	affected, err := h.service.MarkAllRead(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error updating messages"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "All messages marked as read",
		"updated": affected,
	})
}
