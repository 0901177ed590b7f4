package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/services"
	"studio-api/internal/utils"
)

type BookingHandler struct {
	service *services.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service *services.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

// Submit handles POST /api/bookings, the public booking form.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload"))
		return
	}

	booking, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, utils.ValidationErrorResponse("Validation error", verrs))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error processing booking request"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking request submitted successfully",
		"bookingId": booking.ID,
	})
}

// List handles GET /api/admin/bookings with optional status, sort, order and
// search query parameters.
func (h *BookingHandler) List(c *gin.Context) {
	opts := models.BookingListOptions{
		Status:        models.BookingStatus(c.Query("status")),
		SortField:     c.Query("sort"),
		SortAscending: c.Query("order") == "asc",
		Search:        c.Query("search"),
	}
	if opts.Status != "" && !models.ValidStatus(opts.Status) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid status value"))
		return
	}
	if opts.SortField != "" && !models.BookingSortFields[opts.SortField] {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid sort field"))
		return
	}

	bookings, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching bookings"))
		return
	}
	if bookings == nil {
		bookings = []*models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/admin/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	booking, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Booking not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error fetching booking"))
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateStatus handles PATCH /api/admin/bookings/:id.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid status value"))
		return
	}

	booking, err := h.service.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid status value"))
		case errors.Is(err, services.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Booking not found"))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Error updating booking status"))
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid id"))
		return 0, false
	}
	return id, true
}
