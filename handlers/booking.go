package handlers

import (
	"errors"
	"net/http"
	"time"

	"trimly/models"
	"trimly/services/booking"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler stores a new booking for the authenticated shop.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid booking request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(shopID, req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBookingHandler returns one booking.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	b, err := h.Service.GetBooking(shopID, c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler lists bookings within a from/to query range. Defaults
// to the trailing 7 days.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	now := time.Now()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, 1)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid 'from' parameter", err.Error())
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid 'to' parameter", err.Error())
			return
		}
		to = parsed
	}

	bookings, err := h.Service.ListRange(shopID, from, to)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DayAgendaHandler lists all bookings for a calendar date ("2006-01-02").
func (h *BookingHandler) DayAgendaHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "expected YYYY-MM-DD")
		return
	}

	bookings, err := h.Service.DayAgenda(shopID, day)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load agenda", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler moves a booking through its lifecycle.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateStatus(shopID, c.Param("id"), req.Status)
	if err != nil {
		var bErr *booking.BookingError
		if errors.As(err, &bErr) && bErr.Code == "invalidTransition" {
			utils.JSONError(c, http.StatusConflict, "Invalid status transition", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "Failed to update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler removes a booking.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	shopID := shopIDFromContext(c)

	if err := h.Service.DeleteBooking(shopID, c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Failed to delete booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
