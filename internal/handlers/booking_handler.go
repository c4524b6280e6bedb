package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/helpers"
	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

func CreateBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.InsertBooking
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
				Message: "Invalid booking data",
				Errors:  helpers.FieldErrors(err),
			})
			return
		}
		c.JSON(http.StatusCreated, s.CreateBooking(in))
	}
}

func ListBookings(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListBookings())
	}
}

func GetBooking(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Booking not found"})
			return
		}
		booking, ok := s.GetBooking(id)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Booking not found"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// UpdateBookingStatus moves a booking between lifecycle states. A missing
// status is a 400, an unrecognized one too; an unknown id is a 404.
// Non-numeric ids fall through to 404 like any other unknown booking.
func UpdateBookingStatus(s *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Status is required"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Booking not found"})
			return
		}

		booking, ok, err := s.UpdateStatus(id, body.Status)
		if err != nil {
			if errors.Is(err, services.ErrInvalidStatus) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Status must be one of pending, confirmed, cancelled"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update booking status"})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Booking not found"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}
