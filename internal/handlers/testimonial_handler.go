package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/helpers"
	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

// ListTestimonials returns approved testimonials only; pending submissions
// never leave the store through this route.
func ListTestimonials(s *services.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListApproved())
	}
}

func CreateTestimonial(s *services.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.InsertTestimonial
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
				Message: "Invalid testimonial data",
				Errors:  helpers.FieldErrors(err),
			})
			return
		}
		c.JSON(http.StatusCreated, s.CreateTestimonial(in))
	}
}
