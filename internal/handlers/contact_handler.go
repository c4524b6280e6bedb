package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/helpers"
	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

func CreateContact(s *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.InsertContact
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
				Message: "Invalid contact data",
				Errors:  helpers.FieldErrors(err),
			})
			return
		}
		c.JSON(http.StatusCreated, s.CreateContact(in))
	}
}

func ListContacts(s *services.ContactService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListContacts())
	}
}
