package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

func Chat(s *services.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Message is required"})
			return
		}
		c.JSON(http.StatusOK, models.ChatResponse{Response: s.Reply(req.Message)})
	}
}
