package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/helpers"
	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

func ListPackages(s *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListPackages())
	}
}

func ListFeaturedPackages(s *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.ListFeaturedPackages())
	}
}

func ListPackagesByCategory(s *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		c.JSON(http.StatusOK, s.ListPackagesByCategory(category))
	}
}

func GetPackageBySlug(s *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		pkg, ok := s.GetPackageBySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Package not found"})
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

func CreatePackage(s *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.InsertPackage
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse{
				Message: "Invalid package data",
				Errors:  helpers.FieldErrors(err),
			})
			return
		}
		c.JSON(http.StatusCreated, s.CreatePackage(in))
	}
}

// DownloadItineraryPDF streams the rendered itinerary for a package as a
// PDF attachment.
func DownloadItineraryPDF(s *services.PackageService, r *services.ItineraryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		pkg, ok := s.GetPackageBySlug(slug)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Package not found"})
			return
		}

		data, err := r.Render(pkg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to generate PDF"})
			return
		}

		filename := fmt.Sprintf("%s_Itinerary.pdf", helpers.SanitizeFilename(pkg.Title))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
