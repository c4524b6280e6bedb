package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wanderhub/travel-api/internal/config"
	"github.com/wanderhub/travel-api/internal/container"
	"github.com/wanderhub/travel-api/internal/handlers"
	"github.com/wanderhub/travel-api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container.
func SetupRoutes(c *container.Container, cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	allowCredentials := true
	for _, origin := range cfg.CORSOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Fixed package paths must be registered before the slug route so
		// "featured" and "category" never resolve as slugs.
		packages := api.Group("/packages")
		{
			packages.GET("", handlers.ListPackages(c.PackageService))
			packages.GET("/featured", handlers.ListFeaturedPackages(c.PackageService))
			packages.GET("/category/:category", handlers.ListPackagesByCategory(c.PackageService))
			packages.GET("/:slug", handlers.GetPackageBySlug(c.PackageService))
			packages.GET("/:slug/itinerary-pdf", handlers.DownloadItineraryPDF(c.PackageService, c.ItineraryService))
			packages.POST("", handlers.CreatePackage(c.PackageService))
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", handlers.ListBookings(c.BookingService))
			bookings.GET("/:id", handlers.GetBooking(c.BookingService))
			bookings.POST("", handlers.CreateBooking(c.BookingService))
			bookings.PATCH("/:id/status", handlers.UpdateBookingStatus(c.BookingService))
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", handlers.ListContacts(c.ContactService))
			contacts.POST("", handlers.CreateContact(c.ContactService))
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", handlers.ListTestimonials(c.TestimonialService))
			testimonials.POST("", handlers.CreateTestimonial(c.TestimonialService))
		}

		api.POST("/chat", handlers.Chat(c.ChatService))
	}

	return r
}
