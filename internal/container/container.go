package container

import (
	"log/slog"

	"github.com/wanderhub/travel-api/internal/models"
	"github.com/wanderhub/travel-api/internal/services"
)

const brandName = "WanderHub Travel"

// Container holds all application dependencies.
type Container struct {
	Logger *slog.Logger
	Store  models.Store

	PackageService     *services.PackageService
	BookingService     *services.BookingService
	ContactService     *services.ContactService
	TestimonialService *services.TestimonialService
	ChatService        *services.ChatService
	ItineraryService   *services.ItineraryService
}

// NewContainer wires the services around a single shared store. Handing
// the store in (instead of a package-level singleton) lets every test
// build its own isolated instance.
func NewContainer(logger *slog.Logger, store models.Store) *Container {
	return &Container{
		Logger:             logger,
		Store:              store,
		PackageService:     services.NewPackageService(store),
		BookingService:     services.NewBookingService(store),
		ContactService:     services.NewContactService(store),
		TestimonialService: services.NewTestimonialService(store),
		ChatService:        services.NewChatService(),
		ItineraryService:   services.NewItineraryService(brandName),
	}
}
