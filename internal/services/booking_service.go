package services

import (
	"errors"

	"github.com/wanderhub/travel-api/internal/models"
)

// ErrInvalidStatus is returned when a status update names a state outside
// the pending/confirmed/cancelled set.
var ErrInvalidStatus = errors.New("invalid booking status")

type BookingService struct {
	store models.Store
}

func NewBookingService(store models.Store) *BookingService {
	return &BookingService{store: store}
}

func (s *BookingService) ListBookings() []models.Booking {
	return s.store.ListBookings()
}

func (s *BookingService) GetBooking(id int) (models.Booking, bool) {
	return s.store.GetBooking(id)
}

func (s *BookingService) CreateBooking(in models.InsertBooking) models.Booking {
	return s.store.CreateBooking(in)
}

// UpdateStatus gates the permissive store behind a closed status set.
// Unknown ids surface as ok=false with a nil error.
func (s *BookingService) UpdateStatus(id int, status string) (models.Booking, bool, error) {
	if !models.IsValidBookingStatus(status) {
		return models.Booking{}, false, ErrInvalidStatus
	}
	b, ok := s.store.UpdateBookingStatus(id, status)
	return b, ok, nil
}
