package models

import "time"

// Booking statuses. The store itself accepts any string for forward
// compatibility; the service layer rejects values outside this set.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// IsValidBookingStatus reports whether status is one of the recognized
// booking lifecycle states.
func IsValidBookingStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a customer's request to reserve a package. PackageID is an
// optional, non-validated reference: a dangling id is accepted.
type Booking struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PackageID       *int      `json:"packageId"`
	Travelers       int       `json:"travelers"`
	DepartureDate   string    `json:"departureDate"`
	Budget          *string   `json:"budget"`
	SpecialRequests *string   `json:"specialRequests"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// InsertBooking is the payload accepted when creating a booking.
// Status defaults to pending when omitted; nullable fields default to null.
// DepartureDate is carried as an opaque string, not parsed as a date.
type InsertBooking struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required"`
	PackageID       *int    `json:"packageId"`
	Travelers       int     `json:"travelers" binding:"required,min=1"`
	DepartureDate   string  `json:"departureDate" binding:"required"`
	Budget          *string `json:"budget"`
	SpecialRequests *string `json:"specialRequests"`
	Status          string  `json:"status"`
}
