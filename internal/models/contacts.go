package models

import "time"

// Contact is a free-form inquiry message, not tied to a transaction.
// Immutable after creation.
type Contact struct {
	ID                int       `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	InterestedPackage *string   `json:"interestedPackage"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"createdAt"`
}

// InsertContact is the payload accepted when creating a contact inquiry.
type InsertContact struct {
	FirstName         string  `json:"firstName" binding:"required"`
	LastName          string  `json:"lastName" binding:"required"`
	Email             string  `json:"email" binding:"required,email"`
	Phone             *string `json:"phone"`
	InterestedPackage *string `json:"interestedPackage"`
	Message           string  `json:"message" binding:"required"`
}
