package models

import "time"

// Testimonial is a customer review. Reviews submitted through the public
// endpoint always start unapproved; only approved ones are listed publicly.
type Testimonial struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	PackageID *int      `json:"packageId"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertTestimonial is the payload accepted when submitting a testimonial.
// Any approved value supplied by the caller is ignored.
type InsertTestimonial struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Message   string `json:"message" binding:"required"`
	PackageID *int   `json:"packageId"`
}
