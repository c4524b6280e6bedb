package services

import (
	"github.com/wanderhub/travel-api/internal/models"
)

type TestimonialService struct {
	store models.Store
}

func NewTestimonialService(store models.Store) *TestimonialService {
	return &TestimonialService{store: store}
}

// ListApproved returns only testimonials cleared for public display.
func (s *TestimonialService) ListApproved() []models.Testimonial {
	return s.store.ListApprovedTestimonials()
}

// CreateTestimonial stores a submission; it always lands unapproved and
// stays hidden until moderation approves it.
func (s *TestimonialService) CreateTestimonial(in models.InsertTestimonial) models.Testimonial {
	return s.store.CreateTestimonial(in)
}

// Approve clears a testimonial for display. There is no public route for
// this; it exists for moderation tooling.
func (s *TestimonialService) Approve(id int) (models.Testimonial, bool) {
	return s.store.ApproveTestimonial(id)
}
