package models

import (
	"sync"
	"time"
)

// MemStore is an in-memory Store. All state is process-local and volatile:
// a restart discards every booking, contact and submitted testimonial and
// regenerates only the seed data. Backing slices keep insertion order
// observable on list operations; id index maps give keyed lookup.
//
// Ids are per-collection counters starting at 1, never reused. A RWMutex
// guards every read-modify-write so concurrent requests cannot lose updates.
type MemStore struct {
	mu sync.RWMutex

	packages     []Package
	bookings     []Booking
	contacts     []Contact
	testimonials []Testimonial

	packageIdx     map[int]int
	bookingIdx     map[int]int
	testimonialIdx map[int]int

	nextPackageID     int
	nextBookingID     int
	nextContactID     int
	nextTestimonialID int
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns a store seeded with the sample packages and
// pre-approved testimonials. Seeding is identical on every start.
func NewMemStore() *MemStore {
	s := &MemStore{
		packageIdx:        make(map[int]int),
		bookingIdx:        make(map[int]int),
		testimonialIdx:    make(map[int]int),
		nextPackageID:     1,
		nextBookingID:     1,
		nextContactID:     1,
		nextTestimonialID: 1,
	}
	s.seed()
	return s
}

// Package methods

func (s *MemStore) ListPackages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Package, len(s.packages))
	copy(out, s.packages)
	return out
}

func (s *MemStore) GetPackage(id int) (Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.packageIdx[id]
	if !ok {
		return Package{}, false
	}
	return s.packages[i], true
}

// GetPackageBySlug returns the first package whose slug matches, in
// insertion order. Slug uniqueness is not enforced at insert time.
func (s *MemStore) GetPackageBySlug(slug string) (Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.packages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Package{}, false
}

// ListPackagesByCategory matches the category label exactly, case-sensitive.
func (s *MemStore) ListPackagesByCategory(category string) []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Package{}
	for _, p := range s.packages {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemStore) ListFeaturedPackages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Package{}
	for _, p := range s.packages {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (s *MemStore) CreatePackage(in InsertPackage) Package {
	s.mu.Lock()
	defer s.mu.Unlock()
	featured := false
	if in.Featured != nil {
		featured = *in.Featured
	}
	p := Package{
		ID:          s.nextPackageID,
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		MaxPeople:   in.MaxPeople,
		Category:    in.Category,
		Image:       in.Image,
		Highlights:  in.Highlights,
		Itinerary:   in.Itinerary,
		Includes:    in.Includes,
		Featured:    featured,
	}
	s.nextPackageID++
	s.packageIdx[p.ID] = len(s.packages)
	s.packages = append(s.packages, p)
	return p
}

// Booking methods

func (s *MemStore) ListBookings() []Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *MemStore) GetBooking(id int) (Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.bookingIdx[id]
	if !ok {
		return Booking{}, false
	}
	return s.bookings[i], true
}

// CreateBooking assigns the id and creation time, defaults the status to
// pending when the payload carries none, and leaves omitted nullable
// fields null. PackageID is not checked against existing packages.
func (s *MemStore) CreateBooking(in InsertBooking) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := in.Status
	if status == "" {
		status = StatusPending
	}
	b := Booking{
		ID:              s.nextBookingID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Email:           in.Email,
		Phone:           in.Phone,
		PackageID:       in.PackageID,
		Travelers:       in.Travelers,
		DepartureDate:   in.DepartureDate,
		Budget:          in.Budget,
		SpecialRequests: in.SpecialRequests,
		Status:          status,
		CreatedAt:       time.Now(),
	}
	s.nextBookingID++
	s.bookingIdx[b.ID] = len(s.bookings)
	s.bookings = append(s.bookings, b)
	return b
}

// UpdateBookingStatus replaces the status of the booking with the given id.
// The store accepts any status string; enum enforcement lives one layer up.
func (s *MemStore) UpdateBookingStatus(id int, status string) (Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.bookingIdx[id]
	if !ok {
		return Booking{}, false
	}
	s.bookings[i].Status = status
	return s.bookings[i], true
}

// Contact methods

func (s *MemStore) ListContacts() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

func (s *MemStore) CreateContact(in InsertContact) Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := Contact{
		ID:                s.nextContactID,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             in.Email,
		Phone:             in.Phone,
		InterestedPackage: in.InterestedPackage,
		Message:           in.Message,
		CreatedAt:         time.Now(),
	}
	s.nextContactID++
	s.contacts = append(s.contacts, c)
	return c
}

// Testimonial methods

func (s *MemStore) ListApprovedTestimonials() []Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Testimonial{}
	for _, t := range s.testimonials {
		if t.Approved {
			out = append(out, t)
		}
	}
	return out
}

// CreateTestimonial forces Approved to false regardless of input: public
// submissions never show before moderation.
func (s *MemStore) CreateTestimonial(in InsertTestimonial) Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Testimonial{
		ID:        s.nextTestimonialID,
		Name:      in.Name,
		Email:     in.Email,
		Rating:    in.Rating,
		Message:   in.Message,
		PackageID: in.PackageID,
		Approved:  false,
		CreatedAt: time.Now(),
	}
	s.nextTestimonialID++
	s.testimonialIdx[t.ID] = len(s.testimonials)
	s.testimonials = append(s.testimonials, t)
	return t
}

// ApproveTestimonial marks a testimonial as publishable. Not exposed over
// HTTP; moderation happens out of band.
func (s *MemStore) ApproveTestimonial(id int) (Testimonial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.testimonialIdx[id]
	if !ok {
		return Testimonial{}, false
	}
	s.testimonials[i].Approved = true
	return s.testimonials[i], true
}

// seedTestimonial bypasses the forced-unapproved rule for seed data only.
func (s *MemStore) seedTestimonial(t Testimonial) {
	t.ID = s.nextTestimonialID
	t.CreatedAt = time.Now()
	s.nextTestimonialID++
	s.testimonialIdx[t.ID] = len(s.testimonials)
	s.testimonials = append(s.testimonials, t)
}
