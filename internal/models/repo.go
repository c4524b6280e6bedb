package models

// Store is the storage contract for the four collections. Lookups that
// miss return ok=false, never an error: translating absence into an HTTP
// 404 is the boundary's job, not the store's.
type Store interface {
	// Packages
	ListPackages() []Package
	GetPackage(id int) (Package, bool)
	GetPackageBySlug(slug string) (Package, bool)
	ListPackagesByCategory(category string) []Package
	ListFeaturedPackages() []Package
	CreatePackage(in InsertPackage) Package

	// Bookings
	ListBookings() []Booking
	GetBooking(id int) (Booking, bool)
	CreateBooking(in InsertBooking) Booking
	UpdateBookingStatus(id int, status string) (Booking, bool)

	// Contacts
	ListContacts() []Contact
	CreateContact(in InsertContact) Contact

	// Testimonials
	ListApprovedTestimonials() []Testimonial
	CreateTestimonial(in InsertTestimonial) Testimonial
	ApproveTestimonial(id int) (Testimonial, bool)
}
