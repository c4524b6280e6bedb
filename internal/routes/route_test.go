package routes

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderhub/travel-api/internal/config"
	"github.com/wanderhub/travel-api/internal/container"
	"github.com/wanderhub/travel-api/internal/models"
)

func newTestRouter() (*gin.Engine, *models.MemStore) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Port:        "8080",
		Environment: "test",
		CORSOrigins: []string{"*"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := models.NewMemStore()
	c := container.NewContainer(logger, store)
	return SetupRoutes(c, cfg), store
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListPackages(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pkgs []models.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkgs))
	require.Len(t, pkgs, 6)
	assert.Equal(t, "Bali Paradise Escape", pkgs[0].Title)
}

func TestListFeaturedPackages(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/featured", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pkgs []models.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkgs))
	require.Len(t, pkgs, 4)
	for _, p := range pkgs {
		assert.True(t, p.Featured)
	}
}

func TestListPackagesByCategory(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/category/luxury", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pkgs []models.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkgs))
	require.Len(t, pkgs, 2)

	// Unknown categories yield an empty array, not a 404.
	rec = doJSON(r, http.MethodGet, "/api/packages/category/underwater", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetPackageBySlug(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/tokyo-adventure", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var pkg models.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
	assert.Equal(t, "Tokyo Adventure", pkg.Title)
	assert.Equal(t, 119900, pkg.Price)
}

func TestGetPackageBySlug_NotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Package not found", resp.Message)
}

func TestCreatePackage(t *testing.T) {
	r, _ := newTestRouter()

	body := `{
		"title": "Lisbon Getaway",
		"slug": "lisbon-getaway",
		"description": "4 sunny days on the Atlantic coast.",
		"duration": 4,
		"price": 79900,
		"maxPeople": 4,
		"category": "city",
		"image": "https://example.com/lisbon.jpg",
		"highlights": ["Tram 28 ride"],
		"itinerary": [{"day": 1, "title": "Arrival", "description": "Check-in and dinner"}],
		"includes": ["Flights", "Hotel"]
	}`
	rec := doJSON(r, http.MethodPost, "/api/packages", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var pkg models.Package
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pkg))
	assert.Equal(t, 7, pkg.ID)
	assert.False(t, pkg.Featured)

	rec = doJSON(r, http.MethodGet, "/api/packages/lisbon-getaway", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreatePackage_Invalid(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/api/packages", `{"title": "No slug"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid package data", resp.Message)
	assert.NotEmpty(t, resp.Errors)
}

func TestCreateBooking(t *testing.T) {
	r, _ := newTestRouter()

	body := `{
		"firstName": "Jo",
		"lastName": "Lee",
		"email": "jo@example.com",
		"phone": "123",
		"packageId": 1,
		"travelers": 2,
		"departureDate": "2025-01-01"
	}`
	rec := doJSON(r, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, models.StatusPending, b.Status)
	assert.False(t, b.CreatedAt.IsZero())
	require.NotNil(t, b.PackageID)
	assert.Equal(t, 1, *b.PackageID)
	assert.Nil(t, b.Budget)
	assert.Nil(t, b.SpecialRequests)

	// Nullable fields serialize as explicit nulls.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "null", string(raw["budget"]))
	assert.Equal(t, "null", string(raw["specialRequests"]))
}

func TestCreateBooking_Invalid(t *testing.T) {
	r, store := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/api/bookings", `{"firstName": "Jo"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid booking data", resp.Message)

	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "lastName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "travelers")

	// A rejected payload never reaches the store.
	assert.Empty(t, store.ListBookings())
}

func TestGetBooking(t *testing.T) {
	r, store := newTestRouter()
	created := store.CreateBooking(models.InsertBooking{
		FirstName:     "Jo",
		LastName:      "Lee",
		Email:         "jo@example.com",
		Phone:         "123",
		Travelers:     2,
		DepartureDate: "2025-01-01",
	})

	rec := doJSON(r, http.MethodGet, "/api/bookings/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, created.ID, b.ID)

	rec = doJSON(r, http.MethodGet, "/api/bookings/999999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingStatus(t *testing.T) {
	r, store := newTestRouter()
	store.CreateBooking(models.InsertBooking{
		FirstName:     "Jo",
		LastName:      "Lee",
		Email:         "jo@example.com",
		Phone:         "123",
		Travelers:     2,
		DepartureDate: "2025-01-01",
	})

	rec := doJSON(r, http.MethodPatch, "/api/bookings/1/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, models.StatusConfirmed, b.Status)
}

func TestUpdateBookingStatus_UnknownID(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPatch, "/api/bookings/999999/status", `{"status":"confirmed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Booking not found", resp.Message)
}

func TestUpdateBookingStatus_MissingStatus(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPatch, "/api/bookings/1/status", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatus_UnrecognizedStatus(t *testing.T) {
	r, store := newTestRouter()
	store.CreateBooking(models.InsertBooking{
		FirstName:     "Jo",
		LastName:      "Lee",
		Email:         "jo@example.com",
		Phone:         "123",
		Travelers:     2,
		DepartureDate: "2025-01-01",
	})

	rec := doJSON(r, http.MethodPatch, "/api/bookings/1/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The booking keeps its original status.
	b, ok := store.GetBooking(1)
	require.True(t, ok)
	assert.Equal(t, models.StatusPending, b.Status)
}

func TestCreateContact(t *testing.T) {
	r, _ := newTestRouter()

	body := `{
		"firstName": "Ana",
		"lastName": "Silva",
		"email": "ana@example.com",
		"message": "Do you offer group discounts?"
	}`
	rec := doJSON(r, http.MethodPost, "/api/contacts", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var contact models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contact))
	assert.Equal(t, 1, contact.ID)
	assert.Nil(t, contact.Phone)

	rec = doJSON(r, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 1)
}

func TestTestimonials_ModerationGate(t *testing.T) {
	r, store := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/testimonials", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var visible []models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	require.Len(t, visible, 4)

	// A public submission claiming approved is stored unapproved.
	body := `{
		"name": "New Customer",
		"email": "new@example.com",
		"rating": 5,
		"message": "Amazing!",
		"approved": true
	}`
	rec = doJSON(r, http.MethodPost, "/api/testimonials", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Testimonial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.False(t, created.Approved)

	rec = doJSON(r, http.MethodGet, "/api/testimonials", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	assert.Len(t, visible, 4)

	// Until moderation approves it.
	_, ok := store.ApproveTestimonial(created.ID)
	require.True(t, ok)
	rec = doJSON(r, http.MethodGet, "/api/testimonials", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visible))
	assert.Len(t, visible, 5)
}

func TestCreateTestimonial_RatingOutOfRange(t *testing.T) {
	r, _ := newTestRouter()

	body := `{"name": "X", "email": "x@example.com", "rating": 6, "message": "!!"}`
	rec := doJSON(r, http.MethodPost, "/api/testimonials", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestItineraryPDF(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/bali-paradise-escape/itinerary-pdf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Bali_Paradise_Escape_Itinerary.pdf")
	require.GreaterOrEqual(t, rec.Body.Len(), 4)
	assert.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestItineraryPDF_NotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/api/packages/does-not-exist/itinerary-pdf", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/api/chat", `{"message":"what packages do you have?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Response, "featured packages")
}

func TestChat_MissingMessage(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/api/chat", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Message is required", resp.Message)
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/health", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
