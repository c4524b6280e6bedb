package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderhub/travel-api/internal/models"
)

func TestItineraryService_Render(t *testing.T) {
	svc := NewItineraryService("WanderHub Travel")

	pkg := models.Package{
		ID:          1,
		Title:       "Paris Romance",
		Slug:        "paris-romance",
		Description: "5 magical days exploring the City of Love.",
		Duration:    5,
		Price:       129900,
		MaxPeople:   2,
		Category:    "romantic",
		Image:       "https://example.com/paris.jpg",
		Highlights:  []string{"4 nights in luxury hotel near Champs-Élysées"},
		Itinerary: []models.ItineraryDay{
			{Day: 1, Title: "Arrival", Description: "Airport transfer, Seine river dinner cruise"},
			{Day: 2, Title: "Iconic Paris", Description: "Eiffel Tower, Louvre Museum"},
		},
		Includes: []string{"Round-trip flights", "Daily breakfast"},
	}

	data, err := svc.Render(pkg)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{89900, "$899.00"},
		{129900, "$1,299.00"},
		{499900, "$4,999.00"},
		{100000000, "$1,000,000.00"},
		{5, "$0.05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.cents))
	}
}
