package models

// ItineraryDay is a single day entry in a package itinerary.
type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Package is a sellable travel itinerary offering. Prices are stored in
// minor currency units (cents), duration in days.
type Package struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Duration    int            `json:"duration"`
	Price       int            `json:"price"`
	MaxPeople   int            `json:"maxPeople"`
	Category    string         `json:"category"`
	Image       string         `json:"image"`
	Highlights  []string       `json:"highlights"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Includes    []string       `json:"includes"`
	Featured    bool           `json:"featured"`
}

// InsertPackage is the payload accepted when creating a package.
// Featured defaults to false when omitted.
type InsertPackage struct {
	Title       string         `json:"title" binding:"required"`
	Slug        string         `json:"slug" binding:"required"`
	Description string         `json:"description" binding:"required"`
	Duration    int            `json:"duration" binding:"required,min=1"`
	Price       int            `json:"price" binding:"required,min=1"`
	MaxPeople   int            `json:"maxPeople" binding:"required,min=1"`
	Category    string         `json:"category" binding:"required"`
	Image       string         `json:"image" binding:"required"`
	Highlights  []string       `json:"highlights" binding:"required"`
	Itinerary   []ItineraryDay `json:"itinerary" binding:"required"`
	Includes    []string       `json:"includes" binding:"required"`
	Featured    *bool          `json:"featured"`
}
