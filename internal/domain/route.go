package domain

import "time"

// BusType represents the class of bus serving a route.
type BusType string

const (
	BusTypeExpress      BusType = "express"
	BusTypeStandard     BusType = "standard"
	BusTypeLuxury       BusType = "luxury"
	BusTypeNightExpress BusType = "night_express"
)

// Route represents a scheduled bus trip between two cities.
type Route struct {
	ID             string
	AgencyID       string
	Origin         string
	Destination    string
	DepartureTime  string // "HH:MM" local time
	ArrivalTime    string
	Duration       string
	Price          int64 // FCFA, minor unit; always positive
	BusType        BusType
	Amenities      []string
	AvailableSeats int
	TotalSeats     int
	Date           string // "YYYY-MM-DD"
	CreatedAt      time.Time
}
