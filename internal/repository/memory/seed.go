package memory

import (
	"context"
	"time"

	"kamerways/internal/domain"
)

// Seeded returns a store pre-loaded with the demo dataset: a handful of
// Cameroonian agencies and intercity routes, priced in FCFA.
func Seeded() *Store {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	date := now.AddDate(0, 0, 1).Format("2006-01-02")

	agencies := []*domain.Agency{
		{ID: "agency-1", Name: "Finex Voyages", Description: "Premium intercity coaches", Phone: "+237670100100", Email: "contact@finexvoyages.cm", City: "Douala", Rating: 4.6, CreatedAt: now},
		{ID: "agency-2", Name: "Touristique Express", Description: "Daily departures across the country", Phone: "+237670200200", Email: "info@touristique.cm", City: "Yaoundé", Rating: 4.2, CreatedAt: now},
		{ID: "agency-3", Name: "Garanti Express", Description: "Night express specialists", Phone: "+237670300300", Email: "hello@garanti.cm", City: "Bafoussam", Rating: 3.9, CreatedAt: now},
	}
	for _, a := range agencies {
		_ = s.Agencies().Create(ctx, a)
	}

	routes := []*domain.Route{
		{ID: "route-1", AgencyID: "agency-1", Origin: "Douala", Destination: "Yaoundé", DepartureTime: "08:00", ArrivalTime: "12:00", Duration: "4h", Price: 15000, BusType: domain.BusTypeLuxury, Amenities: []string{"AC", "WiFi", "USB"}, AvailableSeats: 32, TotalSeats: 45, Date: date, CreatedAt: now},
		{ID: "route-2", AgencyID: "agency-1", Origin: "Yaoundé", Destination: "Douala", DepartureTime: "14:00", ArrivalTime: "18:00", Duration: "4h", Price: 15000, BusType: domain.BusTypeExpress, Amenities: []string{"AC", "USB"}, AvailableSeats: 40, TotalSeats: 45, Date: date, CreatedAt: now},
		{ID: "route-3", AgencyID: "agency-2", Origin: "Douala", Destination: "Bafoussam", DepartureTime: "09:30", ArrivalTime: "14:30", Duration: "5h", Price: 10000, BusType: domain.BusTypeStandard, Amenities: []string{"AC"}, AvailableSeats: 28, TotalSeats: 50, Date: date, CreatedAt: now},
		{ID: "route-4", AgencyID: "agency-3", Origin: "Yaoundé", Destination: "Bamenda", DepartureTime: "21:00", ArrivalTime: "05:00", Duration: "8h", Price: 18000, BusType: domain.BusTypeNightExpress, Amenities: []string{"AC", "Blanket", "Snack"}, AvailableSeats: 20, TotalSeats: 35, Date: date, CreatedAt: now},
	}
	for _, r := range routes {
		_ = s.Routes().Create(ctx, r)
	}

	// The two accounts login resolves against.
	s.AddUser(&domain.User{ID: "user-admin", Name: "KamerWays Admin", Email: "admin@kamerways.com", Phone: "+237670000000", Role: domain.RoleAdmin, CreatedAt: now})
	s.AddUser(&domain.User{ID: "user-customer", Name: "John Doe", Email: "john.doe@email.com", Phone: "+237670000001", Role: domain.RoleCustomer, CreatedAt: now})

	return s
}
