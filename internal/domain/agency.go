package domain

import "time"

// Agency represents a bus operator offering one or more routes.
type Agency struct {
	ID          string
	Name        string
	Description string
	Phone       string
	Email       string
	City        string
	Rating      float64
	RouteCount  int
	CreatedAt   time.Time
}
