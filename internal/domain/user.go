package domain

import "time"

// Role distinguishes the admin back-office from the customer view.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents a signed-in identity. Authentication resolves against
// exactly two fixed credential records; this is UI-state gating, not a
// security boundary.
type User struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
}

// Session pairs a user with the opaque token issued at login. The token
// is never re-validated after issue; it only keys the stored user.
type Session struct {
	Token string
	User  User
}
