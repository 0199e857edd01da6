// Package memory provides in-memory repository implementations used in
// demo mode (no database configured) and by tests. The seeded dataset
// mirrors the static demo data the customer site ships with.
package memory

import (
	"context"
	"sync"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// Store holds every in-memory repository over one shared mutex.
type Store struct {
	mu            sync.RWMutex
	agencies      map[string]*domain.Agency
	routes        map[string]*domain.Route
	bookings      map[string]*domain.Booking
	bookingOrder  []string
	users         map[string]*domain.User
	notifications map[string]*domain.Notification
	notifOrder    []string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		agencies:      make(map[string]*domain.Agency),
		routes:        make(map[string]*domain.Route),
		bookings:      make(map[string]*domain.Booking),
		users:         make(map[string]*domain.User),
		notifications: make(map[string]*domain.Notification),
	}
}

// Agencies returns the agency repository view of the store.
func (s *Store) Agencies() repository.AgencyRepository { return (*agencyRepo)(s) }

// Routes returns the route repository view of the store.
func (s *Store) Routes() repository.RouteRepository { return (*routeRepo)(s) }

// Bookings returns the booking repository view of the store.
func (s *Store) Bookings() repository.BookingRepository { return (*bookingRepo)(s) }

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return (*userRepo)(s) }

// Notifications returns the notification repository view of the store.
func (s *Store) Notifications() repository.NotificationRepository { return (*notificationRepo)(s) }

// ── agency repository ──────────────────────────────

type agencyRepo Store

func (r *agencyRepo) Create(ctx context.Context, agency *domain.Agency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *agency
	r.agencies[agency.ID] = &cp
	return nil
}

func (r *agencyRepo) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agency, ok := r.agencies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *agency
	cp.RouteCount = r.routeCountLocked(id)
	return &cp, nil
}

func (r *agencyRepo) GetAll(ctx context.Context) ([]*domain.Agency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Agency, 0, len(r.agencies))
	for _, a := range r.agencies {
		cp := *a
		cp.RouteCount = r.routeCountLocked(a.ID)
		result = append(result, &cp)
	}
	return result, nil
}

func (r *agencyRepo) Update(ctx context.Context, agency *domain.Agency) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agencies[agency.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *agency
	r.agencies[agency.ID] = &cp
	return nil
}

func (r *agencyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agencies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.agencies, id)
	return nil
}

func (r *agencyRepo) routeCountLocked(agencyID string) int {
	count := 0
	for _, route := range r.routes {
		if route.AgencyID == agencyID {
			count++
		}
	}
	return count
}

// ── route repository ──────────────────────────────

type routeRepo Store

func (r *routeRepo) Create(ctx context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *route
	r.routes[route.ID] = &cp
	return nil
}

func (r *routeRepo) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	route, ok := r.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *route
	return &cp, nil
}

func (r *routeRepo) List(ctx context.Context, filter repository.RouteFilter) ([]*domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.Route
	for _, route := range r.routes {
		if filter.Origin != "" && route.Origin != filter.Origin {
			continue
		}
		if filter.Destination != "" && route.Destination != filter.Destination {
			continue
		}
		if filter.Date != "" && route.Date != filter.Date {
			continue
		}
		if filter.AgencyID != "" && route.AgencyID != filter.AgencyID {
			continue
		}
		cp := *route
		result = append(result, &cp)
	}
	return result, nil
}

func (r *routeRepo) Update(ctx context.Context, route *domain.Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[route.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *route
	r.routes[route.ID] = &cp
	return nil
}

func (r *routeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.routes, id)
	return nil
}

func (r *routeRepo) ReserveSeats(ctx context.Context, id string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[id]
	if !ok || route.AvailableSeats < count {
		return repository.ErrNotFound
	}
	route.AvailableSeats -= count
	return nil
}

func (r *routeRepo) ReleaseSeats(ctx context.Context, id string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[id]
	if !ok || route.AvailableSeats+count > route.TotalSeats {
		return repository.ErrNotFound
	}
	route.AvailableSeats += count
	return nil
}

// ── booking repository ──────────────────────────────

type bookingRepo Store

func (r *bookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *booking
	r.bookings[booking.ID] = &cp
	r.bookingOrder = append(r.bookingOrder, booking.ID)
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *booking
	return &cp, nil
}

func (r *bookingRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(r.bookingOrder))
	for i := len(r.bookingOrder) - 1; i >= 0; i-- {
		if b, ok := r.bookings[r.bookingOrder[i]]; ok {
			cp := *b
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *bookingRepo) GetByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	all, _ := r.GetAll(ctx)
	var result []*domain.Booking
	for _, b := range all {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus domain.PaymentStatus, confirmationCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	booking.PaymentStatus = paymentStatus
	booking.ConfirmationCode = confirmationCode
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// ── user repository ──────────────────────────────

type userRepo Store

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *userRepo) GetAll(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

// AddUser seeds a user record.
func (s *Store) AddUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
}

// ── notification repository ──────────────────────────────

type notificationRepo Store

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notifications[n.ID] = &cp
	r.notifOrder = append(r.notifOrder, n.ID)
	return nil
}

func (r *notificationRepo) GetByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*domain.Notification
	for i := len(r.notifOrder) - 1; i >= 0; i-- {
		if n, ok := r.notifications[r.notifOrder[i]]; ok && n.UserID == userID {
			cp := *n
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notifications[id]
	if !ok {
		return repository.ErrNotFound
	}
	n.Read = true
	return nil
}
