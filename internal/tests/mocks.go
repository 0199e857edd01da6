package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
	"kamerways/internal/service"
	"kamerways/internal/wizard"
)

// ──────────────────────────────────────────────
// MOCK ROUTE REPOSITORY
// ──────────────────────────────────────────────

// MockRouteRepository is a mock implementation of RouteRepository.
type MockRouteRepository struct {
	mu     sync.RWMutex
	routes map[string]*domain.Route

	// Counters for verification
	CreateCallCount       int32
	ReserveSeatsCallCount int32
	ReleaseSeatsCallCount int32

	// Error injection
	CreateError       error
	ReserveSeatsError error
	ReleaseSeatsError error
}

// NewMockRouteRepository creates a new mock route repository.
func NewMockRouteRepository() *MockRouteRepository {
	return &MockRouteRepository{
		routes: make(map[string]*domain.Route),
	}
}

// AddRoute adds a route to the mock repository.
func (m *MockRouteRepository) AddRoute(route *domain.Route) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route.ID] = route
}

func (m *MockRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[route.ID] = route
	return nil
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	route, ok := m.routes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *route
	return &copy, nil
}

func (m *MockRouteRepository) List(ctx context.Context, filter repository.RouteFilter) ([]*domain.Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Route, 0, len(m.routes))
	for _, r := range m.routes {
		if filter.Origin != "" && r.Origin != filter.Origin {
			continue
		}
		if filter.Destination != "" && r.Destination != filter.Destination {
			continue
		}
		if filter.Date != "" && r.Date != filter.Date {
			continue
		}
		if filter.AgencyID != "" && r.AgencyID != filter.AgencyID {
			continue
		}
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.routes[route.ID]; !ok {
		return repository.ErrNotFound
	}
	m.routes[route.ID] = route
	return nil
}

func (m *MockRouteRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.routes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.routes, id)
	return nil
}

func (m *MockRouteRepository) ReserveSeats(ctx context.Context, id string, count int) error {
	atomic.AddInt32(&m.ReserveSeatsCallCount, 1)
	if m.ReserveSeatsError != nil {
		return m.ReserveSeatsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	route, ok := m.routes[id]
	if !ok || route.AvailableSeats < count {
		return repository.ErrNotFound
	}
	route.AvailableSeats -= count
	return nil
}

func (m *MockRouteRepository) ReleaseSeats(ctx context.Context, id string, count int) error {
	atomic.AddInt32(&m.ReleaseSeatsCallCount, 1)
	if m.ReleaseSeatsError != nil {
		return m.ReleaseSeatsError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	route, ok := m.routes[id]
	if !ok || route.AvailableSeats+count > route.TotalSeats {
		return repository.ErrNotFound
	}
	route.AvailableSeats += count
	return nil
}

// GetRoute returns a route for test assertions.
func (m *MockRouteRepository) GetRoute(id string) *domain.Route {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.routes[id]
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	CreateCallCount       int32
	UpdateStatusCallCount int32

	// Error injection
	CreateError       error
	UpdateStatusError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		copy := *b
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentStatus domain.PaymentStatus, confirmationCode string) error {
	atomic.AddInt32(&m.UpdateStatusCallCount, 1)
	if m.UpdateStatusError != nil {
		return m.UpdateStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	booking.Status = status
	booking.PaymentStatus = paymentStatus
	booking.ConfirmationCode = confirmationCode
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

// GetBooking returns a booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// Count returns the number of stored bookings.
func (m *MockBookingRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK NOTIFICATION REPOSITORY
// ──────────────────────────────────────────────

// MockNotificationRepository is a mock implementation of NotificationRepository.
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications []*domain.Notification

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockNotificationRepository creates a new mock notification repository.
func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *MockNotificationRepository) GetByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Notification, 0)
	for _, n := range m.notifications {
		if n.UserID == userID {
			copy := *n
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.notifications {
		if n.ID == id {
			n.Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

// All returns every stored notification for test assertions.
func (m *MockNotificationRepository) All() []*domain.Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// ──────────────────────────────────────────────
// MOCK DRAFT STORE
// ──────────────────────────────────────────────

// MockDraftStore is an in-memory stand-in for the Redis draft store.
type MockDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]wizard.Session

	// Counters for verification
	SaveCallCount   int32
	DeleteCallCount int32

	// Error injection
	SaveError error
	GetError  error
}

// NewMockDraftStore creates a new mock draft store.
func NewMockDraftStore() *MockDraftStore {
	return &MockDraftStore{
		drafts: make(map[string]wizard.Session),
	}
}

func (m *MockDraftStore) Save(ctx context.Context, session *wizard.Session) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[session.ID] = *session
	return nil
}

func (m *MockDraftStore) Get(ctx context.Context, id string) (*wizard.Session, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.drafts[id]
	if !ok {
		return nil, nil
	}
	copy := session
	return &copy, nil
}

func (m *MockDraftStore) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
	return nil
}

// Has reports whether a draft is still stored.
func (m *MockDraftStore) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.drafts[id]
	return ok
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory stand-in for the Redis submit lock.
type MockLockStore struct {
	mu   sync.Mutex
	held map[string]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		held: make(map[string]bool),
	}
}

func (m *MockLockStore) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.held[sessionID] {
		return false, nil
	}
	m.held[sessionID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.held, sessionID)
	return nil
}

// Hold marks a session's lock as already taken.
func (m *MockLockStore) Hold(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.held[sessionID] = true
}

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory stand-in for the Redis session store.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.User

	// Counters for verification
	SaveCallCount   int32
	DeleteCallCount int32

	// Error injection
	SaveError error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]domain.User),
	}
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session.User
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	copy := user
	return &copy, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Count returns the number of live sessions.
func (m *MockSessionStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ──────────────────────────────────────────────
// PAYMENT AND BOOKING STUBS
// ──────────────────────────────────────────────

// DecliningPSP is a payment provider that refuses every charge.
type DecliningPSP struct {
	ChargeCallCount int32
}

func (p *DecliningPSP) Charge(ctx context.Context, method domain.PaymentMethod, amount int64) (bool, error) {
	atomic.AddInt32(&p.ChargeCallCount, 1)
	return false, nil
}

// FailingBookingCreator rejects every submission with a fixed error,
// standing in for a backend outage during wizard submission.
type FailingBookingCreator struct {
	Err             error
	CreateCallCount int32
}

func (f *FailingBookingCreator) CreateBooking(ctx context.Context, req service.CreateBookingRequest) (*domain.Booking, error) {
	atomic.AddInt32(&f.CreateCallCount, 1)
	return nil, f.Err
}
