package tests

import (
	"context"
	"testing"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// ──────────────────────────────────────────────
// 1. LOGIN AGAINST THE FIXED CREDENTIAL RECORDS
// ──────────────────────────────────────────────

func TestLogin_KnownAccounts_ResolveToRoles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
		wantRole domain.Role
		wantName string
	}{
		{
			name:     "administrator account",
			email:    "admin@kamerways.com",
			password: "admin123",
			wantRole: domain.RoleAdmin,
			wantName: "KamerWays Admin",
		},
		{
			name:     "customer account",
			email:    "john.doe@email.com",
			password: "customer123",
			wantRole: domain.RoleCustomer,
			wantName: "John Doe",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessions := NewMockSessionStore()
			authService := service.NewAuthService(sessions)

			session, err := authService.Login(context.Background(), tc.email, tc.password)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			if session.Token == "" {
				t.Error("expected a session token to be issued")
			}
			if session.User.Role != tc.wantRole {
				t.Errorf("expected role %s, got %s", tc.wantRole, session.User.Role)
			}
			if session.User.Name != tc.wantName {
				t.Errorf("expected name %q, got %q", tc.wantName, session.User.Name)
			}
			if sessions.SaveCallCount != 1 {
				t.Errorf("expected 1 session save, got %d", sessions.SaveCallCount)
			}
		})
	}
}

func TestLogin_BadCredentials_SameGenericError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@kamerways.com", password: "wrong"},
		{name: "unknown email", email: "nobody@kamerways.com", password: "admin123"},
		{name: "empty everything", email: "", password: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessions := NewMockSessionStore()
			authService := service.NewAuthService(sessions)

			_, err := authService.Login(context.Background(), tc.email, tc.password)
			if err != service.ErrInvalidCredentials {
				t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
			}

			// The failure message never says which of the two was wrong.
			if err.Error() != "Invalid credentials" {
				t.Errorf("expected generic message, got %q", err.Error())
			}
			if sessions.Count() != 0 {
				t.Errorf("expected no session to be stored, got %d", sessions.Count())
			}
		})
	}
}

// ──────────────────────────────────────────────
// 2. LOGOUT AND TOKEN RESOLUTION
// ──────────────────────────────────────────────

func TestLogout_Twice_IsIdempotent(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(sessions)

	session, err := authService.Login(context.Background(), "john.doe@email.com", "customer123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := authService.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("first logout failed: %v", err)
	}
	if err := authService.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("second logout should also succeed, got: %v", err)
	}
	if sessions.Count() != 0 {
		t.Errorf("expected empty session store, got %d sessions", sessions.Count())
	}
}

func TestResolve_AfterLogout_Fails(t *testing.T) {
	t.Parallel()

	sessions := NewMockSessionStore()
	authService := service.NewAuthService(sessions)

	session, err := authService.Login(context.Background(), "admin@kamerways.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	user, err := authService.Resolve(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("resolve before logout failed: %v", err)
	}
	if user.ID != "user-admin" {
		t.Errorf("expected user-admin, got %s", user.ID)
	}

	if err := authService.Logout(context.Background(), session.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if _, err := authService.Resolve(context.Background(), session.Token); err != service.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials after logout, got: %v", err)
	}
}

func TestResolve_EmptyToken_Fails(t *testing.T) {
	t.Parallel()

	authService := service.NewAuthService(NewMockSessionStore())

	if _, err := authService.Resolve(context.Background(), ""); err != service.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
