package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
		"status":  status,
	})
}

func TestStatusMessageMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantMessage string
	}{
		{name: "bad request", status: http.StatusBadRequest, wantMessage: "Bad request. Please check your input."},
		{name: "unauthorized", status: http.StatusUnauthorized, wantMessage: "You are not authorized. Please log in."},
		{name: "forbidden", status: http.StatusForbidden, wantMessage: "Access denied."},
		{name: "not found", status: http.StatusNotFound, wantMessage: "The requested resource was not found."},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, wantMessage: "Some fields are invalid. Please review your details."},
		{name: "server error", status: http.StatusInternalServerError, wantMessage: "Server error. Please try again later."},
		{name: "unknown status", status: http.StatusTeapot, wantMessage: "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.status, "server detail")
			}))

			_, err := c.GetRoute(context.Background(), "route-1")
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, "server detail", apiErr.ServerMessage)
			assert.False(t, apiErr.NoResponse())
		})
	}
}

func TestNoResponse_DistinctFromServerError(t *testing.T) {
	// Point at a server that is already gone.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(server.URL)
	server.Close()

	_, err := c.ListAgencies(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.True(t, apiErr.NoResponse())
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "No response from server. Check your connection.", apiErr.Message)
}

func TestLogin_StoresToken(t *testing.T) {
	var seenAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@kamerways.com", body["email"])

		json.NewEncoder(w).Encode(LoginResponse{
			Token: "token-123",
			User:  User{ID: "user-admin", Role: "admin"},
		})
	})
	mux.HandleFunc("/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		seenAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{ID: "user-admin", Role: "admin"})
	})

	c := testServer(t, mux)

	resp, err := c.Login(context.Background(), "admin@kamerways.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "admin", resp.User.Role)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123", seenAuth)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := testServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	}))

	_, err := c.Login(context.Background(), "admin@kamerways.com", "wrong")
	require.Error(t, err)

	apiErr := err.(*APIError)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.ServerMessage)
}

func TestListRoutes_FilterQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/routes", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Douala", r.URL.Query().Get("origin"))
		assert.Equal(t, "Yaoundé", r.URL.Query().Get("destination"))
		json.NewEncoder(w).Encode([]Route{
			{ID: "route-1", Origin: "Douala", Destination: "Yaoundé", Price: 15000},
		})
	})

	c := testServer(t, mux)

	routes, err := c.ListRoutes(context.Background(), RouteFilter{Origin: "Douala", Destination: "Yaoundé"})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, int64(15000), routes[0].Price)
}

func TestWizardFlow_Paths(t *testing.T) {
	var paths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(WizardSession{ID: "wiz-1", Step: "route", RouteID: "route-1"})
	})

	c := testServer(t, mux)
	ctx := context.Background()

	_, err := c.StartWizard(ctx, "route-1")
	require.NoError(t, err)
	_, err = c.SubmitPassenger(ctx, "wiz-1", Passenger{Name: "Alice"})
	require.NoError(t, err)
	_, err = c.ConfirmRoute(ctx, "wiz-1")
	require.NoError(t, err)
	_, err = c.SelectSeats(ctx, "wiz-1", 2)
	require.NoError(t, err)
	_, err = c.SubmitPayment(ctx, "wiz-1", SubmitPaymentRequest{PaymentMethod: "bank_card"})
	require.NoError(t, err)
	_, err = c.Back(ctx, "wiz-1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"POST /v1/wizard",
		"POST /v1/wizard/wiz-1/passenger",
		"POST /v1/wizard/wiz-1/confirm-route",
		"POST /v1/wizard/wiz-1/seats",
		"POST /v1/wizard/wiz-1/payment",
		"POST /v1/wizard/wiz-1/back",
	}, paths)
}
