// Package client provides a typed HTTP client for the KamerWays booking
// API. It mirrors the wire format with its own response types, so
// programs consuming the API do not import the server packages.
//
// Failures are normalized into *APIError: every non-2xx status maps to a
// fixed human-readable message, and a transport failure (no response at
// all) is distinguished from a server rejection.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// statusMessages is the fixed status → message table. Unknown statuses
// fall back to the generic message.
var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request. Please check your input.",
	http.StatusUnauthorized:        "You are not authorized. Please log in.",
	http.StatusForbidden:           "Access denied.",
	http.StatusNotFound:            "The requested resource was not found.",
	http.StatusUnprocessableEntity: "Some fields are invalid. Please review your details.",
	http.StatusInternalServerError: "Server error. Please try again later.",
}

const (
	genericMessage    = "Something went wrong. Please try again."
	noResponseMessage = "No response from server. Check your connection."
)

// APIError is a normalized request failure.
type APIError struct {
	// Status is the HTTP status code, or 0 when no response arrived.
	Status int
	// Message is the fixed human-readable message for the status.
	Message string
	// ServerMessage is the message field from the error body, if any.
	ServerMessage string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// NoResponse reports whether the request never reached the server.
func (e *APIError) NoResponse() bool {
	return e.Status == 0
}

// messageFor returns the fixed message for an HTTP status.
func messageFor(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return genericMessage
}

// Client is a typed HTTP client for the KamerWays booking API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// User is the wire format for a user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// LoginResponse is the wire format for POST /v1/auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Route is the wire format for a route.
type Route struct {
	ID             string   `json:"id"`
	AgencyID       string   `json:"agency_id"`
	Origin         string   `json:"origin"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	BusType        string   `json:"bus_type"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	Date           string   `json:"date"`
}

// Agency is the wire format for an agency.
type Agency struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	City        string  `json:"city"`
	Rating      float64 `json:"rating"`
	RouteCount  int     `json:"route_count"`
}

// Passenger is the wire format for passenger details.
type Passenger struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	IDNumber string `json:"id_number"`
}

// WizardSession is the wire format for a wizard session.
type WizardSession struct {
	ID        string `json:"id"`
	Step      string `json:"step"`
	RouteID   string `json:"route_id"`
	SeatCount int    `json:"seat_count,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Message   string `json:"message,omitempty"`
	Total     int64  `json:"total,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}

// SubmitPaymentRequest is the wire format for the wizard payment step.
type SubmitPaymentRequest struct {
	PaymentMethod       string `json:"payment_method"`
	MobileMoneyProvider string `json:"momo_provider,omitempty"`
	MobileMoneyNumber   string `json:"momo_number,omitempty"`
}

// RouteFilter narrows route listings. Zero-value fields are omitted.
type RouteFilter struct {
	Origin      string
	Destination string
	Date        string
	AgencyID    string
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, &resp); err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp, nil
}

// Logout invalidates the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the user for the stored token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRoutes returns routes matching the filter.
func (c *Client) ListRoutes(ctx context.Context, filter RouteFilter) ([]Route, error) {
	query := url.Values{}
	if filter.Origin != "" {
		query.Set("origin", filter.Origin)
	}
	if filter.Destination != "" {
		query.Set("destination", filter.Destination)
	}
	if filter.Date != "" {
		query.Set("date", filter.Date)
	}
	if filter.AgencyID != "" {
		query.Set("agency", filter.AgencyID)
	}
	path := "/v1/routes"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var routes []Route
	if err := c.do(ctx, http.MethodGet, path, nil, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

// GetRoute returns one route.
func (c *Client) GetRoute(ctx context.Context, id string) (*Route, error) {
	var route Route
	if err := c.do(ctx, http.MethodGet, "/v1/routes/"+url.PathEscape(id), nil, &route); err != nil {
		return nil, err
	}
	return &route, nil
}

// ListAgencies returns all agencies.
func (c *Client) ListAgencies(ctx context.Context) ([]Agency, error) {
	var agencies []Agency
	if err := c.do(ctx, http.MethodGet, "/v1/agencies", nil, &agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}

// StartWizard opens a wizard session for a route.
func (c *Client) StartWizard(ctx context.Context, routeID string) (*WizardSession, error) {
	var session WizardSession
	body := map[string]string{"route_id": routeID}
	if err := c.do(ctx, http.MethodPost, "/v1/wizard", body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SubmitPassenger runs the wizard's passenger step.
func (c *Client) SubmitPassenger(ctx context.Context, sessionID string, p Passenger) (*WizardSession, error) {
	var session WizardSession
	path := "/v1/wizard/" + url.PathEscape(sessionID) + "/passenger"
	if err := c.do(ctx, http.MethodPost, path, p, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ConfirmRoute runs the wizard's route confirmation step.
func (c *Client) ConfirmRoute(ctx context.Context, sessionID string) (*WizardSession, error) {
	var session WizardSession
	path := "/v1/wizard/" + url.PathEscape(sessionID) + "/confirm-route"
	if err := c.do(ctx, http.MethodPost, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SelectSeats runs the wizard's seat selection step.
func (c *Client) SelectSeats(ctx context.Context, sessionID string, count int) (*WizardSession, error) {
	var session WizardSession
	path := "/v1/wizard/" + url.PathEscape(sessionID) + "/seats"
	body := map[string]int{"seat_count": count}
	if err := c.do(ctx, http.MethodPost, path, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SubmitPayment runs the wizard's payment step, which doubles as the
// booking submission.
func (c *Client) SubmitPayment(ctx context.Context, sessionID string, req SubmitPaymentRequest) (*WizardSession, error) {
	var session WizardSession
	path := "/v1/wizard/" + url.PathEscape(sessionID) + "/payment"
	if err := c.do(ctx, http.MethodPost, path, req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Back steps a wizard session back one step.
func (c *Client) Back(ctx context.Context, sessionID string) (*WizardSession, error) {
	var session WizardSession
	path := "/v1/wizard/" + url.PathEscape(sessionID) + "/back"
	if err := c.do(ctx, http.MethodPost, path, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// errorBody is the uniform error shape returned by the API.
type errorBody struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request never produced a response. This is a different
		// failure class than a non-2xx status.
		return &APIError{Status: 0, Message: noResponseMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: messageFor(resp.StatusCode),
		}
		var parsed errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&parsed); decodeErr == nil {
			apiErr.ServerMessage = parsed.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// String representation used in logs; keeps the numeric status visible.
func (e *APIError) String() string {
	return e.Message + " [" + strconv.Itoa(e.Status) + "]"
}
