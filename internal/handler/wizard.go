package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
	"kamerways/internal/wizard"
)

// WizardHandler handles HTTP requests for booking wizard sessions.
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new WizardHandler.
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// StartWizardRequest is the HTTP request body for opening a session.
type StartWizardRequest struct {
	RouteID string `json:"route_id"`
}

// WizardResponse is the HTTP representation of a wizard session.
type WizardResponse struct {
	ID         string           `json:"id"`
	Step       string           `json:"step"`
	RouteID    string           `json:"route_id"`
	Passenger  PassengerPayload `json:"passenger"`
	SeatCount  int              `json:"seat_count"`
	SeatLabels []string         `json:"seat_labels"`
	Payment    string           `json:"payment_method,omitempty"`
	Outcome    string           `json:"outcome,omitempty"`
	Message    string           `json:"message,omitempty"`
	Total      int64            `json:"total,omitempty"`
	BookingID  string           `json:"booking_id,omitempty"`
}

func toWizardResponse(s *wizard.Session) WizardResponse {
	return WizardResponse{
		ID:      s.ID,
		Step:    string(s.Step),
		RouteID: s.RouteID,
		Passenger: PassengerPayload{
			Name:     s.Draft.Passenger.Name,
			Email:    s.Draft.Passenger.Email,
			Phone:    s.Draft.Passenger.Phone,
			Age:      s.Draft.Passenger.Age,
			Gender:   string(s.Draft.Passenger.Gender),
			IDNumber: s.Draft.Passenger.IDNumber,
		},
		SeatCount:  s.Draft.SeatCount,
		SeatLabels: s.Draft.SeatLabels,
		Payment:    string(s.Draft.PaymentMethod),
		Outcome:    string(s.Outcome),
		Message:    s.Message,
		Total:      s.Total,
		BookingID:  s.BookingID,
	}
}

// Start handles POST /v1/wizard
func (h *WizardHandler) Start(c *gin.Context) {
	var req StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.wizardService.Start(c.Request.Context(), req.RouteID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toWizardResponse(session))
}

// Get handles GET /v1/wizard/:id
func (h *WizardHandler) Get(c *gin.Context) {
	session, err := h.wizardService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}

// SubmitPassenger handles POST /v1/wizard/:id/passenger
func (h *WizardHandler) SubmitPassenger(c *gin.Context) {
	var req PassengerPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.wizardService.SubmitPassenger(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}

// ConfirmRoute handles POST /v1/wizard/:id/confirm-route
func (h *WizardHandler) ConfirmRoute(c *gin.Context) {
	session, err := h.wizardService.ConfirmRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}

// SelectSeatsRequest is the HTTP request body for seat selection.
type SelectSeatsRequest struct {
	SeatCount int `json:"seat_count"`
}

// SelectSeats handles POST /v1/wizard/:id/seats
func (h *WizardHandler) SelectSeats(c *gin.Context) {
	var req SelectSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.wizardService.SelectSeats(c.Request.Context(), c.Param("id"), req.SeatCount)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}

// SubmitPaymentRequest is the HTTP request body for the payment step,
// which doubles as the submission trigger.
type SubmitPaymentRequest struct {
	PaymentMethod       string `json:"payment_method"`
	MobileMoneyProvider string `json:"momo_provider,omitempty"`
	MobileMoneyNumber   string `json:"momo_number,omitempty"`
	UserID              string `json:"user_id,omitempty"`
}

// Submit handles POST /v1/wizard/:id/payment. The response is the
// terminal confirmation state: success with the total paid, or failure
// with the server's message. Validation failures keep the session on
// the payment step and return the error shape instead.
func (h *WizardHandler) Submit(c *gin.Context) {
	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	session, err := h.wizardService.Submit(c.Request.Context(), service.SubmitRequest{
		SessionID: c.Param("id"),
		Method:    domain.PaymentMethod(req.PaymentMethod),
		Provider:  domain.MobileMoneyProvider(req.MobileMoneyProvider),
		Number:    req.MobileMoneyNumber,
		UserID:    req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}

// Back handles POST /v1/wizard/:id/back
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.wizardService.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toWizardResponse(session))
}
