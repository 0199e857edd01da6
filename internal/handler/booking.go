package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/domain"
	"kamerways/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
	receiptService *service.ReceiptService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService, receiptService *service.ReceiptService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		receiptService: receiptService,
	}
}

// PassengerPayload carries passenger details over the wire.
type PassengerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	IDNumber string `json:"id_number"`
}

// CreateBookingRequest is the HTTP request body for creating a booking
// directly (without the wizard), used by the admin back-office.
type CreateBookingRequest struct {
	RouteID             string           `json:"route_id"`
	Passenger           PassengerPayload `json:"passenger"`
	SeatCount           int              `json:"seat_count"`
	PaymentMethod       string           `json:"payment_method"`
	MobileMoneyProvider string           `json:"momo_provider,omitempty"`
	MobileMoneyNumber   string           `json:"momo_number,omitempty"`
	UserID              string           `json:"user_id,omitempty"`
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID               string   `json:"id"`
	RouteID          string   `json:"route_id"`
	AgencyID         string   `json:"agency_id"`
	UserID           string   `json:"user_id,omitempty"`
	PassengerName    string   `json:"passenger_name"`
	PassengerEmail   string   `json:"passenger_email"`
	PassengerPhone   string   `json:"passenger_phone"`
	SeatCount        int      `json:"seat_count"`
	SeatLabels       []string `json:"seat_labels"`
	PaymentMethod    string   `json:"payment_method"`
	TotalAmount      int64    `json:"total_amount"`
	Status           string   `json:"status"`
	PaymentStatus    string   `json:"payment_status"`
	ConfirmationCode string   `json:"confirmation_code"`
	CreatedAt        string   `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		RouteID:          b.RouteID,
		AgencyID:         b.AgencyID,
		UserID:           b.UserID,
		PassengerName:    b.Passenger.Name,
		PassengerEmail:   b.Passenger.Email,
		PassengerPhone:   b.Passenger.Phone,
		SeatCount:        b.SeatCount,
		SeatLabels:       b.SeatLabels,
		PaymentMethod:    string(b.PaymentMethod),
		TotalAmount:      b.TotalAmount,
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		ConfirmationCode: b.ConfirmationCode,
		CreatedAt:        b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (p PassengerPayload) toDomain() domain.PassengerDetails {
	return domain.PassengerDetails{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Age:      p.Age,
		Gender:   domain.Gender(p.Gender),
		IDNumber: p.IDNumber,
	}
}

// Create handles POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	method, err := service.ValidatePaymentMethod(req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	provider, err := service.ValidateProvider(req.MobileMoneyProvider)
	if err != nil {
		respondError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		Draft: domain.BookingDraft{
			RouteID:             req.RouteID,
			Passenger:           req.Passenger.toDomain(),
			SeatCount:           req.SeatCount,
			PaymentMethod:       method,
			MobileMoneyProvider: provider,
			MobileMoneyNumber:   req.MobileMoneyNumber,
		},
		UserID: req.UserID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, toBookingResponse(booking))
}

// List handles GET /v1/bookings. Admins see everything; a user query
// narrows to one user's bookings.
func (h *BookingHandler) List(c *gin.Context) {
	var (
		bookings []*domain.Booking
		err      error
	)
	if userID := c.Query("user"); userID != "" {
		bookings, err = h.bookingService.ListUserBookings(c.Request.Context(), userID)
	} else {
		bookings, err = h.bookingService.ListBookings(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	respondJSON(c, http.StatusOK, response)
}

// Get handles GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// UpdateStatusRequest is the HTTP request body for an admin status update.
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// UpdateStatus handles PUT /v1/admin/bookings/:id
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c)
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), service.UpdateStatusRequest{
		BookingID:     c.Param("id"),
		Status:        domain.BookingStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// Delete handles DELETE /v1/admin/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"message": "booking deleted"})
}

// Receipt handles GET /v1/bookings/:id/receipt, returning the e-ticket PDF.
func (h *BookingHandler) Receipt(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, filename, err := h.receiptService.BuildTicket(c.Request.Context(), booking)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
