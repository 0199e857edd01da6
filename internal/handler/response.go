package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kamerways/internal/repository"
	"kamerways/internal/service"
	"kamerways/internal/wizard"
)

// ErrorResponse is the uniform error shape every endpoint returns.
// Clients branch only on the presence of "error".
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: true, Message: err.Error(), Status: code})
}

// respondBadRequest sends a 400 with a fixed message for unparseable bodies.
func respondBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: true, Message: "invalid request body", Status: http.StatusBadRequest})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository/wizard errors to HTTP
// status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrSessionExpired):
		return http.StatusNotFound

	// Credential errors - one generic unauthorized
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Malformed identifiers - Bad Request
	case errors.Is(err, service.ErrInvalidRouteID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidAgencyID),
		errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidProvider),
		errors.Is(err, service.ErrInvalidPrice):
		return http.StatusBadRequest

	// Field-level validation failures - Unprocessable Entity
	case errors.Is(err, wizard.ErrPassengerIncomplete),
		errors.Is(err, wizard.ErrInvalidAge),
		errors.Is(err, wizard.ErrNoSeatsSelected),
		errors.Is(err, wizard.ErrNotEnoughSeats),
		errors.Is(err, wizard.ErrInvalidPaymentMethod),
		errors.Is(err, wizard.ErrMobileMoneyIncomplete),
		errors.Is(err, service.ErrInvalidSeatCount):
		return http.StatusUnprocessableEntity

	// Conflict errors
	case errors.Is(err, wizard.ErrIllegalTransition),
		errors.Is(err, service.ErrSubmissionInFlight),
		errors.Is(err, service.ErrNotEnoughSeats):
		return http.StatusConflict

	// Payment declined
	case errors.Is(err, service.ErrPaymentDeclined),
		errors.Is(err, service.ErrReceiptNotReady):
		return http.StatusPaymentRequired

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
