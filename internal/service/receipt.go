package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"kamerways/internal/domain"
	"kamerways/internal/repository"
)

// ReceiptService renders PDF tickets for paid bookings.
type ReceiptService struct {
	routeRepo           repository.RouteRepository
	notificationService *NotificationService
}

// NewReceiptService creates a new ReceiptService.
func NewReceiptService(routeRepo repository.RouteRepository, notificationService *NotificationService) *ReceiptService {
	return &ReceiptService{
		routeRepo:           routeRepo,
		notificationService: notificationService,
	}
}

// BuildTicket renders the e-ticket PDF for a booking. Only paid
// bookings have a ticket.
func (s *ReceiptService) BuildTicket(ctx context.Context, booking *domain.Booking) ([]byte, string, error) {
	if booking.PaymentStatus != domain.PaymentStatusPaid {
		return nil, "", ErrReceiptNotReady
	}

	route, err := s.routeRepo.GetByID(ctx, booking.RouteID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("KamerWays E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "KAMERWAYS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger      : %s", booking.Passenger.Name),
		fmt.Sprintf("Phone          : %s", booking.Passenger.Phone),
		fmt.Sprintf("Route          : %s -> %s", route.Origin, route.Destination),
		fmt.Sprintf("Date / Time    : %s %s", route.Date, route.DepartureTime),
		fmt.Sprintf("Bus            : %s", route.BusType),
		fmt.Sprintf("Seats          : %s", strings.Join(booking.SeatLabels, ", ")),
		fmt.Sprintf("Total paid     : %d FCFA", booking.TotalAmount),
		fmt.Sprintf("Payment        : %s", booking.PaymentMethod),
		fmt.Sprintf("Confirmation   : %s", booking.ConfirmationCode),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket at boarding. Valid for the listed seats only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	if s.notificationService != nil {
		_ = s.notificationService.record(ctx, booking.UserID, domain.NotificationReceiptReady,
			"Ticket ready", fmt.Sprintf("Your e-ticket for booking %s is ready to download.", booking.ID))
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", booking.ConfirmationCode)
	return buf.Bytes(), filename, nil
}
