package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/Supriya-gouda/ZenBus-sub001/internal/models"
)

// BuildTicket renders a confirmed booking as an e-ticket PDF and returns
// the document bytes with a download filename.
func BuildTicket(detail *models.BookingDetail) ([]byte, string, error) {
	if detail.Status != models.BookingStatusConfirmed {
		return nil, "", fmt.Errorf("ticket is only available for confirmed bookings")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ZENBUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Reference : %s", detail.BookingReference),
		fmt.Sprintf("Route             : %s -> %s", detail.Origin, detail.Destination),
		fmt.Sprintf("Journey Date      : %s", detail.JourneyDate.Format("2006-01-02")),
		fmt.Sprintf("Departure         : %s", detail.DepartureTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Arrival           : %s", detail.ArrivalTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Bus               : %s (%s)", detail.BusNumber, detail.BusType),
		fmt.Sprintf("Seats             : %s", detail.SeatNumbers),
		fmt.Sprintf("Total Fare        : %.2f", detail.TotalFare),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(detail.Passengers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Passengers")
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 11)
		for _, p := range detail.Passengers {
			pdf.Cell(0, 6, fmt.Sprintf("Seat %d: %s (%d, %s)", p.SeatNumber, p.Name, p.Age, p.Gender))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket together with a valid ID at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render ticket: %w", err)
	}

	filename := fmt.Sprintf("TICKET_%s.pdf", detail.BookingReference)
	return buf.Bytes(), filename, nil
}
