package reports

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

const (
	hotelName    = "Jhankar Hotel"
	hotelAddress = "Riico industrial area, Reengus, Rajasthan, India"
	hotelContact = "Phone: +91 11 1234 5678 | Email: info@jhankar.example.com"
)

// BuildGuestFolio renders the guest folio / receipt for one customer:
// hotel header, guest info block, a line-item table of room charges and
// food orders, then the subtotal / GST / total footer. The caller owns
// the returned document and writes it out with Output.
func BuildGuestFolio(customer models.Customer, expenses store.Expenses) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, hotelName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, hotelAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, hotelContact, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "Guest Folio / Receipt", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Guest info block
	labels := []struct{ label, value string }{
		{"Guest Name:", customer.Name},
		{"Customer ID:", customer.ID},
		{"Room No:", customer.RoomNo},
		{"Stay Dates:", fmt.Sprintf("%s to %s (%d nights)",
			customer.CheckInDate, customer.CheckOutDate, customer.StayDuration)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range labels {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(36, 5, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, row.value, "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(36, 5, "Payment Status:", "", 0, "L", false, 0, "")
	if customer.PaymentStatus == models.PaymentComplete {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(217, 119, 6)
	}
	pdf.CellFormat(0, 5, customer.PaymentStatus, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// Line-item table
	colWidths := []float64{35, 105, 50}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(75, 85, 99)
	pdf.SetTextColor(255, 255, 255)
	headers := []string{"Date", "Description", "Amount (INR)"}
	for i, h := range headers {
		align := "L"
		if i == 2 {
			align = "R"
		}
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 10)
	writeRow := func(line store.ExpenseLine) {
		pdf.CellFormat(colWidths[0], 6, line.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, "Rs. "+utils.FormatINR(line.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	writeRow(expenses.RoomCharge)
	for _, line := range expenses.FoodOrders {
		writeRow(line)
	}

	// Totals footer
	pdf.SetFillColor(243, 244, 246)
	footer := func(label, amount string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(colWidths[0], 6, "", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[1], 6, label, "1", 0, "L", true, 0, "")
		pdf.CellFormat(colWidths[2], 6, amount, "1", 0, "R", true, 0, "")
		pdf.Ln(-1)
	}
	footer("Subtotal", "Rs. "+utils.FormatINR(customer.Subtotal), false)
	footer("GST (18%)", "Rs. "+utils.FormatINR(customer.GST), false)
	footer("Total Bill", "Rs. "+utils.FormatINR(customer.TotalBill), true)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Thank you for staying with us!", "", 1, "C", false, 0, "")

	return pdf
}
