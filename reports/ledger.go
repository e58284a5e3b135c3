package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhankarhotel/frontdesk-app/models"
)

// BuildCustomerLedger writes the customer ledger into a workbook, one
// row per customer with the billing fields the admin report shows.
func BuildCustomerLedger(customers []models.Customer) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Customers"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	headers := []string{
		"CustomerID", "Name", "RoomNo", "CheckInDate", "CheckOutDate",
		"StayDuration", "Subtotal", "GST", "TotalBill", "PaymentStatus",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, customer := range customers {
		row := i + 2
		values := []interface{}{
			customer.ID,
			customer.Name,
			customer.RoomNo,
			customer.CheckInDate,
			customer.CheckOutDate,
			customer.StayDuration,
			customer.Subtotal,
			customer.GST,
			customer.TotalBill,
			customer.PaymentStatus,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	return f, nil
}
