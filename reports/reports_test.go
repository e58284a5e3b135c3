package reports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhankarhotel/frontdesk-app/models"
	"github.com/jhankarhotel/frontdesk-app/store"
)

func sampleCustomer() models.Customer {
	return models.Customer{
		ID:            "CUST-001",
		Name:          "John Doe",
		RoomNo:        "102",
		CheckInDate:   "2025-10-10",
		CheckOutDate:  "2025-10-15",
		StayDuration:  5,
		RoomCharges:   12500,
		FoodCharges:   1500,
		Subtotal:      14000,
		GST:           2520,
		TotalBill:     16520,
		PaymentStatus: models.PaymentComplete,
	}
}

func TestBuildGuestFolio(t *testing.T) {
	expenses := store.Expenses{
		RoomCharge: store.ExpenseLine{
			Date:        "2025-10-10",
			Description: "Room Charges (5 nights @ Rs. 2,500/night)",
			Amount:      12500,
		},
		FoodOrders: []store.ExpenseLine{
			{Date: "2025-10-15", Description: "Food Order #1 (Continental Breakfast)", Amount: 900, Quantity: 2},
			{Date: "2025-10-16", Description: "Food Order #5 (Vegetarian Thali)", Amount: 600, Quantity: 1},
		},
	}

	pdf := BuildGuestFolio(sampleCustomer(), expenses)
	require.NoError(t, pdf.Error())

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Greater(t, buf.Len(), 500)
}

func TestBuildCustomerLedger(t *testing.T) {
	f, err := BuildCustomerLedger([]models.Customer{sampleCustomer()})
	require.NoError(t, err)

	header, err := f.GetCellValue("Customers", "A1")
	require.NoError(t, err)
	assert.Equal(t, "CustomerID", header)

	id, err := f.GetCellValue("Customers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", id)

	status, err := f.GetCellValue("Customers", "J2")
	require.NoError(t, err)
	assert.Equal(t, "Complete", status)

	var buf bytes.Buffer
	_, err = f.WriteTo(&buf)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "PK"))
}

func TestBuildCustomerLedgerEmpty(t *testing.T) {
	f, err := BuildCustomerLedger(nil)
	require.NoError(t, err)

	header, err := f.GetCellValue("Customers", "J1")
	require.NoError(t, err)
	assert.Equal(t, "PaymentStatus", header)
}
