package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderUpdatesCustomerBill(t *testing.T) {
	r, st := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"roomNo":      "104",
		"foodItems":   "English Breakfast",
		"quantity":    1,
		"totalAmount": 550,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "104", data["roomNo"])
	assert.NotEmpty(t, data["date"])

	// Seeded Jane Smith on 104: 12500 room + 600 seeded order + 550 new.
	customer, err := st.CustomerByID("CUST-002")
	require.NoError(t, err)
	assert.Equal(t, 1150.0, customer.FoodCharges)
	assert.Equal(t, 13650.0, customer.Subtotal)
	assert.Equal(t, 2457.0, customer.GST)
	assert.Equal(t, 16107.0, customer.TotalBill)
}

func TestCreateOrderRequiresAmount(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/orders", map[string]interface{}{
		"roomNo":    "104",
		"foodItems": "English Breakfast",
		"quantity":  1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	r, st := setupTestRouter(t)

	w := doJSON(t, r, "DELETE", "/orders/2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Order 2 was the only order against room 104.
	customer, err := st.CustomerByID("CUST-002")
	require.NoError(t, err)
	assert.Equal(t, 0.0, customer.FoodCharges)
	assert.Equal(t, 12500.0, customer.Subtotal)
}

func TestQuoteOrderEndpoint(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/orders/quote", map[string]interface{}{
		"lines": []map[string]interface{}{
			{"itemId": "dinner-bbq", "quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, 2400.0, data["foodTotal"])
	assert.Equal(t, 120.0, data["serviceCharge"])
	assert.Equal(t, 2520.0, data["grandTotal"])
}
