package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodMenuCRUD(t *testing.T) {
	r, _ := setupTestRouter(t)

	// Create
	w := doJSON(t, r, "POST", "/menu/breakfast/items", map[string]interface{}{
		"name":  "Masala Dosa",
		"desc":  "Crisp dosa with potato filling",
		"price": 400,
		"img":   "https://example.com/dosa.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	itemID, ok := data["id"].(string)
	require.True(t, ok)

	// Update
	w = doJSON(t, r, "PATCH", "/menu/breakfast/items/"+itemID, map[string]interface{}{
		"name":  "Masala Dosa",
		"desc":  "Crisp dosa with spiced potato filling",
		"price": 425,
		"img":   "https://example.com/dosa.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Delete
	w = doJSON(t, r, "DELETE", "/menu/breakfast/items/"+itemID, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateFoodItemUnknownCategory(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/menu/brunch/items", map[string]interface{}{
		"name":  "Mimosa",
		"price": 300,
		"img":   "https://example.com/mimosa.png",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateFoodItemRequiresFields(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/menu/breakfast/items", map[string]interface{}{
		"name": "Masala Dosa",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUnknownFoodItemIsNoOp(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "DELETE", "/menu/breakfast/items/breakfast-nope", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetFoodMenu(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "Breakfast")
	assert.Contains(t, body, "Lunch")
	assert.Contains(t, body, "Dinner")
	assert.Contains(t, body, "Continental Breakfast")
}
