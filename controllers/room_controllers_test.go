package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoomStats(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/rooms/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, float64(30), data["totalRooms"])
	assert.Equal(t, float64(26), data["availableRooms"])
	assert.Equal(t, float64(4), data["bookedRooms"])
}

func TestCreateRoom(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/rooms", map[string]interface{}{
		"roomNo": "401",
		"type":   "Single",
		"price":  2500,
		"image":  "https://example.com/single.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, float64(31), data["id"])
	assert.Equal(t, "Available", data["availability"])
}

func TestCreateRoomRequiresImage(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/rooms", map[string]interface{}{
		"roomNo": "401",
		"type":   "Single",
		"price":  2500,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRoomRejectsUnknownType(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "POST", "/rooms", map[string]interface{}{
		"roomNo": "401",
		"type":   "Penthouse",
		"price":  9000,
		"image":  "https://example.com/penthouse.png",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRoomAvailability(t *testing.T) {
	r, st := setupTestRouter(t)

	w := doJSON(t, r, "PATCH", "/rooms/1/availability", map[string]interface{}{
		"availability": "Maintenance",
	})
	require.Equal(t, http.StatusOK, w.Code)

	room, err := st.RoomByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", room.Availability)
}

func TestUpdateRoomAvailabilityRejectsUnknownState(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "PATCH", "/rooms/1/availability", map[string]interface{}{
		"availability": "Closed",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomTypes(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/room-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Single Bed Room")
	assert.Contains(t, w.Body.String(), "Dormitory Bed")
}
