package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadGuestFolio(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/reports/folio/CUST-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	assert.Greater(t, w.Body.Len(), 500)
}

func TestDownloadGuestFolioUnknownCustomer(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/reports/folio/CUST-nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadCustomerLedger(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, "GET", "/reports/customers.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Disposition"), "customer-report.xlsx")
	// XLSX files are zip archives.
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
}
