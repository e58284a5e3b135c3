package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jhankarhotel/frontdesk-app/reports"
	"github.com/jhankarhotel/frontdesk-app/store"
	"github.com/jhankarhotel/frontdesk-app/utils"
)

type ReportController struct {
	Store *store.HotelStore
}

func NewReportController(st *store.HotelStore) *ReportController {
	return &ReportController{Store: st}
}

// DownloadCustomerLedger streams the customer ledger as a workbook.
func (rc *ReportController) DownloadCustomerLedger(c *gin.Context) {
	customers, err := rc.Store.Customers()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	f, err := reports.BuildCustomerLedger(customers)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="customer-report.xlsx"`)
	if _, err := f.WriteTo(c.Writer); err != nil {
		utils.ErrorLogger.Printf("writing ledger workbook: %v", err)
	}
}

// DownloadGuestFolio streams one customer's folio/receipt as a PDF.
func (rc *ReportController) DownloadGuestFolio(c *gin.Context) {
	customerID := c.Param("customer_id")

	customer, err := rc.Store.CustomerByID(customerID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer not found"))
		return
	}

	expenses, err := rc.Store.CustomerExpenses(customer.RoomNo)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pdf := reports.BuildGuestFolio(customer, expenses)

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, customer.ID))
	if err := pdf.Output(c.Writer); err != nil {
		utils.ErrorLogger.Printf("writing guest folio: %v", err)
	}
}
