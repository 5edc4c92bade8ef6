package handlers

import (
	"net/http"

	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the aggregate totals reports
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// TotalsByPerson reports income, expenses and balance per person
// @Summary Totals by person
// @Tags Reports
// @Produce json
// @Success 200 {object} object{message=string,data=models.Report[models.PersonTotals]}
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /reports/persons [get]
func (h *ReportHandler) TotalsByPerson(c echo.Context) error {
	return SendResult(c, http.StatusOK, h.reportService.GetTotalsByPerson(c.Request().Context()))
}

// TotalsByCategory reports income, expenses and balance per category
// @Summary Totals by category
// @Tags Reports
// @Produce json
// @Success 200 {object} object{message=string,data=models.Report[models.CategoryTotals]}
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /reports/categories [get]
func (h *ReportHandler) TotalsByCategory(c echo.Context) error {
	return SendResult(c, http.StatusOK, h.reportService.GetTotalsByCategory(c.Request().Context()))
}
