package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/response"
)

// ReportHandler serves the purchase summary and spreadsheet report
type ReportHandler struct {
	summaryService *service.SummaryService
}

// NewReportHandler creates a new report handler
func NewReportHandler(summaryService *service.SummaryService) *ReportHandler {
	return &ReportHandler{summaryService: summaryService}
}

// Summary handles the purchase summary groupings
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.summaryService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Summary retrieved successfully", summary)
}

// PurchaseXLSX handles the purchase spreadsheet download
func (h *ReportHandler) PurchaseXLSX(c *gin.Context) {
	data, err := h.summaryService.PurchaseReportXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="purchase-report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
