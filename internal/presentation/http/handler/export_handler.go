package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/response"
)

// ExportHandler serves the export invoice PDF
type ExportHandler struct {
	voucherService *service.VoucherService
}

// NewExportHandler creates a new export handler
func NewExportHandler(voucherService *service.VoucherService) *ExportHandler {
	return &ExportHandler{voucherService: voucherService}
}

// InvoicePDF renders the export invoice from the payload
func (h *ExportHandler) InvoicePDF(c *gin.Context) {
	var req request.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.ToInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, filename, err := h.voucherService.ExportPDF(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	servePDF(c, pdf, filename, "attachment")
}
