package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suriya388/backoffice-api/internal/application/service"
	"github.com/suriya388/backoffice-api/internal/domain/enum"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/request"
	"github.com/suriya388/backoffice-api/internal/presentation/http/dto/response"
)

// RecordHandler serves the CRUD and PDF endpoints of one record kind. One
// instance is registered per kind; the kind never comes from the URL payload,
// so a bill ID can never be addressed through the sell-bill routes.
type RecordHandler struct {
	kind           enum.RecordKind
	recordService  *service.RecordService
	voucherService *service.VoucherService
}

// NewRecordHandler creates a record handler bound to one kind
func NewRecordHandler(kind enum.RecordKind, recordService *service.RecordService, voucherService *service.VoucherService) *RecordHandler {
	return &RecordHandler{
		kind:           kind,
		recordService:  recordService,
		voucherService: voucherService,
	}
}

// List handles listing records of this kind, newest first
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.recordService.List(c.Request.Context(), h.kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Records retrieved successfully", records)
}

// Create handles creating a record
func (h *RecordHandler) Create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), h.kind, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Record created successfully", record)
}

// Get handles fetching a single record
func (h *RecordHandler) Get(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), h.kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Record retrieved successfully", record)
}

// Update handles replacing a record's content
func (h *RecordHandler) Update(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), h.kind, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Record updated successfully", record)
}

// Delete handles deleting a record and its children
func (h *RecordHandler) Delete(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), h.kind, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetPDF renders a stored record's voucher inline
func (h *RecordHandler) GetPDF(c *gin.Context) {
	id, ok := h.recordID(c)
	if !ok {
		return
	}

	pdf, filename, err := h.voucherService.RecordPDF(c.Request.Context(), h.kind, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	servePDF(c, pdf, filename, "inline")
}

// AdHocPDF renders a voucher straight from the payload without storing it
func (h *RecordHandler) AdHocPDF(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	pdf, filename, err := h.voucherService.AdHocPDF(c.Request.Context(), h.kind, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	servePDF(c, pdf, filename, "attachment")
}

func (h *RecordHandler) bindInput(c *gin.Context) (*service.RecordInput, bool) {
	var req request.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return nil, false
	}

	input, err := req.ToInput(h.kind)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return input, true
}

func (h *RecordHandler) recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid record ID")
		return uuid.Nil, false
	}
	return id, true
}

// servePDF writes PDF bytes with an explicit length so clients show a
// download progress bar instead of a chunked stream.
func servePDF(c *gin.Context, pdf []byte, filename, disposition string) {
	c.Header("Content-Disposition", disposition+`; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
