package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techinvoice/internal/domain"
	"techinvoice/internal/service"
	"techinvoice/internal/xlsxexport"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
	exporter       *xlsxexport.Writer
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService, exporter *xlsxexport.Writer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, exporter: exporter}
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, invoice)
}

// List handles GET /api/v1/invoices?status=&offset=&limit=
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	status := domain.InvoiceStatus(c.Query("status"))

	invoices, total, err := h.invoiceService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetResolved(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid invoice id")
		return
	}

	var input service.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Export handles GET /api/v1/invoices/:id/export
func (h *InvoiceHandler) Export(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid invoice id")
		return
	}

	invoice, err := h.invoiceService.GetResolved(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := h.exporter.Build(invoice)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", xlsxexport.FileName(invoice)))
	c.Data(http.StatusOK, xlsxContentType, data)
}
