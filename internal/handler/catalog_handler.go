package handler

import (
	"github.com/gin-gonic/gin"

	"techinvoice/internal/billing"
)

// CatalogHandler serves the predefined service catalog used to prefill
// invoice line items.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /api/v1/catalog
func (h *CatalogHandler) List(c *gin.Context) {
	RespondOK(c, billing.Offerings())
}
