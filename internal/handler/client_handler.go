package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techinvoice/internal/service"
)

// ClientHandler handles client registry endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create handles POST /api/v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, client)
}

// List handles GET /api/v1/clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, clients)
}

// Get handles GET /api/v1/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid client id")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, client)
}

// Search handles GET /api/v1/clients/search?q=...
func (h *ClientHandler) Search(c *gin.Context) {
	clients, err := h.clientService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, clients)
}
