package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
	"techinvoice/internal/handler"
	"techinvoice/internal/service"
	"techinvoice/mocks"
)

func TestClientHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)

	client := &domain.Client{Name: "Acme Corp", Email: "billing@acme.test"}
	mockSvc.On("Create", mock.Anything, service.CreateClientInput{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	}).Return(client, nil)

	w, c := postJSON(t, "/api/v1/clients", map[string]string{
		"name":  "Acme Corp",
		"email": "billing@acme.test",
	})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Create_MissingEmail(t *testing.T) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)

	w, c := postJSON(t, "/api/v1/clients", map[string]string{
		"name": "Acme Corp",
	})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientHandler_Search_PassesQuery(t *testing.T) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)

	matches := []domain.Client{{Name: "Acme Corp"}, {Name: "Acme GmbH"}}
	mockSvc.On("Search", mock.Anything, "acme").Return(matches, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/clients/search?q=acme", nil)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Search_EmptyQueryIsOK(t *testing.T) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)

	mockSvc.On("Search", mock.Anything, "").Return([]domain.Client{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/clients/search", nil)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
