package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
	"techinvoice/internal/handler"
	"techinvoice/internal/service"
	"techinvoice/mocks"
)

func TestTaskHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockTaskService)
	h := handler.NewTaskHandler(mockSvc)

	task := &domain.Task{ID: uuid.New(), Title: "Follow up", Source: domain.TaskSourceManual}
	mockSvc.On("Create", mock.Anything, service.CreateTaskInput{Title: "Follow up"}).Return(task, nil)

	w, c := postJSON(t, "/api/v1/tasks", map[string]string{"title": "Follow up"})

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	mockSvc := new(mocks.MockTaskService)
	h := handler.NewTaskHandler(mockSvc)

	w, c := postJSON(t, "/api/v1/tasks", map[string]string{})

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskHandler_Update_Completed(t *testing.T) {
	mockSvc := new(mocks.MockTaskService)
	h := handler.NewTaskHandler(mockSvc)

	id := uuid.New()
	completed := true
	mockSvc.On("Update", mock.Anything, id, service.UpdateTaskInput{Completed: &completed}).Return(nil)

	w, c := postJSON(t, "/api/v1/tasks/"+id.String(), map[string]bool{"completed": true})
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestTaskHandler_Sync_ReportsCounts(t *testing.T) {
	mockSvc := new(mocks.MockTaskService)
	h := handler.NewTaskHandler(mockSvc)

	mockSvc.On("Sync", mock.Anything).Return(&service.SyncResult{Fetched: 3, Imported: 2}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tasks/sync", nil)

	h.Sync(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["fetched"])
	assert.Equal(t, float64(2), data["imported"])
}

func TestTaskHandler_Sync_NoToken(t *testing.T) {
	mockSvc := new(mocks.MockTaskService)
	h := handler.NewTaskHandler(mockSvc)

	mockSvc.On("Sync", mock.Anything).Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/tasks/sync", nil)

	h.Sync(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
