package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"techinvoice/internal/service"
)

// TaskHandler handles task list endpoints.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// Create handles POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var input service.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, task)
}

// List handles GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tasks)
}

// Update handles PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid task id")
		return
	}

	var input service.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.taskService.Update(c.Request.Context(), id, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "task updated"})
}

// Delete handles DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid task id")
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "task deleted"})
}

// Sync handles POST /api/v1/tasks/sync
func (h *TaskHandler) Sync(c *gin.Context) {
	result, err := h.taskService.Sync(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
