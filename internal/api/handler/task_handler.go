package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/service"
	appErrors "opsboard/backend/pkg/errors"
	"opsboard/backend/pkg/response"
)

// TaskHandler handles the shared task list.
type TaskHandler struct {
	taskSvc service.TaskService
}

// NewTaskHandler creates the TaskHandler.
func NewTaskHandler(taskSvc service.TaskService) *TaskHandler {
	return &TaskHandler{taskSvc: taskSvc}
}

// Create opens a task.
// POST /api/v1/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	task, err := h.taskSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 13002, "staff member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, task)
}

// Get returns one task.
// GET /api/v1/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	task, err := h.taskSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, 17001, "task not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, task)
}

// List returns tasks paginated.
// GET /api/v1/tasks
func (h *TaskHandler) List(c *gin.Context) {
	var req dto.TaskListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	tasks, total, err := h.taskSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, tasks, total, req.Page, req.PageSize)
}

// Update updates task fields.
// PATCH /api/v1/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	task, err := h.taskSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			response.NotFound(c, 17001, "task not found")
		case errors.Is(err, service.ErrStaffNotFound):
			response.NotFound(c, 13002, "staff member not found")
		case errors.Is(err, appErrors.ErrOptimisticLock):
			response.Conflict(c, 17002, "record was modified concurrently, reload and retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, task)
}

// Delete soft-deletes a task.
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.taskSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			response.NotFound(c, 17001, "task not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
