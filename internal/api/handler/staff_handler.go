package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/service"
	appErrors "opsboard/backend/pkg/errors"
	"opsboard/backend/pkg/response"
)

// StaffHandler handles employee management.
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler creates the StaffHandler.
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// Create registers an employee.
// POST /api/v1/staff
func (h *StaffHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNoTaken) {
			response.Conflict(c, 13001, "employee number is already in use")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, staff)
}

// Get returns one employee.
// GET /api/v1/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staffSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 13002, "staff member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, staff)
}

// List returns employees paginated.
// GET /api/v1/staff
func (h *StaffHandler) List(c *gin.Context) {
	var req dto.StaffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	staff, total, err := h.staffSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, staff, total, req.Page, req.PageSize)
}

// Update updates employee fields.
// PATCH /api/v1/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			response.NotFound(c, 13002, "staff member not found")
		case errors.Is(err, service.ErrEmployeeNoTaken):
			response.Conflict(c, 13001, "employee number is already in use")
		case errors.Is(err, appErrors.ErrOptimisticLock):
			response.Conflict(c, 13003, "record was modified concurrently, reload and retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, staff)
}

// Delete soft-deletes an employee.
// DELETE /api/v1/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.staffSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 13002, "staff member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
