package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/service"
	"opsboard/backend/pkg/response"
)

// AttendanceHandler handles clock events, segments and summaries.
type AttendanceHandler struct {
	attSvc service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc}
}

// RecordEvent records a single manual punch and reprocesses the day.
// POST /api/v1/attendance/events
func (h *AttendanceHandler) RecordEvent(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ManualEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	event, err := h.attSvc.RecordManualEvent(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStaffNotFound):
			response.NotFound(c, 13002, "staff member not found")
		case errors.Is(err, service.ErrBreakCategoryKind):
			response.BadRequest(c, 14001, "break category is only valid on break events")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, event)
}

// DeleteEvent removes a punch and reprocesses the day it fell on.
// DELETE /api/v1/attendance/events/:id
func (h *AttendanceHandler) DeleteEvent(c *gin.Context) {
	if err := h.attSvc.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, 14002, "clock event not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// QuickEntry records the same punch for many staff members.
// POST /api/v1/attendance/quick-entry
func (h *AttendanceHandler) QuickEntry(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.QuickEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.attSvc.QuickEntry(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrBreakCategoryKind) {
			response.BadRequest(c, 14001, "break category is only valid on break events")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Process re-derives segments and summaries for a date.
// POST /api/v1/attendance/process
func (h *AttendanceHandler) Process(c *gin.Context) {
	var req dto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	result, err := h.attSvc.Process(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.NotFound(c, 13002, "staff member not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListEvents returns one staff member's raw punches for a date.
// GET /api/v1/attendance/events
func (h *AttendanceHandler) ListEvents(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	events, err := h.attSvc.ListEvents(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, events)
}

// ListSegments returns one staff member's derived segments for a date.
// GET /api/v1/attendance/segments
func (h *AttendanceHandler) ListSegments(c *gin.Context) {
	var req dto.SegmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	segments, err := h.attSvc.ListSegments(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, segments)
}

// ListSummaries returns daily summaries by date or by staff range.
// GET /api/v1/attendance/summaries
func (h *AttendanceHandler) ListSummaries(c *gin.Context) {
	var req dto.SummaryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	summaries, err := h.attSvc.ListSummaries(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSummaryQueryParams) {
			response.BadRequest(c, 14003, "provide either work_date, or staff_id with from/to")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, summaries)
}
