package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/service"
	"opsboard/backend/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar"
)

// ExportHandler handles file downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPayroll downloads the payroll workbook for a date range.
// GET /api/v1/export/payroll?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ExportHandler) ExportPayroll(c *gin.Context) {
	var req dto.PayrollExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	buf, filename, err := h.exportSvc.ExportPayroll(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, xlsxContentType, filename, buf.Bytes())
}

// ExportShiftCalendar downloads one staff member's shift feed.
// GET /api/v1/export/shifts.ics?staff_id=xxx&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ExportHandler) ExportShiftCalendar(c *gin.Context) {
	var req dto.ShiftCalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	buf, filename, err := h.exportSvc.ExportShiftCalendar(c.Request.Context(), &req)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeDownload(c, icsContentType, filename, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmptyRange):
		response.NotFound(c, 16001, "no summaries in the requested range")
	case errors.Is(err, service.ErrExportRangeInvalid):
		response.BadRequest(c, 16002, "export range start is after end")
	case errors.Is(err, service.ErrStaffNotFound):
		response.NotFound(c, 13002, "staff member not found")
	default:
		response.InternalError(c)
	}
}

func writeDownload(c *gin.Context, contentType, filename string, body []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, body)
}
