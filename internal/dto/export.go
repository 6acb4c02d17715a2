package dto

// PayrollExportRequest selects the summary date range for the payroll
// workbook.
type PayrollExportRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to"   binding:"required,datetime=2006-01-02"`
}

// ShiftCalendarRequest selects one staff member's worked shifts for the
// iCalendar feed.
type ShiftCalendarRequest struct {
	StaffID string `form:"staff_id" binding:"required,uuid"`
	From    string `form:"from"     binding:"required,datetime=2006-01-02"`
	To      string `form:"to"       binding:"required,datetime=2006-01-02"`
}
