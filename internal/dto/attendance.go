package dto

// ── attendance requests ──

// ManualEventRequest injects a single clock event for one staff member.
// WorkDate and TimeOfDay are combined at the fixed local offset; the
// handler reprocesses that staff/day immediately after insertion.
type ManualEventRequest struct {
	StaffID       string  `json:"staff_id"       binding:"required,uuid"`
	EventKind     string  `json:"event_kind"     binding:"required,oneof=shift_start shift_end break_start break_end"`
	WorkDate      string  `json:"work_date"      binding:"required,datetime=2006-01-02"`
	TimeOfDay     string  `json:"time_of_day"    binding:"required,datetime=15:04"`
	BreakCategory *string `json:"break_category" binding:"omitempty,oneof=lunch morning afternoon"`
	Note          *string `json:"note"           binding:"omitempty,max=500"`
}

// QuickEntryRequest injects the same event for many staff members at once.
type QuickEntryRequest struct {
	StaffIDs      []string `json:"staff_ids"      binding:"required,min=1,dive,uuid"`
	EventKind     string   `json:"event_kind"     binding:"required,oneof=shift_start shift_end break_start break_end"`
	WorkDate      string   `json:"work_date"      binding:"required,datetime=2006-01-02"`
	TimeOfDay     string   `json:"time_of_day"    binding:"required,datetime=15:04"`
	BreakCategory *string  `json:"break_category" binding:"omitempty,oneof=lunch morning afternoon"`
	Note          *string  `json:"note"           binding:"omitempty,max=500"`
}

// ProcessRequest re-derives segments and summaries for a date: one staff
// member when StaffID is set, otherwise every active staff member.
type ProcessRequest struct {
	WorkDate string  `json:"work_date" binding:"required,datetime=2006-01-02"`
	StaffID  *string `json:"staff_id"  binding:"omitempty,uuid"`
}

// EventListRequest is the raw-event list query.
type EventListRequest struct {
	StaffID  string `form:"staff_id"  binding:"required,uuid"`
	WorkDate string `form:"work_date" binding:"required,datetime=2006-01-02"`
}

// SegmentListRequest is the segment list query.
type SegmentListRequest struct {
	StaffID  string `form:"staff_id"  binding:"required,uuid"`
	WorkDate string `form:"work_date" binding:"required,datetime=2006-01-02"`
}

// SummaryListRequest is the summary list query. Either a single date for
// all staff, or a staff member with a date range.
type SummaryListRequest struct {
	WorkDate string `form:"work_date" binding:"omitempty,datetime=2006-01-02"`
	StaffID  string `form:"staff_id"  binding:"omitempty,uuid"`
	From     string `form:"from"      binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to"        binding:"omitempty,datetime=2006-01-02"`
}

// ── attendance responses ──

// ClockEventResponse is one raw punch.
type ClockEventResponse struct {
	ID            string  `json:"id"`
	StaffID       string  `json:"staff_id"`
	EventTime     string  `json:"event_time"`
	EventKind     string  `json:"event_kind"`
	BreakCategory *string `json:"break_category,omitempty"`
	EntryMethod   string  `json:"entry_method"`
	Note          *string `json:"note,omitempty"`
}

// TimeSegmentResponse is one derived interval.
type TimeSegmentResponse struct {
	ID              string  `json:"id"`
	StaffID         string  `json:"staff_id"`
	WorkDate        string  `json:"work_date"`
	SegmentKind     string  `json:"segment_kind"`
	BreakCategory   *string `json:"break_category,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Open            bool    `json:"open"`
}

// DailySummaryResponse is one staff/day roll-up.
type DailySummaryResponse struct {
	ID                string  `json:"id"`
	StaffID           string  `json:"staff_id"`
	StaffName         string  `json:"staff_name,omitempty"`
	WorkDate          string  `json:"work_date"`
	FirstClockIn      *string `json:"first_clock_in,omitempty"`
	LastClockOut      *string `json:"last_clock_out,omitempty"`
	TotalWorkMinutes  int     `json:"total_work_minutes"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	LunchBreakMinutes int     `json:"lunch_break_minutes"`
	OtherBreakMinutes int     `json:"other_break_minutes"`
	RegularMinutes    int     `json:"regular_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"`
	DoubleTimeMinutes int     `json:"double_time_minutes"`
	HourlyRateCents   int64   `json:"hourly_rate_cents"`
	WageCents         int64   `json:"wage_cents"`
	IsComplete        bool    `json:"is_complete"`
}

// ProcessResponse reports a pipeline run.
type ProcessResponse struct {
	WorkDate       string   `json:"work_date"`
	StaffProcessed int      `json:"staff_processed"`
	StaffFailed    int      `json:"staff_failed"`
	FailedStaffIDs []string `json:"failed_staff_ids,omitempty"`
}

// QuickEntryResult is the per-staff outcome of a bulk quick entry.
type QuickEntryResult struct {
	StaffID string `json:"staff_id"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// QuickEntryResponse reports a bulk quick entry run.
type QuickEntryResponse struct {
	Total   int                `json:"total"`
	Success int                `json:"success"`
	Failed  int                `json:"failed"`
	Results []QuickEntryResult `json:"results"`
}
