package dto

// ── staff requests ──

// CreateStaffRequest registers an employee.
type CreateStaffRequest struct {
	FullName        string `json:"full_name"         binding:"required,min=2,max=100"`
	EmployeeNo      string `json:"employee_no"       binding:"required,min=1,max=30"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"required,min=0"`
}

// UpdateStaffRequest updates employee fields.
type UpdateStaffRequest struct {
	FullName        *string `json:"full_name"         binding:"omitempty,min=2,max=100"`
	EmployeeNo      *string `json:"employee_no"       binding:"omitempty,min=1,max=30"`
	HourlyRateCents *int64  `json:"hourly_rate_cents" binding:"omitempty,min=0"`
	IsActive        *bool   `json:"is_active"`
}

// StaffListRequest is the staff list query.
type StaffListRequest struct {
	PaginationRequest
	IncludeInactive bool `form:"include_inactive"`
}

// ── staff responses ──

// StaffResponse is the employee view.
type StaffResponse struct {
	ID              string `json:"id"`
	FullName        string `json:"full_name"`
	EmployeeNo      string `json:"employee_no"`
	HourlyRateCents int64  `json:"hourly_rate_cents"`
	IsActive        bool   `json:"is_active"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	Version         int    `json:"version"`
}
