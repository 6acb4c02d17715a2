package model

// Staff is an employee on the clock, stored in the staff table.
// HourlyRateCents is the current wage rate; each daily summary snapshots
// the rate it was computed with.
type Staff struct {
	StaffID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"staff_id"`
	FullName        string `gorm:"type:varchar(100);not null"                     json:"full_name"`
	EmployeeNo      string `gorm:"type:varchar(30);not null"                      json:"employee_no"`
	HourlyRateCents int64  `gorm:"not null;default:0"                             json:"hourly_rate_cents"`
	IsActive        bool   `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

// TableName sets the table name.
func (Staff) TableName() string { return "staff" }
