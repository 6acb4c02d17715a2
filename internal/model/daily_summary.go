package model

import "time"

// DailySummary aggregates one staff member's segments for one work date in the
// daily_summaries table. One row per (staff_id, work_date), enforced by a
// unique constraint and upserted on conflict.
//
// HourlyRateCents is the rate the wage was computed with, snapshotted at
// aggregation time so later rate edits do not silently rewrite history.
type DailySummary struct {
	SummaryID         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"summary_id"`
	StaffID           string     `gorm:"type:uuid;not null;uniqueIndex:uq_daily_summaries_staff_date" json:"staff_id"`
	WorkDate          time.Time  `gorm:"type:date;not null;uniqueIndex:uq_daily_summaries_staff_date" json:"work_date"`
	FirstClockIn      *time.Time `json:"first_clock_in,omitempty"`
	LastClockOut      *time.Time `json:"last_clock_out,omitempty"`
	TotalWorkMinutes  int        `gorm:"not null;default:0" json:"total_work_minutes"`
	TotalBreakMinutes int        `gorm:"not null;default:0" json:"total_break_minutes"`
	LunchBreakMinutes int        `gorm:"not null;default:0" json:"lunch_break_minutes"`
	OtherBreakMinutes int        `gorm:"not null;default:0" json:"other_break_minutes"`
	RegularMinutes    int        `gorm:"not null;default:0" json:"regular_minutes"`
	OvertimeMinutes   int        `gorm:"not null;default:0" json:"overtime_minutes"`
	DoubleTimeMinutes int        `gorm:"not null;default:0" json:"double_time_minutes"`
	HourlyRateCents   int64      `gorm:"not null;default:0" json:"hourly_rate_cents"`
	WageCents         int64      `gorm:"not null;default:0" json:"wage_cents"`
	IsComplete        bool       `gorm:"not null;default:false" json:"is_complete"`
	CreatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"staff,omitempty"`
}

// TableName sets the table name.
func (DailySummary) TableName() string { return "daily_summaries" }
