package model

import "time"

// Segment kinds.
const (
	SegmentWork  = "work"
	SegmentBreak = "break"
)

// TimeSegment is a derived work or break interval for one staff member on
// one local work date (time_segments table). Segments are deleted and
// regenerated wholesale every time the segmentation engine runs for a
// staff/day; they are never edited directly.
//
// EndTime and DurationMinutes are nil on an open segment (no matching end
// event yet). StartEventID/EndEventID are nil on the synthetic halves of a
// midnight split.
type TimeSegment struct {
	SegmentID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"segment_id"`
	StaffID         string     `gorm:"type:uuid;not null"                             json:"staff_id"`
	WorkDate        time.Time  `gorm:"type:date;not null"                             json:"work_date"`
	SegmentKind     string     `gorm:"type:varchar(10);not null"                      json:"segment_kind"`
	BreakCategory   *string    `gorm:"type:varchar(20)"                               json:"break_category,omitempty"`
	StartTime       time.Time  `gorm:"not null"                                       json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	StartEventID    *string    `gorm:"type:uuid"                          json:"start_event_id,omitempty"`
	EndEventID      *string    `gorm:"type:uuid"                          json:"end_event_id,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the table name.
func (TimeSegment) TableName() string { return "time_segments" }

// IsOpen reports whether the segment has no end yet.
func (s *TimeSegment) IsOpen() bool { return s.EndTime == nil }
