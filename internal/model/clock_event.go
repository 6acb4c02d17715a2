package model

import "time"

// Clock event kinds.
const (
	EventShiftStart = "shift_start"
	EventShiftEnd   = "shift_end"
	EventBreakStart = "break_start"
	EventBreakEnd   = "break_end"
)

// Break categories.
const (
	BreakLunch     = "lunch"
	BreakMorning   = "morning"
	BreakAfternoon = "afternoon"
)

// Entry methods.
const (
	EntryDevice = "device"
	EntryManual = "manual"
)

// ClockEvent is one raw punch (clock_events table).
// Events are immutable once created; correction flows delete and reinsert
// rather than edit in place. BreakCategory is only set on break events
// (enforced by a check constraint).
type ClockEvent struct {
	EventID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	StaffID       string    `gorm:"type:uuid;not null"                             json:"staff_id"`
	EventTime     time.Time `gorm:"not null"                                       json:"event_time"`
	EventKind     string    `gorm:"type:varchar(20);not null"                      json:"event_kind"`
	BreakCategory *string   `gorm:"type:varchar(20)"                               json:"break_category,omitempty"`
	EntryMethod   string    `gorm:"type:varchar(10);not null;default:'device'"     json:"entry_method"`
	Note          *string   `gorm:"type:text"                                      json:"note,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	CreatedBy     *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"staff,omitempty"`
}

// TableName sets the table name.
func (ClockEvent) TableName() string { return "clock_events" }

// IsStart reports whether the event opens an interval.
func (e *ClockEvent) IsStart() bool {
	return e.EventKind == EventShiftStart || e.EventKind == EventBreakStart
}
