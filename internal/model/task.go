package model

import "time"

// Task statuses.
const (
	TaskOpen       = "open"
	TaskInProgress = "in_progress"
	TaskDone       = "done"
	TaskCancelled  = "cancelled"
)

// Task is a tracked to-do item (tasks table).
type Task struct {
	TaskID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	Title      string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Detail     *string    `gorm:"type:text"                                      json:"detail,omitempty"`
	Status     string     `gorm:"type:varchar(20);not null;default:'open'"       json:"status"`
	DueDate    *time.Time `gorm:"type:date"                                      json:"due_date,omitempty"`
	AssigneeID *string    `gorm:"type:uuid"                                      json:"assignee_id,omitempty"`
	VersionedModel

	Assignee *Staff `gorm:"foreignKey:AssigneeID;references:StaffID" json:"assignee,omitempty"`
}

// TableName sets the table name.
func (Task) TableName() string { return "tasks" }
