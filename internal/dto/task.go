package dto

// ── task requests ──

// CreateTaskRequest opens a task.
type CreateTaskRequest struct {
	Title      string  `json:"title"       binding:"required,min=1,max=200"`
	Detail     *string `json:"detail"      binding:"omitempty,max=5000"`
	DueDate    *string `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	AssigneeID *string `json:"assignee_id" binding:"omitempty,uuid"`
}

// UpdateTaskRequest updates task fields.
type UpdateTaskRequest struct {
	Title      *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Detail     *string `json:"detail"      binding:"omitempty,max=5000"`
	Status     *string `json:"status"      binding:"omitempty,oneof=open in_progress done cancelled"`
	DueDate    *string `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	AssigneeID *string `json:"assignee_id" binding:"omitempty,uuid"`
}

// TaskListRequest is the task list query.
type TaskListRequest struct {
	PaginationRequest
	Status     string `form:"status"      binding:"omitempty,oneof=open in_progress done cancelled"`
	AssigneeID string `form:"assignee_id" binding:"omitempty,uuid"`
}

// ── task responses ──

// TaskResponse is the task view.
type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Detail       *string `json:"detail,omitempty"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date,omitempty"`
	AssigneeID   *string `json:"assignee_id,omitempty"`
	AssigneeName string  `json:"assignee_name,omitempty"`
	Version      int     `json:"version"`
}
