package handler

import "opsboard/backend/internal/service"

// Handler aggregates every HTTP handler behind one entry point.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Staff      *StaffHandler
	Attendance *AttendanceHandler
	Purchase   *PurchaseHandler
	Task       *TaskHandler
	Export     *ExportHandler
}

// NewHandler wires all handlers.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		User:       NewUserHandler(svc.User),
		Staff:      NewStaffHandler(svc.Staff),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Purchase:   NewPurchaseHandler(svc.Purchase),
		Task:       NewTaskHandler(svc.Task),
		Export:     NewExportHandler(svc.Export),
	}
}
