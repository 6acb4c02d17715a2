package service

import (
	"go.uber.org/zap"

	"opsboard/backend/config"
	"opsboard/backend/internal/repository"
	"opsboard/backend/pkg/jwt"
	"opsboard/backend/pkg/redis"
)

// Service aggregates every business service behind one entry point.
type Service struct {
	Auth       AuthService
	User       UserService
	Staff      StaffService
	Attendance AttendanceService
	Purchase   PurchaseService
	Task       TaskService
	Export     ExportService
}

// NewService wires all services. rdb may be nil; token revocation then
// degrades to signature-only checks.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Staff:      NewStaffService(repo, logger),
		Attendance: NewAttendanceService(&cfg.Attendance, repo, logger),
		Purchase:   NewPurchaseService(repo, logger),
		Task:       NewTaskService(repo, logger),
		Export:     NewExportService(&cfg.Attendance, repo, logger),
	}
}
