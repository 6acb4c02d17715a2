package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

var ErrEmployeeNoTaken = errors.New("employee number is already in use")

// StaffService is the employee registry interface.
type StaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest, callerID string) (*dto.StaffResponse, error)
	Get(ctx context.Context, id string) (*dto.StaffResponse, error)
	List(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, callerID string) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates the StaffService.
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest, callerID string) (*dto.StaffResponse, error) {
	if _, err := s.repo.Staff.GetByEmployeeNo(ctx, req.EmployeeNo); err == nil {
		return nil, ErrEmployeeNoTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("employee number lookup failed", zap.Error(err))
		return nil, err
	}

	staff := &model.Staff{
		FullName:        req.FullName,
		EmployeeNo:      req.EmployeeNo,
		HourlyRateCents: req.HourlyRateCents,
		IsActive:        true,
	}
	staff.CreatedBy = &callerID

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("create staff failed", zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) Get(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff failed", zap.Error(err))
		return nil, err
	}
	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) List(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, int64, error) {
	offset, limit := req.Normalize()
	staff, total, err := s.repo.Staff.List(ctx, offset, limit, req.IncludeInactive)
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		resp = append(resp, toStaffResponse(&staff[i]))
	}
	return resp, total, nil
}

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest, callerID string) (*dto.StaffResponse, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff failed", zap.Error(err))
		return nil, err
	}

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.EmployeeNo != nil {
		staff.EmployeeNo = *req.EmployeeNo
	}
	if req.HourlyRateCents != nil {
		// historical summaries keep the rate they were computed with; only
		// future aggregations pick this up
		staff.HourlyRateCents = *req.HourlyRateCents
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	staff.UpdatedBy = &callerID

	if err := s.repo.Staff.Update(ctx, staff); err != nil {
		s.logger.Error("update staff failed", zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Staff.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		s.logger.Error("load staff failed", zap.Error(err))
		return err
	}
	return s.repo.Staff.Delete(ctx, id, callerID)
}

func toStaffResponse(staff *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:              staff.StaffID,
		FullName:        staff.FullName,
		EmployeeNo:      staff.EmployeeNo,
		HourlyRateCents: staff.HourlyRateCents,
		IsActive:        staff.IsActive,
		CreatedAt:       staff.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       staff.UpdatedAt.Format(time.RFC3339),
		Version:         staff.Version,
	}
}
