package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskService covers the shared task list.
type TaskService interface {
	Create(ctx context.Context, req *dto.CreateTaskRequest, callerID string) (*dto.TaskResponse, error)
	Get(ctx context.Context, id string) (*dto.TaskResponse, error)
	List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateTaskRequest, callerID string) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService creates the TaskService.
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest, callerID string) (*dto.TaskResponse, error) {
	if req.AssigneeID != nil {
		if _, err := s.repo.Staff.GetByID(ctx, *req.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStaffNotFound
			}
			s.logger.Error("load assignee failed", zap.Error(err))
			return nil, err
		}
	}

	task := &model.Task{
		Title:      req.Title,
		Detail:     req.Detail,
		Status:     model.TaskOpen,
		AssigneeID: req.AssigneeID,
	}
	task.CreatedBy = &callerID

	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due_date: %w", err)
		}
		task.DueDate = &due
	}

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("create task failed", zap.Error(err))
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := s.repo.Task.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("load task failed", zap.Error(err))
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskService) List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error) {
	offset, limit := req.Normalize()
	tasks, total, err := s.repo.Task.List(ctx, offset, limit, req.Status, req.AssigneeID)
	if err != nil {
		s.logger.Error("list tasks failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, toTaskResponse(&tasks[i]))
	}
	return resp, total, nil
}

func (s *taskService) Update(ctx context.Context, id string, req *dto.UpdateTaskRequest, callerID string) (*dto.TaskResponse, error) {
	task, err := s.repo.Task.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("load task failed", zap.Error(err))
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Detail != nil {
		task.Detail = req.Detail
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("parse due_date: %w", err)
		}
		task.DueDate = &due
	}
	if req.AssigneeID != nil {
		if _, err := s.repo.Staff.GetByID(ctx, *req.AssigneeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStaffNotFound
			}
			return nil, err
		}
		task.AssigneeID = req.AssigneeID
	}
	task.UpdatedBy = &callerID

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("update task failed", zap.Error(err))
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Task.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return s.repo.Task.Delete(ctx, id, callerID)
}

func toTaskResponse(task *model.Task) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:         task.TaskID,
		Title:      task.Title,
		Detail:     task.Detail,
		Status:     task.Status,
		AssigneeID: task.AssigneeID,
		Version:    task.Version,
	}
	if task.DueDate != nil {
		due := task.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	if task.Assignee != nil {
		resp.AssigneeName = task.Assignee.FullName
	}
	return resp
}
