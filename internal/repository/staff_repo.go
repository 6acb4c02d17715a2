package repository

import (
	"context"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
	pkgerrors "opsboard/backend/pkg/errors"
)

// StaffRepository is the staff data-access interface.
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	GetByEmployeeNo(ctx context.Context, employeeNo string) (*model.Staff, error)
	ListActive(ctx context.Context) ([]model.Staff, error)
	List(ctx context.Context, offset, limit int, includeInactive bool) ([]model.Staff, int64, error)
	Update(ctx context.Context, staff *model.Staff) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates the GORM-backed StaffRepository.
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) GetByEmployeeNo(ctx context.Context, employeeNo string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("employee_no = ?", employeeNo).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) ListActive(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *staffRepo) List(ctx context.Context, offset, limit int, includeInactive bool) ([]model.Staff, int64, error) {
	var staff []model.Staff
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Staff{})
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("full_name ASC").
		Find(&staff).Error; err != nil {
		return nil, 0, err
	}

	return staff, total, nil
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	oldVersion := staff.Version
	result := r.db.WithContext(ctx).
		Model(staff).
		Where("staff_id = ? AND version = ?", staff.StaffID, oldVersion).
		Updates(map[string]interface{}{
			"full_name":         staff.FullName,
			"employee_no":       staff.EmployeeNo,
			"hourly_rate_cents": staff.HourlyRateCents,
			"is_active":         staff.IsActive,
			"updated_by":        staff.UpdatedBy,
			"version":           oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	staff.Version = oldVersion + 1
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Staff{}).
			Where("staff_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("staff_id = ?", id).Delete(&model.Staff{}).Error
	})
}
