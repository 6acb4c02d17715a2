package repository

import (
	"context"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
	pkgerrors "opsboard/backend/pkg/errors"
)

// SupplierRepository is the suppliers data-access interface.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *model.Supplier) error
	GetByID(ctx context.Context, id string) (*model.Supplier, error)
	List(ctx context.Context, offset, limit int, includeInactive bool) ([]model.Supplier, int64, error)
	Update(ctx context.Context, supplier *model.Supplier) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type supplierRepo struct {
	db *gorm.DB
}

// NewSupplierRepo creates the GORM-backed SupplierRepository.
func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *model.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepo) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", id).
		First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) List(ctx context.Context, offset, limit int, includeInactive bool) ([]model.Supplier, int64, error) {
	var suppliers []model.Supplier
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Supplier{})
	if !includeInactive {
		db = db.Where("is_active = ?", true)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *model.Supplier) error {
	oldVersion := supplier.Version
	result := r.db.WithContext(ctx).
		Model(supplier).
		Where("supplier_id = ? AND version = ?", supplier.SupplierID, oldVersion).
		Updates(map[string]interface{}{
			"name":          supplier.Name,
			"contact_name":  supplier.ContactName,
			"contact_email": supplier.ContactEmail,
			"phone":         supplier.Phone,
			"is_active":     supplier.IsActive,
			"updated_by":    supplier.UpdatedBy,
			"version":       oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	supplier.Version = oldVersion + 1
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Supplier{}).
			Where("supplier_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("supplier_id = ?", id).Delete(&model.Supplier{}).Error
	})
}
