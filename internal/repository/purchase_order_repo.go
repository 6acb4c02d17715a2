package repository

import (
	"context"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
	pkgerrors "opsboard/backend/pkg/errors"
)

// PurchaseOrderRepository is the purchase_orders data-access interface.
// Lines are replaced together with the order header in one transaction.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *model.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*model.PurchaseOrder, error)
	List(ctx context.Context, offset, limit int, supplierID, status string) ([]model.PurchaseOrder, int64, error)
	Update(ctx context.Context, order *model.PurchaseOrder) error
	ReplaceLines(ctx context.Context, orderID string, lines []model.PurchaseOrderLine) error
	Delete(ctx context.Context, id string, deletedBy string) error
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

// NewPurchaseOrderRepo creates the GORM-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, order *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	var order model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Lines").
		Preload("Documents").
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, offset, limit int, supplierID, status string) ([]model.PurchaseOrder, int64, error) {
	var orders []model.PurchaseOrder
	var total int64

	db := r.db.WithContext(ctx).Model(&model.PurchaseOrder{})
	if supplierID != "" {
		db = db.Where("supplier_id = ?", supplierID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Supplier").
		Offset(offset).Limit(limit).
		Order("order_date DESC, order_no DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *purchaseOrderRepo) Update(ctx context.Context, order *model.PurchaseOrder) error {
	oldVersion := order.Version
	result := r.db.WithContext(ctx).
		Model(order).
		Where("order_id = ? AND version = ?", order.OrderID, oldVersion).
		Updates(map[string]interface{}{
			"supplier_id": order.SupplierID,
			"status":      order.Status,
			"order_date":  order.OrderDate,
			"total_cents": order.TotalCents,
			"notes":       order.Notes,
			"updated_by":  order.UpdatedBy,
			"version":     oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	order.Version = oldVersion + 1
	return nil
}

func (r *purchaseOrderRepo) ReplaceLines(ctx context.Context, orderID string, lines []model.PurchaseOrderLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).
			Delete(&model.PurchaseOrderLine{}).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *purchaseOrderRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.PurchaseOrder{}).
			Where("order_id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}
		return tx.Where("order_id = ?", id).Delete(&model.PurchaseOrder{}).Error
	})
}

// ── OrderDocument repository ──

// OrderDocumentRepository is the order_documents data-access interface.
type OrderDocumentRepository interface {
	Create(ctx context.Context, doc *model.OrderDocument) error
	GetByID(ctx context.Context, id string) (*model.OrderDocument, error)
	ListByOrder(ctx context.Context, orderID string) ([]model.OrderDocument, error)
	Delete(ctx context.Context, id string) error
}

type orderDocumentRepo struct {
	db *gorm.DB
}

// NewOrderDocumentRepo creates the GORM-backed OrderDocumentRepository.
func NewOrderDocumentRepo(db *gorm.DB) OrderDocumentRepository {
	return &orderDocumentRepo{db: db}
}

func (r *orderDocumentRepo) Create(ctx context.Context, doc *model.OrderDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *orderDocumentRepo) GetByID(ctx context.Context, id string) (*model.OrderDocument, error) {
	var doc model.OrderDocument
	err := r.db.WithContext(ctx).
		Where("document_id = ?", id).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *orderDocumentRepo) ListByOrder(ctx context.Context, orderID string) ([]model.OrderDocument, error) {
	var docs []model.OrderDocument
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *orderDocumentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&model.OrderDocument{}).Error
}
