package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrOrderNotFound    = errors.New("purchase order not found")
	ErrDocumentNotFound = errors.New("order document not found")
)

// PurchaseService covers suppliers, purchase orders and order documents.
type PurchaseService interface {
	CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest, callerID string) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, req *dto.SupplierListRequest) ([]dto.SupplierResponse, int64, error)
	UpdateSupplier(ctx context.Context, id string, req *dto.UpdateSupplierRequest, callerID string) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id string, callerID string) error

	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error)
	UpdateOrder(ctx context.Context, id string, req *dto.UpdateOrderRequest, callerID string) (*dto.OrderResponse, error)
	DeleteOrder(ctx context.Context, id string, callerID string) error

	AttachDocument(ctx context.Context, orderID string, req *dto.AttachDocumentRequest, callerID string) (*dto.OrderDocumentResponse, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

type purchaseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPurchaseService creates the PurchaseService.
func NewPurchaseService(repo *repository.Repository, logger *zap.Logger) PurchaseService {
	return &purchaseService{repo: repo, logger: logger}
}

// ── suppliers ──

func (s *purchaseService) CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest, callerID string) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		IsActive:     true,
	}
	supplier.CreatedBy = &callerID

	if err := s.repo.Supplier.Create(ctx, supplier); err != nil {
		s.logger.Error("create supplier failed", zap.Error(err))
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	return &resp, nil
}

func (s *purchaseService) GetSupplier(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.Supplier.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("load supplier failed", zap.Error(err))
		return nil, err
	}
	resp := toSupplierResponse(supplier)
	return &resp, nil
}

func (s *purchaseService) ListSuppliers(ctx context.Context, req *dto.SupplierListRequest) ([]dto.SupplierResponse, int64, error) {
	offset, limit := req.Normalize()
	suppliers, total, err := s.repo.Supplier.List(ctx, offset, limit, req.IncludeInactive)
	if err != nil {
		s.logger.Error("list suppliers failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		resp = append(resp, toSupplierResponse(&suppliers[i]))
	}
	return resp, total, nil
}

func (s *purchaseService) UpdateSupplier(ctx context.Context, id string, req *dto.UpdateSupplierRequest, callerID string) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.Supplier.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("load supplier failed", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactName != nil {
		supplier.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		supplier.ContactEmail = req.ContactEmail
	}
	if req.Phone != nil {
		supplier.Phone = req.Phone
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}
	supplier.UpdatedBy = &callerID

	if err := s.repo.Supplier.Update(ctx, supplier); err != nil {
		s.logger.Error("update supplier failed", zap.Error(err))
		return nil, err
	}

	resp := toSupplierResponse(supplier)
	return &resp, nil
}

func (s *purchaseService) DeleteSupplier(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Supplier.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		return err
	}
	return s.repo.Supplier.Delete(ctx, id, callerID)
}

// ── purchase orders ──

func (s *purchaseService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest, callerID string) (*dto.OrderResponse, error) {
	if _, err := s.repo.Supplier.GetByID(ctx, req.SupplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("load supplier failed", zap.Error(err))
		return nil, err
	}

	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("parse order_date: %w", err)
	}

	order := &model.PurchaseOrder{
		OrderNo:    nextOrderNo(orderDate),
		SupplierID: req.SupplierID,
		Status:     model.OrderDraft,
		OrderDate:  orderDate,
		Notes:      req.Notes,
	}
	order.CreatedBy = &callerID
	order.Lines = toOrderLines("", req.Lines)
	order.TotalCents = linesTotal(order.Lines)

	if err := s.repo.PurchaseOrder.Create(ctx, order); err != nil {
		s.logger.Error("create order failed", zap.Error(err))
		return nil, err
	}

	return s.GetOrder(ctx, order.OrderID)
}

func (s *purchaseService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.PurchaseOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("load order failed", zap.Error(err))
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *purchaseService) ListOrders(ctx context.Context, req *dto.OrderListRequest) ([]dto.OrderResponse, int64, error) {
	offset, limit := req.Normalize()
	orders, total, err := s.repo.PurchaseOrder.List(ctx, offset, limit, req.SupplierID, req.Status)
	if err != nil {
		s.logger.Error("list orders failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return resp, total, nil
}

func (s *purchaseService) UpdateOrder(ctx context.Context, id string, req *dto.UpdateOrderRequest, callerID string) (*dto.OrderResponse, error) {
	order, err := s.repo.PurchaseOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("load order failed", zap.Error(err))
		return nil, err
	}

	if req.SupplierID != nil {
		order.SupplierID = *req.SupplierID
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.OrderDate != nil {
		orderDate, err := time.Parse("2006-01-02", *req.OrderDate)
		if err != nil {
			return nil, fmt.Errorf("parse order_date: %w", err)
		}
		order.OrderDate = orderDate
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}
	order.UpdatedBy = &callerID

	if req.Lines != nil {
		lines := toOrderLines(order.OrderID, req.Lines)
		if err := s.repo.PurchaseOrder.ReplaceLines(ctx, order.OrderID, lines); err != nil {
			s.logger.Error("replace order lines failed", zap.Error(err))
			return nil, err
		}
		order.TotalCents = linesTotal(lines)
	}

	if err := s.repo.PurchaseOrder.Update(ctx, order); err != nil {
		s.logger.Error("update order failed", zap.Error(err))
		return nil, err
	}

	return s.GetOrder(ctx, order.OrderID)
}

func (s *purchaseService) DeleteOrder(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.PurchaseOrder.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.repo.PurchaseOrder.Delete(ctx, id, callerID)
}

// ── order documents ──

func (s *purchaseService) AttachDocument(ctx context.Context, orderID string, req *dto.AttachDocumentRequest, callerID string) (*dto.OrderDocumentResponse, error) {
	if _, err := s.repo.PurchaseOrder.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("load order failed", zap.Error(err))
		return nil, err
	}

	doc := &model.OrderDocument{
		OrderID:    orderID,
		Category:   req.Category,
		FileName:   req.FileName,
		StorageKey: req.StorageKey,
		UploadedBy: &callerID,
	}
	if err := s.repo.OrderDocument.Create(ctx, doc); err != nil {
		s.logger.Error("attach document failed", zap.Error(err))
		return nil, err
	}

	resp := toOrderDocumentResponse(doc)
	return &resp, nil
}

func (s *purchaseService) DeleteDocument(ctx context.Context, documentID string) error {
	if _, err := s.repo.OrderDocument.GetByID(ctx, documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return s.repo.OrderDocument.Delete(ctx, documentID)
}

// ── helpers ──

// nextOrderNo derives a readable order number from the order date and
// current clock. Uniqueness is ultimately enforced by the database index.
func nextOrderNo(orderDate time.Time) string {
	return fmt.Sprintf("PO-%s-%06d", orderDate.Format("20060102"), time.Now().UnixNano()%1000000)
}

func toOrderLines(orderID string, lines []dto.OrderLineRequest) []model.PurchaseOrderLine {
	result := make([]model.PurchaseOrderLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, model.PurchaseOrderLine{
			OrderID:        orderID,
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}
	return result
}

func linesTotal(lines []model.PurchaseOrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += int64(math.Round(l.Quantity * float64(l.UnitPriceCents)))
	}
	return total
}

func toSupplierResponse(supplier *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:           supplier.SupplierID,
		Name:         supplier.Name,
		ContactName:  supplier.ContactName,
		ContactEmail: supplier.ContactEmail,
		Phone:        supplier.Phone,
		IsActive:     supplier.IsActive,
		Version:      supplier.Version,
	}
}

func toOrderResponse(order *model.PurchaseOrder) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:         order.OrderID,
		OrderNo:    order.OrderNo,
		SupplierID: order.SupplierID,
		Status:     order.Status,
		OrderDate:  order.OrderDate.Format("2006-01-02"),
		TotalCents: order.TotalCents,
		Notes:      order.Notes,
		Version:    order.Version,
	}
	if order.Supplier != nil {
		resp.SupplierName = order.Supplier.Name
	}
	for i := range order.Lines {
		l := &order.Lines[i]
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:             l.LineID,
			Description:    l.Description,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
	}
	for i := range order.Documents {
		resp.Documents = append(resp.Documents, toOrderDocumentResponse(&order.Documents[i]))
	}
	return resp
}

func toOrderDocumentResponse(doc *model.OrderDocument) dto.OrderDocumentResponse {
	return dto.OrderDocumentResponse{
		ID:         doc.DocumentID,
		Category:   doc.Category,
		FileName:   doc.FileName,
		StorageKey: doc.StorageKey,
		CreatedAt:  doc.CreatedAt.Format(time.RFC3339),
	}
}
