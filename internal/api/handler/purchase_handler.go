package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/service"
	appErrors "opsboard/backend/pkg/errors"
	"opsboard/backend/pkg/response"
)

// PurchaseHandler handles suppliers, purchase orders and documents.
type PurchaseHandler struct {
	purchaseSvc service.PurchaseService
}

// NewPurchaseHandler creates the PurchaseHandler.
func NewPurchaseHandler(purchaseSvc service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// ── suppliers ──

// CreateSupplier registers a supplier.
// POST /api/v1/suppliers
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	supplier, err := h.purchaseSvc.CreateSupplier(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, supplier)
}

// GetSupplier returns one supplier.
// GET /api/v1/suppliers/:id
func (h *PurchaseHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.purchaseSvc.GetSupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, 15001, "supplier not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, supplier)
}

// ListSuppliers returns suppliers paginated.
// GET /api/v1/suppliers
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	var req dto.SupplierListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	suppliers, total, err := h.purchaseSvc.ListSuppliers(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, suppliers, total, req.Page, req.PageSize)
}

// UpdateSupplier updates supplier fields.
// PATCH /api/v1/suppliers/:id
func (h *PurchaseHandler) UpdateSupplier(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	supplier, err := h.purchaseSvc.UpdateSupplier(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSupplierNotFound):
			response.NotFound(c, 15001, "supplier not found")
		case errors.Is(err, appErrors.ErrOptimisticLock):
			response.Conflict(c, 15002, "record was modified concurrently, reload and retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, supplier)
}

// DeleteSupplier soft-deletes a supplier.
// DELETE /api/v1/suppliers/:id
func (h *PurchaseHandler) DeleteSupplier(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.purchaseSvc.DeleteSupplier(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, 15001, "supplier not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ── purchase orders ──

// CreateOrder opens a purchase order.
// POST /api/v1/purchase-orders
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	order, err := h.purchaseSvc.CreateOrder(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			response.NotFound(c, 15001, "supplier not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, order)
}

// GetOrder returns one purchase order with lines and documents.
// GET /api/v1/purchase-orders/:id
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	order, err := h.purchaseSvc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, 15003, "purchase order not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, order)
}

// ListOrders returns purchase orders paginated.
// GET /api/v1/purchase-orders
func (h *PurchaseHandler) ListOrders(c *gin.Context) {
	var req dto.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	orders, total, err := h.purchaseSvc.ListOrders(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, orders, total, req.Page, req.PageSize)
}

// UpdateOrder updates order header fields and optionally replaces lines.
// PATCH /api/v1/purchase-orders/:id
func (h *PurchaseHandler) UpdateOrder(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	order, err := h.purchaseSvc.UpdateOrder(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			response.NotFound(c, 15003, "purchase order not found")
		case errors.Is(err, service.ErrSupplierNotFound):
			response.NotFound(c, 15001, "supplier not found")
		case errors.Is(err, appErrors.ErrOptimisticLock):
			response.Conflict(c, 15002, "record was modified concurrently, reload and retry")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, order)
}

// DeleteOrder soft-deletes a purchase order.
// DELETE /api/v1/purchase-orders/:id
func (h *PurchaseHandler) DeleteOrder(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.purchaseSvc.DeleteOrder(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, 15003, "purchase order not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// ── order documents ──

// AttachDocument records uploaded-file metadata against an order.
// POST /api/v1/purchase-orders/:id/documents
func (h *PurchaseHandler) AttachDocument(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.AttachDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validation failed")
		return
	}

	doc, err := h.purchaseSvc.AttachDocument(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			response.NotFound(c, 15003, "purchase order not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, doc)
}

// DeleteDocument removes document metadata.
// DELETE /api/v1/purchase-orders/documents/:docID
func (h *PurchaseHandler) DeleteDocument(c *gin.Context) {
	if err := h.purchaseSvc.DeleteDocument(c.Request.Context(), c.Param("docID")); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			response.NotFound(c, 15004, "order document not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
