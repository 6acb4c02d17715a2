package dto

// ── supplier ──

// CreateSupplierRequest registers a supplier.
type CreateSupplierRequest struct {
	Name         string  `json:"name"          binding:"required,min=2,max=150"`
	ContactName  *string `json:"contact_name"  binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Phone        *string `json:"phone"         binding:"omitempty,max=30"`
}

// UpdateSupplierRequest updates supplier fields.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"          binding:"omitempty,min=2,max=150"`
	ContactName  *string `json:"contact_name"  binding:"omitempty,max=100"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Phone        *string `json:"phone"         binding:"omitempty,max=30"`
	IsActive     *bool   `json:"is_active"`
}

// SupplierListRequest is the supplier list query.
type SupplierListRequest struct {
	PaginationRequest
	IncludeInactive bool `form:"include_inactive"`
}

// SupplierResponse is the supplier view.
type SupplierResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	IsActive     bool    `json:"is_active"`
	Version      int     `json:"version"`
}

// ── purchase order ──

// OrderLineRequest is one line on a purchase order write.
type OrderLineRequest struct {
	Description    string  `json:"description"      binding:"required,min=1,max=255"`
	Quantity       float64 `json:"quantity"         binding:"required,gt=0"`
	UnitPriceCents int64   `json:"unit_price_cents" binding:"min=0"`
}

// CreateOrderRequest opens a purchase order.
type CreateOrderRequest struct {
	SupplierID string             `json:"supplier_id" binding:"required,uuid"`
	OrderDate  string             `json:"order_date"  binding:"required,datetime=2006-01-02"`
	Notes      *string            `json:"notes"       binding:"omitempty,max=2000"`
	Lines      []OrderLineRequest `json:"lines"       binding:"omitempty,dive"`
}

// UpdateOrderRequest updates header fields and optionally replaces lines.
type UpdateOrderRequest struct {
	SupplierID *string            `json:"supplier_id" binding:"omitempty,uuid"`
	Status     *string            `json:"status"      binding:"omitempty,oneof=draft submitted received cancelled"`
	OrderDate  *string            `json:"order_date"  binding:"omitempty,datetime=2006-01-02"`
	Notes      *string            `json:"notes"       binding:"omitempty,max=2000"`
	Lines      []OrderLineRequest `json:"lines"       binding:"omitempty,dive"`
}

// OrderListRequest is the purchase-order list query.
type OrderListRequest struct {
	PaginationRequest
	SupplierID string `form:"supplier_id" binding:"omitempty,uuid"`
	Status     string `form:"status"      binding:"omitempty,oneof=draft submitted received cancelled"`
}

// OrderLineResponse is one line on an order view.
type OrderLineResponse struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
}

// OrderResponse is the purchase-order view.
type OrderResponse struct {
	ID           string                  `json:"id"`
	OrderNo      string                  `json:"order_no"`
	SupplierID   string                  `json:"supplier_id"`
	SupplierName string                  `json:"supplier_name,omitempty"`
	Status       string                  `json:"status"`
	OrderDate    string                  `json:"order_date"`
	TotalCents   int64                   `json:"total_cents"`
	Notes        *string                 `json:"notes,omitempty"`
	Lines        []OrderLineResponse     `json:"lines,omitempty"`
	Documents    []OrderDocumentResponse `json:"documents,omitempty"`
	Version      int                     `json:"version"`
}

// ── order documents ──

// AttachDocumentRequest records uploaded-file metadata against an order.
type AttachDocumentRequest struct {
	Category   string `json:"category"    binding:"required,oneof=quote invoice delivery_note other"`
	FileName   string `json:"file_name"   binding:"required,min=1,max=255"`
	StorageKey string `json:"storage_key" binding:"required,min=1,max=500"`
}

// OrderDocumentResponse is the document metadata view.
type OrderDocumentResponse struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	FileName   string `json:"file_name"`
	StorageKey string `json:"storage_key"`
	CreatedAt  string `json:"created_at"`
}
