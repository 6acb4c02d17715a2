package model

import "time"

// Purchase order statuses.
const (
	OrderDraft     = "draft"
	OrderSubmitted = "submitted"
	OrderReceived  = "received"
	OrderCancelled = "cancelled"
)

// PurchaseOrder is one supplier order (purchase_orders table).
// TotalCents is recomputed from the lines on every write.
type PurchaseOrder struct {
	OrderID    string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"order_id"`
	OrderNo    string    `gorm:"type:varchar(30);not null"                      json:"order_no"`
	SupplierID string    `gorm:"type:uuid;not null"                             json:"supplier_id"`
	Status     string    `gorm:"type:varchar(20);not null;default:'draft'"      json:"status"`
	OrderDate  time.Time `gorm:"type:date;not null"                             json:"order_date"`
	TotalCents int64     `gorm:"not null;default:0"                             json:"total_cents"`
	Notes      *string   `gorm:"type:text"                                      json:"notes,omitempty"`
	VersionedModel

	Supplier  *Supplier           `gorm:"foreignKey:SupplierID;references:SupplierID" json:"supplier,omitempty"`
	Lines     []PurchaseOrderLine `gorm:"foreignKey:OrderID"                          json:"lines,omitempty"`
	Documents []OrderDocument     `gorm:"foreignKey:OrderID"                          json:"documents,omitempty"`
}

// TableName sets the table name.
func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderLine is one line item (purchase_order_lines table).
type PurchaseOrderLine struct {
	LineID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"line_id"`
	OrderID        string    `gorm:"type:uuid;not null"                             json:"order_id"`
	Description    string    `gorm:"type:varchar(255);not null"                     json:"description"`
	Quantity       float64   `gorm:"type:numeric(12,3);not null;default:1"          json:"quantity"`
	UnitPriceCents int64     `gorm:"not null;default:0"                             json:"unit_price_cents"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (PurchaseOrderLine) TableName() string { return "purchase_order_lines" }

// Document categories.
const (
	DocumentQuote    = "quote"
	DocumentInvoice  = "invoice"
	DocumentDelivery = "delivery_note"
	DocumentOther    = "other"
)

// OrderDocument is uploaded-file metadata attached to a purchase order
// (order_documents table). The file body lives in object storage under
// StorageKey; only metadata is kept here.
type OrderDocument struct {
	DocumentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`
	OrderID    string    `gorm:"type:uuid;not null"                             json:"order_id"`
	Category   string    `gorm:"type:varchar(30);not null;default:'other'"      json:"category"`
	FileName   string    `gorm:"type:varchar(255);not null"                     json:"file_name"`
	StorageKey string    `gorm:"type:varchar(500);not null"                     json:"storage_key"`
	UploadedBy *string   `gorm:"type:uuid"                                      json:"uploaded_by,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName sets the table name.
func (OrderDocument) TableName() string { return "order_documents" }
