package model

// Supplier is a purchasing counterparty (suppliers table).
type Supplier struct {
	SupplierID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"supplier_id"`
	Name         string  `gorm:"type:varchar(150);not null"                     json:"name"`
	ContactName  *string `gorm:"type:varchar(100)"                              json:"contact_name,omitempty"`
	ContactEmail *string `gorm:"type:varchar(255)"                              json:"contact_email,omitempty"`
	Phone        *string `gorm:"type:varchar(30)"                               json:"phone,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	VersionedModel
}

// TableName sets the table name.
func (Supplier) TableName() string { return "suppliers" }
