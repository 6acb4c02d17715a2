package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	User          UserRepository
	Staff         StaffRepository
	ClockEvent    ClockEventRepository
	TimeSegment   TimeSegmentRepository
	DailySummary  DailySummaryRepository
	Supplier      SupplierRepository
	PurchaseOrder PurchaseOrderRepository
	OrderDocument OrderDocumentRepository
	Task          TaskRepository
}

// NewRepository builds the aggregate over one GORM connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Staff:         NewStaffRepo(db),
		ClockEvent:    NewClockEventRepo(db),
		TimeSegment:   NewTimeSegmentRepo(db),
		DailySummary:  NewDailySummaryRepo(db),
		Supplier:      NewSupplierRepo(db),
		PurchaseOrder: NewPurchaseOrderRepo(db),
		OrderDocument: NewOrderDocumentRepo(db),
		Task:          NewTaskRepo(db),
	}
}
