package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

// Hand-written in-memory repositories. Each mock implements only the
// behaviour the services under test actually exercise.

func dateKey(staffID string, d time.Time) string {
	return staffID + ":" + d.Format("2006-01-02")
}

// ── users ──

type mockUserRepo struct {
	users  map[string]*model.User // key: user_id
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.nextID++
		user.UserID = fmt.Sprintf("user-%d", m.nextID)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	return page(all, offset, limit), int64(len(all)), nil
}

// ── staff ──

type mockStaffRepo struct {
	staff  map[string]*model.Staff
	nextID int
}

func newMockStaffRepo() *mockStaffRepo {
	return &mockStaffRepo{staff: make(map[string]*model.Staff)}
}

func (m *mockStaffRepo) Create(_ context.Context, staff *model.Staff) error {
	if staff.StaffID == "" {
		m.nextID++
		staff.StaffID = fmt.Sprintf("staff-%d", m.nextID)
	}
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	if s, ok := m.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) GetByEmployeeNo(_ context.Context, employeeNo string) (*model.Staff, error) {
	for _, s := range m.staff {
		if s.EmployeeNo == employeeNo {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) ListActive(_ context.Context) ([]model.Staff, error) {
	var active []model.Staff
	for _, s := range m.staff {
		if s.IsActive {
			active = append(active, *s)
		}
	}
	return active, nil
}

func (m *mockStaffRepo) List(_ context.Context, offset, limit int, includeInactive bool) ([]model.Staff, int64, error) {
	var all []model.Staff
	for _, s := range m.staff {
		if includeInactive || s.IsActive {
			all = append(all, *s)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (m *mockStaffRepo) Update(_ context.Context, staff *model.Staff) error {
	if _, ok := m.staff[staff.StaffID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.staff[staff.StaffID] = staff
	return nil
}

func (m *mockStaffRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.staff, id)
	return nil
}

// ── clock events ──

type mockClockEventRepo struct {
	events map[string]*model.ClockEvent
	nextID int
}

func newMockClockEventRepo() *mockClockEventRepo {
	return &mockClockEventRepo{events: make(map[string]*model.ClockEvent)}
}

func (m *mockClockEventRepo) Create(_ context.Context, event *model.ClockEvent) error {
	if event.EventID == "" {
		m.nextID++
		event.EventID = fmt.Sprintf("event-%d", m.nextID)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockClockEventRepo) GetByID(_ context.Context, id string) (*model.ClockEvent, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClockEventRepo) ListByStaffBetween(_ context.Context, staffID string, from, to time.Time) ([]model.ClockEvent, error) {
	var result []model.ClockEvent
	for _, e := range m.events {
		if e.StaffID == staffID && !e.EventTime.Before(from) && e.EventTime.Before(to) {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockClockEventRepo) ListBetween(_ context.Context, from, to time.Time) ([]model.ClockEvent, error) {
	var result []model.ClockEvent
	for _, e := range m.events {
		if !e.EventTime.Before(from) && e.EventTime.Before(to) {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockClockEventRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *mockClockEventRepo) DeleteByStaffBetween(_ context.Context, staffID string, from, to time.Time) error {
	for id, e := range m.events {
		if e.StaffID == staffID && !e.EventTime.Before(from) && e.EventTime.Before(to) {
			delete(m.events, id)
		}
	}
	return nil
}

// ── time segments ──

type mockTimeSegmentRepo struct {
	segments map[string][]model.TimeSegment // key: staffID:date
	nextID   int
}

func newMockTimeSegmentRepo() *mockTimeSegmentRepo {
	return &mockTimeSegmentRepo{segments: make(map[string][]model.TimeSegment)}
}

func (m *mockTimeSegmentRepo) ListByStaffDate(_ context.Context, staffID string, workDate time.Time) ([]model.TimeSegment, error) {
	return m.segments[dateKey(staffID, workDate)], nil
}

func (m *mockTimeSegmentRepo) ListByDate(_ context.Context, workDate time.Time) ([]model.TimeSegment, error) {
	var result []model.TimeSegment
	for _, segs := range m.segments {
		for _, seg := range segs {
			if seg.WorkDate.Format("2006-01-02") == workDate.Format("2006-01-02") {
				result = append(result, seg)
			}
		}
	}
	return result, nil
}

func (m *mockTimeSegmentRepo) ListByStaffDateRange(_ context.Context, staffID string, from, to time.Time) ([]model.TimeSegment, error) {
	var result []model.TimeSegment
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		result = append(result, m.segments[dateKey(staffID, d)]...)
	}
	return result, nil
}

func (m *mockTimeSegmentRepo) ReplaceDay(_ context.Context, staffID string, workDate time.Time, segments []model.TimeSegment, displacedStartEventIDs []string) error {
	delete(m.segments, dateKey(staffID, workDate))

	displaced := make(map[string]bool, len(displacedStartEventIDs))
	for _, id := range displacedStartEventIDs {
		displaced[id] = true
	}
	for key, segs := range m.segments {
		var kept []model.TimeSegment
		for _, seg := range segs {
			if seg.StartEventID != nil && displaced[*seg.StartEventID] {
				continue
			}
			kept = append(kept, seg)
		}
		m.segments[key] = kept
	}

	for _, seg := range segments {
		if seg.SegmentID == "" {
			m.nextID++
			seg.SegmentID = fmt.Sprintf("segment-%d", m.nextID)
		}
		key := dateKey(seg.StaffID, seg.WorkDate)
		m.segments[key] = append(m.segments[key], seg)
	}
	return nil
}

// ── daily summaries ──

type mockDailySummaryRepo struct {
	summaries map[string]*model.DailySummary // key: staffID:date
	nextID    int
}

func newMockDailySummaryRepo() *mockDailySummaryRepo {
	return &mockDailySummaryRepo{summaries: make(map[string]*model.DailySummary)}
}

func (m *mockDailySummaryRepo) Upsert(_ context.Context, summary *model.DailySummary) error {
	key := dateKey(summary.StaffID, summary.WorkDate)
	if existing, ok := m.summaries[key]; ok {
		summary.SummaryID = existing.SummaryID
	} else if summary.SummaryID == "" {
		m.nextID++
		summary.SummaryID = fmt.Sprintf("summary-%d", m.nextID)
	}
	m.summaries[key] = summary
	return nil
}

func (m *mockDailySummaryRepo) GetByStaffDate(_ context.Context, staffID string, workDate time.Time) (*model.DailySummary, error) {
	if s, ok := m.summaries[dateKey(staffID, workDate)]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDailySummaryRepo) ListByDate(_ context.Context, workDate time.Time) ([]model.DailySummary, error) {
	var result []model.DailySummary
	for _, s := range m.summaries {
		if s.WorkDate.Format("2006-01-02") == workDate.Format("2006-01-02") {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockDailySummaryRepo) ListByStaffDateRange(_ context.Context, staffID string, from, to time.Time) ([]model.DailySummary, error) {
	var result []model.DailySummary
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if s, ok := m.summaries[dateKey(staffID, d)]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockDailySummaryRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.DailySummary, error) {
	var result []model.DailySummary
	for _, s := range m.summaries {
		if !s.WorkDate.Before(from) && !s.WorkDate.After(to) {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockDailySummaryRepo) DeleteByStaffDate(_ context.Context, staffID string, workDate time.Time) error {
	delete(m.summaries, dateKey(staffID, workDate))
	return nil
}

// ── suppliers ──

type mockSupplierRepo struct {
	suppliers map[string]*model.Supplier
	nextID    int
}

func newMockSupplierRepo() *mockSupplierRepo {
	return &mockSupplierRepo{suppliers: make(map[string]*model.Supplier)}
}

func (m *mockSupplierRepo) Create(_ context.Context, supplier *model.Supplier) error {
	if supplier.SupplierID == "" {
		m.nextID++
		supplier.SupplierID = fmt.Sprintf("supplier-%d", m.nextID)
	}
	m.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (m *mockSupplierRepo) GetByID(_ context.Context, id string) (*model.Supplier, error) {
	if s, ok := m.suppliers[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSupplierRepo) List(_ context.Context, offset, limit int, includeInactive bool) ([]model.Supplier, int64, error) {
	var all []model.Supplier
	for _, s := range m.suppliers {
		if includeInactive || s.IsActive {
			all = append(all, *s)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (m *mockSupplierRepo) Update(_ context.Context, supplier *model.Supplier) error {
	if _, ok := m.suppliers[supplier.SupplierID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.suppliers[supplier.SupplierID] = supplier
	return nil
}

func (m *mockSupplierRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.suppliers, id)
	return nil
}

// ── purchase orders ──

type mockPurchaseOrderRepo struct {
	orders map[string]*model.PurchaseOrder
	nextID int
}

func newMockPurchaseOrderRepo() *mockPurchaseOrderRepo {
	return &mockPurchaseOrderRepo{orders: make(map[string]*model.PurchaseOrder)}
}

func (m *mockPurchaseOrderRepo) Create(_ context.Context, order *model.PurchaseOrder) error {
	if order.OrderID == "" {
		m.nextID++
		order.OrderID = fmt.Sprintf("order-%d", m.nextID)
	}
	for i := range order.Lines {
		order.Lines[i].OrderID = order.OrderID
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockPurchaseOrderRepo) GetByID(_ context.Context, id string) (*model.PurchaseOrder, error) {
	if o, ok := m.orders[id]; ok {
		return o, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPurchaseOrderRepo) List(_ context.Context, offset, limit int, supplierID, status string) ([]model.PurchaseOrder, int64, error) {
	var all []model.PurchaseOrder
	for _, o := range m.orders {
		if supplierID != "" && o.SupplierID != supplierID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		all = append(all, *o)
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (m *mockPurchaseOrderRepo) Update(_ context.Context, order *model.PurchaseOrder) error {
	if _, ok := m.orders[order.OrderID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.orders[order.OrderID] = order
	return nil
}

func (m *mockPurchaseOrderRepo) ReplaceLines(_ context.Context, orderID string, lines []model.PurchaseOrderLine) error {
	order, ok := m.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range lines {
		lines[i].OrderID = orderID
	}
	order.Lines = lines
	return nil
}

func (m *mockPurchaseOrderRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.orders, id)
	return nil
}

// ── order documents ──

type mockOrderDocumentRepo struct {
	docs   map[string]*model.OrderDocument
	nextID int
}

func newMockOrderDocumentRepo() *mockOrderDocumentRepo {
	return &mockOrderDocumentRepo{docs: make(map[string]*model.OrderDocument)}
}

func (m *mockOrderDocumentRepo) Create(_ context.Context, doc *model.OrderDocument) error {
	if doc.DocumentID == "" {
		m.nextID++
		doc.DocumentID = fmt.Sprintf("doc-%d", m.nextID)
	}
	m.docs[doc.DocumentID] = doc
	return nil
}

func (m *mockOrderDocumentRepo) GetByID(_ context.Context, id string) (*model.OrderDocument, error) {
	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderDocumentRepo) ListByOrder(_ context.Context, orderID string) ([]model.OrderDocument, error) {
	var result []model.OrderDocument
	for _, d := range m.docs {
		if d.OrderID == orderID {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockOrderDocumentRepo) Delete(_ context.Context, id string) error {
	delete(m.docs, id)
	return nil
}

// ── tasks ──

type mockTaskRepo struct {
	tasks  map[string]*model.Task
	nextID int
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		m.nextID++
		task.TaskID = fmt.Sprintf("task-%d", m.nextID)
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) List(_ context.Context, offset, limit int, status, assigneeID string) ([]model.Task, int64, error) {
	var all []model.Task
	for _, t := range m.tasks {
		if status != "" && t.Status != status {
			continue
		}
		if assigneeID != "" && (t.AssigneeID == nil || *t.AssigneeID != assigneeID) {
			continue
		}
		all = append(all, *t)
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	if _, ok := m.tasks[task.TaskID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.tasks, id)
	return nil
}

// ── helpers ──

func page[T any](all []T, offset, limit int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// newMockRepository builds a Repository backed entirely by in-memory mocks.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:          newMockUserRepo(),
		Staff:         newMockStaffRepo(),
		ClockEvent:    newMockClockEventRepo(),
		TimeSegment:   newMockTimeSegmentRepo(),
		DailySummary:  newMockDailySummaryRepo(),
		Supplier:      newMockSupplierRepo(),
		PurchaseOrder: newMockPurchaseOrderRepo(),
		OrderDocument: newMockOrderDocumentRepo(),
		Task:          newMockTaskRepo(),
	}
}
