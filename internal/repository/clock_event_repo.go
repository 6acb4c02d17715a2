package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
)

// ClockEventRepository is the clock_events data-access interface.
// Events are append-only; the only mutation is administrative deletion,
// used by correction flows.
type ClockEventRepository interface {
	Create(ctx context.Context, event *model.ClockEvent) error
	GetByID(ctx context.Context, id string) (*model.ClockEvent, error)
	ListByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]model.ClockEvent, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]model.ClockEvent, error)
	Delete(ctx context.Context, id string) error
	DeleteByStaffBetween(ctx context.Context, staffID string, from, to time.Time) error
}

type clockEventRepo struct {
	db *gorm.DB
}

// NewClockEventRepo creates the GORM-backed ClockEventRepository.
func NewClockEventRepo(db *gorm.DB) ClockEventRepository {
	return &clockEventRepo{db: db}
}

func (r *clockEventRepo) Create(ctx context.Context, event *model.ClockEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *clockEventRepo) GetByID(ctx context.Context, id string) (*model.ClockEvent, error) {
	var event model.ClockEvent
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *clockEventRepo) ListByStaffBetween(ctx context.Context, staffID string, from, to time.Time) ([]model.ClockEvent, error) {
	var events []model.ClockEvent
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND event_time >= ? AND event_time < ?", staffID, from, to).
		Order("event_time ASC").
		Find(&events).Error
	return events, err
}

func (r *clockEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]model.ClockEvent, error) {
	var events []model.ClockEvent
	err := r.db.WithContext(ctx).
		Where("event_time >= ? AND event_time < ?", from, to).
		Order("staff_id ASC, event_time ASC").
		Find(&events).Error
	return events, err
}

func (r *clockEventRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.ClockEvent{}).Error
}

func (r *clockEventRepo) DeleteByStaffBetween(ctx context.Context, staffID string, from, to time.Time) error {
	return r.db.WithContext(ctx).
		Where("staff_id = ? AND event_time >= ? AND event_time < ?", staffID, from, to).
		Delete(&model.ClockEvent{}).Error
}
