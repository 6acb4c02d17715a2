package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"opsboard/backend/internal/model"
)

const dateLayout = "2006-01-02"

// TimeSegmentRepository is the time_segments data-access interface.
// Segments are a derived projection of the clock-event log; writes happen
// only through ReplaceDay, which swaps a staff/day's segments atomically.
type TimeSegmentRepository interface {
	ListByStaffDate(ctx context.Context, staffID string, workDate time.Time) ([]model.TimeSegment, error)
	ListByDate(ctx context.Context, workDate time.Time) ([]model.TimeSegment, error)
	ListByStaffDateRange(ctx context.Context, staffID string, from, to time.Time) ([]model.TimeSegment, error)
	// ReplaceDay deletes the staff/day's segments plus any segments that
	// reference one of the displaced start events (open halves on the
	// previous date superseded by a midnight split), then inserts the new
	// set. All inside one transaction.
	ReplaceDay(ctx context.Context, staffID string, workDate time.Time, segments []model.TimeSegment, displacedStartEventIDs []string) error
}

type timeSegmentRepo struct {
	db *gorm.DB
}

// NewTimeSegmentRepo creates the GORM-backed TimeSegmentRepository.
func NewTimeSegmentRepo(db *gorm.DB) TimeSegmentRepository {
	return &timeSegmentRepo{db: db}
}

func (r *timeSegmentRepo) ListByStaffDate(ctx context.Context, staffID string, workDate time.Time) ([]model.TimeSegment, error) {
	var segments []model.TimeSegment
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND work_date = ?", staffID, workDate.Format(dateLayout)).
		Order("start_time ASC").
		Find(&segments).Error
	return segments, err
}

func (r *timeSegmentRepo) ListByDate(ctx context.Context, workDate time.Time) ([]model.TimeSegment, error) {
	var segments []model.TimeSegment
	err := r.db.WithContext(ctx).
		Where("work_date = ?", workDate.Format(dateLayout)).
		Order("staff_id ASC, start_time ASC").
		Find(&segments).Error
	return segments, err
}

func (r *timeSegmentRepo) ListByStaffDateRange(ctx context.Context, staffID string, from, to time.Time) ([]model.TimeSegment, error) {
	var segments []model.TimeSegment
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND work_date >= ? AND work_date <= ?",
			staffID, from.Format(dateLayout), to.Format(dateLayout)).
		Order("work_date ASC, start_time ASC").
		Find(&segments).Error
	return segments, err
}

func (r *timeSegmentRepo) ReplaceDay(ctx context.Context, staffID string, workDate time.Time, segments []model.TimeSegment, displacedStartEventIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("staff_id = ? AND work_date = ?", staffID, workDate.Format(dateLayout)).
			Delete(&model.TimeSegment{}).Error; err != nil {
			return err
		}
		if len(displacedStartEventIDs) > 0 {
			if err := tx.
				Where("staff_id = ? AND start_event_id IN ?", staffID, displacedStartEventIDs).
				Delete(&model.TimeSegment{}).Error; err != nil {
				return err
			}
		}
		if len(segments) == 0 {
			return nil
		}
		return tx.Create(&segments).Error
	})
}
