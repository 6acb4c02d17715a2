package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"opsboard/backend/internal/model"
)

// DailySummaryRepository is the daily_summaries data-access interface.
// Uniqueness of (staff_id, work_date) is enforced by the database; Upsert
// merges on that key rather than lookup-then-branch.
type DailySummaryRepository interface {
	Upsert(ctx context.Context, summary *model.DailySummary) error
	GetByStaffDate(ctx context.Context, staffID string, workDate time.Time) (*model.DailySummary, error)
	ListByDate(ctx context.Context, workDate time.Time) ([]model.DailySummary, error)
	ListByStaffDateRange(ctx context.Context, staffID string, from, to time.Time) ([]model.DailySummary, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.DailySummary, error)
	DeleteByStaffDate(ctx context.Context, staffID string, workDate time.Time) error
}

type dailySummaryRepo struct {
	db *gorm.DB
}

// NewDailySummaryRepo creates the GORM-backed DailySummaryRepository.
func NewDailySummaryRepo(db *gorm.DB) DailySummaryRepository {
	return &dailySummaryRepo{db: db}
}

func (r *dailySummaryRepo) Upsert(ctx context.Context, summary *model.DailySummary) error {
	summary.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"first_clock_in", "last_clock_out",
				"total_work_minutes", "total_break_minutes",
				"lunch_break_minutes", "other_break_minutes",
				"regular_minutes", "overtime_minutes", "double_time_minutes",
				"hourly_rate_cents", "wage_cents",
				"is_complete", "updated_at",
			}),
		}).
		Create(summary).Error
}

func (r *dailySummaryRepo) GetByStaffDate(ctx context.Context, staffID string, workDate time.Time) (*model.DailySummary, error) {
	var summary model.DailySummary
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND work_date = ?", staffID, workDate.Format(dateLayout)).
		First(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *dailySummaryRepo) ListByDate(ctx context.Context, workDate time.Time) ([]model.DailySummary, error) {
	var summaries []model.DailySummary
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("work_date = ?", workDate.Format(dateLayout)).
		Order("staff_id ASC").
		Find(&summaries).Error
	return summaries, err
}

func (r *dailySummaryRepo) ListByStaffDateRange(ctx context.Context, staffID string, from, to time.Time) ([]model.DailySummary, error) {
	var summaries []model.DailySummary
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND work_date >= ? AND work_date <= ?",
			staffID, from.Format(dateLayout), to.Format(dateLayout)).
		Order("work_date ASC").
		Find(&summaries).Error
	return summaries, err
}

func (r *dailySummaryRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.DailySummary, error) {
	var summaries []model.DailySummary
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("work_date >= ? AND work_date <= ?", from.Format(dateLayout), to.Format(dateLayout)).
		Order("work_date ASC, staff_id ASC").
		Find(&summaries).Error
	return summaries, err
}

func (r *dailySummaryRepo) DeleteByStaffDate(ctx context.Context, staffID string, workDate time.Time) error {
	return r.db.WithContext(ctx).
		Where("staff_id = ? AND work_date = ?", staffID, workDate.Format(dateLayout)).
		Delete(&model.DailySummary{}).Error
}
