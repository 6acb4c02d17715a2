package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"opsboard/backend/config"
	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

// ── attendance business errors ──

var (
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrEventNotFound      = errors.New("clock event not found")
	ErrBreakCategoryKind  = errors.New("break category is only valid on break events")
	ErrSummaryQueryParams = errors.New("provide either work_date, or staff_id with from/to")
)

// AttendanceService is the clock-event, segmentation and summary pipeline.
//
// The pipeline is linear: raw events → segments → daily summary. Manual
// entry and deletion re-enter at the top and re-derive everything for the
// affected staff/day. Segments and summaries are projections of the event
// log, never edited directly.
type AttendanceService interface {
	// RecordManualEvent inserts one operator-entered punch and reprocesses
	// that staff/day.
	RecordManualEvent(ctx context.Context, req *dto.ManualEventRequest, callerID string) (*dto.ClockEventResponse, error)
	// DeleteEvent removes a punch and reprocesses the staff/day it fell on.
	DeleteEvent(ctx context.Context, eventID string) error
	// QuickEntry inserts the same punch for many staff members, processing
	// them concurrently in small batches.
	QuickEntry(ctx context.Context, req *dto.QuickEntryRequest, callerID string) (*dto.QuickEntryResponse, error)
	// Process re-derives one staff/day, or a whole date for all active
	// staff when no staff id is given.
	Process(ctx context.Context, req *dto.ProcessRequest) (*dto.ProcessResponse, error)

	ListEvents(ctx context.Context, req *dto.EventListRequest) ([]dto.ClockEventResponse, error)
	ListSegments(ctx context.Context, req *dto.SegmentListRequest) ([]dto.TimeSegmentResponse, error)
	ListSummaries(ctx context.Context, req *dto.SummaryListRequest) ([]dto.DailySummaryResponse, error)
}

type attendanceService struct {
	cfg    *config.AttendanceConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(cfg *config.AttendanceConfig, repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{cfg: cfg, repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// event ingestion
// ═══════════════════════════════════════════════════════════

func (s *attendanceService) RecordManualEvent(ctx context.Context, req *dto.ManualEventRequest, callerID string) (*dto.ClockEventResponse, error) {
	event, workDate, err := s.buildManualEvent(req.StaffID, req.EventKind, req.WorkDate, req.TimeOfDay, req.BreakCategory, req.Note, callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Staff.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("load staff failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.ClockEvent.Create(ctx, event); err != nil {
		s.logger.Error("insert manual event failed",
			zap.String("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	if err := s.processDay(ctx, req.StaffID, workDate); err != nil {
		s.logger.Error("reprocess after manual event failed",
			zap.String("staff_id", req.StaffID),
			zap.String("work_date", req.WorkDate),
			zap.Error(err))
		return nil, err
	}

	resp := toClockEventResponse(event)
	return &resp, nil
}

// buildManualEvent combines the calendar date and time of day at the fixed
// local offset and validates kind/category consistency.
func (s *attendanceService) buildManualEvent(staffID, kind, workDate, timeOfDay string, category, note *string, callerID string) (*model.ClockEvent, time.Time, error) {
	loc := s.cfg.Location()

	date, err := time.ParseInLocation("2006-01-02", workDate, loc)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse work_date: %w", err)
	}
	tod, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("parse time_of_day: %w", err)
	}

	if category != nil && kind != model.EventBreakStart && kind != model.EventBreakEnd {
		return nil, time.Time{}, ErrBreakCategoryKind
	}

	eventTime := time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, loc)

	return &model.ClockEvent{
		StaffID:       staffID,
		EventTime:     eventTime,
		EventKind:     kind,
		BreakCategory: category,
		EntryMethod:   model.EntryManual,
		Note:          note,
		CreatedBy:     &callerID,
	}, date, nil
}

func (s *attendanceService) DeleteEvent(ctx context.Context, eventID string) error {
	event, err := s.repo.ClockEvent.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		s.logger.Error("load event failed", zap.Error(err))
		return err
	}

	if err := s.repo.ClockEvent.Delete(ctx, eventID); err != nil {
		s.logger.Error("delete event failed", zap.String("event_id", eventID), zap.Error(err))
		return err
	}

	workDate := dayStart(event.EventTime, s.cfg.Location())
	return s.processDay(ctx, event.StaffID, workDate)
}

// ═══════════════════════════════════════════════════════════
// quick entry: bulk manual punches
// ═══════════════════════════════════════════════════════════

// QuickEntry fans the same punch out to many staff members. Staff are
// processed concurrently but capped at the configured batch size so a
// floor-wide clock-out does not overwhelm the database. A failure for one
// staff member is reported in the result list, not propagated.
func (s *attendanceService) QuickEntry(ctx context.Context, req *dto.QuickEntryRequest, callerID string) (*dto.QuickEntryResponse, error) {
	results := make([]dto.QuickEntryResult, len(req.StaffIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.QuickEntryBatchSize)

	for i, staffID := range req.StaffIDs {
		g.Go(func() error {
			entry := &dto.ManualEventRequest{
				StaffID:       staffID,
				EventKind:     req.EventKind,
				WorkDate:      req.WorkDate,
				TimeOfDay:     req.TimeOfDay,
				BreakCategory: req.BreakCategory,
				Note:          req.Note,
			}
			_, err := s.RecordManualEvent(gctx, entry, callerID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[i] = dto.QuickEntryResult{StaffID: staffID, OK: false, Error: err.Error()}
			} else {
				results[i] = dto.QuickEntryResult{StaffID: staffID, OK: true}
			}
			return nil // per-staff failures do not abort the batch
		})
	}
	_ = g.Wait()

	resp := &dto.QuickEntryResponse{Total: len(results), Results: results}
	for _, r := range results {
		if r.OK {
			resp.Success++
		} else {
			resp.Failed++
		}
	}
	return resp, nil
}

// ═══════════════════════════════════════════════════════════
// pipeline: segmentation + aggregation
// ═══════════════════════════════════════════════════════════

func (s *attendanceService) Process(ctx context.Context, req *dto.ProcessRequest) (*dto.ProcessResponse, error) {
	loc := s.cfg.Location()
	workDate, err := time.ParseInLocation("2006-01-02", req.WorkDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse work_date: %w", err)
	}

	resp := &dto.ProcessResponse{WorkDate: req.WorkDate}

	if req.StaffID != nil {
		if err := s.processDay(ctx, *req.StaffID, workDate); err != nil {
			return nil, err
		}
		resp.StaffProcessed = 1
		return resp, nil
	}

	staff, err := s.repo.Staff.ListActive(ctx)
	if err != nil {
		s.logger.Error("list active staff failed", zap.Error(err))
		return nil, err
	}

	// one staff member at a time; a failure skips to the next rather than
	// aborting the sweep
	for _, member := range staff {
		if err := s.processDay(ctx, member.StaffID, workDate); err != nil {
			s.logger.Error("process staff/day failed",
				zap.String("staff_id", member.StaffID),
				zap.String("work_date", req.WorkDate),
				zap.Error(err))
			resp.StaffFailed++
			resp.FailedStaffIDs = append(resp.FailedStaffIDs, member.StaffID)
			continue
		}
		resp.StaffProcessed++
	}

	return resp, nil
}

// processDay re-derives one staff/day: segments are rebuilt from the raw
// events and swapped in atomically, then the summary is recomputed. An
// overnight split also touches the previous date, whose summary is
// recomputed as well.
func (s *attendanceService) processDay(ctx context.Context, staffID string, workDate time.Time) error {
	loc := s.cfg.Location()
	workDate = dayStart(workDate, loc)
	dayEnd := workDate.AddDate(0, 0, 1)
	prevDate := workDate.AddDate(0, 0, -1)

	events, err := s.repo.ClockEvent.ListByStaffBetween(ctx, staffID, workDate, dayEnd)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	prevEvents, err := s.repo.ClockEvent.ListByStaffBetween(ctx, staffID, prevDate, workDate)
	if err != nil {
		return fmt.Errorf("load previous-day events: %w", err)
	}

	segments, displaced := buildSegments(staffID, workDate, events, leftoverShiftStarts(prevEvents), loc)

	if err := s.repo.TimeSegment.ReplaceDay(ctx, staffID, workDate, segments, displaced); err != nil {
		return fmt.Errorf("replace segments: %w", err)
	}

	staff, err := s.repo.Staff.GetByID(ctx, staffID)
	if err != nil {
		return fmt.Errorf("load staff: %w", err)
	}

	var today []model.TimeSegment
	for _, seg := range segments {
		if seg.WorkDate.Equal(workDate) {
			today = append(today, seg)
		}
	}
	if err := s.writeSummary(ctx, staffID, workDate, today, staff.HourlyRateCents); err != nil {
		return err
	}

	if len(displaced) > 0 {
		prevSegments, err := s.repo.TimeSegment.ListByStaffDate(ctx, staffID, prevDate)
		if err != nil {
			return fmt.Errorf("load previous-day segments: %w", err)
		}
		if err := s.writeSummary(ctx, staffID, prevDate, prevSegments, staff.HourlyRateCents); err != nil {
			return err
		}
	}

	return nil
}

// writeSummary upserts the staff/day summary, or deletes a stale row when
// the day has no segments left.
func (s *attendanceService) writeSummary(ctx context.Context, staffID string, workDate time.Time, segments []model.TimeSegment, rateCents int64) error {
	summary := buildDailySummary(staffID, workDate, segments, rateCents, s.cfg)
	if summary == nil {
		if err := s.repo.DailySummary.DeleteByStaffDate(ctx, staffID, workDate); err != nil {
			return fmt.Errorf("delete empty summary: %w", err)
		}
		return nil
	}
	if err := s.repo.DailySummary.Upsert(ctx, summary); err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// queries
// ═══════════════════════════════════════════════════════════

func (s *attendanceService) ListEvents(ctx context.Context, req *dto.EventListRequest) ([]dto.ClockEventResponse, error) {
	loc := s.cfg.Location()
	date, err := time.ParseInLocation("2006-01-02", req.WorkDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse work_date: %w", err)
	}

	events, err := s.repo.ClockEvent.ListByStaffBetween(ctx, req.StaffID, date, date.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("list events failed", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.ClockEventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toClockEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *attendanceService) ListSegments(ctx context.Context, req *dto.SegmentListRequest) ([]dto.TimeSegmentResponse, error) {
	loc := s.cfg.Location()
	date, err := time.ParseInLocation("2006-01-02", req.WorkDate, loc)
	if err != nil {
		return nil, fmt.Errorf("parse work_date: %w", err)
	}

	segments, err := s.repo.TimeSegment.ListByStaffDate(ctx, req.StaffID, date)
	if err != nil {
		s.logger.Error("list segments failed", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.TimeSegmentResponse, 0, len(segments))
	for i := range segments {
		resp = append(resp, toTimeSegmentResponse(&segments[i]))
	}
	return resp, nil
}

func (s *attendanceService) ListSummaries(ctx context.Context, req *dto.SummaryListRequest) ([]dto.DailySummaryResponse, error) {
	loc := s.cfg.Location()

	var summaries []model.DailySummary
	var err error

	switch {
	case req.WorkDate != "":
		var date time.Time
		if date, err = time.ParseInLocation("2006-01-02", req.WorkDate, loc); err != nil {
			return nil, fmt.Errorf("parse work_date: %w", err)
		}
		summaries, err = s.repo.DailySummary.ListByDate(ctx, date)
	case req.StaffID != "" && req.From != "" && req.To != "":
		var from, to time.Time
		if from, err = time.ParseInLocation("2006-01-02", req.From, loc); err != nil {
			return nil, fmt.Errorf("parse from: %w", err)
		}
		if to, err = time.ParseInLocation("2006-01-02", req.To, loc); err != nil {
			return nil, fmt.Errorf("parse to: %w", err)
		}
		summaries, err = s.repo.DailySummary.ListByStaffDateRange(ctx, req.StaffID, from, to)
	default:
		return nil, ErrSummaryQueryParams
	}
	if err != nil {
		s.logger.Error("list summaries failed", zap.Error(err))
		return nil, err
	}

	resp := make([]dto.DailySummaryResponse, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, toDailySummaryResponse(&summaries[i]))
	}
	return resp, nil
}

// ── response mapping ──

func toClockEventResponse(e *model.ClockEvent) dto.ClockEventResponse {
	return dto.ClockEventResponse{
		ID:            e.EventID,
		StaffID:       e.StaffID,
		EventTime:     e.EventTime.Format(time.RFC3339),
		EventKind:     e.EventKind,
		BreakCategory: e.BreakCategory,
		EntryMethod:   e.EntryMethod,
		Note:          e.Note,
	}
}

func toTimeSegmentResponse(seg *model.TimeSegment) dto.TimeSegmentResponse {
	resp := dto.TimeSegmentResponse{
		ID:              seg.SegmentID,
		StaffID:         seg.StaffID,
		WorkDate:        seg.WorkDate.Format("2006-01-02"),
		SegmentKind:     seg.SegmentKind,
		BreakCategory:   seg.BreakCategory,
		StartTime:       seg.StartTime.Format(time.RFC3339),
		DurationMinutes: seg.DurationMinutes,
		Open:            seg.IsOpen(),
	}
	if seg.EndTime != nil {
		end := seg.EndTime.Format(time.RFC3339)
		resp.EndTime = &end
	}
	return resp
}

func toDailySummaryResponse(sum *model.DailySummary) dto.DailySummaryResponse {
	resp := dto.DailySummaryResponse{
		ID:                sum.SummaryID,
		StaffID:           sum.StaffID,
		WorkDate:          sum.WorkDate.Format("2006-01-02"),
		TotalWorkMinutes:  sum.TotalWorkMinutes,
		TotalBreakMinutes: sum.TotalBreakMinutes,
		LunchBreakMinutes: sum.LunchBreakMinutes,
		OtherBreakMinutes: sum.OtherBreakMinutes,
		RegularMinutes:    sum.RegularMinutes,
		OvertimeMinutes:   sum.OvertimeMinutes,
		DoubleTimeMinutes: sum.DoubleTimeMinutes,
		HourlyRateCents:   sum.HourlyRateCents,
		WageCents:         sum.WageCents,
		IsComplete:        sum.IsComplete,
	}
	if sum.Staff != nil {
		resp.StaffName = sum.Staff.FullName
	}
	if sum.FirstClockIn != nil {
		v := sum.FirstClockIn.Format(time.RFC3339)
		resp.FirstClockIn = &v
	}
	if sum.LastClockOut != nil {
		v := sum.LastClockOut.Format(time.RFC3339)
		resp.LastClockOut = &v
	}
	return resp
}
