package service

import (
	"math"
	"time"

	"opsboard/backend/config"
	"opsboard/backend/internal/model"
)

// buildDailySummary rolls one staff/day's segments into a summary row.
// Returns nil when there are no segments; the caller deletes any stale
// summary instead of writing a zero row.
//
// Open segments contribute nothing to the totals and are excluded from
// last-clock-out candidacy, so a day with only an open shift is summed at
// zero but still records its first clock-in.
//
// Minute split per South African wage rules: Sundays pay double time on
// the whole total; other days cap regular time at the configured daily
// maximum (9 hours) with the rest as overtime. Public holidays are not
// modelled. Wage cents are rounded per bucket, then summed, so re-running
// on unchanged segments reproduces the row exactly.
func buildDailySummary(staffID string, workDate time.Time, segments []model.TimeSegment, rateCents int64, cfg *config.AttendanceConfig) *model.DailySummary {
	if len(segments) == 0 {
		return nil
	}

	summary := &model.DailySummary{
		StaffID:         staffID,
		WorkDate:        workDate,
		HourlyRateCents: rateCents,
	}

	for _, seg := range segments {
		minutes := 0
		if seg.DurationMinutes != nil {
			minutes = *seg.DurationMinutes
		}

		switch seg.SegmentKind {
		case model.SegmentWork:
			summary.TotalWorkMinutes += minutes
			if summary.FirstClockIn == nil || seg.StartTime.Before(*summary.FirstClockIn) {
				start := seg.StartTime
				summary.FirstClockIn = &start
			}
			if seg.EndTime != nil &&
				(summary.LastClockOut == nil || seg.EndTime.After(*summary.LastClockOut)) {
				end := *seg.EndTime
				summary.LastClockOut = &end
			}
		case model.SegmentBreak:
			summary.TotalBreakMinutes += minutes
			if seg.BreakCategory != nil && *seg.BreakCategory == model.BreakLunch {
				summary.LunchBreakMinutes += minutes
			} else {
				summary.OtherBreakMinutes += minutes
			}
		}
	}

	if workDate.Weekday() == time.Sunday {
		summary.DoubleTimeMinutes = summary.TotalWorkMinutes
	} else {
		summary.RegularMinutes = summary.TotalWorkMinutes
		if summary.RegularMinutes > cfg.RegularMinutesPerDay {
			summary.RegularMinutes = cfg.RegularMinutesPerDay
		}
		summary.OvertimeMinutes = summary.TotalWorkMinutes - summary.RegularMinutes
	}

	summary.WageCents = bucketWageCents(summary.RegularMinutes, rateCents, 1.0) +
		bucketWageCents(summary.OvertimeMinutes, rateCents, cfg.OvertimeMultiplier) +
		bucketWageCents(summary.DoubleTimeMinutes, rateCents, cfg.SundayMultiplier)

	summary.IsComplete = summary.LastClockOut != nil

	return summary
}

// bucketWageCents pays one minute bucket at a rate multiplier.
func bucketWageCents(minutes int, rateCents int64, multiplier float64) int64 {
	return int64(math.Round(float64(minutes) / 60.0 * float64(rateCents) * multiplier))
}
