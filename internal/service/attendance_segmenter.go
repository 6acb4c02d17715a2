package service

import (
	"math"
	"sort"
	"time"

	"opsboard/backend/internal/model"
)

// The segmentation engine reconstructs work/break intervals from the raw
// clock-event stream of one staff member on one local work date. It is a
// pure function of the event set: callers replace the staff/day's stored
// segments wholesale with its output.
//
// Matching is a greedy nearest-preceding-start heuristic, not strict
// stack pairing: each end event consumes the latest unconsumed start
// strictly before it. That tolerates duplicate punches, gaps and missing
// pairs at the cost of occasionally pairing an end with a "wrong" start
// when punches arrive out of order.

// eventPair describes one start/end kind family.
type eventPair struct {
	startKind   string
	endKind     string
	segmentKind string
}

var eventPairs = []eventPair{
	{model.EventShiftStart, model.EventShiftEnd, model.SegmentWork},
	{model.EventBreakStart, model.EventBreakEnd, model.SegmentBreak},
}

// matchResult is the outcome of pairing one kind family.
type matchResult struct {
	matched       [][2]model.ClockEvent // [start, end]
	openStarts    []model.ClockEvent    // starts with no matching end
	unmatchedEnds []model.ClockEvent    // ends with no same-day start
}

// matchEvents pairs ends with their nearest preceding unconsumed start.
// Ends are processed in chronological order; leftovers come back in
// chronological order too.
func matchEvents(events []model.ClockEvent, pair eventPair) matchResult {
	var starts, ends []model.ClockEvent
	for _, e := range events {
		switch e.EventKind {
		case pair.startKind:
			starts = append(starts, e)
		case pair.endKind:
			ends = append(ends, e)
		}
	}
	sort.SliceStable(starts, func(i, j int) bool { return starts[i].EventTime.Before(starts[j].EventTime) })
	sort.SliceStable(ends, func(i, j int) bool { return ends[i].EventTime.Before(ends[j].EventTime) })

	consumed := make([]bool, len(starts))
	var result matchResult

	for _, end := range ends {
		best := -1
		for i, start := range starts {
			if consumed[i] || !start.EventTime.Before(end.EventTime) {
				continue
			}
			if best == -1 || start.EventTime.After(starts[best].EventTime) {
				best = i
			}
		}
		if best == -1 {
			result.unmatchedEnds = append(result.unmatchedEnds, end)
			continue
		}
		consumed[best] = true
		result.matched = append(result.matched, [2]model.ClockEvent{starts[best], end})
	}

	for i, start := range starts {
		if !consumed[i] {
			result.openStarts = append(result.openStarts, start)
		}
	}

	return result
}

// leftoverShiftStarts pairs a day's events and returns the shift-starts
// left without an end, the candidates an overnight shift-end on the next
// day may claim.
func leftoverShiftStarts(events []model.ClockEvent) []model.ClockEvent {
	return matchEvents(events, eventPairs[0]).openStarts
}

// buildSegments derives the full segment set for one staff/day.
//
// events are the day's raw events; prevLeftover are the previous day's
// unmatched shift-starts, consulted only when a shift-end has no same-day
// start (an overnight shift). Such a shift is split at local midnight into
// a closed half on each date; the previous-day half keeps its start-event
// reference, the current-day half its end-event reference, and the split
// side of each is left nil.
//
// Every start still unconsumed after all ends are processed becomes an
// open segment (nil end, nil duration); the staff member is still
// clocked in or on break as far as the event log knows.
//
// Returns the segments (including previous-date halves) and the IDs of
// previous-day start events displaced by a split, whose stale open
// segments the caller must delete.
func buildSegments(staffID string, workDate time.Time, events, prevLeftover []model.ClockEvent, loc *time.Location) ([]model.TimeSegment, []string) {
	midnight := dayStart(workDate, loc)
	prevDate := workDate.AddDate(0, 0, -1)

	var segments []model.TimeSegment
	var displaced []string

	prevConsumed := make([]bool, len(prevLeftover))

	for _, pair := range eventPairs {
		res := matchEvents(events, pair)

		for _, m := range res.matched {
			segments = append(segments, closedSegment(staffID, workDate, pair.segmentKind, m[0], m[1]))
		}

		// overnight boundary crossing applies to shifts only
		if pair.segmentKind == model.SegmentWork {
			for _, end := range res.unmatchedEnds {
				best := -1
				for i, start := range prevLeftover {
					if prevConsumed[i] || !start.EventTime.Before(end.EventTime) {
						continue
					}
					if best == -1 || start.EventTime.After(prevLeftover[best].EventTime) {
						best = i
					}
				}
				if best == -1 {
					continue // stray end, nothing plausible to pair with
				}
				start := prevLeftover[best]
				prevConsumed[best] = true
				displaced = append(displaced, start.EventID)

				firstHalf := minutesBetween(start.EventTime, midnight)
				secondHalf := minutesBetween(midnight, end.EventTime)
				startID := start.EventID
				endID := end.EventID
				firstEnd := midnight
				segments = append(segments,
					model.TimeSegment{
						StaffID:         staffID,
						WorkDate:        prevDate,
						SegmentKind:     model.SegmentWork,
						StartTime:       start.EventTime,
						EndTime:         &firstEnd,
						DurationMinutes: &firstHalf,
						StartEventID:    &startID,
					},
					model.TimeSegment{
						StaffID:         staffID,
						WorkDate:        workDate,
						SegmentKind:     model.SegmentWork,
						StartTime:       midnight,
						EndTime:         &end.EventTime,
						DurationMinutes: &secondHalf,
						EndEventID:      &endID,
					},
				)
			}
		}

		for _, start := range res.openStarts {
			startID := start.EventID
			segments = append(segments, model.TimeSegment{
				StaffID:       staffID,
				WorkDate:      workDate,
				SegmentKind:   pair.segmentKind,
				BreakCategory: start.BreakCategory,
				StartTime:     start.EventTime,
				StartEventID:  &startID,
			})
		}
	}

	return segments, displaced
}

// closedSegment builds a fully matched segment from a start/end pair.
func closedSegment(staffID string, workDate time.Time, kind string, start, end model.ClockEvent) model.TimeSegment {
	duration := minutesBetween(start.EventTime, end.EventTime)
	startID := start.EventID
	endID := end.EventID
	endTime := end.EventTime

	category := start.BreakCategory
	if category == nil {
		category = end.BreakCategory
	}

	return model.TimeSegment{
		StaffID:         staffID,
		WorkDate:        workDate,
		SegmentKind:     kind,
		BreakCategory:   category,
		StartTime:       start.EventTime,
		EndTime:         &endTime,
		DurationMinutes: &duration,
		StartEventID:    &startID,
		EndEventID:      &endID,
	}
}

// minutesBetween rounds the interval to whole minutes.
func minutesBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Minutes()))
}

// dayStart returns local midnight of the given date.
func dayStart(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
