package service

import (
	"testing"
	"time"

	"opsboard/backend/internal/model"
)

var testLoc = time.FixedZone("SAST", 2*3600)

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, testLoc)
}

func ev(id, staffID, kind string, t time.Time) model.ClockEvent {
	return model.ClockEvent{EventID: id, StaffID: staffID, EventKind: kind, EventTime: t}
}

func breakEv(id, staffID, kind, category string, t time.Time) model.ClockEvent {
	return model.ClockEvent{EventID: id, StaffID: staffID, EventKind: kind, EventTime: t, BreakCategory: &category}
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, testLoc)
}

func TestBuildSegmentsPairedShift(t *testing.T) {
	date := testDate(2025, time.March, 3) // Monday
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
		ev("e2", "s1", model.EventShiftEnd, at(date, 16, 0)),
	}

	segments, displaced := buildSegments("s1", date, events, nil, testLoc)
	if len(displaced) != 0 {
		t.Fatalf("displaced = %v, want none", displaced)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}

	seg := segments[0]
	if seg.SegmentKind != model.SegmentWork {
		t.Errorf("kind = %s, want work", seg.SegmentKind)
	}
	if seg.DurationMinutes == nil || *seg.DurationMinutes != 540 {
		t.Errorf("duration = %v, want 540", seg.DurationMinutes)
	}
	if seg.StartEventID == nil || *seg.StartEventID != "e1" {
		t.Errorf("start event = %v, want e1", seg.StartEventID)
	}
	if seg.EndEventID == nil || *seg.EndEventID != "e2" {
		t.Errorf("end event = %v, want e2", seg.EndEventID)
	}
}

func TestBuildSegmentsMultiplePairsProduceOneSegmentEach(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
		ev("e2", "s1", model.EventShiftEnd, at(date, 12, 0)),
		ev("e3", "s1", model.EventShiftStart, at(date, 13, 0)),
		ev("e4", "s1", model.EventShiftEnd, at(date, 17, 0)),
	}

	segments, _ := buildSegments("s1", date, events, nil, testLoc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	total := 0
	for _, seg := range segments {
		if seg.DurationMinutes == nil {
			t.Fatal("segment unexpectedly open")
		}
		total += *seg.DurationMinutes
	}
	if total != 540 {
		t.Errorf("total minutes = %d, want 540", total)
	}
}

func TestBuildSegmentsUnmatchedStartBecomesOpen(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
	}

	segments, _ := buildSegments("s1", date, events, nil, testLoc)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if !segments[0].IsOpen() {
		t.Error("segment should be open")
	}
	if segments[0].DurationMinutes != nil {
		t.Error("open segment should have nil duration")
	}
}

func TestBuildSegmentsEveryUnmatchedStartOpens(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
		ev("e2", "s1", model.EventShiftStart, at(date, 7, 5)), // double punch
		ev("e3", "s1", model.EventShiftEnd, at(date, 16, 0)),
	}

	segments, _ := buildSegments("s1", date, events, nil, testLoc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}

	var open, closed int
	for _, seg := range segments {
		if seg.IsOpen() {
			open++
		} else {
			closed++
			// nearest preceding start wins the match
			if *seg.StartEventID != "e2" {
				t.Errorf("closed segment start = %s, want e2", *seg.StartEventID)
			}
		}
	}
	if open != 1 || closed != 1 {
		t.Errorf("open=%d closed=%d, want 1/1", open, closed)
	}
}

func TestBuildSegmentsBreakPairing(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
		breakEv("e2", "s1", model.EventBreakStart, model.BreakLunch, at(date, 12, 0)),
		breakEv("e3", "s1", model.EventBreakEnd, model.BreakLunch, at(date, 12, 45)),
		ev("e4", "s1", model.EventShiftEnd, at(date, 16, 0)),
	}

	segments, _ := buildSegments("s1", date, events, nil, testLoc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}

	var foundBreak bool
	for _, seg := range segments {
		if seg.SegmentKind == model.SegmentBreak {
			foundBreak = true
			if seg.BreakCategory == nil || *seg.BreakCategory != model.BreakLunch {
				t.Errorf("break category = %v, want lunch", seg.BreakCategory)
			}
			if *seg.DurationMinutes != 45 {
				t.Errorf("break duration = %d, want 45", *seg.DurationMinutes)
			}
		}
	}
	if !foundBreak {
		t.Fatal("no break segment produced")
	}
}

func TestBuildSegmentsOvernightSplit(t *testing.T) {
	prevDate := testDate(2025, time.March, 3)
	date := testDate(2025, time.March, 4)

	prevLeftover := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(prevDate, 23, 0)),
	}
	events := []model.ClockEvent{
		ev("e2", "s1", model.EventShiftEnd, at(date, 7, 0)),
	}

	segments, displaced := buildSegments("s1", date, events, prevLeftover, testLoc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	if len(displaced) != 1 || displaced[0] != "e1" {
		t.Fatalf("displaced = %v, want [e1]", displaced)
	}

	var prevHalf, currHalf *model.TimeSegment
	for i := range segments {
		switch segments[i].WorkDate.Format("2006-01-02") {
		case "2025-03-03":
			prevHalf = &segments[i]
		case "2025-03-04":
			currHalf = &segments[i]
		}
	}
	if prevHalf == nil || currHalf == nil {
		t.Fatal("expected one half on each date")
	}

	if *prevHalf.DurationMinutes != 60 {
		t.Errorf("previous-date half = %d min, want 60", *prevHalf.DurationMinutes)
	}
	if *currHalf.DurationMinutes != 420 {
		t.Errorf("current-date half = %d min, want 420", *currHalf.DurationMinutes)
	}
	if *prevHalf.DurationMinutes+*currHalf.DurationMinutes != 480 {
		t.Error("halves must sum to the full shift")
	}

	if prevHalf.StartEventID == nil || prevHalf.EndEventID != nil {
		t.Error("previous half keeps the start reference only")
	}
	if currHalf.EndEventID == nil || currHalf.StartEventID != nil {
		t.Error("current half keeps the end reference only")
	}
	if !currHalf.StartTime.Equal(dayStart(date, testLoc)) {
		t.Errorf("current half starts at %v, want local midnight", currHalf.StartTime)
	}
}

func TestBuildSegmentsStrayEndIgnored(t *testing.T) {
	date := testDate(2025, time.March, 4)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftEnd, at(date, 7, 0)),
	}

	segments, displaced := buildSegments("s1", date, events, nil, testLoc)
	if len(segments) != 0 {
		t.Errorf("got %d segments, want none for a stray end", len(segments))
	}
	if len(displaced) != 0 {
		t.Errorf("displaced = %v, want none", displaced)
	}
}

func TestMatchEventsNearestPrecedingStart(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("a", "s1", model.EventShiftStart, at(date, 8, 0)),
		ev("b", "s1", model.EventShiftStart, at(date, 9, 0)),
		ev("c", "s1", model.EventShiftEnd, at(date, 10, 0)),
	}

	res := matchEvents(events, eventPairs[0])
	if len(res.matched) != 1 {
		t.Fatalf("matched = %d, want 1", len(res.matched))
	}
	if res.matched[0][0].EventID != "b" {
		t.Errorf("matched start = %s, want b (nearest preceding)", res.matched[0][0].EventID)
	}
	if len(res.openStarts) != 1 || res.openStarts[0].EventID != "a" {
		t.Errorf("openStarts = %v, want [a]", res.openStarts)
	}
}

func TestLeftoverShiftStarts(t *testing.T) {
	date := testDate(2025, time.March, 3)
	events := []model.ClockEvent{
		ev("e1", "s1", model.EventShiftStart, at(date, 7, 0)),
		ev("e2", "s1", model.EventShiftEnd, at(date, 12, 0)),
		ev("e3", "s1", model.EventShiftStart, at(date, 23, 0)),
	}

	leftover := leftoverShiftStarts(events)
	if len(leftover) != 1 || leftover[0].EventID != "e3" {
		t.Fatalf("leftover = %v, want [e3]", leftover)
	}
}

func TestMinutesBetweenRounds(t *testing.T) {
	date := testDate(2025, time.March, 3)
	from := at(date, 8, 0)
	to := from.Add(29*time.Minute + 31*time.Second)
	if got := minutesBetween(from, to); got != 30 {
		t.Errorf("minutesBetween = %d, want 30", got)
	}
}
