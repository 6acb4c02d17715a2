package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

func newTestAttendanceService() (AttendanceService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewAttendanceService(testAttendanceConfig(), repo, zap.NewNop())
	return svc, repo
}

func seedStaff(t *testing.T, repo *repository.Repository, id string, rateCents int64) {
	t.Helper()
	err := repo.Staff.Create(context.Background(), &model.Staff{
		StaffID:         id,
		FullName:        "Test Worker",
		EmployeeNo:      "EMP-" + id,
		HourlyRateCents: rateCents,
		IsActive:        true,
	})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
}

func TestRecordManualEventFullDay(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	ctx := context.Background()

	punches := []struct {
		kind     string
		tod      string
		category *string
	}{
		{model.EventShiftStart, "07:00", nil},
		{model.EventShiftEnd, "16:00", nil},
	}
	for _, p := range punches {
		_, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
			StaffID:       "s1",
			EventKind:     p.kind,
			WorkDate:      "2025-03-03",
			TimeOfDay:     p.tod,
			BreakCategory: p.category,
		}, "admin-1")
		if err != nil {
			t.Fatalf("record %s: %v", p.kind, err)
		}
	}

	segments, err := svc.ListSegments(ctx, &dto.SegmentListRequest{StaffID: "s1", WorkDate: "2025-03-03"})
	if err != nil {
		t.Fatalf("list segments: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Open {
		t.Error("segment should be closed")
	}

	summaries, err := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-03"})
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	sum := summaries[0]
	if sum.TotalWorkMinutes != 540 {
		t.Errorf("work = %d, want 540", sum.TotalWorkMinutes)
	}
	if sum.RegularMinutes != 540 || sum.OvertimeMinutes != 0 {
		t.Errorf("regular/overtime = %d/%d, want 540/0", sum.RegularMinutes, sum.OvertimeMinutes)
	}
	if sum.HourlyRateCents != 10000 {
		t.Errorf("rate snapshot = %d, want 10000", sum.HourlyRateCents)
	}
	if !sum.IsComplete {
		t.Error("day should be complete")
	}
}

func TestRecordManualEventUnknownStaff(t *testing.T) {
	svc, _ := newTestAttendanceService()

	_, err := svc.RecordManualEvent(context.Background(), &dto.ManualEventRequest{
		StaffID:   "nope",
		EventKind: model.EventShiftStart,
		WorkDate:  "2025-03-03",
		TimeOfDay: "07:00",
	}, "admin-1")
	if !errors.Is(err, ErrStaffNotFound) {
		t.Fatalf("err = %v, want ErrStaffNotFound", err)
	}
}

func TestRecordManualEventBreakCategoryOnShift(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)

	lunch := model.BreakLunch
	_, err := svc.RecordManualEvent(context.Background(), &dto.ManualEventRequest{
		StaffID:       "s1",
		EventKind:     model.EventShiftStart,
		WorkDate:      "2025-03-03",
		TimeOfDay:     "07:00",
		BreakCategory: &lunch,
	}, "admin-1")
	if !errors.Is(err, ErrBreakCategoryKind) {
		t.Fatalf("err = %v, want ErrBreakCategoryKind", err)
	}
}

func TestDeleteEventEmptiesDayRemovesSummary(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	ctx := context.Background()

	resp, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
		StaffID:   "s1",
		EventKind: model.EventShiftStart,
		WorkDate:  "2025-03-03",
		TimeOfDay: "07:00",
	}, "admin-1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := svc.DeleteEvent(ctx, resp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	segments, _ := svc.ListSegments(ctx, &dto.SegmentListRequest{StaffID: "s1", WorkDate: "2025-03-03"})
	if len(segments) != 0 {
		t.Errorf("segments remain after sole event deleted: %v", segments)
	}
	summaries, _ := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-03"})
	if len(summaries) != 0 {
		t.Errorf("summary remains after day emptied: %v", summaries)
	}
}

func TestOvernightShiftUpdatesBothDates(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	ctx := context.Background()

	// Monday 23:00 clock-in
	if _, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
		StaffID: "s1", EventKind: model.EventShiftStart,
		WorkDate: "2025-03-03", TimeOfDay: "23:00",
	}, "admin-1"); err != nil {
		t.Fatalf("clock in: %v", err)
	}

	// Tuesday 07:00 clock-out
	if _, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
		StaffID: "s1", EventKind: model.EventShiftEnd,
		WorkDate: "2025-03-04", TimeOfDay: "07:00",
	}, "admin-1"); err != nil {
		t.Fatalf("clock out: %v", err)
	}

	monday, _ := svc.ListSegments(ctx, &dto.SegmentListRequest{StaffID: "s1", WorkDate: "2025-03-03"})
	tuesday, _ := svc.ListSegments(ctx, &dto.SegmentListRequest{StaffID: "s1", WorkDate: "2025-03-04"})
	if len(monday) != 1 || len(tuesday) != 1 {
		t.Fatalf("segments mon/tue = %d/%d, want 1/1", len(monday), len(tuesday))
	}
	if monday[0].Open {
		t.Error("Monday open segment should have been displaced by the split")
	}
	if *monday[0].DurationMinutes+*tuesday[0].DurationMinutes != 480 {
		t.Errorf("halves sum to %d, want 480",
			*monday[0].DurationMinutes+*tuesday[0].DurationMinutes)
	}

	monSum, err := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-03"})
	if err != nil || len(monSum) != 1 {
		t.Fatalf("Monday summaries = %v (%v)", monSum, err)
	}
	if monSum[0].TotalWorkMinutes != 60 {
		t.Errorf("Monday work = %d, want 60", monSum[0].TotalWorkMinutes)
	}
	tueSum, _ := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-04"})
	if len(tueSum) != 1 || tueSum[0].TotalWorkMinutes != 420 {
		t.Fatalf("Tuesday summaries = %v, want one with 420 min", tueSum)
	}
}

func TestProcessSweepsActiveStaff(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	seedStaff(t, repo, "s2", 12000)
	ctx := context.Background()

	for _, staffID := range []string{"s1", "s2"} {
		for _, p := range [][2]string{{model.EventShiftStart, "08:00"}, {model.EventShiftEnd, "16:00"}} {
			if _, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
				StaffID: staffID, EventKind: p[0],
				WorkDate: "2025-03-05", TimeOfDay: p[1],
			}, "admin-1"); err != nil {
				t.Fatalf("record: %v", err)
			}
		}
	}

	resp, err := svc.Process(ctx, &dto.ProcessRequest{WorkDate: "2025-03-05"})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if resp.StaffProcessed != 2 || resp.StaffFailed != 0 {
		t.Errorf("processed/failed = %d/%d, want 2/0", resp.StaffProcessed, resp.StaffFailed)
	}

	summaries, _ := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-05"})
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	rates := map[string]int64{}
	for _, s := range summaries {
		rates[s.StaffID] = s.HourlyRateCents
	}
	if rates["s1"] != 10000 || rates["s2"] != 12000 {
		t.Errorf("rate snapshots = %v", rates)
	}
}

func TestProcessReRunIsIdempotent(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	ctx := context.Background()

	for _, p := range [][2]string{{model.EventShiftStart, "08:00"}, {model.EventShiftEnd, "17:30"}} {
		if _, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
			StaffID: "s1", EventKind: p[0],
			WorkDate: "2025-03-05", TimeOfDay: p[1],
		}, "admin-1"); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	staffID := "s1"
	if _, err := svc.Process(ctx, &dto.ProcessRequest{WorkDate: "2025-03-05", StaffID: &staffID}); err != nil {
		t.Fatalf("first process: %v", err)
	}
	first, _ := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-05"})

	if _, err := svc.Process(ctx, &dto.ProcessRequest{WorkDate: "2025-03-05", StaffID: &staffID}); err != nil {
		t.Fatalf("second process: %v", err)
	}
	second, _ := svc.ListSummaries(ctx, &dto.SummaryListRequest{WorkDate: "2025-03-05"})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("summary counts = %d/%d, want 1/1", len(first), len(second))
	}
	if first[0].TotalWorkMinutes != second[0].TotalWorkMinutes ||
		first[0].WageCents != second[0].WageCents {
		t.Errorf("re-run changed the summary: %+v vs %+v", first[0], second[0])
	}
	// 9h regular + 0.5h overtime at R100/h
	if second[0].WageCents != 90000+7500 {
		t.Errorf("wage = %d, want 97500", second[0].WageCents)
	}
}

func TestQuickEntryMixedResults(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	seedStaff(t, repo, "s2", 10000)
	ctx := context.Background()

	resp, err := svc.QuickEntry(ctx, &dto.QuickEntryRequest{
		StaffIDs:  []string{"s1", "s2", "ghost"},
		EventKind: model.EventShiftStart,
		WorkDate:  "2025-03-05",
		TimeOfDay: "07:00",
	}, "admin-1")
	if err != nil {
		t.Fatalf("quick entry: %v", err)
	}

	if resp.Total != 3 || resp.Success != 2 || resp.Failed != 1 {
		t.Fatalf("total/success/failed = %d/%d/%d, want 3/2/1",
			resp.Total, resp.Success, resp.Failed)
	}
	for _, r := range resp.Results {
		if r.StaffID == "ghost" && r.OK {
			t.Error("unknown staff must fail")
		}
		if r.StaffID != "ghost" && !r.OK {
			t.Errorf("staff %s failed: %s", r.StaffID, r.Error)
		}
	}

	for _, staffID := range []string{"s1", "s2"} {
		segs, _ := svc.ListSegments(ctx, &dto.SegmentListRequest{StaffID: staffID, WorkDate: "2025-03-05"})
		if len(segs) != 1 || !segs[0].Open {
			t.Errorf("staff %s segments = %v, want one open", staffID, segs)
		}
	}
}

func TestListSummariesParamValidation(t *testing.T) {
	svc, _ := newTestAttendanceService()

	_, err := svc.ListSummaries(context.Background(), &dto.SummaryListRequest{StaffID: "s1"})
	if !errors.Is(err, ErrSummaryQueryParams) {
		t.Fatalf("err = %v, want ErrSummaryQueryParams", err)
	}
}

func TestListSummariesStaffRange(t *testing.T) {
	svc, repo := newTestAttendanceService()
	seedStaff(t, repo, "s1", 10000)
	ctx := context.Background()

	for _, day := range []string{"2025-03-03", "2025-03-04"} {
		for _, p := range [][2]string{{model.EventShiftStart, "08:00"}, {model.EventShiftEnd, "16:00"}} {
			if _, err := svc.RecordManualEvent(ctx, &dto.ManualEventRequest{
				StaffID: "s1", EventKind: p[0], WorkDate: day, TimeOfDay: p[1],
			}, "admin-1"); err != nil {
				t.Fatalf("record: %v", err)
			}
		}
	}

	summaries, err := svc.ListSummaries(ctx, &dto.SummaryListRequest{
		StaffID: "s1", From: "2025-03-03", To: "2025-03-04",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	var totalWage int64
	for _, s := range summaries {
		totalWage += s.WageCents
	}
	if totalWage != 2*80000 {
		t.Errorf("total wage = %d, want 160000", totalWage)
	}
}

func TestProcessUnknownDateFormat(t *testing.T) {
	svc, _ := newTestAttendanceService()

	if _, err := svc.Process(context.Background(), &dto.ProcessRequest{WorkDate: "03/05/2025"}); err == nil {
		t.Fatal("expected parse error for bad date")
	}
}
