package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"opsboard/backend/config"
	"opsboard/backend/internal/dto"
	"opsboard/backend/internal/model"
	"opsboard/backend/internal/repository"
)

var (
	ErrExportEmptyRange   = errors.New("no summaries in the requested range")
	ErrExportRangeInvalid = errors.New("export range start is after end")
	ErrExportGenerateFail = errors.New("failed to generate export file")
)

// ExportService produces downloadable artefacts from attendance data.
//
// Both exports return a buffer plus a suggested filename; the handler sets
// the HTTP headers and streams the buffer.
type ExportService interface {
	// ExportPayroll builds an .xlsx workbook of daily summaries, one row
	// per staff/day, over an inclusive date range.
	ExportPayroll(ctx context.Context, req *dto.PayrollExportRequest) (*bytes.Buffer, string, error)
	// ExportShiftCalendar builds an iCalendar feed of one staff member's
	// closed work segments over an inclusive date range.
	ExportShiftCalendar(ctx context.Context, req *dto.ShiftCalendarRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.AttendanceConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(cfg *config.AttendanceConfig, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

var payrollHeaders = []string{
	"Employee No", "Name", "Date", "First In", "Last Out",
	"Work (min)", "Break (min)", "Lunch (min)",
	"Regular (min)", "Overtime (min)", "Double Time (min)",
	"Rate (R/h)", "Wage (R)", "Complete",
}

func (s *exportService) ExportPayroll(ctx context.Context, req *dto.PayrollExportRequest) (*bytes.Buffer, string, error) {
	from, to, err := parseExportRange(req.From, req.To)
	if err != nil {
		return nil, "", err
	}

	summaries, err := s.repo.DailySummary.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("list summaries for payroll failed", zap.Error(err))
		return nil, "", err
	}
	if len(summaries) == 0 {
		return nil, "", ErrExportEmptyRange
	}

	loc := s.cfg.Location()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Payroll"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 16)
	f.SetColWidth(sheetName, "C", "E", 12)
	f.SetColWidth(sheetName, "F", "N", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range payrollHeaders {
		cellRef, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cellRef, h)
		f.SetCellStyle(sheetName, cellRef, cellRef, headerStyle)
	}

	row := 2
	var totalWage int64
	for i := range summaries {
		sum := &summaries[i]

		employeeNo, name := sum.StaffID, ""
		if sum.Staff != nil {
			employeeNo = sum.Staff.EmployeeNo
			name = sum.Staff.FullName
		}

		firstIn, lastOut := "-", "-"
		if sum.FirstClockIn != nil {
			firstIn = sum.FirstClockIn.In(loc).Format("15:04")
		}
		if sum.LastClockOut != nil {
			lastOut = sum.LastClockOut.In(loc).Format("15:04")
		}

		complete := "yes"
		if !sum.IsComplete {
			complete = "no"
		}

		values := []interface{}{
			employeeNo, name, sum.WorkDate.Format("2006-01-02"), firstIn, lastOut,
			sum.TotalWorkMinutes, sum.TotalBreakMinutes, sum.LunchBreakMinutes,
			sum.RegularMinutes, sum.OvertimeMinutes, sum.DoubleTimeMinutes,
			float64(sum.HourlyRateCents) / 100, float64(sum.WageCents) / 100, complete,
		}
		for col, v := range values {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheetName, cellRef, v)
		}
		totalWage += sum.WageCents
		row++
	}

	// Total row
	labelCell, _ := excelize.CoordinatesToCellName(12, row)
	wageCell, _ := excelize.CoordinatesToCellName(13, row)
	f.SetCellValue(sheetName, labelCell, "Total")
	f.SetCellValue(sheetName, wageCell, float64(totalWage)/100)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write payroll workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("payroll_%s_%s.xlsx", req.From, req.To)
	return buf, filename, nil
}

func (s *exportService) ExportShiftCalendar(ctx context.Context, req *dto.ShiftCalendarRequest) (*bytes.Buffer, string, error) {
	from, to, err := parseExportRange(req.From, req.To)
	if err != nil {
		return nil, "", err
	}

	staff, err := s.repo.Staff.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStaffNotFound
		}
		s.logger.Error("load staff for calendar failed", zap.Error(err))
		return nil, "", err
	}

	segments, err := s.repo.TimeSegment.ListByStaffDateRange(ctx, req.StaffID, from, to)
	if err != nil {
		s.logger.Error("list segments for calendar failed", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//opsboard//attendance//EN")
	cal.SetName(fmt.Sprintf("%s shifts", staff.FullName))

	for i := range segments {
		seg := &segments[i]
		// Open segments and breaks are not calendar entries.
		if seg.SegmentKind != model.SegmentWork || seg.EndTime == nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@opsboard", seg.SegmentID))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(seg.StartTime)
		event.SetEndAt(*seg.EndTime)
		event.SetSummary(fmt.Sprintf("Shift: %s", staff.FullName))
		if seg.DurationMinutes != nil {
			event.SetDescription(fmt.Sprintf("Worked %d minutes", *seg.DurationMinutes))
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("shifts_%s_%s_%s.ics", staff.EmployeeNo, req.From, req.To)
	return buf, filename, nil
}

func parseExportRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse from: %w", err)
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse to: %w", err)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrExportRangeInvalid
	}
	return from, to, nil
}
