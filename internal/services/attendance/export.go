package attendance

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeader = []any{"Date", "Employee ID", "Full Name", "Department", "Status"}

// ExportAttendance renders the records ListAttendance would return for filter
// as an XLSX workbook.
func (s *Service) ExportAttendance(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error) {
	const opn = "Attendance.ExportAttendance"
	log := s.initLogger(opn)

	records, err := s.ListAttendance(ctx, filter)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.WarnContext(ctx, "failed to close workbook", sl.Err(closeErr))
		}
	}()

	if err = file.SetSheetName(file.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err = file.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+2, cellErr)
		}
		row := exportRow(record)
		if err = file.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}

	log.DebugContext(ctx, "Attendance exported", "rows", len(records))
	return buf, nil
}

func exportRow(record models.Attendance) []any {
	var employeeCode, fullName, department string
	if record.Employee != nil {
		employeeCode = record.Employee.EmployeeID
		fullName = record.Employee.FullName
		department = record.Employee.Department
	}

	return []any{record.Date.Format(time.DateOnly), employeeCode, fullName, department, string(record.Status)}
}
