// Package export renders admin downloads.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

const reportsSheet = "Reports"

var reportHeader = []any{"Reference", "Category", "Urgent", "Description", "Location", "Reporter", "Submitted At"}

// XLSXExporter writes reports as a single-sheet workbook.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// Export writes one row per report. Anonymous reports show "Anonymous" as reporter.
func (e *XLSXExporter) Export(w io.Writer, reports []domain.Report) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", reportsSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	if err := f.SetSheetRow(reportsSheet, "A1", &reportHeader); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	if err := f.SetCellStyle(reportsSheet, "A1", "G1", bold); err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	for i, r := range reports {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		reporter := r.Reporter
		if r.Anonymous || reporter == "" {
			reporter = "Anonymous"
		}
		row := []any{
			r.ReferenceID,
			categoryLabel(r.Category),
			yesNo(r.Urgent),
			r.Description,
			r.Location,
			reporter,
			r.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(reportsSheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(reportsSheet, "D", "D", 60); err != nil {
		return fmt.Errorf("xlsx layout: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func categoryLabel(value string) string {
	if c, ok := domain.FindReportCategory(value); ok {
		return c.Label
	}
	return value
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
