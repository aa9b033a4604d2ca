package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

func TestXLSXExporter_Export(t *testing.T) {
	reports := []domain.Report{
		{
			ReferenceID: "MIT-123456", Category: "safety", Description: "Broken light near hostel gate",
			Location: "Hostel 2", Anonymous: false, Reporter: "asha@mitmusaffarpur.edu.in", Urgent: true,
			SubmittedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ReferenceID: "MIT-654321", Category: "maintenance", Description: "Leaking tap",
			Anonymous: true, SubmittedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	if err := NewXLSXExporter().Export(&buf, reports); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(reportsSheet)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Reference" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "MIT-123456" || rows[1][1] != "Safety Concern" || rows[1][2] != "Yes" || rows[1][5] != "asha@mitmusaffarpur.edu.in" {
		t.Fatalf("unexpected first row: %v", rows[1])
	}
	if rows[2][5] != "Anonymous" || rows[2][1] != "Infrastructure Issue" {
		t.Fatalf("unexpected second row: %v", rows[2])
	}
}

func TestXLSXExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXLSXExporter().Export(&buf, nil); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a workbook even with no reports")
	}
}
