package excel

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

func TestComplaintsWorkbookRoundTrip(t *testing.T) {
	exporter := NewExporter()
	filedAt := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)

	buf, err := exporter.Complaints([]domain.ComplaintRecord{
		{
			ID:       "CPL-2026-AB12CD",
			FiledAt:  filedAt,
			Category: domain.ComplaintCategory,
			Priority: domain.ComplaintPriorityHigh,
			Status:   domain.ComplaintStatusUnderReview,
		},
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() {
		_ = file.Close()
	}()

	sheets := file.GetSheetList()
	if len(sheets) != 1 || sheets[0] != complaintsSheet {
		t.Fatalf("expected single %q sheet, got %v", complaintsSheet, sheets)
	}

	rows, err := file.GetRows(complaintsSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 record, got %d rows", len(rows))
	}
	for i, header := range complaintHeaders {
		if rows[0][i] != header {
			t.Fatalf("header %d: expected %q, got %q", i, header, rows[0][i])
		}
	}
	if rows[1][0] != "CPL-2026-AB12CD" {
		t.Fatalf("expected reference id in first cell, got %q", rows[1][0])
	}
	if rows[1][1] != "2026-08-30 09:30:00" {
		t.Fatalf("unexpected filed-at cell %q", rows[1][1])
	}
}

func TestComplaintsWorkbookWithNoRecords(t *testing.T) {
	buf, err := NewExporter().Complaints(nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	file, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() {
		_ = file.Close()
	}()

	rows, err := file.GetRows(complaintsSheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
}
