package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kirillkom/compliance-assistant/internal/core/domain"
)

const complaintsSheet = "Complaints"

var complaintHeaders = []string{"Reference ID", "Filed At", "Category", "Priority", "Status"}

// Exporter renders filed complaint records into a downloadable
// spreadsheet.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Complaints(records []domain.ComplaintRecord) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	index, err := file.NewSheet(complaintsSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, header := range complaintHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := file.SetCellValue(complaintsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, record := range records {
		row := i + 2
		values := []any{
			record.ID,
			record.FiledAt.Format("2006-01-02 15:04:05"),
			record.Category,
			record.Priority,
			record.Status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := file.SetCellValue(complaintsSheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}
