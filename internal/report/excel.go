package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/gofresh/internal/domain"
)

const sheetName = "Report"

// WriteExcelFile writes the flat report to an Excel workbook.
func WriteExcelFile(path string, records []domain.ComparisonRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSheetRow(f, 1, Header()); err != nil {
		return err
	}

	for i, record := range records {
		if err := writeSheetRow(f, i+2, Row(record)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeSheetRow writes one row of cells at the given 1-based row number.
func writeSheetRow(f *excelize.File, rowNum int, cells []string) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
