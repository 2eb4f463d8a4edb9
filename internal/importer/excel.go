package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadExcelFile reads an Excel batch file from disk. The first sheet is
// used; its first row must be the header.
func ReadExcelFile(path string) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

// ReadExcel reads keyword rows from Excel data.
func ReadExcel(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*Result, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyInput
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	keywordCol, urlCol, err := validateHeader(rows[0])
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	result := &Result{}
	for i, cells := range rows[1:] {
		// Excel rows are 1-based and the header is row 1.
		appendRow(result, i+2, cells, keywordCol, urlCol)
	}

	return result, nil
}
