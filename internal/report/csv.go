package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// WriteCSV writes the flat report to w.
func WriteCSV(w io.Writer, records []domain.ComparisonRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(Row(record)); err != nil {
			return fmt.Errorf("write row for %q: %w", record.Keyword, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// WriteCSVFile writes the flat report to a file.
func WriteCSVFile(path string, records []domain.ComparisonRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report file: %w", err)
	}
	return nil
}
