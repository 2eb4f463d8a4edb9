// Package importer reads batch input files: one keyword plus target URL
// per row, from CSV or Excel. Invalid rows are collected as errors while
// the valid rows proceed, so one bad line never sinks a batch.
package importer

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/gofresh/internal/domain"
)

// Expected header column names, matched case-insensitively.
const (
	headerKeyword   = "keyword"
	headerTargetURL = "target_url"

	minRequiredColumns = 2
)

// ImportError describes why one input row was rejected.
type ImportError struct {
	// Row is the 1-based row number in the input file.
	Row int `json:"row"`
	// Field names the offending column, when one can be singled out.
	Field string `json:"field,omitempty"`
	// Message says what was wrong.
	Message string `json:"message"`
}

func (e ImportError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// Result holds the usable rows and the per-row rejections from one file.
type Result struct {
	Rows   []domain.CheckRow
	Errors []ImportError
}

// ReadFile reads a batch input file, dispatching on the file extension.
// CSV is the default for unrecognized extensions.
func ReadFile(path string) (*Result, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadExcelFile(path)
	}
	return ReadCSVFile(path)
}

// validateHeader checks the first row names the expected columns and
// returns the column index of each.
func validateHeader(header []string) (keywordCol, urlCol int, err error) {
	keywordCol, urlCol = -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case headerKeyword:
			keywordCol = i
		case headerTargetURL:
			urlCol = i
		}
	}

	if keywordCol < 0 {
		return 0, 0, fmt.Errorf("missing %q column", headerKeyword)
	}
	if urlCol < 0 {
		return 0, 0, fmt.Errorf("missing %q column", headerTargetURL)
	}
	return keywordCol, urlCol, nil
}

// validateRow checks one parsed row. An empty field name on the returned
// error means the row as a whole was unusable.
func validateRow(rowNum int, row domain.CheckRow) *ImportError {
	if strings.TrimSpace(row.Keyword) == "" {
		return &ImportError{Row: rowNum, Field: headerKeyword, Message: "keyword is required"}
	}
	if strings.TrimSpace(row.TargetURL) == "" {
		return &ImportError{Row: rowNum, Field: headerTargetURL, Message: "target url is required"}
	}

	u, err := url.Parse(row.TargetURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ImportError{
			Row:     rowNum,
			Field:   headerTargetURL,
			Message: "target url must be an absolute http or https URL",
		}
	}

	return nil
}

// appendRow validates a parsed row and adds it to the result, or records
// the rejection.
func appendRow(result *Result, rowNum int, cells []string, keywordCol, urlCol int) {
	if len(cells) < minRequiredColumns || keywordCol >= len(cells) || urlCol >= len(cells) {
		result.Errors = append(result.Errors, ImportError{
			Row:     rowNum,
			Message: "too few columns",
		})
		return
	}

	row := domain.CheckRow{
		Keyword:   strings.TrimSpace(cells[keywordCol]),
		TargetURL: strings.TrimSpace(cells[urlCol]),
	}

	if importErr := validateRow(rowNum, row); importErr != nil {
		result.Errors = append(result.Errors, *importErr)
		return
	}

	result.Rows = append(result.Rows, row)
}
