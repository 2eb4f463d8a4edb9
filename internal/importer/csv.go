package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyInput indicates the input had no header row at all.
var ErrEmptyInput = errors.New("input file is empty")

// ReadCSVFile reads a CSV batch file from disk.
func ReadCSVFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV reads keyword rows from CSV data. The first record must be a
// header naming the keyword and target_url columns, in any order.
func ReadCSV(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	keywordCol, urlCol, err := validateHeader(header)
	if err != nil {
		return nil, fmt.Errorf("invalid header: %w", err)
	}

	result := &Result{}
	for rowNum := 2; ; rowNum++ {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			result.Errors = append(result.Errors, ImportError{
				Row:     rowNum,
				Message: readErr.Error(),
			})
			continue
		}

		appendRow(result, rowNum, record, keywordCol, urlCol)
	}

	return result, nil
}
