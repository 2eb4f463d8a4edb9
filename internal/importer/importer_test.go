package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/gofresh/internal/importer"
)

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"keyword,target_url",
		"best wireless earbuds,https://example.com/earbuds",
		"standing desk review,https://example.com/desks",
	}, "\n")

	result, err := importer.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.Errors)

	assert.Equal(t, "best wireless earbuds", result.Rows[0].Keyword)
	assert.Equal(t, "https://example.com/earbuds", result.Rows[0].TargetURL)
}

func TestReadCSVHeaderOrderIndependent(t *testing.T) {
	input := strings.Join([]string{
		"Target_URL,Keyword",
		"https://example.com/page,some keyword",
	}, "\n")

	result, err := importer.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "some keyword", result.Rows[0].Keyword)
	assert.Equal(t, "https://example.com/page", result.Rows[0].TargetURL)
}

func TestReadCSVMissingHeader(t *testing.T) {
	input := "keyword,url\nsome keyword,https://example.com"

	_, err := importer.ReadCSV(strings.NewReader(input))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "target_url")
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := importer.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, importer.ErrEmptyInput)
}

func TestReadCSVInvalidRowsCollected(t *testing.T) {
	input := strings.Join([]string{
		"keyword,target_url",
		",https://example.com/missing-keyword",
		"no url,",
		"bad scheme,ftp://example.com/file",
		"good row,https://example.com/good",
	}, "\n")

	result, err := importer.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "good row", result.Rows[0].Keyword)

	require.Len(t, result.Errors, 3)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, "keyword", result.Errors[0].Field)
	assert.Equal(t, 3, result.Errors[1].Row)
	assert.Equal(t, "target_url", result.Errors[1].Field)
	assert.Contains(t, result.Errors[2].Message, "http")
}

func TestReadCSVShortRow(t *testing.T) {
	input := strings.Join([]string{
		"keyword,target_url",
		"lonely value",
	}, "\n")

	result, err := importer.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "columns")
}

func TestImportErrorString(t *testing.T) {
	withField := importer.ImportError{Row: 4, Field: "keyword", Message: "keyword is required"}
	assert.Equal(t, "row 4: keyword: keyword is required", withField.Error())

	withoutField := importer.ImportError{Row: 7, Message: "too few columns"}
	assert.Equal(t, "row 7: too few columns", withoutField.Error())
}

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for rowIdx, cells := range rows {
		for colIdx, value := range cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadExcel(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"keyword", "target_url"},
		{"best laptops", "https://example.com/laptops"},
		{"", "https://example.com/unnamed"},
	})

	result, err := importer.ReadExcel(buf)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "best laptops", result.Rows[0].Keyword)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
}

func TestReadExcelInvalidHeader(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"name", "link"},
		{"x", "https://example.com"},
	})

	_, err := importer.ReadExcel(buf)
	assert.Error(t, err)
}
