package contract

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/healthdash/schema"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var errEmptyDataset = errors.New("dataset has no header row")

// LocalTableLoader reads wide datasets from the local filesystem.
type LocalTableLoader struct {
	format schema.InputFormat
	sheet  string
}

var _ TableLoader = &LocalTableLoader{} // Compile-time check

// NewLocalTableLoader creates a loader for the given format.
// Sheet selects the worksheet of xlsx inputs and is ignored for CSV.
func NewLocalTableLoader(format schema.InputFormat, sheet string) *LocalTableLoader {
	return &LocalTableLoader{format: format, sheet: sheet}
}

// Load implements the TableLoader interface.
func (l *LocalTableLoader) Load(ctx context.Context, path string) (*schema.WideTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		records [][]string
		err     error
	)
	switch resolveFormat(l.format, path) {
	case schema.XLSXFormat:
		records, err = readXLSX(path, l.sheet)
	default:
		records, err = readCSV(path)
	}
	if err != nil {
		return nil, &schema.DataLoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &schema.DataLoadError{Path: path, Err: errEmptyDataset}
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	rows := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, padRow(rec, len(header)))
	}

	return &schema.WideTable{Source: path, Header: header, Rows: rows}, nil
}

// resolveFormat picks the concrete format for auto detection.
func resolveFormat(format schema.InputFormat, path string) schema.InputFormat {
	if format != schema.AutoFormat && format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return schema.XLSXFormat
	}
	return schema.CSVFormat
}

// readCSV reads every record of a UTF-8 CSV file, dropping a leading byte order mark.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	decoded := transform.NewReader(file, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", err)
	}
	return records, nil
}

// readXLSX reads the raw cell values of one worksheet.
func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errEmptyDataset
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	return f.GetRows(sheet, excelize.Options{RawCellValue: true})
}

// padRow extends a short row with empty cells up to width.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
