// Package parquet provides data structures and functions for exporting normalized
// health indicator records to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"

	"github.com/huangsam/healthdash/schema"
	"github.com/parquet-go/parquet-go"
)

// LongRecordRow is the Parquet row shape of a single normalized observation.
type LongRecordRow struct {
	// Country is the identifier cell of the source row
	Country string `parquet:"country,snappy"`

	// Year is parsed from the value column label
	Year int32 `parquet:"year,snappy"`

	// Value is the observation (nullable, null when the source cell was missing)
	Value *float64 `parquet:"value,optional,snappy"`
}

// ConvertLongRecords maps long table records onto Parquet rows, preserving order.
func ConvertLongRecords(records []schema.LongRecord) []LongRecordRow {
	rows := make([]LongRecordRow, 0, len(records))
	for _, r := range records {
		row := LongRecordRow{Country: r.Country, Year: int32(r.Year)}
		if !r.Missing {
			v := r.Value
			row.Value = &v
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteLongRecordsParquet writes rows to w as a single Parquet file.
func WriteLongRecordsParquet(w io.Writer, rows []LongRecordRow) error {
	// The schema is derived from the LongRecordRow struct tags
	writer := parquet.NewGenericWriter[LongRecordRow](w)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the row group and writes the footer
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
