package core

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

var (
	errMissingValue = errors.New("missing value")
	errNotFinite    = errors.New("value is not a finite decimal number")
)

// NormalizeOptions controls how a wide table is reshaped into long records.
type NormalizeOptions struct {
	IDColumn     string               // Column holding the country name
	KeepColumns  []string             // Columns retained from the wide table
	ValueColumns []string             // Retained columns melted into records, in output order
	Countries    []string             // Allow-list of countries, exact match
	Missing      schema.MissingPolicy // Treatment of blank and NA cells
}

// NormalizeOptionsFromConfig builds normalization options from a validated config.
func NormalizeOptionsFromConfig(cfg *contract.Config) NormalizeOptions {
	return NormalizeOptions{
		IDColumn:     cfg.IDColumn,
		KeepColumns:  cfg.KeepColumns,
		ValueColumns: cfg.ValueColumns,
		Countries:    cfg.Countries,
		Missing:      cfg.Missing,
	}
}

// valueColumn is a value column resolved against the table header.
type valueColumn struct {
	name  string
	index int
	year  int
}

// Normalize reshapes a wide table into long records restricted to the allow-listed countries.
// Records are ordered by source row, then by the order of the value columns.
func Normalize(table *schema.WideTable, opts NormalizeOptions) (*schema.LongTable, error) {
	// Projection: every retained column must exist in the source.
	kept := make(map[string]int, len(opts.KeepColumns))
	for _, col := range opts.KeepColumns {
		idx := table.ColumnIndex(col)
		if idx < 0 {
			return nil, &schema.SchemaError{Path: table.Source, Column: col}
		}
		kept[col] = idx
	}

	idIdx, ok := kept[opts.IDColumn]
	if !ok {
		return nil, &schema.SchemaError{Path: table.Source, Column: opts.IDColumn}
	}

	columns := make([]valueColumn, 0, len(opts.ValueColumns))
	for _, col := range opts.ValueColumns {
		idx, ok := kept[col]
		if !ok {
			return nil, &schema.SchemaError{Path: table.Source, Column: col}
		}
		year, err := schema.ParseYear(col)
		if err != nil {
			return nil, &schema.ValueParseError{Path: table.Source, Column: col, Value: col, Err: err}
		}
		columns = append(columns, valueColumn{name: col, index: idx, year: year})
	}

	allowed := make(map[string]struct{}, len(opts.Countries))
	for _, c := range opts.Countries {
		allowed[c] = struct{}{}
	}

	result := &schema.LongTable{Source: table.Source, Records: []schema.LongRecord{}}
	for i, row := range table.Rows {
		country := cellAt(row, idIdx)
		if _, ok := allowed[country]; !ok {
			continue
		}
		for _, col := range columns {
			record, err := parseRecord(table.Source, i+1, country, col, cellAt(row, col.index), opts.Missing)
			if err != nil {
				return nil, err
			}
			result.Records = append(result.Records, record)
		}
	}
	return result, nil
}

// parseRecord converts one cell into a long record, honoring the missing-value policy.
func parseRecord(source string, row int, country string, col valueColumn, raw string, policy schema.MissingPolicy) (schema.LongRecord, error) {
	record := schema.LongRecord{Country: country, Year: col.year}
	cell := strings.TrimSpace(raw)

	if schema.IsMissing(cell) {
		if policy == schema.ErrorMissing {
			return record, &schema.ValueParseError{Path: source, Row: row, Column: col.name, Value: raw, Err: errMissingValue}
		}
		record.Missing = true
		return record, nil
	}

	value, err := parseDecimal(cell)
	if err != nil {
		return record, &schema.ValueParseError{Path: source, Row: row, Column: col.name, Value: raw, Err: err}
	}
	record.Value = value
	return record, nil
}

// parseDecimal parses a finite base-10 number.
// Inf, NaN and hex float spellings accepted by strconv are rejected.
func parseDecimal(cell string) (float64, error) {
	if lower := strings.ToLower(strings.TrimLeft(cell, "+-")); strings.HasPrefix(lower, "0x") {
		return 0, errNotFinite
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errNotFinite
	}
	return value, nil
}

// cellAt returns the cell at idx, or an empty string for short rows.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// CleanData loads the dataset at path and normalizes it.
func CleanData(ctx context.Context, loader contract.TableLoader, path string, opts NormalizeOptions) (*schema.LongTable, error) {
	table, err := loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return Normalize(table, opts)
}
