package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/internal/parquet"
	"github.com/huangsam/healthdash/schema"
)

var errParquetNeedsFile = errors.New("parquet output requires --output-file")

// PrintRecordResults outputs the normalized records, dispatching based on the output format configured.
func PrintRecordResults(table *schema.LongTable, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return errParquetNeedsFile
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteRecordResults(w, table, cfg, duration)
	}, recordsSuccessMsg(cfg.Output))
}

// WriteRecordResults writes the normalized records to w in the configured output format.
func WriteRecordResults(w io.Writer, table *schema.LongTable, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, table); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRecordsCSV(w, table, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteLongRecordsParquet(w, parquet.ConvertLongRecords(table.Records)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeRecordsTable(w, table, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

func recordsSuccessMsg(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON records"
	case schema.CSVOut:
		return "Wrote CSV records"
	case schema.ParquetOut:
		return "Wrote Parquet records"
	default:
		return "Wrote table"
	}
}

// writeRecordsCSV writes one row per record; a missing value is an empty cell.
func writeRecordsCSV(w io.Writer, table *schema.LongTable, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"country", "year", "value"}, func(cw *csv.Writer) error {
		for _, r := range table.Records {
			value := ""
			if !r.Missing {
				value = fmtFloat(r.Value)
			}
			if err := cw.Write([]string{r.Country, strconv.Itoa(r.Year), value}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRecordsTable generates and writes the human-readable table.
func writeRecordsTable(w io.Writer, table *schema.LongTable, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	labelWidth := GetMaxTableLabelWidth(cfg)
	missing := 0

	data := make([][]string, 0, len(table.Records))
	for _, r := range table.Records {
		value := contract.MissingValue
		if r.Missing {
			missing++
			if cfg.UseColors {
				value = contract.MissingColor.Sprint(contract.MissingValue)
			}
		} else {
			value = fmtFloat(r.Value)
		}
		data = append(data, []string{
			contract.TruncateLabel(r.Country, labelWidth),
			strconv.Itoa(r.Year),
			value,
		})
	}

	if err := writeTable(w, []string{"Country", "Year", "Value"}, data); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %d records across %d countries (missing: %d)\n", len(table.Records), len(table.Countries()), missing); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Normalization completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
