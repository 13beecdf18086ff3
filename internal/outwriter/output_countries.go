package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

// PrintCountryResults outputs the allow-list coverage, dispatching based on the output format configured.
func PrintCountryResults(entries []schema.CountryEntry, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("%s output is not supported for countries", cfg.Output)
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteCountryResults(w, entries, cfg)
	}, "Wrote countries")
}

// WriteCountryResults writes the allow-list coverage to w.
func WriteCountryResults(w io.Writer, entries []schema.CountryEntry, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeJSON(w, entries)
	case schema.CSVOut:
		return writeCSVWithHeader(w, []string{"country", "selected", "present"}, func(cw *csv.Writer) error {
			for _, e := range entries {
				if err := cw.Write([]string{e.Name, strconv.FormatBool(e.Selected), strconv.FormatBool(e.Present)}); err != nil {
					return err
				}
			}
			return nil
		})
	default:
		return writeCountriesTable(w, entries, cfg)
	}
}

func writeCountriesTable(w io.Writer, entries []schema.CountryEntry, cfg *contract.Config) error {
	labelWidth := GetMaxTableLabelWidth(cfg)
	absent := 0

	data := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := "ok"
		switch {
		case e.Selected && !e.Present:
			absent++
			status = "absent"
			if cfg.UseColors {
				status = contract.MissingColor.Sprint(status)
			}
		case !e.Selected:
			status = "skipped"
		}
		data = append(data, []string{contract.TruncateLabel(e.Name, labelWidth), yesNo(e.Selected), yesNo(e.Present), status})
	}

	if err := writeTable(w, []string{"Country", "Selected", "Present", "Status"}, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d countries listed, %d selected but absent from the dataset\n", len(entries), absent)
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
