package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

// PrintFigureResults outputs the chart descriptions, dispatching based on the output format configured.
func PrintFigureResults(figures schema.Figures, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("%s output is not supported for figures", cfg.Output)
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteFigureResults(w, figures, cfg, duration)
	}, "Wrote figures")
}

// WriteFigureResults writes the chart descriptions to w in the configured output format.
func WriteFigureResults(w io.Writer, figures schema.Figures, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtPoints := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, figures); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeFiguresCSV(w, figures, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("%s output is not supported for figures", cfg.Output)
	default:
		if err := writeFiguresTable(w, figures, cfg, fmtPoints, duration); err != nil {
			return fmt.Errorf("error writing figures table output: %w", err)
		}
	}
	return nil
}

// writeFiguresCSV writes one row per plotted point.
// A series without points still gets a row with empty coordinates so that it is not lost.
func writeFiguresCSV(w io.Writer, figures schema.Figures, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"chart", "series", "mode", "x", "y"}, func(cw *csv.Writer) error {
		for _, chart := range figures {
			for _, s := range chart.Data {
				if s.Len() == 0 {
					if err := cw.Write([]string{chart.Layout.Title, s.Name, string(s.Mode), "", ""}); err != nil {
						return err
					}
					continue
				}
				for i := 0; i < s.Len(); i++ {
					row := []string{chart.Layout.Title, s.Name, string(s.Mode), fmtFloat(s.X[i]), fmtFloat(s.Y[i])}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// writeFiguresTable prints one table per chart, headed by the chart title and axes.
func writeFiguresTable(w io.Writer, figures schema.Figures, cfg *contract.Config, fmtPoints func([]float64) string, duration time.Duration) error {
	labelWidth := GetMaxTableLabelWidth(cfg)
	totalPoints := 0

	for i, chart := range figures {
		title := chart.Layout.Title
		if cfg.UseColors {
			title = contract.TitleColor.Sprint(title)
		}
		if _, err := fmt.Fprintf(w, "📈 %d. %s (x: %s, y: %s)\n", i+1, title, chart.Layout.XAxis.Title, chart.Layout.YAxis.Title); err != nil {
			return err
		}

		data := make([][]string, 0, len(chart.Data))
		for _, s := range chart.Data {
			totalPoints += s.Len()
			data = append(data, []string{
				contract.TruncateLabel(s.Name, labelWidth),
				string(s.Mode),
				strconv.Itoa(s.Len()),
				contract.TruncateLabel(fmtPoints(s.X), labelWidth),
				contract.TruncateLabel(fmtPoints(s.Y), labelWidth),
			})
		}
		if err := writeTable(w, []string{"Series", "Mode", "Points", "X", "Y"}, data); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Assembled %d charts with %d points in %v\n", len(figures), totalPoints, duration); err != nil {
		return err
	}
	return nil
}
