// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

var _ contract.OutputWriter = (*OutWriter)(nil)

// WriteRecords prints a normalized long table using the configured output format.
func (ow *OutWriter) WriteRecords(table *schema.LongTable, cfg *contract.Config, duration time.Duration) error {
	return PrintRecordResults(table, cfg, duration)
}

// WriteFigures prints chart descriptions using the configured output format.
func (ow *OutWriter) WriteFigures(figures schema.Figures, cfg *contract.Config, duration time.Duration) error {
	return PrintFigureResults(figures, cfg, duration)
}

// WriteCountries prints the allow-list coverage using the configured output format.
func (ow *OutWriter) WriteCountries(entries []schema.CountryEntry, cfg *contract.Config) error {
	return PrintCountryResults(entries, cfg)
}
