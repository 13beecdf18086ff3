package contract

import (
	"time"

	"github.com/huangsam/healthdash/schema"
)

// OutputWriter renders pipeline results in the configured output format.
// This allows orchestration to be tested without touching stdout.
type OutputWriter interface {
	WriteRecords(table *schema.LongTable, cfg *Config, duration time.Duration) error
	WriteFigures(figures schema.Figures, cfg *Config, duration time.Duration) error
	WriteCountries(entries []schema.CountryEntry, cfg *Config) error
}
