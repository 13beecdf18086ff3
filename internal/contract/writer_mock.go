package contract

import (
	"time"

	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/mock"
)

// MockOutputWriter is a testify mock for OutputWriter.
type MockOutputWriter struct {
	mock.Mock
}

var _ OutputWriter = &MockOutputWriter{} // Compile-time check

// WriteRecords implements the OutputWriter interface.
func (m *MockOutputWriter) WriteRecords(table *schema.LongTable, cfg *Config, duration time.Duration) error {
	return m.Called(table, cfg, duration).Error(0)
}

// WriteFigures implements the OutputWriter interface.
func (m *MockOutputWriter) WriteFigures(figures schema.Figures, cfg *Config, duration time.Duration) error {
	return m.Called(figures, cfg, duration).Error(0)
}

// WriteCountries implements the OutputWriter interface.
func (m *MockOutputWriter) WriteCountries(entries []schema.CountryEntry, cfg *Config) error {
	return m.Called(entries, cfg).Error(0)
}
