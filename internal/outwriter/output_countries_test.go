package outwriter

import (
	"bytes"
	"testing"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCountryEntries() []schema.CountryEntry {
	return []schema.CountryEntry{
		{Name: "United States", Selected: true, Present: true},
		{Name: "Japan", Selected: true, Present: false},
		{Name: "Mexico", Selected: false, Present: true},
	}
}

func TestWriteCountryResults(t *testing.T) {
	tests := []struct {
		name     string
		output   schema.OutputMode
		contains []string
	}{
		{
			name:     "text",
			output:   schema.TextOut,
			contains: []string{"Japan", "absent", "skipped", "3 countries listed, 1 selected but absent from the dataset"},
		},
		{
			name:     "csv",
			output:   schema.CSVOut,
			contains: []string{"country,selected,present\n", "Japan,true,false\n", "Mexico,false,true\n"},
		},
		{
			name:     "json",
			output:   schema.JSONOut,
			contains: []string{`"name": "Japan"`, `"present": false`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &contract.Config{Output: tt.output, Width: 120}
			var buf bytes.Buffer
			require.NoError(t, WriteCountryResults(&buf, sampleCountryEntries(), cfg))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestPrintCountryResultsParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: "unused.parquet"}
	require.Error(t, PrintCountryResults(sampleCountryEntries(), cfg))
}
