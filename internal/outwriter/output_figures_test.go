package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFigures() schema.Figures {
	return schema.Figures{
		{
			Data: []schema.Series{
				{Type: schema.SeriesType, Name: "United States", Mode: schema.LinesMode, X: []float64{1980, 2008}, Y: []float64{5.2, 5.0}},
				{Type: schema.SeriesType, Name: "China", Mode: schema.LinesMode, X: []float64{1980, 2008}, Y: []float64{4.1, 4.6}},
			},
			Layout: schema.Layout{
				Title: schema.CholesterolTitle,
				XAxis: schema.Axis{Title: schema.YearAxis},
				YAxis: schema.Axis{Title: schema.CholesterolAxis},
			},
		},
		{
			Data: []schema.Series{
				{Type: schema.SeriesType, Name: "Japan", Mode: schema.MarkersMode, X: []float64{}, Y: []float64{}},
			},
			Layout: schema.Layout{
				Title: schema.CholesterolVsBMITitle,
				XAxis: schema.Axis{Title: schema.BMIAxis},
				YAxis: schema.Axis{Title: schema.CholesterolAxis},
			},
		},
	}
}

func TestWriteFigureResultsTable(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 160}

	var buf bytes.Buffer
	require.NoError(t, WriteFigureResults(&buf, sampleFigures(), cfg, 10*time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "1. Cholesterol Levels Over Time (x: Year, y: Total Cholesterol (mmol/L))")
	assert.Contains(t, out, "2. Cholesterol vs BMI Levels")
	assert.Contains(t, out, "1980.0 2008.0")
	assert.Contains(t, out, "Japan")
	assert.Contains(t, out, "Assembled 2 charts with 4 points in 10ms")
}

func TestWriteFigureResultsJSON(t *testing.T) {
	cfg := &contract.Config{Output: schema.JSONOut}

	var buf bytes.Buffer
	require.NoError(t, WriteFigureResults(&buf, sampleFigures(), cfg, 0))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	layout := decoded[0]["layout"].(map[string]any)
	assert.Equal(t, schema.CholesterolTitle, layout["title"])
	assert.Equal(t, schema.YearAxis, layout["xaxis"].(map[string]any)["title"])

	data := decoded[1]["data"].([]any)
	japan := data[0].(map[string]any)
	assert.Equal(t, "scatter", japan["type"])
	assert.Equal(t, "markers", japan["mode"])
	assert.Equal(t, []any{}, japan["x"], "empty series encode as empty arrays")
}

func TestWriteFigureResultsCSV(t *testing.T) {
	cfg := &contract.Config{Output: schema.CSVOut, Precision: 2}

	var buf bytes.Buffer
	require.NoError(t, WriteFigureResults(&buf, sampleFigures(), cfg, 0))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"chart", "series", "mode", "x", "y"}, rows[0])
	assert.Equal(t, []string{schema.CholesterolTitle, "United States", "lines", "1980.00", "5.20"}, rows[1])
	assert.Equal(t, []string{schema.CholesterolVsBMITitle, "Japan", "markers", "", ""}, rows[5])
}

func TestWriteFigureResultsParquetRejected(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, OutputFile: filepath.Join(t.TempDir(), "f.parquet")}

	var buf bytes.Buffer
	require.Error(t, WriteFigureResults(&buf, sampleFigures(), cfg, 0))
	require.Error(t, PrintFigureResults(sampleFigures(), cfg, 0))
}

func TestOutWriterWriteFigures(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "figures.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: outFile}

	require.NoError(t, NewOutWriter().WriteFigures(sampleFigures(), cfg, 0))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"title": "Cholesterol vs BMI Levels"`)
}

func TestGetMaxTableLabelWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{name: "narrow override clamps to minimum", width: 40, expected: 12},
		{name: "typical terminal", width: 120, expected: 40},
		{name: "wide override clamps to maximum", width: 400, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxTableLabelWidth(&contract.Config{Width: tt.width}))
		})
	}
}
