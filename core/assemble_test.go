package core

import (
	"testing"

	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cholTable() *schema.LongTable {
	return &schema.LongTable{Records: []schema.LongRecord{
		{Country: "United States", Year: 1980, Value: 5.2},
		{Country: "United States", Year: 2008, Value: 5.0},
		{Country: "China", Year: 1980, Value: 4.1},
		{Country: "China", Year: 2008, Value: 4.6},
	}}
}

func bmiTable() *schema.LongTable {
	return &schema.LongTable{Records: []schema.LongRecord{
		{Country: "United States", Year: 1980, Value: 25.0},
		{Country: "United States", Year: 2008, Value: 28.3},
		{Country: "China", Year: 1980, Value: 20.5},
		{Country: "China", Year: 2008, Value: 22.9},
	}}
}

func TestBuildFiguresScenario(t *testing.T) {
	figures := BuildFigures(cholTable(), bmiTable())
	require.Len(t, figures, 3)

	expectedModes := []schema.RenderMode{schema.LinesMode, schema.LinesMode, schema.MarkersMode}
	for i, chart := range figures {
		require.Len(t, chart.Data, 2, "chart %d", i)
		assert.Equal(t, "United States", chart.Data[0].Name)
		assert.Equal(t, "China", chart.Data[1].Name)
		for _, s := range chart.Data {
			assert.Equal(t, expectedModes[i], s.Mode)
			assert.Equal(t, schema.SeriesType, s.Type)
		}
	}

	assert.Equal(t, schema.Layout{
		Title: "Cholesterol Levels Over Time",
		XAxis: schema.Axis{Title: "Year"},
		YAxis: schema.Axis{Title: "Total Cholesterol (mmol/L)"},
	}, figures[0].Layout)
	assert.Equal(t, schema.Layout{
		Title: "BMI Levels Over Time",
		XAxis: schema.Axis{Title: "Year"},
		YAxis: schema.Axis{Title: "BMI (kg/m^2)"},
	}, figures[1].Layout)
	assert.Equal(t, "Cholesterol vs BMI Levels", figures[2].Layout.Title)
	assert.Equal(t, "BMI (kg/m^2)", figures[2].Layout.XAxis.Title)

	assert.Equal(t, []float64{1980, 2008}, figures[0].Data[0].X)
	assert.Equal(t, []float64{5.2, 5.0}, figures[0].Data[0].Y)
	assert.Equal(t, []float64{20.5, 22.9}, figures[2].Data[1].X)
	assert.Equal(t, []float64{4.1, 4.6}, figures[2].Data[1].Y)
}

func TestGroupSeriesSkipsMissing(t *testing.T) {
	table := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "India", Year: 1980, Missing: true},
		{Country: "India", Year: 2008, Value: 21.0},
		{Country: "Brazil", Year: 1980, Missing: true},
	}}

	series := GroupSeries(table, schema.LinesMode)
	require.Len(t, series, 2)
	assert.Equal(t, []float64{2008}, series[0].X)
	assert.Equal(t, []float64{21.0}, series[0].Y)
	assert.Equal(t, 0, series[1].Len())
	assert.NotNil(t, series[1].X)
}

func TestGroupSeriesKeepsEncounterOrder(t *testing.T) {
	table := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "Japan", Year: 2008, Value: 5.2},
		{Country: "Germany", Year: 1980, Value: 6.1},
		{Country: "Japan", Year: 1980, Value: 4.9},
	}}

	series := GroupSeries(table, schema.LinesMode)
	require.Len(t, series, 2)
	assert.Equal(t, "Japan", series[0].Name)
	assert.Equal(t, []float64{2008, 1980}, series[0].X)
	assert.Equal(t, "Germany", series[1].Name)
}

func TestPairSeriesCountryOnlyInCholesterol(t *testing.T) {
	chol := cholTable()
	chol.Records = append(chol.Records,
		schema.LongRecord{Country: "Japan", Year: 1980, Value: 4.9},
		schema.LongRecord{Country: "Japan", Year: 2008, Value: 5.2},
	)

	figures := BuildFigures(chol, bmiTable())
	scatter := figures[2].Data
	require.Len(t, scatter, 3)
	assert.Equal(t, "Japan", scatter[2].Name)
	assert.Equal(t, 0, scatter[2].Len(), "country without BMI data yields an empty series")
}

func TestPairSeriesPairsByYear(t *testing.T) {
	x := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "France", Year: 2008, Value: 23.0},
		{Country: "France", Year: 1980, Value: 22.1},
		{Country: "France", Year: 1990, Value: 22.5},
	}}
	y := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "France", Year: 1980, Value: 6.0},
		{Country: "France", Year: 2008, Value: 5.4},
	}}

	series := PairSeries(x, y, schema.MarkersMode)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{23.0, 22.1}, series[0].X)
	assert.Equal(t, []float64{5.4, 6.0}, series[0].Y, "pairs follow the year key, not the row position")
}

func TestPairSeriesDuplicatesAndMissing(t *testing.T) {
	x := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "Italy", Year: 1980, Value: 24.0},
		{Country: "Italy", Year: 1980, Value: 24.5},
		{Country: "Italy", Year: 2008, Missing: true},
	}}
	y := &schema.LongTable{Records: []schema.LongRecord{
		{Country: "Italy", Year: 1980, Value: 5.5},
		{Country: "Italy", Year: 2008, Value: 5.4},
		{Country: "Italy", Year: 1980, Value: 5.6},
	}}

	series := PairSeries(x, y, schema.MarkersMode)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{24.0, 24.5}, series[0].X)
	assert.Equal(t, []float64{5.5, 5.6}, series[0].Y)
}

func TestBuildFiguresEmptyTables(t *testing.T) {
	figures := BuildFigures(&schema.LongTable{}, &schema.LongTable{})
	require.Len(t, figures, 3)
	for _, chart := range figures {
		assert.Empty(t, chart.Data)
		assert.NotNil(t, chart.Data)
	}
}
