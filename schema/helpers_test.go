package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		expectErr bool
	}{
		{name: "plain year", input: "1980", expected: 1980},
		{name: "date label", input: "2008-01-01", expected: 2008},
		{name: "surrounding spaces", input: " 1995 ", expected: 1995},
		{name: "year with suffix", input: "2001Q1", expected: 2001},
		{name: "no digits", input: "Country", expectErr: true},
		{name: "empty", input: "", expectErr: true},
		{name: "leading letter", input: "Y1980", expectErr: true},
		{name: "five digits", input: "19801", expectErr: true},
		{name: "beyond int32", input: "3000000000", expectErr: true},
		{name: "beyond int64", input: "99999999999999999999", expectErr: true},
		{name: "leading zeros", input: "0042", expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := ParseYear(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, year)
		})
	}
}

func FuzzParseYear(f *testing.F) {
	f.Add("1980")
	f.Add("2008-01-01")
	f.Add("")
	f.Add("Country")
	f.Add("3000000000")
	f.Fuzz(func(t *testing.T, label string) {
		year, err := ParseYear(label)
		if err == nil {
			assert.GreaterOrEqual(t, year, 0)
			assert.LessOrEqual(t, year, 9999)
		}
	})
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(""))
	assert.True(t, IsMissing("NA"))
	assert.True(t, IsMissing("NaN"))
	assert.True(t, IsMissing("NAN"))
	assert.True(t, IsMissing("n/a"))
	assert.True(t, IsMissing(".."))
	assert.False(t, IsMissing("5.2"))
	assert.False(t, IsMissing("abc"))
}

func TestLongTableGrouping(t *testing.T) {
	table := &LongTable{Records: []LongRecord{
		{Country: "China", Year: 1980, Value: 4.1},
		{Country: "Japan", Year: 1980, Value: 4.9},
		{Country: "China", Year: 2008, Value: 4.6},
	}}

	assert.Equal(t, []string{"China", "Japan"}, table.Countries())

	groups := table.ByCountry()
	require.Len(t, groups["China"], 2)
	assert.Equal(t, 1980, groups["China"][0].Year)
	assert.Equal(t, 2008, groups["China"][1].Year)
	assert.Len(t, groups["Japan"], 1)
}

func TestWideTableColumnIndex(t *testing.T) {
	table := &WideTable{Header: []string{"Country", "1980", "2008"}}
	assert.Equal(t, 0, table.ColumnIndex("Country"))
	assert.Equal(t, 2, table.ColumnIndex("2008"))
	assert.Equal(t, -1, table.ColumnIndex("1990"))
}

func TestDefaultsAreCopies(t *testing.T) {
	countries := DefaultCountries()
	require.Len(t, countries, 10)
	countries[0] = "Atlantis"
	assert.Equal(t, "United States", DefaultCountries()[0])

	assert.Equal(t, []string{"Country", "1980", "2008"}, DefaultKeepColumns())
	assert.Equal(t, []string{"1980", "2008"}, DefaultValueColumns())
}

func TestLongRecordJSON(t *testing.T) {
	t.Run("missing value is null", func(t *testing.T) {
		data, err := json.Marshal(LongRecord{Country: "Mexico", Year: 1980, Missing: true})
		require.NoError(t, err)
		assert.JSONEq(t, `{"country":"Mexico","year":1980,"value":null,"missing":true}`, string(data))
	})

	t.Run("present zero value is kept", func(t *testing.T) {
		data, err := json.Marshal(LongRecord{Country: "Japan", Year: 2008})
		require.NoError(t, err)
		assert.JSONEq(t, `{"country":"Japan","year":2008,"value":0}`, string(data))
	})

	t.Run("null value decodes as missing", func(t *testing.T) {
		var r LongRecord
		require.NoError(t, json.Unmarshal([]byte(`{"country":"Mexico","year":1980,"value":null}`), &r))
		assert.Equal(t, LongRecord{Country: "Mexico", Year: 1980, Missing: true}, r)
	})
}
