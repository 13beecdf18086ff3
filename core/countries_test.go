package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/healthdash/internal/contract"
	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompareCountries(t *testing.T) {
	table := &schema.WideTable{
		Source: "chol.csv",
		Header: []string{"Country", "1980"},
		Rows: [][]string{
			{"Mexico", "4.8"},
			{"United States", "5.2"},
			{"Mexico", "4.9"},
		},
	}

	entries, err := CompareCountries(table, "Country", []string{"United States", "Japan"})
	require.NoError(t, err)
	assert.Equal(t, []schema.CountryEntry{
		{Name: "United States", Selected: true, Present: true},
		{Name: "Japan", Selected: true, Present: false},
		{Name: "Mexico", Selected: false, Present: true},
	}, entries)
}

func TestCompareCountriesMissingIDColumn(t *testing.T) {
	table := &schema.WideTable{Source: "bmi.csv", Header: []string{"Nation", "1980"}}
	_, err := CompareCountries(table, "Country", nil)

	var se *schema.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Country", se.Column)
}

func TestExecuteCountries(t *testing.T) {
	cfg := testConfig()
	loader := &contract.MockTableLoader{}
	loader.On("Load", mock.Anything, "chol.csv").Return(sampleWideTable(), nil)

	writer := &contract.MockOutputWriter{}
	writer.On("WriteCountries", mock.MatchedBy(func(entries []schema.CountryEntry) bool {
		return len(entries) >= len(cfg.Countries)
	}), cfg).Return(nil)

	require.NoError(t, ExecuteCountries(context.Background(), cfg, loader, writer))
	writer.AssertExpectations(t)
}

func TestGetCountriesResultsRequiresPath(t *testing.T) {
	cfg := testConfig()
	cfg.InputPath = ""
	_, err := GetCountriesResults(context.Background(), cfg, &contract.MockTableLoader{})
	require.Error(t, err)
}
