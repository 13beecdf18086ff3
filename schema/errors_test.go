package schema

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypesUnwrap(t *testing.T) {
	loadErr := fmt.Errorf("cleaning data: %w", &DataLoadError{Path: "x.csv", Err: os.ErrNotExist})
	var dle *DataLoadError
	require.True(t, errors.As(loadErr, &dle))
	assert.Equal(t, "x.csv", dle.Path)
	assert.ErrorIs(t, loadErr, os.ErrNotExist)

	schemaErr := fmt.Errorf("cleaning data: %w", &SchemaError{Path: "x.csv", Column: "1980"})
	var se *SchemaError
	require.True(t, errors.As(schemaErr, &se))
	assert.Contains(t, se.Error(), `column "1980"`)

	parseErr := &ValueParseError{Path: "x.csv", Row: 3, Column: "2008", Value: "abc", Err: errors.New("invalid syntax")}
	assert.Contains(t, parseErr.Error(), "row 3")
	assert.Contains(t, parseErr.Error(), `"abc"`)

	labelErr := &ValueParseError{Path: "x.csv", Value: "Year", Err: errors.New("no year")}
	assert.Contains(t, labelErr.Error(), "column label")
}
