package schema

import "fmt"

// DataLoadError reports a dataset that is missing, unreadable or malformed.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("cannot load dataset %q: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// SchemaError reports an expected column that is absent from a dataset.
type SchemaError struct {
	Path   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in dataset %q", e.Column, e.Path)
}

// ValueParseError reports a cell or column label that cannot be interpreted.
// Row is the 1-based data row, or 0 for a header label.
type ValueParseError struct {
	Path   string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ValueParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("cannot parse column label %q in dataset %q: %v", e.Value, e.Path, e.Err)
	}
	return fmt.Sprintf("cannot parse value %q at row %d column %q in dataset %q: %v", e.Value, e.Row, e.Column, e.Path, e.Err)
}

func (e *ValueParseError) Unwrap() error {
	return e.Err
}
