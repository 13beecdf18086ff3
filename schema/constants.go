package schema

// Custom string types for type safety.
type (
	// RenderMode represents how a series is drawn by the rendering layer.
	RenderMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// InputFormat represents the on-disk format of a wide dataset.
	InputFormat string

	// MissingPolicy represents how blank or NA cells are treated during normalization.
	MissingPolicy string
)

// All render modes supported.
const (
	LinesMode   RenderMode = "lines"
	MarkersMode RenderMode = "markers"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All input formats supported.
const (
	AutoFormat InputFormat = "auto" // default
	CSVFormat  InputFormat = "csv"
	XLSXFormat InputFormat = "xlsx"
)

// All missing-value policies supported.
const (
	KeepMissing  MissingPolicy = "keep" // default
	ErrorMissing MissingPolicy = "error"
)

// SeriesType is the plotly trace type used for every series.
const SeriesType = "scatter"

// Chart titles and axis labels.
const (
	CholesterolTitle      = "Cholesterol Levels Over Time"
	BMITitle              = "BMI Levels Over Time"
	CholesterolVsBMITitle = "Cholesterol vs BMI Levels"

	YearAxis        = "Year"
	CholesterolAxis = "Total Cholesterol (mmol/L)"
	BMIAxis         = "BMI (kg/m^2)"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidInputFormats lists all valid input formats.
var ValidInputFormats = map[InputFormat]struct{}{
	AutoFormat: {},
	CSVFormat:  {},
	XLSXFormat: {},
}

// ValidMissingPolicies lists all valid missing-value policies.
var ValidMissingPolicies = map[MissingPolicy]struct{}{
	KeepMissing:  {},
	ErrorMissing: {},
}

// MissingMarkers are cell contents treated as a missing observation, in lower case.
// Matching is case-insensitive and blank cells are always missing.
var MissingMarkers = map[string]struct{}{
	"na":  {},
	"n/a": {},
	"nan": {},
	"..":  {},
	"-":   {},
}
