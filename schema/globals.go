package schema

// DefaultIDColumn is the column holding the country name in wide datasets.
const DefaultIDColumn = "Country"

// Default dataset locations, relative to the working directory.
const (
	DefaultCholesterolPath = "data/female_cholesterol.csv"
	DefaultBMIPath         = "data/female_BMI.csv"
)

// defaultKeepColumns are the columns retained from the wide dataset.
var defaultKeepColumns = []string{DefaultIDColumn, "1980", "2008"}

// defaultValueColumns are the retained columns melted into long records.
var defaultValueColumns = []string{"1980", "2008"}

// defaultCountries is the allow-list of the ten largest economies.
var defaultCountries = []string{
	"United States",
	"China",
	"Japan",
	"Germany",
	"United Kingdom",
	"India",
	"France",
	"Brazil",
	"Italy",
	"Canada",
}

// DefaultKeepColumns returns a fresh copy of the default retained columns.
func DefaultKeepColumns() []string {
	return append([]string(nil), defaultKeepColumns...)
}

// DefaultValueColumns returns a fresh copy of the default value columns.
func DefaultValueColumns() []string {
	return append([]string(nil), defaultValueColumns...)
}

// DefaultCountries returns a fresh copy of the default country allow-list.
func DefaultCountries() []string {
	return append([]string(nil), defaultCountries...)
}
