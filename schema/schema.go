// Package schema has models, errors and defaults for all parts of healthdash.
package schema

import "encoding/json"

// WideTable is a dataset as loaded from disk: one header row and one row per entity.
// Rows are padded to the header width by the loader.
type WideTable struct {
	Source string     // Path the table was loaded from
	Header []string   // Column labels, e.g. Country, 1980, 2008
	Rows   [][]string // Raw cell contents in file order
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (t *WideTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// LongRecord is a single (country, year, value) observation.
type LongRecord struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
	Missing bool    `json:"missing,omitempty"` // Value is a placeholder when set
}

// longRecordJSON is the JSON view of a LongRecord; Value is null for missing observations.
type longRecordJSON struct {
	Country string   `json:"country"`
	Year    int      `json:"year"`
	Value   *float64 `json:"value"`
	Missing bool     `json:"missing,omitempty"`
}

// MarshalJSON writes a missing observation with a null value.
func (r LongRecord) MarshalJSON() ([]byte, error) {
	view := longRecordJSON{Country: r.Country, Year: r.Year, Missing: r.Missing}
	if !r.Missing {
		view.Value = &r.Value
	}
	return json.Marshal(view)
}

// UnmarshalJSON reads a null value as a missing observation.
func (r *LongRecord) UnmarshalJSON(data []byte) error {
	var view longRecordJSON
	if err := json.Unmarshal(data, &view); err != nil {
		return err
	}
	*r = LongRecord{Country: view.Country, Year: view.Year, Missing: view.Missing || view.Value == nil}
	if !r.Missing {
		r.Value = *view.Value
	}
	return nil
}

// LongTable holds the normalized records of one dataset.
type LongTable struct {
	Source  string       `json:"source"`
	Records []LongRecord `json:"records"`
}

// Countries returns the distinct countries of the table in first-seen order.
func (t *LongTable) Countries() []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, r := range t.Records {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		countries = append(countries, r.Country)
	}
	return countries
}

// ByCountry groups the records per country, keeping encounter order within each group.
func (t *LongTable) ByCountry() map[string][]LongRecord {
	groups := make(map[string][]LongRecord)
	for _, r := range t.Records {
		groups[r.Country] = append(groups[r.Country], r)
	}
	return groups
}

// CountryEntry reports how a country relates to the allow-list and to a dataset.
type CountryEntry struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"` // On the configured allow-list
	Present  bool   `json:"present"`  // Has at least one row in the dataset
}
