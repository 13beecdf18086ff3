package schema

import (
	"errors"
	"strconv"
	"strings"
)

// maxYearDigits bounds the leading digits read as a year.
const maxYearDigits = 4

var (
	errNoYear    = errors.New("label does not start with a year")
	errYearRange = errors.New("label year has more than four digits")
)

// ParseYear interprets a column label as a calendar year by reading its leading digits.
// It accepts plain labels like "1980" as well as date-like labels like "2008-01-01".
// At most four leading digits are accepted.
func ParseYear(label string) (int, error) {
	s := strings.TrimSpace(label)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errNoYear
	}
	if end > maxYearDigits {
		return 0, errYearRange
	}
	return strconv.Atoi(s[:end])
}

// IsMissing reports whether a trimmed cell denotes a missing observation.
func IsMissing(cell string) bool {
	if cell == "" {
		return true
	}
	_, ok := MissingMarkers[strings.ToLower(cell)]
	return ok
}

// ContainsString reports whether s is one of values, by exact match.
func ContainsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
