package core

import "github.com/huangsam/healthdash/schema"

// newSeries returns an empty series; X and Y encode as [] rather than null.
func newSeries(name string, mode schema.RenderMode) schema.Series {
	return schema.Series{
		Type: schema.SeriesType,
		Name: name,
		Mode: mode,
		X:    []float64{},
		Y:    []float64{},
	}
}

// GroupSeries builds one (year, value) series per country.
// Countries appear in first-seen order and points in encounter order.
// Missing observations are left out.
func GroupSeries(table *schema.LongTable, mode schema.RenderMode) []schema.Series {
	groups := table.ByCountry()
	countries := table.Countries()

	series := make([]schema.Series, 0, len(countries))
	for _, country := range countries {
		s := newSeries(country, mode)
		for _, r := range groups[country] {
			if r.Missing {
				continue
			}
			s.X = append(s.X, float64(r.Year))
			s.Y = append(s.Y, r.Value)
		}
		series = append(series, s)
	}
	return series
}

// PairSeries builds one series per country whose points pair x-table values with
// y-table values of the same (country, year). The k-th record of a year on one
// side pairs with the k-th record of that year on the other side. Years without
// a partner and missing observations are excluded.
//
// Countries follow the x-table's first-seen order; countries only present in the
// y-table follow after, each with an empty series.
func PairSeries(x, y *schema.LongTable, mode schema.RenderMode) []schema.Series {
	xGroups := x.ByCountry()
	yGroups := y.ByCountry()

	countries := x.Countries()
	for _, country := range y.Countries() {
		if _, ok := xGroups[country]; !ok {
			countries = append(countries, country)
		}
	}

	series := make([]schema.Series, 0, len(countries))
	for _, country := range countries {
		s := newSeries(country, mode)

		pending := make(map[int][]schema.LongRecord)
		for _, r := range yGroups[country] {
			pending[r.Year] = append(pending[r.Year], r)
		}

		for _, xr := range xGroups[country] {
			queue := pending[xr.Year]
			if len(queue) == 0 {
				continue
			}
			yr := queue[0]
			pending[xr.Year] = queue[1:]
			if xr.Missing || yr.Missing {
				continue
			}
			s.X = append(s.X, xr.Value)
			s.Y = append(s.Y, yr.Value)
		}
		series = append(series, s)
	}
	return series
}

// BuildFigures assembles the three dashboard charts from the cholesterol and BMI tables.
func BuildFigures(chol, bmi *schema.LongTable) schema.Figures {
	return schema.Figures{
		{
			Data: GroupSeries(chol, schema.LinesMode),
			Layout: schema.Layout{
				Title: schema.CholesterolTitle,
				XAxis: schema.Axis{Title: schema.YearAxis},
				YAxis: schema.Axis{Title: schema.CholesterolAxis},
			},
		},
		{
			Data: GroupSeries(bmi, schema.LinesMode),
			Layout: schema.Layout{
				Title: schema.BMITitle,
				XAxis: schema.Axis{Title: schema.YearAxis},
				YAxis: schema.Axis{Title: schema.BMIAxis},
			},
		},
		{
			Data: PairSeries(bmi, chol, schema.MarkersMode),
			Layout: schema.Layout{
				Title: schema.CholesterolVsBMITitle,
				XAxis: schema.Axis{Title: schema.BMIAxis},
				YAxis: schema.Axis{Title: schema.CholesterolAxis},
			},
		},
	}
}
