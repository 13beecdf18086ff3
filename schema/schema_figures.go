package schema

// Series is one plotted line or marker set, usually one per country.
// The JSON shape matches a plotly scatter trace.
type Series struct {
	Type string     `json:"type"`
	Name string     `json:"name"`
	Mode RenderMode `json:"mode"`
	X    []float64  `json:"x"`
	Y    []float64  `json:"y"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return min(len(s.X), len(s.Y))
}

// Axis holds the metadata of one chart axis.
type Axis struct {
	Title string `json:"title"`
}

// Layout is the chart metadata kept apart from the plotted data.
type Layout struct {
	Title string `json:"title"`
	XAxis Axis   `json:"xaxis"`
	YAxis Axis   `json:"yaxis"`
}

// Chart is a collection of series plus its layout.
type Chart struct {
	Data   []Series `json:"data"`
	Layout Layout   `json:"layout"`
}

// Figures holds the charts handed to the rendering layer.
type Figures []Chart
