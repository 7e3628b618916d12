// Package chart builds declarative chart specifications for the dashboard
// and renders them to images.
package chart

// Trace kinds and modes.
const (
	KindScatter = "scatter"
	KindBar     = "bar"

	ModeLines        = "lines"
	ModeLinesMarkers = "lines+markers"

	OrientationHorizontal = "h"
)

// Colors used by the dashboard.
const (
	ColorRising     = "red"
	ColorFalling    = "lightgreen"
	ColorEnergy     = "red"
	ColorBackground = "white"
)

// GreenShades colour every sector except Energy.
var GreenShades = []string{
	"#006400", // DarkGreen
	"#228B22", // ForestGreen
	"#32CD32", // LimeGreen
	"#7CFC00", // LawnGreen
	"#ADFF2F", // GreenYellow
}

// Figure is a chart specification: series data plus axis and style metadata.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one data series. Scatter traces use numeric X; horizontal bar
// traces carry their category labels in Labels and values in X.
type Trace struct {
	Kind          string    `json:"type"`
	Name          string    `json:"name,omitempty"`
	Mode          string    `json:"mode,omitempty"`
	Orientation   string    `json:"orientation,omitempty"`
	X             []float64 `json:"x"`
	Y             []float64 `json:"y,omitempty"`
	Labels        []string  `json:"labels,omitempty"`
	Color         string    `json:"color"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

// Len returns the number of points in the trace.
func (t Trace) Len() int {
	return len(t.X)
}

type Layout struct {
	Title      string        `json:"title"`
	TitleSize  int           `json:"titleSize"`
	XAxis      Axis          `json:"xaxis"`
	YAxis      Axis          `json:"yaxis"`
	ShowLegend bool          `json:"showlegend"`
	Background string        `json:"background"`
	MarginLeft int           `json:"marginLeft,omitempty"`
	Presets    []RangePreset `json:"presets,omitempty"`
}

// Axis describes one axis. A zero Dtick means automatic ticks.
type Axis struct {
	Title    string      `json:"title,omitempty"`
	ShowGrid bool        `json:"showgrid"`
	Reversed bool        `json:"reversed,omitempty"`
	Tick0    float64     `json:"tick0,omitempty"`
	Dtick    float64     `json:"dtick,omitempty"`
	Range    *[2]float64 `json:"range,omitempty"`
}

// RangePreset is a named y-axis range the viewer can switch to.
type RangePreset struct {
	Label string     `json:"label"`
	Range [2]float64 `json:"range"`
}
