package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyFigure       = errors.New("figure has no data")
)

// DefaultWidth and DefaultHeight size rendered images.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

var namedColors = map[string]color.RGBA{
	"red":        {R: 0xff, A: 0xff},
	"lightgreen": {R: 0x90, G: 0xee, B: 0x90, A: 0xff},
	"white":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	"black":      {A: 0xff},
}

// ParseColor understands the named colours used by the composer and
// #RRGGBB hex strings.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Render draws fig with gonum/plot and writes it to w. format is "png" or
// "svg".
func Render(w io.Writer, fig Figure, width, height vg.Length, format string) error {
	if format != "png" && format != "svg" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if !hasPoints(fig) {
		return ErrEmptyFigure
	}

	p, err := buildPlot(fig)
	if err != nil {
		return err
	}

	writer, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := writer.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

func hasPoints(fig Figure) bool {
	for _, trace := range fig.Data {
		if trace.Len() > 0 {
			return true
		}
	}
	return false
}

func buildPlot(fig Figure) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fig.Layout.Title
	p.X.Label.Text = fig.Layout.XAxis.Title
	p.Y.Label.Text = fig.Layout.YAxis.Title
	if bg, err := ParseColor(fig.Layout.Background); err == nil {
		p.BackgroundColor = bg
	}

	for _, trace := range fig.Data {
		c, err := ParseColor(trace.Color)
		if err != nil {
			return nil, err
		}
		switch trace.Kind {
		case KindScatter:
			if err := addLine(p, trace, c, fig.Layout.ShowLegend); err != nil {
				return nil, err
			}
		case KindBar:
			if err := addBars(p, trace, c, fig.Layout.YAxis.Reversed); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unsupported trace type %q", trace.Kind)
		}
	}

	if fig.Layout.XAxis.Dtick > 0 && fig.Layout.XAxis.Tick0 != 0 {
		p.X.Tick.Marker = linearTicks{start: fig.Layout.XAxis.Tick0, step: fig.Layout.XAxis.Dtick}
	}
	if r := fig.Layout.YAxis.Range; r != nil {
		p.Y.Min, p.Y.Max = r[0], r[1]
	}
	return p, nil
}

func addLine(p *plot.Plot, trace Trace, c color.RGBA, legend bool) error {
	n := len(trace.X)
	if len(trace.Y) < n {
		n = len(trace.Y)
	}
	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xys[i].X = trace.X[i]
		xys[i].Y = trace.Y[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to create line for %s: %w", trace.Name, err)
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	if trace.Mode == ModeLinesMarkers {
		points, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("failed to create markers for %s: %w", trace.Name, err)
		}
		points.GlyphStyle.Color = c
		p.Add(points)
	}
	if legend && trace.Name != "" {
		p.Legend.Add(trace.Name, line)
	}
	return nil
}

// addBars draws a horizontal bar chart. gonum/plot places the first
// category at the bottom, so a reversed axis reverses the data instead.
func addBars(p *plot.Plot, trace Trace, c color.RGBA, reversed bool) error {
	values := make(plotter.Values, len(trace.X))
	labels := make([]string, len(trace.X))
	for i := range trace.X {
		j := i
		if reversed {
			j = len(trace.X) - 1 - i
		}
		values[i] = trace.X[j]
		if j < len(trace.Labels) {
			labels[i] = trace.Labels[j]
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return fmt.Errorf("failed to create bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(labels...)
	return nil
}

// linearTicks places a labelled tick every step starting at start.
type linearTicks struct {
	start, step float64
}

func (t linearTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := t.start; v <= max; v += t.step {
		if v < min {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}
