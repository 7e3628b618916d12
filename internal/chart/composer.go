package chart

import (
	"fmt"

	"sdgdash.org/internal/dataset"
	"sdgdash.org/internal/trend"
)

const (
	titleFontSize = 24
	hoverTemplate = "<b>%{text}</b><br>Year: %{x}<br>Total GHG: %{y}"
	firstTickYear = 1990
	tickStepYears = 3
)

// SectorFigure draws one line per sector. Energy is highlighted in red and
// the other sectors cycle through GreenShades by column position.
func SectorFigure(sectors dataset.SectorTable) Figure {
	fig := Figure{
		Layout: Layout{
			Title:      "GHG Emissions Over Time by Sector",
			TitleSize:  titleFontSize,
			XAxis:      Axis{Title: "Year"},
			YAxis:      Axis{Title: "CO2 Emissions (Mt)"},
			ShowLegend: true,
			Background: ColorBackground,
			Presets: []RangePreset{
				{Label: "Original", Range: [2]float64{0, 35000}},
				{Label: "Zoom 0-150", Range: [2]float64{0, 150}},
			},
		},
	}

	for i, label := range sectors.Labels {
		years, values := sectors.Series(label)
		color := GreenShades[i%len(GreenShades)]
		if label == dataset.SectorLabel("IPC1") {
			color = ColorEnergy
		}
		fig.Data = append(fig.Data, Trace{
			Kind:          KindScatter,
			Name:          label,
			Mode:          ModeLines,
			X:             yearsToX(years),
			Y:             values,
			Color:         color,
			HoverTemplate: hoverTemplate,
		})
	}
	return fig
}

// CapacityFigure draws the installed-capacity table as horizontal bars, in
// the order given, with the first row at the top.
func CapacityFigure(installations []dataset.RegionalRecord) Figure {
	trace := Trace{
		Kind:        KindBar,
		Orientation: OrientationHorizontal,
		X:           make([]float64, 0, len(installations)),
		Labels:      make([]string, 0, len(installations)),
		Color:       ColorFalling,
	}
	for _, rec := range installations {
		trace.X = append(trace.X, rec.Value)
		trace.Labels = append(trace.Labels, rec.Region)
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:      "Renewable energy-generating capacity by region (2022)",
			TitleSize:  titleFontSize,
			XAxis:      Axis{Title: "Capacity (watts per capita)"},
			YAxis:      Axis{Reversed: true},
			Background: ColorBackground,
			MarginLeft: 200,
		},
	}
}

// OverviewFigure draws the full time range for the limit highest-trend
// countries, coloured by trend direction.
func OverviewFigure(series []dataset.EmissionsSeries, ranking trend.Ranking, limit int) Figure {
	byName := make(map[string]dataset.EmissionsSeries, len(series))
	for _, s := range series {
		if _, dup := byName[s.Country]; !dup {
			byName[s.Country] = s
		}
	}

	fig := Figure{
		Layout: Layout{
			Title:      "GHG Emissions Over Time: Steepest Rising Trends",
			TitleSize:  titleFontSize,
			XAxis:      yearAxis(),
			YAxis:      Axis{Title: "Total GHG (kt of CO2 equivalent)"},
			ShowLegend: true,
			Background: ColorBackground,
		},
	}

	for _, entry := range ranking.Entries() {
		if limit > 0 && len(fig.Data) >= limit {
			break
		}
		s, ok := byName[entry.Country]
		if !ok {
			continue
		}
		fig.Data = append(fig.Data, countryTrace(s, entry.Coefficient))
	}
	return fig
}

// CountryFigure draws one country's emissions over the year domain: red
// while the trend is still rising, light green when it is flat or falling.
func CountryFigure(s dataset.EmissionsSeries, coefficient float64) Figure {
	return Figure{
		Data: []Trace{countryTrace(s, coefficient)},
		Layout: Layout{
			Title:      fmt.Sprintf("GHG Emissions Over Time for %s", s.Country),
			TitleSize:  titleFontSize,
			XAxis:      yearAxis(),
			YAxis:      Axis{Title: "Total GHG (kt of CO2 equivalent)"},
			Background: ColorBackground,
		},
	}
}

// RegionFigure draws a region's investment flows over time.
func RegionFigure(name string, rows []dataset.RegionalRecord) Figure {
	trace := Trace{
		Kind:          KindScatter,
		Name:          name,
		Mode:          ModeLinesMarkers,
		X:             make([]float64, 0, len(rows)),
		Y:             make([]float64, 0, len(rows)),
		Color:         ColorFalling,
		HoverTemplate: hoverTemplate,
	}
	for _, rec := range rows {
		trace.X = append(trace.X, float64(rec.TimePeriod))
		trace.Y = append(trace.Y, rec.Value)
	}

	return Figure{
		Data: []Trace{trace},
		Layout: Layout{
			Title:      fmt.Sprintf("International financial flows supporting clean energy R&D and renewable energy production %s", name),
			TitleSize:  titleFontSize,
			XAxis:      yearAxis(),
			YAxis:      Axis{Title: "Millions of constant USD"},
			Background: ColorBackground,
		},
	}
}

// TrendColor picks the emphasis colour for a trend coefficient.
func TrendColor(coefficient float64) string {
	if coefficient > 0 {
		return ColorRising
	}
	return ColorFalling
}

func countryTrace(s dataset.EmissionsSeries, coefficient float64) Trace {
	return Trace{
		Kind:          KindScatter,
		Name:          s.Country,
		Mode:          ModeLines,
		X:             yearsToX(s.Years),
		Y:             append([]float64(nil), s.Values...),
		Color:         TrendColor(coefficient),
		HoverTemplate: hoverTemplate,
	}
}

func yearAxis() Axis {
	return Axis{Title: "Year", Tick0: firstTickYear, Dtick: tickStepYears}
}

func yearsToX(years []int) []float64 {
	x := make([]float64, len(years))
	for i, y := range years {
		x[i] = float64(y)
	}
	return x
}
