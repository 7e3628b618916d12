package models

import "sdgdash.org/internal/chart"

// SelectionOptions is the option set offered by the two dropdowns.
type SelectionOptions struct {
	Countries      []string `json:"countries"`
	Regions        []string `json:"regions"`
	DefaultCountry string   `json:"defaultCountry"`
	DefaultRegion  string   `json:"defaultRegion"`
}

// TrendEntry is one row of the country trend ranking.
type TrendEntry struct {
	Rank        int     `json:"rank"`
	Country     string  `json:"country"`
	Coefficient float64 `json:"coefficient"`
	Defined     bool    `json:"defined"`
	Rising      bool    `json:"rising"`
	Slope       float64 `json:"slope"`
	First       float64 `json:"first"`
	Last        float64 `json:"last"`
}

// ChartEntry is a figure together with the output and selection that
// produced it.
type ChartEntry struct {
	ID        string       `json:"id"`
	Selection string       `json:"selection,omitempty"`
	Figure    chart.Figure `json:"figure"`
}

// Chart outputs.
const (
	OutputCountryChart = "country-ghg-line-chart"
	OutputRegionChart  = "renewable-tech-time-series-chart"
)
