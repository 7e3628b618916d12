// Package dashboard holds the immutable view state built once at startup and
// recomputes the selection-driven charts on demand.
package dashboard

import (
	"errors"
	"fmt"
	"sort"

	"sdgdash.org/internal/chart"
	"sdgdash.org/internal/dataset"
	"sdgdash.org/internal/region"
	"sdgdash.org/internal/trend"
)

// ErrUnknownSelection is returned for a country or region outside the
// offered option set.
var ErrUnknownSelection = errors.New("unknown selection")

// Static figure identifiers.
const (
	FigureSectors  = "sectors"
	FigureCapacity = "capacity"
	FigureOverview = "overview"
)

// Options configures derived views.
type Options struct {
	// OverviewCountries bounds the overview chart, 0 draws every country.
	OverviewCountries int
}

// Dashboard is read-only after New returns and safe for concurrent use.
type Dashboard struct {
	emissions     map[string]dataset.EmissionsSeries
	ranking       trend.Ranking
	installations []dataset.RegionalRecord
	investments   []dataset.RegionalRecord
	sectors       dataset.SectorTable
	static        map[string]chart.Figure
}

// New ranks the countries, filters the regional tables and composes the
// static figures.
func New(data *dataset.Data, opts Options) *Dashboard {
	d := &Dashboard{
		emissions:     make(map[string]dataset.EmissionsSeries, len(data.Emissions)),
		ranking:       trend.Rank(data.Emissions),
		installations: region.Installations(data.Installations),
		investments:   region.Investments(data.Investments),
		sectors:       data.Sectors,
	}
	for _, s := range data.Emissions {
		if _, dup := d.emissions[s.Country]; !dup {
			d.emissions[s.Country] = s
		}
	}

	d.static = map[string]chart.Figure{
		FigureSectors:  chart.SectorFigure(d.sectors),
		FigureCapacity: chart.CapacityFigure(d.installations),
		FigureOverview: chart.OverviewFigure(data.Emissions, d.ranking, opts.OverviewCountries),
	}
	return d
}

// Ranking returns the trend ranking.
func (d *Dashboard) Ranking() trend.Ranking {
	return d.ranking
}

// CountryOptions lists the selectable countries, highest trend first.
func (d *Dashboard) CountryOptions() []string {
	return d.ranking.Names()
}

// RegionOptions lists the selectable regions.
func (d *Dashboard) RegionOptions() []string {
	return region.Names()
}

// DefaultCountry is the highest-ranked country, "" when there is none.
func (d *Dashboard) DefaultCountry() string {
	top, _ := d.ranking.Top()
	return top.Country
}

// DefaultRegion is the first allow-listed region.
func (d *Dashboard) DefaultRegion() string {
	return region.Regions[0]
}

// CountryView builds the emissions chart for a country. An empty name
// selects the default country.
func (d *Dashboard) CountryView(country string) (chart.Figure, error) {
	if country == "" {
		country = d.DefaultCountry()
	}
	series, ok := d.emissions[country]
	if !ok {
		return chart.Figure{}, fmt.Errorf("%w: country %q", ErrUnknownSelection, country)
	}
	return chart.CountryFigure(series, d.ranking.Coefficient(country)), nil
}

// RegionView builds the investment-flow chart for a region. An empty name
// selects the default region.
func (d *Dashboard) RegionView(name string) (chart.Figure, error) {
	if name == "" {
		name = d.DefaultRegion()
	}
	if !region.IsAllowed(name) {
		return chart.Figure{}, fmt.Errorf("%w: region %q", ErrUnknownSelection, name)
	}
	return chart.RegionFigure(name, region.ForRegion(d.investments, name)), nil
}

// StaticFigure returns one of the figures composed at startup.
func (d *Dashboard) StaticFigure(id string) (chart.Figure, bool) {
	fig, ok := d.static[id]
	return fig, ok
}

// StaticFigureIDs lists the static figures in a stable order.
func (d *Dashboard) StaticFigureIDs() []string {
	ids := make([]string, 0, len(d.static))
	for id := range d.static {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Installations returns the filtered installed-capacity rows.
func (d *Dashboard) Installations() []dataset.RegionalRecord {
	return append([]dataset.RegionalRecord(nil), d.installations...)
}

// Investments returns the filtered investment rows.
func (d *Dashboard) Investments() []dataset.RegionalRecord {
	return append([]dataset.RegionalRecord(nil), d.investments...)
}

// Sectors returns the cleaned sector table.
func (d *Dashboard) Sectors() dataset.SectorTable {
	return d.sectors
}
