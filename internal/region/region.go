// Package region restricts renewable-energy tables to comparable
// macro-region aggregates.
package region

import (
	"sort"

	"sdgdash.org/internal/dataset"
)

// TechnologyAll selects the aggregate row covering every renewable
// technology subtype.
const TechnologyAll = "ALL"

// Regions is the allow-list of macro-regions, in display order.
var Regions = []string{
	"World",
	"Oceania",
	"Northern Africa",
	"Eastern Asia",
	"Southern Asia",
	"South-Eastern Asia",
	"Central Asia",
	"Western Asia",
	"Latin America and the Caribbean",
	"Europe and Northern America",
	"Sub-Saharan Africa",
}

var allowed = func() map[string]bool {
	m := make(map[string]bool, len(Regions))
	for _, r := range Regions {
		m[r] = true
	}
	return m
}()

// IsAllowed reports whether name is one of the allow-listed regions.
func IsAllowed(name string) bool {
	return allowed[name]
}

// Names returns a copy of the allow-list.
func Names() []string {
	return append([]string(nil), Regions...)
}

// Filter keeps allow-listed rows whose technology type is ALL, preserving
// input order. A region missing from the input simply yields no rows.
func Filter(records []dataset.RegionalRecord) []dataset.RegionalRecord {
	out := make([]dataset.RegionalRecord, 0, len(records))
	for _, rec := range records {
		if rec.Technology == TechnologyAll && allowed[rec.Region] {
			out = append(out, rec)
		}
	}
	return out
}

// Installations filters the installed-capacity table and sorts it by value,
// ascending.
func Installations(records []dataset.RegionalRecord) []dataset.RegionalRecord {
	out := Filter(records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out
}

// Investments filters the investment-flow table.
func Investments(records []dataset.RegionalRecord) []dataset.RegionalRecord {
	return Filter(records)
}

// ForRegion returns the rows of one region ordered by time period.
func ForRegion(records []dataset.RegionalRecord, name string) []dataset.RegionalRecord {
	var out []dataset.RegionalRecord
	for _, rec := range records {
		if rec.Region == name {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimePeriod < out[j].TimePeriod
	})
	return out
}
