// Package trend ranks countries by how strongly their emissions rise or fall
// over the year domain.
package trend

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"sdgdash.org/internal/dataset"
)

// Entry is one country's trend statistics.
//
// Coefficient is the Pearson correlation between the emissions values and
// the year sequence. When it is undefined (a constant series, or fewer than
// two points) Defined is false and Coefficient is 0, so the country sorts
// as a flat trend.
type Entry struct {
	Country     string  `json:"country"`
	Coefficient float64 `json:"coefficient"`
	Defined     bool    `json:"defined"`
	Slope       float64 `json:"slope"`
	First       float64 `json:"first"`
	Last        float64 `json:"last"`
}

// Rising reports whether emissions are still increasing.
func (e Entry) Rising() bool {
	return e.Coefficient > 0
}

// Ranking orders countries from the most increasing trend to the most
// decreasing one. It is immutable once built.
type Ranking struct {
	entries []Entry
	byName  map[string]int
}

// Coefficient computes the Pearson correlation between values and years.
// ok is false when the correlation is undefined.
func Coefficient(values []float64, years []int) (coefficient float64, ok bool) {
	if len(values) < 2 || len(values) != len(years) {
		return 0, false
	}
	r := stat.Correlation(values, floats(years), nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	// guard against rounding just past the bounds
	return math.Max(-1, math.Min(1, r)), true
}

// Slope returns the least-squares change per year.
func Slope(values []float64, years []int) float64 {
	if len(values) < 2 || len(values) != len(years) {
		return 0
	}
	_, beta := stat.LinearRegression(floats(years), values, nil, false)
	if math.IsNaN(beta) {
		return 0
	}
	return beta
}

// Rank computes every country's coefficient and sorts countries by it,
// descending. Countries with equal coefficients keep their input order.
func Rank(series []dataset.EmissionsSeries) Ranking {
	entries := make([]Entry, 0, len(series))
	for _, s := range series {
		coefficient, defined := Coefficient(s.Values, s.Years)
		entry := Entry{
			Country:     s.Country,
			Coefficient: coefficient,
			Defined:     defined,
			Slope:       Slope(s.Values, s.Years),
		}
		if n := len(s.Values); n > 0 {
			entry.First = s.Values[0]
			entry.Last = s.Values[n-1]
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Coefficient > entries[j].Coefficient
	})

	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := byName[e.Country]; !dup {
			byName[e.Country] = i
		}
	}
	return Ranking{entries: entries, byName: byName}
}

// Len returns the number of ranked countries.
func (r Ranking) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the ranked entries.
func (r Ranking) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Names returns the country names in rank order.
func (r Ranking) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Country
	}
	return names
}

// Top returns the highest-ranked entry.
func (r Ranking) Top() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[0], true
}

// Entry looks a country up by name.
func (r Ranking) Entry(country string) (Entry, bool) {
	i, ok := r.byName[country]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Coefficient returns a country's coefficient, 0 when it is unknown.
func (r Ranking) Coefficient(country string) float64 {
	e, _ := r.Entry(country)
	return e.Coefficient
}

func floats(years []int) []float64 {
	out := make([]float64, len(years))
	for i, y := range years {
		out[i] = float64(y)
	}
	return out
}
