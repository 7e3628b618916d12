package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdgdash.org/internal/dataset"
)

func yearDomain() []int {
	years := make([]int, 0, 31)
	for y := 1990; y <= 2020; y++ {
		years = append(years, y)
	}
	return years
}

func series(country string, f func(i int) float64) dataset.EmissionsSeries {
	years := yearDomain()
	values := make([]float64, len(years))
	for i := range years {
		values[i] = f(i)
	}
	return dataset.EmissionsSeries{Country: country, Years: years, Values: values}
}

func TestCoefficientLinearIncrease(t *testing.T) {
	s := series("A", func(i int) float64 { return 100 + 3*float64(i) })

	c, ok := Coefficient(s.Values, s.Years)
	require.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-9)
	assert.InDelta(t, 3.0, Slope(s.Values, s.Years), 1e-9)
}

func TestCoefficientLinearDecrease(t *testing.T) {
	s := series("C", func(i int) float64 { return 500 - 2*float64(i) })

	c, ok := Coefficient(s.Values, s.Years)
	require.True(t, ok)
	assert.InDelta(t, -1.0, c, 1e-9)
}

func TestCoefficientUndefined(t *testing.T) {
	flat := series("B", func(int) float64 { return 42 })
	c, ok := Coefficient(flat.Values, flat.Years)
	assert.False(t, ok)
	assert.Zero(t, c)
	assert.False(t, math.IsNaN(c))

	_, ok = Coefficient([]float64{1}, []int{1990})
	assert.False(t, ok)

	_, ok = Coefficient([]float64{1, 2}, []int{1990})
	assert.False(t, ok)
}

func TestRankRisingFlatFalling(t *testing.T) {
	ranking := Rank([]dataset.EmissionsSeries{
		series("C", func(i int) float64 { return 500 - 2*float64(i) }),
		series("B", func(int) float64 { return 42 }),
		series("A", func(i int) float64 { return 100 + 3*float64(i) }),
	})

	assert.Equal(t, []string{"A", "B", "C"}, ranking.Names())

	b, ok := ranking.Entry("B")
	require.True(t, ok)
	assert.False(t, b.Defined)
	assert.False(t, b.Rising())
	assert.Zero(t, b.Coefficient)

	top, ok := ranking.Top()
	require.True(t, ok)
	assert.Equal(t, "A", top.Country)
	assert.True(t, top.Rising())
	assert.InDelta(t, 1.0, top.Coefficient, 1e-9)
	assert.InDelta(t, 100.0, top.First, 1e-9)
	assert.InDelta(t, 190.0, top.Last, 1e-9)
}

func TestRankIsTotalOrderByCoefficient(t *testing.T) {
	ranking := Rank([]dataset.EmissionsSeries{
		series("Noisy", func(i int) float64 { return float64(i) + 10*math.Sin(float64(i)) }),
		series("Steady", func(i int) float64 { return float64(i) }),
		series("Falling", func(i int) float64 { return -float64(i * i) }),
		series("Flat", func(int) float64 { return 1 }),
		series("Wave", func(i int) float64 { return math.Cos(float64(i)) }),
	})

	entries := ranking.Entries()
	require.Len(t, entries, 5)
	maxCoefficient := math.Inf(-1)
	for i, e := range entries {
		maxCoefficient = math.Max(maxCoefficient, e.Coefficient)
		if i > 0 {
			assert.GreaterOrEqual(t, entries[i-1].Coefficient, e.Coefficient)
		}
	}
	top, _ := ranking.Top()
	assert.Equal(t, maxCoefficient, top.Coefficient)
	assert.Equal(t, "Steady", top.Country)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	ranking := Rank([]dataset.EmissionsSeries{
		series("Flat1", func(int) float64 { return 3 }),
		series("Rise2", func(i int) float64 { return float64(i) }),
		series("Flat2", func(int) float64 { return 4 }),
		series("Rise1", func(i int) float64 { return float64(i) }),
	})

	assert.Equal(t, []string{"Rise2", "Rise1", "Flat1", "Flat2"}, ranking.Names())
}

func TestRankingLookups(t *testing.T) {
	empty := Rank(nil)
	_, ok := empty.Top()
	assert.False(t, ok)
	assert.Zero(t, empty.Len())

	ranking := Rank([]dataset.EmissionsSeries{
		series("C", func(i int) float64 { return -float64(i) }),
	})
	assert.Equal(t, 1, ranking.Len())
	assert.InDelta(t, -1.0, ranking.Coefficient("C"), 1e-9)
	assert.Zero(t, ranking.Coefficient("Unknown"))

	entries := ranking.Entries()
	entries[0].Country = "mutated"
	assert.Equal(t, []string{"C"}, ranking.Names())
}
