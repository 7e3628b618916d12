package dataset

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sdgdash.org/internal/logging"
)

func testYears() []int {
	years := make([]int, 0, 31)
	for y := 1990; y <= 2020; y++ {
		years = append(years, y)
	}
	return years
}

func testdata(name string) string {
	return filepath.Join("../../testdata", name)
}

// writeXLSX writes rows to the first sheet of a new workbook in a temp dir.
func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}
	path := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestEmissions(t *testing.T) {
	loader := NewLoader(testYears(), nil)

	series, err := loader.Emissions(testdata("world_ghg_total_nona.csv"))
	require.NoError(t, err)

	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Country
	}
	assert.Equal(t, []string{"India", "Brazil", "Tuvalu", "United Kingdom", "Germany"}, names,
		"rows with a missing year are dropped and file order is kept")

	india := series[0]
	require.Len(t, india.Values, 31)
	assert.Equal(t, 1990, india.Years[0])
	assert.Equal(t, 2020, india.Years[30])
	assert.InDelta(t, 1000.0, india.Values[0], 1e-9)
	assert.InDelta(t, 2500.0, india.Values[30], 1e-9)
}

func TestEmissionsMissingYearColumn(t *testing.T) {
	loader := NewLoader([]int{1989, 1990}, nil)

	_, err := loader.Emissions(testdata("world_ghg_total_nona.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), "1989")
}

func TestEmissionsDuplicateCountryKeepsFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.csv")
	require.NoError(t, os.WriteFile(path, []byte("Country Name,2000,2001\nChad,1,2\nChad,5,6\n"), 0o600))

	series, err := NewLoader([]int{2000, 2001}, nil).Emissions(path)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, []float64{1, 2}, series[0].Values)
}

func TestSectors(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelDebug)

	sectors, err := NewLoader(testYears(), logger).Sectors(testdata("industry_co2.csv"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Energy",
		"Industrial Processes and Product Use",
		"Agriculture",
		"Waste",
		"Other",
	}, sectors.Labels)

	require.Len(t, sectors.Records, 9)
	for _, rec := range sectors.Records {
		assert.NotEqual(t, 1993, rec.Year, "row with a zero value is dropped")
		assert.NotEqual(t, 1996, rec.Year, "row with a missing value is dropped")
		for _, label := range sectors.Labels {
			assert.NotZero(t, rec.Values[label])
		}
	}

	years, energy := sectors.Series("Energy")
	assert.Equal(t, 1990, years[0])
	assert.InDelta(t, 20000.0, energy[0], 1e-9)

	output := buf.String()
	assert.Contains(t, output, `"msg":"dropped incomplete rows"`)
	assert.Contains(t, output, `"rows":2`)
}

func TestSectorLabel(t *testing.T) {
	assert.Equal(t, "Agriculture", SectorLabel("IPCMAG"))
	assert.Equal(t, "IPC9", SectorLabel("IPC9"))
}

func TestRegionalCSV(t *testing.T) {
	records, err := NewLoader(nil, nil).Regional(testdata("investment.csv"))
	require.NoError(t, err)

	assert.Len(t, records, 11, "the row with an empty value is dropped")
	assert.Equal(t, RegionalRecord{
		Region:     "World",
		Technology: "ALL",
		TimePeriod: 2012,
		Value:      11200.5,
	}, records[0])
}

func TestRegionalXLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Goal", "GeoAreaName", "TimePeriod", "Value", "Type of renewable technology"},
		{7, "World", 2021, 398.2, "ALL"},
		{7, "Oceania", 2021, 801.5, "SOLAR"},
		{7, "", 2021, 1.0, "ALL"},
		{7, "Central Asia", "2022.0", 250, "ALL"},
	})

	records, err := NewLoader(nil, nil).Regional(path)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "World", records[0].Region)
	assert.InDelta(t, 398.2, records[0].Value, 1e-9)
	assert.Equal(t, "SOLAR", records[1].Technology)
	assert.Equal(t, 2022, records[2].TimePeriod)
}

func TestRegionalMissingColumn(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"GeoAreaName", "TimePeriod", "Value"},
		{"World", 2021, 1.0},
	})

	_, err := NewLoader(nil, nil).Regional(path)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadTableErrors(t *testing.T) {
	_, err := NewLoader(nil, nil).Regional(testdata("investment.json"))
	assert.ErrorIs(t, err, ErrUnsupportedExt)

	_, err = NewLoader(nil, nil).Regional(testdata("does-not-exist.csv"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = NewLoader(nil, nil).Regional(empty)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	loader := NewLoader(testYears(), logging.NewStructuredLogger(&buf, slog.LevelInfo))

	data, err := loader.Load(context.Background(), Sources{
		Emissions:     testdata("world_ghg_total_nona.csv"),
		Sectors:       testdata("industry_co2.csv"),
		Installations: testdata("installed_renewable.csv"),
		Investments:   testdata("investment.csv"),
	})
	require.NoError(t, err)

	assert.Len(t, data.Emissions, 5)
	assert.Len(t, data.Sectors.Records, 9)
	assert.Len(t, data.Installations, 22)
	assert.Len(t, data.Investments, 11)

	output := buf.String()
	assert.Contains(t, output, `"msg":"datasets_loaded"`)
	assert.Contains(t, output, `"countries":5`)
}

func TestLoadFailureNamesFile(t *testing.T) {
	_, err := NewLoader(testYears(), nil).Load(context.Background(), Sources{
		Emissions:     testdata("world_ghg_total_nona.csv"),
		Sectors:       testdata("industry_co2.csv"),
		Installations: testdata("missing.xlsx"),
		Investments:   testdata("investment.csv"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading installations")
	assert.Contains(t, err.Error(), "missing.xlsx")
}

func TestParseHelpers(t *testing.T) {
	v, ok := parseNumber(" 1,234.5 ")
	assert.True(t, ok)
	assert.InDelta(t, 1234.5, v, 1e-9)

	_, ok = parseNumber("NaN")
	assert.False(t, ok)
	_, ok = parseNumber("")
	assert.False(t, ok)

	year, ok := parseYear("2019.0")
	assert.True(t, ok)
	assert.Equal(t, 2019, year)

	_, ok = parseYear("2019.5")
	assert.False(t, ok)
}
