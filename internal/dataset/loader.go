package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"sdgdash.org/internal/logging"
)

// Loader reads the dashboard's source tables. The year domain bounds the
// emissions table: only these year columns are read, and every one of them
// must be present.
type Loader struct {
	Years  []int
	Logger *slog.Logger
}

func NewLoader(years []int, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Years: years, Logger: logger}
}

// Load reads all four sources concurrently. The first failure cancels the
// rest and is returned wrapped with the offending file name.
func (l *Loader) Load(ctx context.Context, src Sources) (*Data, error) {
	start := time.Now()
	data := &Data{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		series, err := l.Emissions(src.Emissions)
		if err != nil {
			return fmt.Errorf("loading emissions %s: %w", src.Emissions, err)
		}
		data.Emissions = series
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		sectors, err := l.Sectors(src.Sectors)
		if err != nil {
			return fmt.Errorf("loading sectors %s: %w", src.Sectors, err)
		}
		data.Sectors = sectors
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := l.Regional(src.Installations)
		if err != nil {
			return fmt.Errorf("loading installations %s: %w", src.Installations, err)
		}
		data.Installations = records
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		records, err := l.Regional(src.Investments)
		if err != nil {
			return fmt.Errorf("loading investments %s: %w", src.Investments, err)
		}
		data.Investments = records
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logging.LogOperation(l.Logger, "datasets_loaded",
		slog.Int("countries", len(data.Emissions)),
		slog.Int("sector_years", len(data.Sectors.Records)),
		slog.Int("installation_rows", len(data.Installations)),
		slog.Int("investment_rows", len(data.Investments)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Emissions reads the country-by-year table. Rows missing a value for any
// year of the domain are dropped; a repeated country keeps its first row.
func (l *Loader) Emissions(path string) ([]EmissionsSeries, error) {
	t, err := readTable(path, l.Logger)
	if err != nil {
		return nil, err
	}
	countryCol, err := t.column(columnCountry)
	if err != nil {
		return nil, err
	}
	yearCols := make([]int, len(l.Years))
	for i, year := range l.Years {
		if yearCols[i], err = t.column(strconv.Itoa(year)); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	series := make([]EmissionsSeries, 0, len(t.rows))
	dropped := 0

rows:
	for _, row := range t.rows {
		country := cell(row, countryCol)
		if country == "" || seen[country] {
			dropped++
			continue
		}
		values := make([]float64, len(yearCols))
		for i, col := range yearCols {
			v, ok := parseNumber(cell(row, col))
			if !ok {
				dropped++
				continue rows
			}
			values[i] = v
		}
		seen[country] = true
		series = append(series, EmissionsSeries{
			Country: country,
			Years:   append([]int(nil), l.Years...),
			Values:  values,
		})
	}

	l.logDropped(path, dropped)
	return series, nil
}

// Sectors reads the sector-split table. Every column other than the year is
// a sector; rows with a zero or missing value in any sector are dropped.
func (l *Loader) Sectors(path string) (SectorTable, error) {
	t, err := readTable(path, l.Logger)
	if err != nil {
		return SectorTable{}, err
	}
	yearCol, err := t.column(columnYear)
	if err != nil {
		return SectorTable{}, err
	}

	var codes []int
	out := SectorTable{}
	for i, h := range t.header {
		if i == yearCol || h == "" {
			continue
		}
		codes = append(codes, i)
		out.Labels = append(out.Labels, SectorLabel(h))
	}

	dropped := 0
rows:
	for _, row := range t.rows {
		year, ok := parseYear(cell(row, yearCol))
		if !ok {
			dropped++
			continue
		}
		rec := SectorRecord{Year: year, Values: make(map[string]float64, len(codes))}
		for i, col := range codes {
			v, ok := parseNumber(cell(row, col))
			if !ok || v == 0 {
				dropped++
				continue rows
			}
			rec.Values[out.Labels[i]] = v
		}
		out.Records = append(out.Records, rec)
	}

	l.logDropped(path, dropped)
	return out, nil
}

// Regional reads an installed-capacity or investment table.
func (l *Loader) Regional(path string) ([]RegionalRecord, error) {
	t, err := readTable(path, l.Logger)
	if err != nil {
		return nil, err
	}
	var cols [4]int
	for i, name := range []string{columnRegion, columnTechnology, columnTimePeriod, columnValue} {
		if cols[i], err = t.column(name); err != nil {
			return nil, err
		}
	}

	records := make([]RegionalRecord, 0, len(t.rows))
	dropped := 0
	for _, row := range t.rows {
		region := cell(row, cols[0])
		period, okPeriod := parseYear(cell(row, cols[2]))
		value, okValue := parseNumber(cell(row, cols[3]))
		if region == "" || !okPeriod || !okValue {
			dropped++
			continue
		}
		records = append(records, RegionalRecord{
			Region:     region,
			Technology: cell(row, cols[1]),
			TimePeriod: period,
			Value:      value,
		})
	}

	l.logDropped(path, dropped)
	return records, nil
}

func (l *Loader) logDropped(path string, dropped int) {
	if dropped == 0 {
		return
	}
	l.Logger.Debug("dropped incomplete rows",
		slog.String("file", path),
		slog.Int("rows", dropped),
		slog.String("component", "dataset_loader"))
}
