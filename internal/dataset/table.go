package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"sdgdash.org/internal/logging"
)

var (
	ErrMissingColumn  = errors.New("missing required column")
	ErrEmptyTable     = errors.New("table has no header row")
	ErrUnsupportedExt = errors.New("unsupported file extension")
)

// table is a header plus raw string rows, regardless of the file format.
type table struct {
	header []string
	rows   [][]string
	index  map[string]int
}

func newTable(records [][]string) (*table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	t := &table{
		header: make([]string, len(records[0])),
		rows:   records[1:],
		index:  make(map[string]int, len(records[0])),
	}
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		t.header[i] = h
		if _, seen := t.index[h]; !seen {
			t.index[h] = i
		}
	}
	return t, nil
}

// column returns the index of a required column.
func (t *table) column(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return i, nil
}

// cell returns the trimmed cell or "" when the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// readTable reads a .csv or .xlsx file into a table. Spreadsheets are read
// from their first sheet.
func readTable(path string, logger *slog.Logger) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer logging.SafeCloseWithLogging(f, logger, "close_csv")
		return readCSV(f)
	case ".xlsx", ".xlsm":
		return readXLSX(path, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, path)
	}
}

func readXLSX(path string, logger *slog.Logger) (_ *table, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_xlsx")

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return newTable(rows)
}

func readCSV(r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// malformed rows are dropped, the rest of the file is still usable
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, err
		}
		records = append(records, row)
	}
	return newTable(records)
}

// parseNumber parses a numeric cell. Empty, NaN and non-numeric cells are
// reported as missing.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseYear accepts "1990" as well as spreadsheet-style "1990.0".
func parseYear(s string) (int, bool) {
	v, ok := parseNumber(s)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}
