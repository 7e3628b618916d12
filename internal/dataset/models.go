package dataset

// EmissionsSeries is one country's yearly emissions over the configured year
// domain. Years and Values are parallel and ordered by year.
type EmissionsSeries struct {
	Country string
	Years   []int
	Values  []float64
}

// SectorRecord holds one year of sector-split emissions keyed by sector label.
type SectorRecord struct {
	Year   int
	Values map[string]float64
}

// SectorTable is the cleaned sector dataset. Labels keeps the column order
// of the source file after renaming.
type SectorTable struct {
	Labels  []string
	Records []SectorRecord
}

// Series returns the years and the values of one sector, in record order.
func (t SectorTable) Series(label string) ([]int, []float64) {
	years := make([]int, 0, len(t.Records))
	values := make([]float64, 0, len(t.Records))
	for _, rec := range t.Records {
		years = append(years, rec.Year)
		values = append(values, rec.Values[label])
	}
	return years, values
}

// RegionalRecord is one row of a renewable-energy table.
type RegionalRecord struct {
	Region     string
	Technology string
	TimePeriod int
	Value      float64
}

// Data bundles every table the dashboard is built from.
type Data struct {
	Emissions     []EmissionsSeries
	Sectors       SectorTable
	Installations []RegionalRecord
	Investments   []RegionalRecord
}

// Sources names the four input files.
type Sources struct {
	Emissions     string
	Sectors       string
	Installations string
	Investments   string
}

// sectorLabels renames the IPCC sector codes used as column headers.
var sectorLabels = map[string]string{
	"IPC1":   "Energy",
	"IPC2":   "Industrial Processes and Product Use",
	"IPCMAG": "Agriculture",
	"IPC4":   "Waste",
	"IPC5":   "Other",
}

// SectorLabel returns the human-readable label for a sector code, or the
// code itself when it is not a known one.
func SectorLabel(code string) string {
	if label, ok := sectorLabels[code]; ok {
		return label
	}
	return code
}

const (
	columnCountry    = "Country Name"
	columnYear       = "year"
	columnRegion     = "GeoAreaName"
	columnTechnology = "Type of renewable technology"
	columnTimePeriod = "TimePeriod"
	columnValue      = "Value"
)
