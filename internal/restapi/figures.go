package restapi

import (
	"fmt"

	"sdgdash.org/internal/dashboard"
	"sdgdash.org/internal/models"
)

// Figure kinds addressable through the API.
const (
	kindStatic  = "static"
	kindCountry = "country"
	kindRegion  = "region"
)

// lookupFigure resolves a figure by kind and selection. Unknown kinds and
// selections wrap dashboard.ErrUnknownSelection.
func (api *RestAPI) lookupFigure(kind, name string) (models.ChartEntry, error) {
	d := api.Dashboard
	switch kind {
	case kindStatic:
		fig, ok := d.StaticFigure(name)
		if !ok {
			return models.ChartEntry{}, fmt.Errorf("%w: figure %q", dashboard.ErrUnknownSelection, name)
		}
		return models.ChartEntry{ID: name, Figure: fig}, nil
	case kindCountry:
		if name == "" {
			name = d.DefaultCountry()
		}
		fig, err := d.CountryView(name)
		if err != nil {
			return models.ChartEntry{}, err
		}
		return models.ChartEntry{ID: models.OutputCountryChart, Selection: name, Figure: fig}, nil
	case kindRegion:
		if name == "" {
			name = d.DefaultRegion()
		}
		fig, err := d.RegionView(name)
		if err != nil {
			return models.ChartEntry{}, err
		}
		return models.ChartEntry{ID: models.OutputRegionChart, Selection: name, Figure: fig}, nil
	default:
		return models.ChartEntry{}, fmt.Errorf("%w: input %q", dashboard.ErrUnknownSelection, kind)
	}
}
