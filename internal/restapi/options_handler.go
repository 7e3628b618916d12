package restapi

import (
	"net/http"

	"sdgdash.org/internal/models"
)

func (api *RestAPI) optionsHandler(w http.ResponseWriter, r *http.Request) {
	d := api.Dashboard
	options := models.SelectionOptions{
		Countries:      d.CountryOptions(),
		Regions:        d.RegionOptions(),
		DefaultCountry: d.DefaultCountry(),
		DefaultRegion:  d.DefaultRegion(),
	}
	api.sendResponse(w, r, models.NewEntryResponse(options))
}
