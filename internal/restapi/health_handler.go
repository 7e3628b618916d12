package restapi

import (
	"net/http"

	"sdgdash.org/internal/models"
)

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(map[string]interface{}{
		"status":    "ok",
		"countries": api.Dashboard.Ranking().Len(),
		"regions":   len(api.Dashboard.RegionOptions()),
	}))
}
