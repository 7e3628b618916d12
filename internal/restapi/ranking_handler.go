package restapi

import (
	"net/http"
	"strconv"

	"sdgdash.org/internal/models"
)

// rankingHandler lists countries by emissions trend, steepest rise first.
// An optional limit query parameter truncates the list.
func (api *RestAPI) rankingHandler(w http.ResponseWriter, r *http.Request) {
	entries := api.Dashboard.Ranking().Entries()

	limitExceeded := false
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			api.validationErrorResponse(w, r, map[string][]string{
				"limit": {"limit must be a positive integer"},
			})
			return
		}
		if len(entries) > limit {
			entries = entries[:limit]
			limitExceeded = true
		}
	}

	list := make([]models.TrendEntry, 0, len(entries))
	for i, e := range entries {
		list = append(list, models.TrendEntry{
			Rank:        i + 1,
			Country:     e.Country,
			Coefficient: e.Coefficient,
			Defined:     e.Defined,
			Rising:      e.Rising(),
			Slope:       e.Slope,
			First:       e.First,
			Last:        e.Last,
		})
	}

	api.sendResponse(w, r, models.NewListResponse(list, limitExceeded))
}
