package restapi

import (
	"bytes"
	"errors"
	"net/http"

	"sdgdash.org/internal/chart"
	"sdgdash.org/internal/models"
	"sdgdash.org/internal/utils"
)

// chartHandler serves the JSON figure spec for one kind of chart. The
// selection is the route's last segment.
func (api *RestAPI) chartHandler(kind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := utils.ExtractParam(r, param)
		if err := utils.ValidateSelection(name); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{param: {err.Error()}})
			return
		}

		entry, err := api.lookupFigure(kind, name)
		if err != nil {
			api.viewErrorResponse(w, r, err)
			return
		}

		api.sendResponse(w, r, models.NewEntryResponse(entry))
	}
}

// imageHandler renders a chart to PNG, or SVG when the selection ends in
// ".svg".
func (api *RestAPI) imageHandler(kind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := utils.ExtractParam(r, param)
		if err := utils.ValidateSelection(name); err != nil {
			api.validationErrorResponse(w, r, map[string][]string{param: {err.Error()}})
			return
		}

		entry, err := api.lookupFigure(kind, name)
		if err != nil {
			api.viewErrorResponse(w, r, err)
			return
		}

		format := utils.ExtractFormat(r, param)
		var buf bytes.Buffer
		err = chart.Render(&buf, entry.Figure, chart.DefaultWidth, chart.DefaultHeight, format)
		if errors.Is(err, chart.ErrEmptyFigure) {
			api.sendError(w, r, http.StatusNotFound, "no data for selection")
			return
		}
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}

		api.sendImage(w, r, format, &buf)
	}
}
