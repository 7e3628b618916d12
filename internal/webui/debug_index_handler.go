package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	var buf bytes.Buffer
	err := webUI.debug.Execute(&buf, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	d := webUI.Dashboard

	switch dataType {
	case "ranking":
		data = d.Ranking().Entries()
		title = "Emissions Trend Ranking"
	case "sectors":
		data = d.Sectors()
		title = "GHG Emissions by Sector"
	case "installations":
		data = d.Installations()
		title = "Installed Renewable Capacity (filtered)"
	case "investments":
		data = d.Investments()
		title = "Clean Energy Investment Flows (filtered)"
	case "figures":
		figures := make(map[string]interface{})
		for _, id := range d.StaticFigureIDs() {
			figures[id], _ = d.StaticFigure(id)
		}
		data = figures
		title = "Static Figures"
	case "config":
		data = webUI.Config
		title = "Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: ranking, sectors, installations, investments, figures, config.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}
