package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"sdgdash.org/internal/dashboard"
	"sdgdash.org/internal/logging"
)

const (
	pageTitle    = "Greenhouse Gas (GHG) Emissions and Energy Equality Dashboard"
	pageSubtitle = "Towards Goal 7 and Goal 13 - United Nations' Sustainable Development Goals"
)

// staticChart is a chart drawn once at startup, placed by id on the page.
type staticChart struct {
	ID    string
	Title string
}

type indexData struct {
	Title          string
	Subtitle       string
	Headlines      []Headline
	Sectors        staticChart
	Capacity       staticChart
	Overview       staticChart
	Countries      []string
	Regions        []string
	DefaultCountry string
	DefaultRegion  string
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	d := webUI.Dashboard
	data := indexData{
		Title:          pageTitle,
		Subtitle:       pageSubtitle,
		Headlines:      headlines,
		Sectors:        webUI.staticChart(dashboard.FigureSectors),
		Capacity:       webUI.staticChart(dashboard.FigureCapacity),
		Overview:       webUI.staticChart(dashboard.FigureOverview),
		Countries:      d.CountryOptions(),
		Regions:        d.RegionOptions(),
		DefaultCountry: d.DefaultCountry(),
		DefaultRegion:  d.DefaultRegion(),
	}

	// Render into a buffer so a template error still produces a clean 500.
	var buf bytes.Buffer
	if err := webUI.page.Execute(&buf, data); err != nil {
		logging.LogError(webUI.Logger, "failed to render dashboard", err,
			slog.String("component", "webui"))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(webUI.Logger, "failed to write dashboard", err,
			slog.String("component", "webui"))
	}
}

func (webUI *WebUI) staticChart(id string) staticChart {
	fig, _ := webUI.Dashboard.StaticFigure(id)
	return staticChart{ID: id, Title: fig.Layout.Title}
}
