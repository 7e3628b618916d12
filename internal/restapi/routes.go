package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the API endpoints on router.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/healthz", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/api/options", api.optionsHandler)
	router.HandlerFunc(http.MethodGet, "/api/ranking", api.rankingHandler)

	router.HandlerFunc(http.MethodGet, "/api/charts/static/:id", api.chartHandler(kindStatic, "id"))
	router.HandlerFunc(http.MethodGet, "/api/charts/country/:name", api.chartHandler(kindCountry, "name"))
	router.HandlerFunc(http.MethodGet, "/api/charts/region/:name", api.chartHandler(kindRegion, "name"))

	router.HandlerFunc(http.MethodGet, "/charts/static/:id", api.imageHandler(kindStatic, "id"))
	router.HandlerFunc(http.MethodGet, "/charts/country/:name", api.imageHandler(kindCountry, "name"))
	router.HandlerFunc(http.MethodGet, "/charts/region/:name", api.imageHandler(kindRegion, "name"))

	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.MethodNotAllowed = http.HandlerFunc(api.methodNotAllowedResponse)
}

// Handler wraps routes with the middleware chain: request logging, security
// headers, rate limiting and compression, outermost first. The selection
// websocket is mounted beside the chain since it hijacks the connection.
func (api *RestAPI) Handler(routes http.Handler) http.Handler {
	var chain http.Handler = routes
	chain = CompressionMiddleware(chain)
	if api.rateLimiter != nil {
		chain = api.rateLimiter.Handler(chain)
	}
	chain = securityHeaders(chain)
	chain = NewRequestLoggingMiddleware(api.Logger)(chain)

	mux := http.NewServeMux()
	mux.Handle("GET /ws", securityHeaders(http.HandlerFunc(api.selectionSocketHandler)))
	mux.Handle("/", chain)
	return mux
}
