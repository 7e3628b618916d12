package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam returns a route parameter from the request context with a
// trailing ".json" or ".png" extension removed.
func ExtractParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(name)
	for _, ext := range []string{".json", ".png", ".svg"} {
		if strings.HasSuffix(raw, ext) {
			return strings.TrimSuffix(raw, ext)
		}
	}
	return raw
}

// ExtractFormat returns the image format implied by a route parameter's
// extension, "png" when there is none.
func ExtractFormat(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	if strings.HasSuffix(params.ByName(name), ".svg") {
		return "svg"
	}
	return "png"
}
