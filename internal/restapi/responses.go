package restapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"sdgdash.org/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	setJSONResponseType(w)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusNotFound, "resource not found")
}

func (api *RestAPI) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	api.sendError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, code int, text string) {
	setJSONResponseType(w)
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(code, text)); err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "status", code)
	}
}

// sendImage writes a rendered chart.
func (api *RestAPI) sendImage(w http.ResponseWriter, r *http.Request, format string, body *bytes.Buffer) {
	contentType := "image/png"
	if format == "svg" {
		contentType = "image/svg+xml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	if _, err := body.WriteTo(w); err != nil {
		api.Logger.Error("failed to write image", "error", err, "path", r.URL.Path)
	}
}

func setJSONResponseType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
}
