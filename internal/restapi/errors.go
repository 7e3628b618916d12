package restapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sdgdash.org/internal/dashboard"
	"sdgdash.org/internal/logging"
	"sdgdash.org/internal/models"
)

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("component", "http_server"))
	api.sendError(w, r, http.StatusInternalServerError, "internal server error")
}

// validationErrorResponse sends a 400 with field-specific validation errors.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := models.NewResponse(http.StatusBadRequest, map[string]interface{}{
		"fieldErrors": fieldErrors,
	}, "invalid request")

	setJSONResponseType(w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		api.Logger.Error("failed to encode validation error response", "error", err)
	}
}

// viewErrorResponse maps a dashboard view error to a response: selections
// outside the option set are 404s, anything else is a server error.
func (api *RestAPI) viewErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, dashboard.ErrUnknownSelection) {
		api.sendNotFound(w, r)
		return
	}
	api.serverErrorResponse(w, r, err)
}
