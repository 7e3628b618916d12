package app

import (
	"log/slog"

	"sdgdash.org/internal/appconf"
	"sdgdash.org/internal/dashboard"
)

// Application holds the dependencies shared by the HTTP handlers, helpers
// and middleware. Everything in it is read-only once the server starts.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Dashboard *dashboard.Dashboard
}
