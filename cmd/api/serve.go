package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sdgdash.org/internal/app"
	"sdgdash.org/internal/appconf"
	"sdgdash.org/internal/dashboard"
	"sdgdash.org/internal/dataset"
	"sdgdash.org/internal/restapi"
	"sdgdash.org/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Args:  cobra.NoArgs,
		RunE:  c.runServe,
	}
}

func (c *cli) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := buildDashboard(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}

	application := &app.Application{
		Config:    c.cfg,
		Logger:    c.logger,
		Dashboard: d,
	}
	handler, cleanup, err := buildHandler(application)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", c.cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(c.logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, c.logger)
}

// buildDashboard loads the configured source tables and prepares the views.
func buildDashboard(ctx context.Context, cfg appconf.Config, logger *slog.Logger) (*dashboard.Dashboard, error) {
	loader := dataset.NewLoader(cfg.Years.List(), logger)
	data, err := loader.Load(ctx, dataset.Sources{
		Emissions:     cfg.Data.Path(cfg.Data.Emissions),
		Sectors:       cfg.Data.Path(cfg.Data.Sectors),
		Installations: cfg.Data.Path(cfg.Data.Installations),
		Investments:   cfg.Data.Path(cfg.Data.Investments),
	})
	if err != nil {
		return nil, err
	}
	return dashboard.New(data, dashboard.Options{OverviewCountries: cfg.OverviewCountries}), nil
}

// buildHandler wires the API and web UI routes behind the middleware chain.
// The returned cleanup stops the API's background work.
func buildHandler(application *app.Application) (http.Handler, func(), error) {
	api := restapi.NewRestAPI(application)
	webUI, err := webui.NewWebUI(application)
	if err != nil {
		api.Shutdown()
		return nil, nil, err
	}

	router := httprouter.New()
	api.SetRoutes(router)
	webUI.SetRoutes(router)

	return api.Handler(router), api.Shutdown, nil
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down server", "addr", srv.Addr)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
