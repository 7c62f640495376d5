package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskr-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskr-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates the router with the middleware chain, the API route
// table and the operational endpoints.
func (app *application) setupRouter() (http.Handler, error) {
	metrics, err := apiMiddleware.NewMetrics(app.registry)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(metrics.Handler)
	r.Use(middleware.Recoverer)

	guard := apiMiddleware.NewAuthMiddleware(app.tokens)
	api.Mount(r, guard, api.Routes(
		api.NewAuthHandler(app.accounts),
		api.NewTaskHandler(app.tasks),
	))

	r.Method(http.MethodGet, "/health", guard.Guard(true, http.HandlerFunc(app.handleHealth)))
	r.Method(http.MethodGet, "/metrics", guard.Guard(true, promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})))

	return r, nil
}

// handleHealth reports 200 when the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status, body := http.StatusOK, "OK"
	if err := app.db.PingContext(ctx); err != nil {
		app.logger.Warn("health check failed", "error", err)
		status, body = http.StatusServiceUnavailable, "database unavailable"
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		app.logger.Error("failed to write health check response", "error", err)
	}
}
