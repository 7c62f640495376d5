package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const readHeaderTimeout = 10 * time.Second

// startHTTPServer listens on the configured port and serves until ctx is
// canceled or the listener fails. Shutdown waits for in-flight requests up
// to the configured timeout.
func (app *application) startHTTPServer(ctx context.Context, handler http.Handler) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		app.cleanup()
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.serve(ctx, listener, handler)
}

func (app *application) serve(ctx context.Context, listener net.Listener, handler http.Handler) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Info("shutting down server")
	case err := <-serveErr:
		if err != nil {
			app.logger.Error("server failed", "error", err)
			runErr = err
		}
	}

	timeout := time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", "error", err)
		if runErr == nil {
			runErr = fmt.Errorf("server shutdown failed: %w", err)
		}
	}
	<-serveErr

	app.cleanup()
	app.logger.Info("server shutdown completed")
	return runErr
}
