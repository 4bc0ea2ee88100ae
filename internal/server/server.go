// Package server boots the HTTP server: configuration, database, cache,
// storage, the optional MongoDB log sink, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/devtushar001/ietark/config"
	"github.com/devtushar001/ietark/internal/kernel"
	"github.com/devtushar001/ietark/pkg/cache"
	"github.com/devtushar001/ietark/pkg/database"
	"github.com/devtushar001/ietark/pkg/logger"
	"github.com/devtushar001/ietark/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Start brings up every subsystem and serves until SIGINT/SIGTERM.
// Redis and the Mongo log sink are optional: a failure there is logged and
// the server runs without them. The database is not optional.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	attachMongoSink()

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}
	storage.Connect()

	httpKernel := kernel.NewHTTPKernel()

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           httpKernel.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ietark listening", "addr", srv.Addr, "env", config.AppEnv())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// attachMongoSink tees log records into MongoDB when MONGO_LOG_URI is set.
func attachMongoSink() {
	uri := config.MongoLogURI()
	if uri == "" {
		return
	}

	mh, err := logger.NewMongoHandler(uri, "ietark", "logs")
	if err != nil {
		logger.Warn("mongo log sink unavailable", "error", err)
		return
	}

	logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mh))
	slog.SetDefault(logger.L)
}
