package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "dhl_location_finder/internal/http"
	"dhl_location_finder/internal/http/router"
	"dhl_location_finder/internal/http/views"
	"dhl_location_finder/internal/locationfinder"
	"dhl_location_finder/internal/settings"
	"dhl_location_finder/internal/settings/repository"
	"dhl_location_finder/platform/config"
	"dhl_location_finder/platform/logger"
	"dhl_location_finder/platform/validator"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr, "settings_backend", cfg.SettingsBackend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var (
		repo          repository.Repository
		closeSettings func()
	)
	if err := withRetry(ctx, log, "settings store", 5, 2*time.Second, func() error {
		r, closeFn, err := settings.OpenRepository(ctx, cfg, log)
		if err != nil {
			return err
		}
		repo, closeSettings = r, closeFn
		return nil
	}); err != nil {
		log.Error("failed to open settings store", "error", err)
		panic("failed to open settings store: " + err.Error())
	}
	defer closeSettings()

	val := validator.New()
	pages, err := views.New()
	if err != nil {
		panic("failed to parse page templates: " + err.Error())
	}

	// ========================================================================
	// Domain Modules
	// ========================================================================

	if !cfg.IsAdminAuthEnabled() {
		log.Warn("admin routes are unprotected; set ADMIN_USERNAME and ADMIN_PASSWORD")
	}
	settingsModule := settings.NewModule(repo, val, pages, log)
	locationFinderModule := locationfinder.NewModule(cfg, settingsModule.Service(), val, pages, log, settings.FormPath)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: settingsModule.Repository(),
		Modules: []apphttp.Module{
			settingsModule,
			locationFinderModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		closeSettings()
		os.Exit(1)
	}
	log.Info("server stopped")
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
