package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ewilliams-labs/dashboard/internal/adapters/rest"
	"github.com/ewilliams-labs/dashboard/internal/adapters/spotify"
	"github.com/ewilliams-labs/dashboard/internal/adapters/sqlite"
	"github.com/ewilliams-labs/dashboard/internal/config"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
	"github.com/ewilliams-labs/dashboard/internal/core/services"
	"github.com/ewilliams-labs/dashboard/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("dashboard stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration (file, environment, flags)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Initialize "Driven" Adapters
	// -- Database Adapter
	dbAdapter, err := sqlite.NewAdapter(cfg.StoragePath)
	if err != nil {
		return err
	}
	defer dbAdapter.Close()

	widgets := services.NewWidgets(dbAdapter)
	if cfg.SeedWidgets {
		n, err := widgets.SeedDefaults(ctx)
		if err != nil {
			return err
		}
		slog.Info("widgets seeded", "count", n)
	}

	// -- Spotify Adapter
	// Every request brings its own user token, so user clients are built per request.
	opts := []spotify.Option{
		spotify.WithStrictDecorations(cfg.Spotify.StrictDecorations),
		spotify.WithTimeout(cfg.Spotify.Timeout),
	}
	catalogFor := func(token string) ports.CatalogProvider {
		return spotify.NewUserClient(ctx, token, cfg.Spotify.BaseURL, opts...)
	}

	var appCatalog ports.CatalogProvider
	if cfg.Spotify.HasAppCredentials() {
		appCatalog = spotify.NewAppClient(ctx, cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL, cfg.Spotify.BaseURL, opts...)
	} else {
		slog.Warn("SPOTIFY_CLIENT_ID/SPOTIFY_CLIENT_SECRET not set; new releases need a user token")
	}

	// 3. Initialize "Driving" Adapter (The Interface)
	handler := rest.NewHandler(catalogFor, appCatalog, widgets)

	// 4. Start the Server
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("dashboard API listening", "addr", cfg.HTTP.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}
	return nil
}
