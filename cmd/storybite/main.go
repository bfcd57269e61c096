package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/storybite/storybite/internal/catalog"
	"github.com/storybite/storybite/internal/geoip"
	"github.com/storybite/storybite/internal/media"
	"github.com/storybite/storybite/internal/server"
	"github.com/storybite/storybite/internal/storage"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.slogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("storybite stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	locator := geoip.Open(cfg.GeoIPDB, logger)
	defer locator.Close()

	serverCfg := server.Config{
		Catalog:         catalog.Default(),
		BaseURL:         cfg.BaseURL,
		AnalyticsScript: cfg.AnalyticsScript,
		Logger:          logger,
	}
	if locator.Enabled() {
		serverCfg.Locator = locator
	}

	if cfg.UsesBucket() {
		store, err := openBucket(cfg, logger)
		if err != nil {
			return err
		}

		// Uploads are bounded per file, not by the startup checks.
		if cfg.MediaSync && cfg.MediaDir != "" {
			n, err := media.Sync(context.Background(), store, cfg.MediaDir)
			if err != nil {
				return fmt.Errorf("media sync failed: %w", err)
			}
			logger.Info("media sync complete", "uploaded", n)
		}

		serverCfg.Pinger = store
		serverCfg.Resolver = media.NewBucket(store, cfg.MediaURLExpiry)
		serverCfg.StorageEndpoint = cfg.S3PublicEndpoint
		if serverCfg.StorageEndpoint == "" {
			serverCfg.StorageEndpoint = cfg.S3Endpoint
		}
	} else {
		serverCfg.Resolver = media.NewLocal()
		if cfg.MediaDir != "" {
			serverCfg.MediaFS = os.DirFS(cfg.MediaDir)
			logger.Info("serving local media", "dir", cfg.MediaDir)
		} else {
			logger.Warn("no MEDIA_DIR or S3_ENDPOINT set, videos will not load")
		}
	}

	srv := server.New(serverCfg)
	defer srv.Close()

	return serve(srv, cfg.Port, logger)
}

func openBucket(cfg Config, logger *slog.Logger) (*storage.Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := storage.New(ctx, storage.Config{
		Endpoint:       cfg.S3Endpoint,
		PublicEndpoint: cfg.S3PublicEndpoint,
		Bucket:         cfg.S3Bucket,
		AccessKey:      cfg.S3AccessKey,
		SecretKey:      cfg.S3SecretKey,
		Region:         cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage initialization failed: %w", err)
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("storage bucket check failed: %w", err)
	}
	if err := store.SetCORS(ctx, []string{cfg.BaseURL}); err != nil {
		logger.Warn("storage CORS not applied", "error", err)
	}
	logger.Info("storage bucket ready", "bucket", cfg.S3Bucket)
	return store, nil
}

func serve(handler http.Handler, port int, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storybite listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-shutdownCh:
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
