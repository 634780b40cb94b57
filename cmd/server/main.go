package main

import (
	"context"
	"delivery-dashboard-service/internal/adapters/catalog"
	"delivery-dashboard-service/internal/adapters/feed"
	"delivery-dashboard-service/internal/api"
	"delivery-dashboard-service/internal/config"
	"delivery-dashboard-service/internal/platform/logging"
	"delivery-dashboard-service/internal/platform/metrics"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// main is the application composition root.
// It wires concrete adapters (vehicle catalog, feed simulator) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load(getEnv("CONFIG_PATH", ""))
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("metrics recorder init failed")
	}

	cat, err := loadCatalog(cfg.Fleet.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Fleet.Path).Msg("vehicle catalog load failed")
	}
	logger.Info().Int("vehicles", cat.Len()).Msg("vehicle catalog ready")

	sim := feed.New(feed.Options{
		Interval:  time.Duration(cfg.Feed.RefreshSeconds) * time.Second,
		FleetSize: cat.Len(),
		Seed:      cfg.Feed.Seed,
		Recorder:  recorder,
		Log:       logging.Component(logger, "feed"),
	})
	go sim.Run(ctx)

	go func() {
		if err := metrics.StartServer(ctx, cfg.Metrics.Addr, logging.Component(logger, "metrics")); err != nil {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	router := api.NewRouter(logging.Component(logger, "api"), recorder, cat, cat, sim)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server failed")
	}
	logger.Info().Msg("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadCatalog reads the fleet override file when one is configured and
// falls back to the built-in vehicle table otherwise.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}

	table, err := catalog.LoadTable(path)
	if err != nil {
		return nil, err
	}
	return catalog.New(table), nil
}
