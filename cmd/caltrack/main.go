package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	adapthttp "caltrack/internal/adapter/http"
	"caltrack/internal/adapter/memory"
	"caltrack/internal/adapter/openfoodfacts"
	"caltrack/internal/adapter/postgres"
	"caltrack/internal/app"
	"caltrack/internal/config"
	"caltrack/internal/domain"
	"caltrack/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, closer, err := logger.Init(cfg.Logger)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = closer.Close() }()

	if err := run(cfg, lg); err != nil {
		lg.Error("caltrack stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, lg *slog.Logger) error {
	store, closeStore, err := openStore(cfg.DatabaseURL, lg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore.Close() }()

	food := openfoodfacts.New(openfoodfacts.Config{
		BaseURL:   cfg.FoodDB.BaseURL,
		Timeout:   cfg.FoodDB.Timeout,
		PageSize:  cfg.FoodDB.PageSize,
		UserAgent: cfg.FoodDB.UserAgent,
	}, lg)

	h := adapthttp.New(adapthttp.Services{
		Users:     app.NewUserService(store),
		Entries:   app.NewEntryService(store),
		Nutrition: app.NewNutritionService(store),
		Weights:   app.NewWeightService(store),
		Favorites: app.NewFavoriteService(store),
		Food:      app.NewFoodService(food),
	}, cfg.CORSOrigins, lg).Handler()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		lg.Info("listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects to Postgres, or falls back to the in-memory store when
// no database URL is configured.
func openStore(dsn string, lg *slog.Logger) (domain.Store, io.Closer, error) {
	if dsn == "" {
		lg.Warn("DATABASE_URL not set, using in-memory store")
		return memory.New(), io.NopCloser(nil), nil
	}
	db, err := postgres.Open(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open: %w", err)
	}
	return db, db, nil
}
