package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"terminal-itinerary-service/internal/adapters/cache"
	"terminal-itinerary-service/internal/adapters/i18n"
	"terminal-itinerary-service/internal/adapters/repositories"
	"terminal-itinerary-service/internal/adapters/suggest"
	"terminal-itinerary-service/internal/api"
	"terminal-itinerary-service/internal/config"
	"terminal-itinerary-service/internal/domain"
	"terminal-itinerary-service/internal/platform/db"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"
	"terminal-itinerary-service/internal/services"
	"time"

	"github.com/rs/zerolog/log"
)

// main is the application composition root.
// It wires concrete adapters (SQL catalog, Redis sessions, Gemini) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run() error {
	dotenv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := obs.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Logger = logger

	if !dotenv {
		log.Info().Msg("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, repo, err := openCatalogStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	checkpoints, err := repo.ListCheckpoints(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	catalog, err := domain.NewCatalog(checkpoints)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	translations, err := i18n.LoadTranslations(cfg.TranslationsPath)
	if err != nil {
		return err
	}

	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var provider ports.SuggestionProvider
	if cfg.GeminiAPIKey != "" {
		gemini, err := suggest.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		provider = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, suggestions use keyword matching only")
	}

	sessions, err := services.NewItinerarySessions(catalog, store, services.SystemClock{}, cfg.BoardingLead)
	if err != nil {
		return err
	}
	suggester, err := services.NewSuggester(catalog, provider, translations)
	if err != nil {
		return err
	}

	router := api.NewRouter(catalog, translations, sessions, suggester)

	// Write timeout leaves room for a slow suggestion provider with retries.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Int("checkpoints", catalog.Len()).
			Str("db_driver", cfg.DBDriver).
			Bool("redis", cfg.RedisURL != "").
			Msg("server listening")
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// openCatalogStore opens the configured database, applies the schema and
// seeds it from the JSON catalog.
func openCatalogStore(ctx context.Context, cfg config.Config) (*sql.DB, ports.CheckpointRepository, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSQLSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		if err := repositories.SeedSQLFromJSON(ctx, conn, cfg.SeedPath); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		return conn, repositories.NewSQLCheckpointRepository(conn), nil

	default:
		conn, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		if err := repositories.SeedFromJSON(conn, cfg.SeedPath); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("init and seed: %w", err)
		}
		return conn, repositories.NewSqliteCheckpointRepository(conn), nil
	}
}

func openSessionStore(ctx context.Context, cfg config.Config) (ports.ItineraryStore, func(), error) {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, sessions are kept in memory")
		return cache.NewMemoryItineraryStore(), func() {}, nil
	}

	client, err := cache.OpenRedis(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisItineraryStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
}
