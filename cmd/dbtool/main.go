package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"terminal-itinerary-service/internal/adapters/i18n"
	"terminal-itinerary-service/internal/adapters/repositories"
	"terminal-itinerary-service/internal/config"
	"terminal-itinerary-service/internal/platform/db"
	"terminal-itinerary-service/internal/platform/obs"
	"terminal-itinerary-service/internal/ports"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

type flags struct {
	driver       string
	dbPath       string
	databaseURL  string
	seedPath     string
	translations string
	lang         string
	logLevel     string
}

func main() {
	config.LoadDotEnv()

	f := &flags{}

	app := &cli.Command{
		Name:  "dbtool",
		Usage: "Manage the checkpoint catalog database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "driver",
				Usage:       "database driver (sqlite, postgres)",
				Sources:     cli.EnvVars("DB_DRIVER"),
				Value:       config.DriverSQLite,
				Destination: &f.driver,
			},
			&cli.StringFlag{
				Name:        "db-path",
				Usage:       "sqlite database file",
				Sources:     cli.EnvVars("DB_PATH"),
				Value:       "data/app.db",
				Destination: &f.dbPath,
			},
			&cli.StringFlag{
				Name:        "database-url",
				Usage:       "postgres connection url",
				Sources:     cli.EnvVars("DATABASE_URL"),
				Destination: &f.databaseURL,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Value:       "info",
				Destination: &f.logLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, _, err := obs.NewLogger(f.logLevel, "")
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Create the checkpoints schema",
				Action: f.runInit,
			},
			{
				Name:  "seed",
				Usage: "Create the schema and upsert checkpoints from a JSON seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "seed file path",
						Sources:     cli.EnvVars("SEED_PATH"),
						Value:       "data/seeds/checkpoints.json",
						Destination: &f.seedPath,
					},
				},
				Action: f.runSeed,
			},
			{
				Name:      "list",
				Aliases:   []string{"ls"},
				Usage:     "Print the stored catalog as JSON lines",
				UsageText: "dbtool list [--lang zh]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "lang",
						Usage:       "localize names with the translations file",
						Value:       "en",
						Destination: &f.lang,
					},
					&cli.StringFlag{
						Name:        "translations",
						Sources:     cli.EnvVars("TRANSLATIONS_PATH"),
						Value:       "data/i18n/translations.yaml",
						Destination: &f.translations,
					},
				},
				Action: f.runList,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("dbtool failed")
	}
}

func (f *flags) open() (*sql.DB, error) {
	switch f.driver {
	case config.DriverPostgres:
		if f.databaseURL == "" {
			return nil, fmt.Errorf("--database-url is required for driver %q", f.driver)
		}
		return db.Open(f.databaseURL)
	case config.DriverSQLite:
		return db.OpenSQLite(f.dbPath)
	default:
		return nil, fmt.Errorf("unknown driver %q", f.driver)
	}
}

func (f *flags) initSchema(ctx context.Context, conn *sql.DB) error {
	if f.driver == config.DriverPostgres {
		return repositories.InitSQLSchema(ctx, conn)
	}
	return repositories.InitSchema(conn)
}

func (f *flags) runInit(ctx context.Context, c *cli.Command) error {
	conn, err := f.open()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := f.initSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info().Str("driver", f.driver).Msg("schema ready")
	return nil
}

func (f *flags) runSeed(ctx context.Context, c *cli.Command) error {
	conn, err := f.open()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := f.initSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	if f.driver == config.DriverPostgres {
		err = repositories.SeedSQLFromJSON(ctx, conn, f.seedPath)
	} else {
		err = repositories.SeedFromJSON(conn, f.seedPath)
	}
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Info().Str("driver", f.driver).Str("file", f.seedPath).Msg("seeding complete")
	return nil
}

func (f *flags) runList(ctx context.Context, c *cli.Command) error {
	conn, err := f.open()
	if err != nil {
		return err
	}
	defer conn.Close()

	var repo ports.CheckpointRepository = repositories.NewSqliteCheckpointRepository(conn)
	if f.driver == config.DriverPostgres {
		repo = repositories.NewSQLCheckpointRepository(conn)
	}

	checkpoints, err := repo.ListCheckpoints(ctx)
	if err != nil {
		return err
	}

	translations, err := i18n.LoadTranslations(f.translations)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, cp := range translations.LocalizeAll(checkpoints, f.lang) {
		if err := enc.Encode(map[string]any{
			"id":        cp.ID,
			"name":      cp.Name,
			"type":      translations.CategoryLabel(cp.Category, f.lang),
			"x":         cp.X,
			"y":         cp.Y,
			"mandatory": cp.Mandatory,
			"minutes":   cp.DwellMinutes(),
		}); err != nil {
			return err
		}
	}
	return nil
}
