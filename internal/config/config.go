package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds every environment-driven setting of the service.
type Config struct {
	Port             string
	DBDriver         string
	DBPath           string
	DatabaseURL      string
	SeedPath         string
	TranslationsPath string
	RedisURL         string
	SessionTTL       time.Duration
	BoardingLead     time.Duration
	GeminiAPIKey     string
	GeminiModel      string
	LogLevel         string
	LogFile          string
}

// LoadDotEnv reads .env if present. A missing file is not an error.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Get returns the value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	cfg := Config{
		Port:             Get("PORT", "8080"),
		DBDriver:         strings.ToLower(Get("DB_DRIVER", DriverSQLite)),
		DBPath:           Get("DB_PATH", "data/app.db"),
		DatabaseURL:      Get("DATABASE_URL", ""),
		SeedPath:         Get("SEED_PATH", "data/seeds/checkpoints.json"),
		TranslationsPath: Get("TRANSLATIONS_PATH", "data/i18n/translations.yaml"),
		RedisURL:         Get("REDIS_URL", ""),
		GeminiAPIKey:     Get("GEMINI_API_KEY", ""),
		GeminiModel:      Get("GEMINI_MODEL", "gemini-flash-latest"),
		LogLevel:         Get("LOG_LEVEL", "info"),
		LogFile:          Get("LOG_FILE", ""),
	}

	var err error
	if cfg.SessionTTL, err = duration("SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.BoardingLead, err = duration("BOARDING_LEAD", 120*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.BoardingLead <= 0 {
		return Config{}, fmt.Errorf("load config: BOARDING_LEAD must be positive, got %s", cfg.BoardingLead)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("load config: DATABASE_URL is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("load config: parse %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("load config: %s must not be negative", key)
	}
	return d, nil
}
