package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath          string
	ServerPort      string
	LogLevel        string
	FrontendURL     string
	CatalogAPIURL   string
	CatalogRelease  string
	RatesPath       string
	StartingBalance int64
	PackCost        int64
	CookieSecure    bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "gacha.db"),
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:5173"),
		CatalogAPIURL:  getEnv("CATALOG_API_URL", "https://api.heroi.cc"),
		CatalogRelease: getEnv("CATALOG_RELEASE", "bt23"),
		RatesPath:      getEnv("RATES_PATH", ""),
	}

	var err error
	if cfg.StartingBalance, err = getEnvInt("STARTING_BALANCE", 16000); err != nil {
		return nil, err
	}
	if cfg.PackCost, err = getEnvInt("PACK_COST", 1000); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = getEnvBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	if cfg.StartingBalance < 0 {
		return nil, fmt.Errorf("STARTING_BALANCE must not be negative")
	}
	if cfg.PackCost <= 0 {
		return nil, fmt.Errorf("PACK_COST must be positive")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("catalog_api_url", cfg.CatalogAPIURL).
		Str("catalog_release", cfg.CatalogRelease).
		Int64("starting_balance", cfg.StartingBalance).
		Int64("pack_cost", cfg.PackCost).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

var Module = fx.Provide(Load)
