package fx

import (
	"database/sql"
	"tcg-gacha/internal/api"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/database"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/gacha"
	"tcg-gacha/internal/logger"
	"tcg-gacha/internal/repository"
	"tcg-gacha/internal/server"
	"tcg-gacha/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideRates(cfg *config.Config, log zerolog.Logger) (*gacha.RateTable, error) {
	table, err := gacha.LoadRates(cfg.RatesPath)
	if err != nil {
		return nil, err
	}
	log.Info().Interface("rates", table.Percentages()).Str("path", cfg.RatesPath).Msg("rate table loaded")
	return table, nil
}

func ProvideEngine(rates *gacha.RateTable) *gacha.Engine {
	return gacha.NewEngine(rates)
}

func ApplyLogLevel(cfg *config.Config) error {
	return logger.SetGlobalLevel(cfg.LogLevel)
}

// Core is everything except the HTTP server; the seed command runs on it.
var Core = fx.Options(
	logger.Module,
	config.Module,
	fx.Invoke(ApplyLogLevel),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewCardRepository),
	fx.Provide(repository.NewSessionRepository),
	fx.Provide(repository.NewCollectionRepository),
	fx.Provide(repository.NewHistoryRepository),
	fx.Provide(repository.NewPullRepository),
	// api client
	fx.Provide(api.NewHeroiccClient),
	// engine
	fx.Provide(ProvideRates),
	fx.Provide(ProvideEngine),
	// svc
	fx.Provide(service.NewSessionService),
	fx.Provide(service.NewCatalogService),
	fx.Provide(service.NewGachaService),
	fx.Provide(service.NewCollectionService),
	fx.Provide(service.NewImportService),
)

var Module = fx.Options(
	Core,
	// server
	fx.Provide(server.NewServer),
)
