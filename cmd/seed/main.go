package main

import (
	"context"
	"database/sql"
	"os"
	"sort"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/constants"
	fxmodules "tcg-gacha/internal/fx"
	"tcg-gacha/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newSeedCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var (
		release    string
		clearFirst bool
	)

	cmd := &cobra.Command{
		Use:          "seed",
		Short:        "Import a card release from the catalog API into the database",
		Example:      "seed --release bt23 --clear",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), release, clearFirst)
		},
	}

	cmd.Flags().StringVar(&release, "release", "", "release code to import (defaults to CATALOG_RELEASE)")
	cmd.Flags().BoolVar(&clearFirst, "clear", false, "delete every card before importing")
	return cmd
}

func runSeed(ctx context.Context, release string, clearFirst bool) error {
	var (
		importer *service.ImportService
		cfg      *config.Config
		sqlDB    *sql.DB
		logger   zerolog.Logger
	)

	app := fx.New(
		fxmodules.Core,
		fx.NopLogger,
		fx.Populate(&importer, &cfg, &sqlDB, &logger),
	)
	if err := app.Err(); err != nil {
		return err
	}
	defer sqlDB.Close()

	if release == "" {
		release = cfg.CatalogRelease
	}
	ctx, cancel := context.WithTimeout(ctx, constants.ImportTimeout)
	defer cancel()

	summary, err := importer.Import(ctx, release, clearFirst)
	if err != nil {
		logger.Error().Err(err).Str("release", release).Msg("seed failed")
		return err
	}

	rarities := make([]string, 0, len(summary.ByRarity))
	for r := range summary.ByRarity {
		rarities = append(rarities, r)
	}
	sort.Strings(rarities)
	for _, r := range rarities {
		logger.Info().Str("rarity", r).Int("count", summary.ByRarity[r]).Msg("card summary")
	}
	logger.Info().Str("release", release).Int("total", summary.Total).Msg("seed complete")
	return nil
}
