package service

import (
	"context"
	"fmt"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type CatalogService struct {
	cards  *repository.CardRepository
	logger zerolog.Logger
}

func NewCatalogService(cards *repository.CardRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{cards: cards, logger: logger}
}

func (s *CatalogService) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.cards.List(ctx, filter)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.cards.Get(ctx, id)
}

func (s *CatalogService) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	stats := &domain.CatalogStats{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.Total, err = s.cards.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		stats.ByRarity, err = s.cards.CountByRarity(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		stats.ByColor, err = s.cards.CountByColor(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		stats.ByType, err = s.cards.CountByType(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("failed to compute catalog stats")
		return nil, fmt.Errorf("failed to compute catalog stats: %w", err)
	}
	return stats, nil
}
