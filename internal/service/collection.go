package service

import (
	"context"
	"fmt"
	"math"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type CollectionService struct {
	collection *repository.CollectionRepository
	cards      *repository.CardRepository
	history    *repository.HistoryRepository
	logger     zerolog.Logger
}

func NewCollectionService(collection *repository.CollectionRepository, cards *repository.CardRepository, history *repository.HistoryRepository, logger zerolog.Logger) *CollectionService {
	return &CollectionService{collection: collection, cards: cards, history: history, logger: logger}
}

func (s *CollectionService) List(ctx context.Context, sessionID string) ([]domain.OwnedCard, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.collection.List(ctx, sessionID)
}

func (s *CollectionService) Missing(ctx context.Context, sessionID string) ([]domain.Card, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.collection.Missing(ctx, sessionID)
}

func (s *CollectionService) Stats(ctx context.Context, sessionID string) (*domain.CollectionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var (
		totalCards int
		totalPulls int
		summary    *domain.CollectionSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalCards, err = s.cards.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		summary, err = s.collection.Summary(gCtx, sessionID)
		return err
	})

	g.Go(func() error {
		var err error
		totalPulls, err = s.history.Count(gCtx, sessionID)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to compute collection stats")
		return nil, fmt.Errorf("failed to compute collection stats: %w", err)
	}

	return &domain.CollectionStats{
		TotalCards:           totalCards,
		OwnedCards:           summary.OwnedCards,
		CompletionPercentage: completion(summary.OwnedCards, totalCards),
		TotalPulls:           totalPulls,
		TotalDuplicates:      summary.TotalDuplicates,
		ByRarity:             summary.ByRarity,
		ByColor:              summary.ByColor,
		ByType:               summary.ByType,
	}, nil
}

func completion(owned, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(owned) / float64(total) * 100))
}
