package service

import (
	"context"
	"fmt"
	"tcg-gacha/internal/api"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/repository"

	"github.com/rs/zerolog"
)

type ImportSummary struct {
	Release  string
	Total    int
	ByRarity map[string]int
}

type ImportService struct {
	client *api.HeroiccClient
	cards  *repository.CardRepository
	logger zerolog.Logger
}

func NewImportService(client *api.HeroiccClient, cards *repository.CardRepository, logger zerolog.Logger) *ImportService {
	return &ImportService{client: client, cards: cards, logger: logger}
}

// Import replaces the catalog with release. Every failure wraps
// domain.ErrImportFailure and leaves the catalog as it was.
func (s *ImportService) Import(ctx context.Context, release string, clearFirst bool) (*ImportSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ImportTimeout)
	defer cancel()

	s.logger.Info().Str("release", release).Bool("clear", clearFirst).Msg("fetching catalog release")

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	resp, err := s.client.FetchRelease(apiCtx, release)
	if err != nil {
		s.logger.Error().Err(err).Str("release", release).Msg("failed to fetch release")
		return nil, fmt.Errorf("%w: fetch release %s: %w", domain.ErrImportFailure, release, err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: release %s has no cards", domain.ErrImportFailure, release)
	}

	cards := make([]domain.Card, 0, len(resp.Data))
	byRarity := make(map[string]int)
	for _, c := range resp.Data {
		if c.ID == "" {
			return nil, fmt.Errorf("%w: card %q has no id", domain.ErrImportFailure, c.Attributes.CardNumber)
		}
		card := api.MapCard(c)
		if !card.Rarity.Valid() {
			s.logger.Warn().Str("card_id", card.ID).Str("rarity", string(card.Rarity)).Msg("card has unknown rarity, it will never be drawn")
		}
		byRarity[string(card.Rarity)]++
		cards = append(cards, card)
	}

	if err := s.cards.Replace(ctx, cards, clearFirst); err != nil {
		s.logger.Error().Err(err).Str("release", release).Msg("failed to store catalog")
		return nil, fmt.Errorf("%w: %w", domain.ErrImportFailure, err)
	}

	s.logger.Info().Str("release", release).Int("total", len(cards)).Msg("catalog imported")

	return &ImportSummary{Release: release, Total: len(cards), ByRarity: byRarity}, nil
}
