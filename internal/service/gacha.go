package service

import (
	"context"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/gacha"
	"tcg-gacha/internal/repository"

	"github.com/rs/zerolog"
)

type PullResult struct {
	Cards            []domain.PulledCard
	PacksOpened      int
	RemainingBalance int64
	TotalCost        int64
}

type RatesDisclosure struct {
	Rates        map[string]string
	Guarantees   map[string]string
	PackCost     int64
	CardsPerPack int
}

type GachaService struct {
	engine   *gacha.Engine
	pulls    *repository.PullRepository
	history  *repository.HistoryRepository
	packCost int64
	logger   zerolog.Logger
}

func NewGachaService(engine *gacha.Engine, pulls *repository.PullRepository, history *repository.HistoryRepository, cfg *config.Config, logger zerolog.Logger) *GachaService {
	return &GachaService{
		engine:   engine,
		pulls:    pulls,
		history:  history,
		packCost: cfg.PackCost,
		logger:   logger,
	}
}

func (s *GachaService) PullPack(ctx context.Context, sessionID string) (*PullResult, error) {
	return s.pull(ctx, sessionID, 1)
}

// PullPacks charges for count packs up front and opens them in order.
// count outside [1, 10] is rejected before anything is debited.
func (s *GachaService) PullPacks(ctx context.Context, sessionID string, count int) (*PullResult, error) {
	if count < constants.MinPacksPerPull || count > constants.MaxPacksPerPull {
		return nil, domain.ErrInvalidPackCount
	}
	return s.pull(ctx, sessionID, count)
}

func (s *GachaService) pull(ctx context.Context, sessionID string, count int) (*PullResult, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	cost := s.packCost * int64(count)

	var cards []domain.PulledCard
	balance, err := s.pulls.Run(ctx, sessionID, cost, func(store *repository.PullStore) error {
		var err error
		cards, err = s.engine.PullMultiplePacks(ctx, store, sessionID, count)
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Int("count", count).Msg("pull failed")
		return nil, err
	}

	newCards := 0
	for _, c := range cards {
		if c.IsNew {
			newCards++
		}
	}
	s.logger.Info().
		Str("session_id", sessionID).
		Int("count", count).
		Int("cards", len(cards)).
		Int("new_cards", newCards).
		Int64("remaining_balance", balance).
		Msg("packs opened")

	return &PullResult{
		Cards:            cards,
		PacksOpened:      count,
		RemainingBalance: balance,
		TotalCost:        cost,
	}, nil
}

// History returns recent pulls. A non-positive limit means the default and
// anything above the cap is clamped.
func (s *GachaService) History(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.history.List(ctx, sessionID, ClampHistoryLimit(limit))
}

func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return constants.HistoryDefaultLimit
	}
	if limit > constants.HistoryMaxLimit {
		return constants.HistoryMaxLimit
	}
	return limit
}

func (s *GachaService) Rates() RatesDisclosure {
	table := s.engine.Rates()
	return RatesDisclosure{
		Rates:        table.Percentages(),
		Guarantees:   table.Guarantees,
		PackCost:     s.packCost,
		CardsPerPack: constants.CardsPerPack,
	}
}
