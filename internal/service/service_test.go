package service

import (
	"context"
	"fmt"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/database/databasetest"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/gacha"
	"tcg-gacha/internal/repository"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cfg        *config.Config
	cards      *repository.CardRepository
	sessions   *SessionService
	catalog    *CatalogService
	gacha      *GachaService
	collection *CollectionService
}

func newFixture(t *testing.T, startingBalance, packCost int64) *fixture {
	t.Helper()

	sqlDB := databasetest.New(t)
	queries := db.New(sqlDB)
	logger := zerolog.Nop()
	cfg := &config.Config{StartingBalance: startingBalance, PackCost: packCost}

	cards := repository.NewCardRepository(sqlDB, queries, logger)
	sessions := repository.NewSessionRepository(sqlDB, queries, logger)
	collection := repository.NewCollectionRepository(sqlDB, queries, logger)
	history := repository.NewHistoryRepository(sqlDB, queries, logger)
	pulls := repository.NewPullRepository(sqlDB, queries, logger)

	engine := gacha.NewEngine(gacha.DefaultRates(), gacha.WithRandomSource(gacha.NewSeededRNG(2024)))

	return &fixture{
		cfg:        cfg,
		cards:      cards,
		sessions:   NewSessionService(sessions, cfg, logger),
		catalog:    NewCatalogService(cards, logger),
		gacha:      NewGachaService(engine, pulls, history, cfg, logger),
		collection: NewCollectionService(collection, cards, history, logger),
	}
}

func (f *fixture) seed(t *testing.T) []domain.Card {
	t.Helper()

	var cards []domain.Card
	colors := []string{"red", "blue", "yellow"}
	for _, r := range domain.Rarities {
		for i := 0; i < 4; i++ {
			cards = append(cards, domain.Card{
				ID:         fmt.Sprintf("%s-%d", r, i),
				CardNumber: fmt.Sprintf("BT23-%s-%02d", r, i),
				Name:       fmt.Sprintf("%s %d", r, i),
				Rarity:     r,
				Color:      colors[i%len(colors)],
				Type:       domain.DefaultType,
				ImageURL:   "https://images.heroi.cc/cards/x.jpg",
			})
		}
	}
	require.NoError(t, f.cards.Replace(context.Background(), cards, true))
	return cards
}

func (f *fixture) newSession(t *testing.T) *domain.Session {
	t.Helper()
	session, created, err := f.sessions.Resolve(context.Background(), "")
	require.NoError(t, err)
	require.True(t, created)
	return session
}
