package repository

import (
	"context"
	"database/sql"
	"tcg-gacha/internal/database/databasetest"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type repos struct {
	sqlDB      *sql.DB
	cards      *CardRepository
	sessions   *SessionRepository
	collection *CollectionRepository
	history    *HistoryRepository
	pulls      *PullRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()

	sqlDB := databasetest.New(t)
	queries := db.New(sqlDB)
	logger := zerolog.Nop()

	return repos{
		sqlDB:      sqlDB,
		cards:      NewCardRepository(sqlDB, queries, logger),
		sessions:   NewSessionRepository(sqlDB, queries, logger),
		collection: NewCollectionRepository(sqlDB, queries, logger),
		history:    NewHistoryRepository(sqlDB, queries, logger),
		pulls:      NewPullRepository(sqlDB, queries, logger),
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func sampleCards() []domain.Card {
	return []domain.Card{
		{
			ID:         "bt23-001",
			CardNumber: "BT23-001",
			Name:       "Agumon",
			Rarity:     domain.RarityCommon,
			Color:      "red",
			Type:       "digimon",
			Level:      intPtr(3),
			DP:         intPtr(2000),
			PlayCost:   intPtr(3),
			TypeTraits: []string{"Reptile", "Vaccine"},
			MainEffect: strPtr("[On Play] Reveal the top 3 cards of your deck."),
			ImageURL:   "https://images.heroi.cc/cards/bt23-001.jpg",
		},
		{
			ID:         "bt23-002",
			CardNumber: "BT23-002",
			Name:       "Gabumon",
			Rarity:     domain.RarityUncommon,
			Color:      "blue",
			Type:       "digimon",
			TypeTraits: []string{},
			ImageURL:   "https://images.heroi.cc/cards/bt23-002.jpg",
		},
		{
			ID:         "bt23-090",
			CardNumber: "BT23-090",
			Name:       "Tai Kamiya",
			Rarity:     domain.RarityRare,
			Color:      "red",
			Type:       "tamer",
			TypeTraits: []string{},
			ImageURL:   "https://images.heroi.cc/cards/bt23-090.jpg",
		},
	}
}

func seedCards(t *testing.T, r repos) []domain.Card {
	t.Helper()
	cards := sampleCards()
	require.NoError(t, r.cards.Replace(context.Background(), cards, false))
	return cards
}
