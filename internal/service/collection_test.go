package service

import (
	"context"
	"tcg-gacha/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionStatsAfterPulls(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	cards := f.seed(t)
	session := f.newSession(t)
	ctx := context.Background()

	result, err := f.gacha.PullPacks(ctx, session.ID, 3)
	require.NoError(t, err)

	distinct := make(map[string]int)
	for _, c := range result.Cards {
		distinct[c.Card.ID]++
	}

	stats, err := f.collection.Stats(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, len(cards), stats.TotalCards)
	assert.Equal(t, len(distinct), stats.OwnedCards)
	assert.Equal(t, len(result.Cards), stats.TotalPulls)
	assert.Equal(t, len(result.Cards)-len(distinct), stats.TotalDuplicates)
	assert.Equal(t, completion(len(distinct), len(cards)), stats.CompletionPercentage)

	missing, err := f.collection.Missing(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, missing, len(cards)-len(distinct))
	for _, m := range missing {
		_, owned := distinct[m.ID]
		assert.False(t, owned, m.ID)
	}
}

func TestCollectionStatsEmptyCatalog(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	session := f.newSession(t)

	stats, err := f.collection.Stats(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalCards)
	assert.Zero(t, stats.CompletionPercentage)
	assert.Empty(t, stats.ByRarity)
}

func TestCompletion(t *testing.T) {
	assert.Equal(t, 0, completion(0, 0))
	assert.Equal(t, 33, completion(1, 3))
	assert.Equal(t, 67, completion(2, 3))
	assert.Equal(t, 100, completion(5, 5))
}

func TestCatalogServiceStats(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	f.seed(t)
	ctx := context.Background()

	stats, err := f.catalog.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, stats.Total)
	for _, r := range domain.Rarities {
		assert.Equal(t, 4, stats.ByRarity[string(r)])
	}
	assert.Equal(t, map[string]int{"digimon": 20}, stats.ByType)

	_, err = f.catalog.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reds, err := f.catalog.List(ctx, domain.CardFilter{Color: "red"})
	require.NoError(t, err)
	for _, c := range reds {
		assert.Equal(t, "red", c.Color)
	}
}
