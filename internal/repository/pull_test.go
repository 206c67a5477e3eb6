package repository

import (
	"context"
	"errors"
	"tcg-gacha/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime(offset int) time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Second)
}

func TestPullRepositoryDebitsExactBalance(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	session, err := r.sessions.Create(ctx, 1000)
	require.NoError(t, err)

	calls := 0
	balance, err := r.pulls.Run(ctx, session.ID, 1000, func(*PullStore) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	_, err = r.pulls.Run(ctx, session.ID, 1000, func(*PullStore) error {
		calls++
		return nil
	})
	var insufficient *domain.InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, int64(1000), insufficient.Required)
	assert.Equal(t, int64(0), insufficient.Current)
	assert.Equal(t, 1, calls)
}

func TestPullRepositoryRollsBackOnError(t *testing.T) {
	r := newRepos(t)
	seedCards(t, r)
	ctx := context.Background()

	session, err := r.sessions.Create(ctx, 3000)
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = r.pulls.Run(ctx, session.ID, 1000, func(store *PullStore) error {
		if _, err := store.AddToCollection(ctx, session.ID, "bt23-001", fixedTime(0)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := r.sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), got.Balance)

	owned, err := r.collection.List(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestPullRepositoryUnknownSession(t *testing.T) {
	r := newRepos(t)

	_, err := r.pulls.Run(context.Background(), "missing", 1000, func(*PullStore) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPullStoreSameCardTwice(t *testing.T) {
	r := newRepos(t)
	seedCards(t, r)
	ctx := context.Background()

	session, err := r.sessions.Create(ctx, 1000)
	require.NoError(t, err)

	var first, second bool
	_, err = r.pulls.Run(ctx, session.ID, 1000, func(store *PullStore) error {
		var err error
		if first, err = store.AddToCollection(ctx, session.ID, "bt23-001", fixedTime(0)); err != nil {
			return err
		}
		second, err = store.AddToCollection(ctx, session.ID, "bt23-001", fixedTime(5))
		return err
	})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)

	entry, err := r.collection.Get(ctx, session.ID, "bt23-001")
	require.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)
	assert.WithinDuration(t, fixedTime(0), entry.FirstPull, 0)
	assert.WithinDuration(t, fixedTime(5), entry.LastPull, 0)
}

func TestPullStoreHistoryAndLastPull(t *testing.T) {
	r := newRepos(t)
	seedCards(t, r)
	ctx := context.Background()

	session, err := r.sessions.Create(ctx, 2000)
	require.NoError(t, err)

	_, err = r.pulls.Run(ctx, session.ID, 1000, func(store *PullStore) error {
		if err := store.AppendHistory(ctx, session.ID, []string{"bt23-001", "bt23-002"}, domain.PullTypeSinglePack, fixedTime(0)); err != nil {
			return err
		}
		return store.SetLastPull(ctx, session.ID, fixedTime(0))
	})
	require.NoError(t, err)

	_, err = r.pulls.Run(ctx, session.ID, 1000, func(store *PullStore) error {
		return store.AppendHistory(ctx, session.ID, []string{"bt23-090"}, domain.PullTypeSinglePack, fixedTime(10))
	})
	require.NoError(t, err)

	entries, err := r.history.List(ctx, session.ID, 50)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "bt23-090", entries[0].Card.ID)
	// same timestamp: later insert first
	assert.Equal(t, "bt23-002", entries[1].Card.ID)
	assert.Equal(t, "bt23-001", entries[2].Card.ID)
	assert.Equal(t, domain.PullTypeSinglePack, entries[0].PullType)

	limited, err := r.history.List(ctx, session.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	count, err := r.history.Count(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := r.sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastPull)
	assert.WithinDuration(t, fixedTime(0), *got.LastPull, 0)
	assert.Equal(t, int64(0), got.Balance)
}

func TestCollectionMissingAndSummary(t *testing.T) {
	r := newRepos(t)
	seedCards(t, r)
	ctx := context.Background()

	session, err := r.sessions.Create(ctx, 1000)
	require.NoError(t, err)

	_, err = r.pulls.Run(ctx, session.ID, 1000, func(store *PullStore) error {
		for i, id := range []string{"bt23-001", "bt23-001", "bt23-001", "bt23-090"} {
			if _, err := store.AddToCollection(ctx, session.ID, id, fixedTime(i)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	missing, err := r.collection.Missing(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "bt23-002", missing[0].ID)

	owned, err := r.collection.List(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "bt23-090", owned[0].Card.ID)
	assert.Equal(t, 3, owned[1].Quantity)

	summary, err := r.collection.Summary(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.OwnedCards)
	assert.Equal(t, 2, summary.TotalDuplicates)
	assert.Equal(t, map[string]int{"common": 1, "rare": 1}, summary.ByRarity)
	assert.Equal(t, map[string]int{"red": 2}, summary.ByColor)
	assert.Equal(t, map[string]int{"digimon": 1, "tamer": 1}, summary.ByType)
}
