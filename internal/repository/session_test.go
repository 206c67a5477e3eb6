package repository

import (
	"context"
	"tcg-gacha/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryCreateAndGet(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	created, err := r.sessions.Create(ctx, 16000)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := r.sessions.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(16000), got.Balance)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, 0)
	assert.Nil(t, got.LastPull)

	_, err = r.sessions.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepositoryResetClearsOwnedRows(t *testing.T) {
	r := newRepos(t)
	seedCards(t, r)
	ctx := context.Background()

	old, err := r.sessions.Create(ctx, 5000)
	require.NoError(t, err)

	_, err = r.pulls.Run(ctx, old.ID, 1000, func(store *PullStore) error {
		if _, err := store.AddToCollection(ctx, old.ID, "bt23-001", fixedTime(0)); err != nil {
			return err
		}
		return store.AppendHistory(ctx, old.ID, []string{"bt23-001"}, domain.PullTypeSinglePack, fixedTime(1))
	})
	require.NoError(t, err)

	fresh, err := r.sessions.Reset(ctx, old.ID, 16000)
	require.NoError(t, err)
	assert.NotEqual(t, old.ID, fresh.ID)
	assert.Equal(t, int64(16000), fresh.Balance)

	_, err = r.sessions.Get(ctx, old.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var remaining int
	require.NoError(t, r.sqlDB.QueryRow("SELECT COUNT(*) FROM collection_entries WHERE session_id = ?", old.ID).Scan(&remaining))
	assert.Zero(t, remaining)
	require.NoError(t, r.sqlDB.QueryRow("SELECT COUNT(*) FROM pull_history WHERE session_id = ?", old.ID).Scan(&remaining))
	assert.Zero(t, remaining)

	owned, err := r.collection.List(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestSessionRepositoryResetUnknownSession(t *testing.T) {
	r := newRepos(t)

	fresh, err := r.sessions.Reset(context.Background(), "never-existed", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), fresh.Balance)
}
