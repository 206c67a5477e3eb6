package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReusesKnownSession(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	session := f.newSession(t)

	again, created, err := f.sessions.Resolve(context.Background(), session.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, session.ID, again.ID)
}

func TestResolveUnknownIssuesNewSession(t *testing.T) {
	f := newFixture(t, 16000, 1000)

	session, created, err := f.sessions.Resolve(context.Background(), "stale-cookie")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, "stale-cookie", session.ID)
	assert.Equal(t, int64(16000), session.Balance)
}

func TestResetClearsCollectionAndHistory(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	f.seed(t)
	session := f.newSession(t)
	ctx := context.Background()

	_, err := f.gacha.PullPacks(ctx, session.ID, 2)
	require.NoError(t, err)

	owned, err := f.collection.List(ctx, session.ID)
	require.NoError(t, err)
	require.NotEmpty(t, owned)

	fresh, err := f.sessions.Reset(ctx, session.ID)
	require.NoError(t, err)
	assert.NotEqual(t, session.ID, fresh.ID)
	assert.Equal(t, int64(16000), fresh.Balance)

	for _, id := range []string{session.ID, fresh.ID} {
		owned, err := f.collection.List(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, owned)

		history, err := f.gacha.History(ctx, id, 100)
		require.NoError(t, err)
		assert.Empty(t, history)
	}
}
