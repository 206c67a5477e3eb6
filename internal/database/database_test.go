package database

import (
	"path/filepath"
	"tcg-gacha/internal/config"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunsMigrations(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "gacha.db")}

	db, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"cards", "sessions", "collection_entries", "pull_history"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestNewIsIdempotent(t *testing.T) {
	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "gacha.db")}

	first, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	first.Close()

	second, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)
	second.Close()
}
