// Package databasetest opens throwaway migrated databases for package tests.
package databasetest

import (
	"database/sql"
	"path/filepath"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/database"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func New(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}
	db, err := database.New(cfg, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}
