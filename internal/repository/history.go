package repository

import (
	"context"
	"database/sql"
	"fmt"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"

	"github.com/rs/zerolog"
)

type HistoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewHistoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// List returns at most limit pulls, newest first.
func (r *HistoryRepository) List(ctx context.Context, sessionID string, limit int) ([]domain.HistoryEntry, error) {
	rows, err := r.queries.ListPullHistoryBySession(ctx, db.ListPullHistoryBySessionParams{
		SessionID: sessionID,
		Limit:     int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull history: %w", err)
	}

	entries := make([]domain.HistoryEntry, len(rows))
	for i, row := range rows {
		card, err := toDomainCard(row.Card)
		if err != nil {
			return nil, err
		}
		entries[i] = domain.HistoryEntry{
			ID:        row.ID,
			Card:      card,
			PullType:  domain.PullType(row.PullType),
			Timestamp: row.Timestamp.UTC(),
		}
	}
	return entries, nil
}

func (r *HistoryRepository) Count(ctx context.Context, sessionID string) (int, error) {
	n, err := r.queries.CountPullHistoryBySession(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to count pull history: %w", err)
	}
	return int(n), nil
}
