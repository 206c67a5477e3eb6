package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// PullRepository runs a paid pull as one unit: debit, draws, collection
// upserts, history and the last pull timestamp commit or roll back together.
type PullRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPullRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PullRepository {
	return &PullRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Run debits cost from the session and calls fn inside the same transaction.
// It returns the balance left after the debit. When the balance is short
// nothing is written and the error is a *domain.InsufficientBalanceError.
func (r *PullRepository) Run(ctx context.Context, sessionID string, cost int64, fn func(*PullStore) error) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	debited, err := qtx.DebitSessionBalance(ctx, db.DebitSessionBalanceParams{
		Amount: cost,
		ID:     sessionID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to debit session: %w", err)
	}
	if debited == 0 {
		current, err := qtx.GetSessionBalance(ctx, sessionID)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read balance: %w", err)
		}
		r.logger.Debug().
			Str("session_id", sessionID).
			Int64("required", cost).
			Int64("current", current).
			Msg("insufficient balance for pull")
		return 0, &domain.InsufficientBalanceError{Required: cost, Current: current}
	}

	if err := fn(&PullStore{queries: qtx, logger: r.logger}); err != nil {
		return 0, err
	}

	balance, err := qtx.GetSessionBalance(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit pull: %w", err)
	}
	return balance, nil
}

// PullStore is the engine's store, bound to a pull transaction.
type PullStore struct {
	queries *db.Queries
	logger  zerolog.Logger
}

func (s *PullStore) CardPool(ctx context.Context) ([]domain.Card, error) {
	return listPool(ctx, s.queries)
}

// AddToCollection bumps an existing entry or creates it, reporting whether the
// card is new to the session.
func (s *PullStore) AddToCollection(ctx context.Context, sessionID, cardID string, at time.Time) (bool, error) {
	updated, err := s.queries.IncrementCollectionEntry(ctx, db.IncrementCollectionEntryParams{
		LastPull:  at,
		SessionID: sessionID,
		CardID:    cardID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to increment collection entry: %w", err)
	}
	if updated > 0 {
		return false, nil
	}

	id, err := gonanoid.New()
	if err != nil {
		return false, fmt.Errorf("failed to generate nanoid: %w", err)
	}
	err = s.queries.InsertCollectionEntry(ctx, db.InsertCollectionEntryParams{
		ID:        id,
		SessionID: sessionID,
		CardID:    cardID,
		FirstPull: at,
		LastPull:  at,
	})
	if err != nil {
		return false, fmt.Errorf("failed to insert collection entry: %w", err)
	}
	return true, nil
}

func (s *PullStore) AppendHistory(ctx context.Context, sessionID string, cardIDs []string, pullType domain.PullType, at time.Time) error {
	for _, cardID := range cardIDs {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		err = s.queries.InsertPullHistory(ctx, db.InsertPullHistoryParams{
			ID:        id,
			SessionID: sessionID,
			CardID:    cardID,
			PullType:  string(pullType),
			Timestamp: at,
		})
		if err != nil {
			return fmt.Errorf("failed to insert pull history: %w", err)
		}
	}
	return nil
}

func (s *PullStore) SetLastPull(ctx context.Context, sessionID string, at time.Time) error {
	return s.queries.UpdateSessionLastPull(ctx, db.UpdateSessionLastPullParams{
		LastPull: &at,
		ID:       sessionID,
	})
}
