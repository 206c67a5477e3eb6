package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SessionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSessionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, balance int64) (*domain.Session, error) {
	return createSession(ctx, r.queries, balance)
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	row, err := r.queries.GetSession(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return toDomainSession(row), nil
}

// Reset drops the old session with its collection and history and creates a
// replacement holding balance. Both happen in one transaction.
func (r *SessionRepository) Reset(ctx context.Context, oldID string, balance int64) (*domain.Session, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if err := qtx.DeletePullHistoryBySession(ctx, oldID); err != nil {
		return nil, fmt.Errorf("failed to delete pull history: %w", err)
	}
	if err := qtx.DeleteCollectionBySession(ctx, oldID); err != nil {
		return nil, fmt.Errorf("failed to delete collection: %w", err)
	}
	deleted, err := qtx.DeleteSession(ctx, oldID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		r.logger.Debug().Str("session_id", oldID).Msg("session to reset did not exist")
	}

	session, err := createSession(ctx, qtx, balance)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit session reset: %w", err)
	}

	r.logger.Info().
		Str("old_session_id", oldID).
		Str("session_id", session.ID).
		Msg("session reset")

	return session, nil
}

func createSession(ctx context.Context, q *db.Queries, balance int64) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
	err := q.CreateSession(ctx, db.CreateSessionParams{
		ID:        session.ID,
		Balance:   session.Balance,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func toDomainSession(row db.Session) *domain.Session {
	session := &domain.Session{
		ID:        row.ID,
		Balance:   row.Balance,
		CreatedAt: row.CreatedAt.UTC(),
	}
	if row.LastPull != nil {
		t := row.LastPull.UTC()
		session.LastPull = &t
	}
	return session
}
