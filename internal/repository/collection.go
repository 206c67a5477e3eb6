package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"

	"github.com/rs/zerolog"
)

type CollectionRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCollectionRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CollectionRepository {
	return &CollectionRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// List returns owned cards, most recently first pulled first.
func (r *CollectionRepository) List(ctx context.Context, sessionID string) ([]domain.OwnedCard, error) {
	rows, err := r.queries.ListCollectionBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}

	owned := make([]domain.OwnedCard, len(rows))
	for i, row := range rows {
		card, err := toDomainCard(row.Card)
		if err != nil {
			return nil, err
		}
		owned[i] = domain.OwnedCard{
			Card:      card,
			Quantity:  int(row.Quantity),
			FirstPull: row.FirstPull.UTC(),
			LastPull:  row.LastPull.UTC(),
		}
	}
	return owned, nil
}

func (r *CollectionRepository) Get(ctx context.Context, sessionID, cardID string) (*domain.CollectionEntry, error) {
	row, err := r.queries.GetCollectionEntry(ctx, db.GetCollectionEntryParams{
		SessionID: sessionID,
		CardID:    cardID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection entry: %w", err)
	}
	return &domain.CollectionEntry{
		ID:        row.ID,
		SessionID: row.SessionID,
		CardID:    row.CardID,
		Quantity:  int(row.Quantity),
		FirstPull: row.FirstPull.UTC(),
		LastPull:  row.LastPull.UTC(),
	}, nil
}

// Missing returns catalog cards the session has never pulled, by card number.
func (r *CollectionRepository) Missing(ctx context.Context, sessionID string) ([]domain.Card, error) {
	rows, err := r.queries.ListMissingCards(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing cards: %w", err)
	}
	return toDomainCards(rows)
}

func (r *CollectionRepository) Summary(ctx context.Context, sessionID string) (*domain.CollectionSummary, error) {
	owned, err := r.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return Summarize(owned), nil
}

func Summarize(owned []domain.OwnedCard) *domain.CollectionSummary {
	summary := &domain.CollectionSummary{
		OwnedCards: len(owned),
		ByRarity:   make(map[string]int),
		ByColor:    make(map[string]int),
		ByType:     make(map[string]int),
	}
	for _, o := range owned {
		summary.ByRarity[string(o.Card.Rarity)]++
		summary.ByColor[o.Card.Color]++
		summary.ByType[o.Card.Type]++
		if o.Quantity > 1 {
			summary.TotalDuplicates += o.Quantity - 1
		}
	}
	return summary
}
