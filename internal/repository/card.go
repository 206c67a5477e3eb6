package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/db"
	"tcg-gacha/internal/domain"
	"time"

	"github.com/rs/zerolog"
)

type CardRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCardRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CardRepository {
	return &CardRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *CardRepository) List(ctx context.Context, filter domain.CardFilter) ([]domain.Card, error) {
	rows, err := r.queries.FilterCards(ctx, db.FilterCardsParams{
		Rarity: optional(filter.Rarity),
		Color:  optional(filter.Color),
		Type:   optional(filter.Type),
		Search: optional(escapeLike(filter.Search)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return toDomainCards(rows)
}

func (r *CardRepository) Get(ctx context.Context, id string) (*domain.Card, error) {
	row, err := r.queries.GetCard(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card %s: %w", id, err)
	}
	card, err := toDomainCard(row)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountCards(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return int(n), nil
}

func (r *CardRepository) CountByRarity(ctx context.Context) (map[string]int, error) {
	rows, err := r.queries.CountCardsByRarity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards by rarity: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Rarity] = int(row.Count)
	}
	return out, nil
}

func (r *CardRepository) CountByColor(ctx context.Context) (map[string]int, error) {
	rows, err := r.queries.CountCardsByColor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards by color: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Color] = int(row.Count)
	}
	return out, nil
}

func (r *CardRepository) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := r.queries.CountCardsByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards by type: %w", err)
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Type] = int(row.Count)
	}
	return out, nil
}

// Replace makes the catalog match cards in one transaction. With clearFirst
// every card is deleted up front; otherwise cards are upserted by id and any
// card missing from the payload is removed afterwards.
func (r *CardRepository) Replace(ctx context.Context, cards []domain.Card, clearFirst bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if clearFirst {
		deleted, err := qtx.DeleteAllCards(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear cards: %w", err)
		}
		r.logger.Info().Int64("deleted", deleted).Msg("cleared existing cards")
	}

	now := time.Now().UTC()
	keep := make(map[string]struct{}, len(cards))

	for i := 0; i < len(cards); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(cards) {
			end = len(cards)
		}

		for _, card := range cards[i:end] {
			params, err := toUpsertCardParams(card, now)
			if err != nil {
				return err
			}
			if err := qtx.UpsertCard(ctx, params); err != nil {
				return fmt.Errorf("failed to upsert card %s: %w", card.ID, err)
			}
			keep[card.ID] = struct{}{}
		}

		r.logger.Debug().Int("upserted", end).Int("total", len(cards)).Msg("card batch written")
	}

	if !clearFirst {
		ids, err := qtx.ListCardIDs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list card ids: %w", err)
		}
		for _, id := range ids {
			if _, ok := keep[id]; ok {
				continue
			}
			if err := qtx.DeleteCard(ctx, id); err != nil {
				return fmt.Errorf("failed to delete stale card %s: %w", id, err)
			}
			r.logger.Debug().Str("card_id", id).Msg("removed card not in payload")
		}
	}

	return tx.Commit()
}

func listPool(ctx context.Context, q *db.Queries) ([]domain.Card, error) {
	rows, err := q.ListCards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load card pool: %w", err)
	}
	return toDomainCards(rows)
}

func toDomainCards(rows []db.Card) ([]domain.Card, error) {
	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		card, err := toDomainCard(row)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

func toDomainCard(row db.Card) (domain.Card, error) {
	traits := []string{}
	if row.TypeTraits != "" {
		if err := json.Unmarshal([]byte(row.TypeTraits), &traits); err != nil {
			return domain.Card{}, fmt.Errorf("failed to decode type traits of card %s: %w", row.ID, err)
		}
	}

	return domain.Card{
		ID:              row.ID,
		CardNumber:      row.CardNumber,
		Name:            row.Name,
		Rarity:          domain.Rarity(row.Rarity),
		Color:           row.Color,
		Type:            row.Type,
		Level:           toIntPtr(row.Level),
		DP:              toIntPtr(row.Dp),
		PlayCost:        toIntPtr(row.PlayCost),
		DigivolveCost:   row.DigivolveCost,
		Form:            row.Form,
		Attribute:       row.Attribute,
		TypeTraits:      traits,
		MainEffect:      row.MainEffect,
		InheritedEffect: row.InheritedEffect,
		Artist:          row.Artist,
		ImageURL:        row.ImageUrl,
		CreatedAt:       row.CreatedAt.UTC(),
		UpdatedAt:       row.UpdatedAt.UTC(),
	}, nil
}

func toUpsertCardParams(card domain.Card, now time.Time) (db.UpsertCardParams, error) {
	traits := card.TypeTraits
	if traits == nil {
		traits = []string{}
	}
	encoded, err := json.Marshal(traits)
	if err != nil {
		return db.UpsertCardParams{}, fmt.Errorf("failed to encode type traits of card %s: %w", card.ID, err)
	}

	return db.UpsertCardParams{
		ID:              card.ID,
		CardNumber:      card.CardNumber,
		Name:            card.Name,
		Rarity:          string(card.Rarity),
		Color:           card.Color,
		Type:            card.Type,
		Level:           toInt64Ptr(card.Level),
		Dp:              toInt64Ptr(card.DP),
		PlayCost:        toInt64Ptr(card.PlayCost),
		DigivolveCost:   card.DigivolveCost,
		Form:            card.Form,
		Attribute:       card.Attribute,
		TypeTraits:      string(encoded),
		MainEffect:      card.MainEffect,
		InheritedEffect: card.InheritedEffect,
		Artist:          card.Artist,
		ImageUrl:        card.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toIntPtr(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func toInt64Ptr(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
