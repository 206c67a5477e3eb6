package gacha

import (
	"context"
	"fmt"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"time"
)

// Store is the engine's view of persistence. Callers bind it to the
// transaction that also debited the session.
type Store interface {
	CardPool(ctx context.Context) ([]domain.Card, error)
	AddToCollection(ctx context.Context, sessionID, cardID string, at time.Time) (isNew bool, err error)
	AppendHistory(ctx context.Context, sessionID string, cardIDs []string, pullType domain.PullType, at time.Time) error
	SetLastPull(ctx context.Context, sessionID string, at time.Time) error
}

type Engine struct {
	rates *RateTable
	rng   RandomSource
	now   func() time.Time
}

type Option func(*Engine)

func WithRandomSource(rng RandomSource) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(rates *RateTable, opts ...Option) *Engine {
	if rates == nil {
		rates = DefaultRates()
	}
	e := &Engine{
		rates: rates,
		rng:   DefaultRNG(),
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Rates() *RateTable {
	return e.rates
}

// Pool groups a catalog snapshot by rarity for repeated draws.
type Pool struct {
	cards        []domain.Card
	byRarity     map[domain.Rarity][]domain.Card
	rareOrBetter []domain.Card
}

func NewPool(cards []domain.Card) *Pool {
	p := &Pool{
		cards:    cards,
		byRarity: make(map[domain.Rarity][]domain.Card),
	}
	for _, c := range cards {
		p.byRarity[c.Rarity] = append(p.byRarity[c.Rarity], c)
		if c.Rarity.IsRareOrBetter() {
			p.rareOrBetter = append(p.rareOrBetter, c)
		}
	}
	return p
}

func (p *Pool) Len() int { return len(p.cards) }

// PullPack draws one pack of constants.CardsPerPack cards. The first slot is
// reserved for a rare or better card whenever the pool has one.
func (e *Engine) PullPack(ctx context.Context, store Store, sessionID string) ([]domain.PulledCard, error) {
	cards, err := store.CardPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load card pool: %w", err)
	}
	pool := NewPool(cards)
	if pool.Len() == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", domain.ErrPoolExhausted)
	}

	results := make([]domain.PulledCard, 0, constants.CardsPerPack)

	if card, ok := e.SelectGuaranteed(pool); ok {
		pulled, err := e.collect(ctx, store, sessionID, card)
		if err != nil {
			return nil, err
		}
		results = append(results, pulled)
	}

	for len(results) < constants.CardsPerPack {
		card, ok := e.SelectWeighted(pool)
		if !ok {
			return nil, fmt.Errorf("%w: no eligible card for slot %d", domain.ErrPoolExhausted, len(results)+1)
		}
		pulled, err := e.collect(ctx, store, sessionID, card)
		if err != nil {
			return nil, err
		}
		results = append(results, pulled)
	}

	at := e.now()
	cardIDs := make([]string, len(results))
	for i, r := range results {
		cardIDs[i] = r.Card.ID
	}
	if err := store.AppendHistory(ctx, sessionID, cardIDs, domain.PullTypeSinglePack, at); err != nil {
		return nil, fmt.Errorf("failed to record pull history: %w", err)
	}
	if err := store.SetLastPull(ctx, sessionID, at); err != nil {
		return nil, fmt.Errorf("failed to update last pull: %w", err)
	}

	return results, nil
}

// PullMultiplePacks opens count packs one after another, each against a fresh
// pool snapshot. Charging for the batch is the caller's job.
func (e *Engine) PullMultiplePacks(ctx context.Context, store Store, sessionID string, count int) ([]domain.PulledCard, error) {
	if count < 1 {
		return nil, domain.ErrInvalidPackCount
	}
	all := make([]domain.PulledCard, 0, count*constants.CardsPerPack)
	for i := 0; i < count; i++ {
		cards, err := e.PullPack(ctx, store, sessionID)
		if err != nil {
			return nil, fmt.Errorf("pack %d of %d: %w", i+1, count, err)
		}
		all = append(all, cards...)
	}
	return all, nil
}

func (e *Engine) SelectGuaranteed(pool *Pool) (domain.Card, bool) {
	return e.pick(pool.rareOrBetter)
}

// SelectWeighted walks the rate table accumulating rates until the running
// total reaches the roll. A rarity with no cards is skipped without
// renormalizing, so its mass lands on the next populated boundary. Anything
// left over falls back to commons.
func (e *Engine) SelectWeighted(pool *Pool) (domain.Card, bool) {
	roll := e.rng.Float64()
	cumulative := 0.0
	for _, rr := range e.rates.Rates {
		cumulative += rr.Rate
		if roll <= cumulative {
			if card, ok := e.pick(pool.byRarity[rr.Rarity]); ok {
				return card, true
			}
		}
	}
	return e.pick(pool.byRarity[domain.RarityCommon])
}

func (e *Engine) pick(cards []domain.Card) (domain.Card, bool) {
	if len(cards) == 0 {
		return domain.Card{}, false
	}
	idx := int(e.rng.Float64() * float64(len(cards)))
	if idx >= len(cards) {
		idx = len(cards) - 1
	}
	return cards[idx], true
}

func (e *Engine) collect(ctx context.Context, store Store, sessionID string, card domain.Card) (domain.PulledCard, error) {
	isNew, err := store.AddToCollection(ctx, sessionID, card.ID, e.now())
	if err != nil {
		return domain.PulledCard{}, fmt.Errorf("failed to add card %s to collection: %w", card.ID, err)
	}
	return domain.PulledCard{Card: card, IsNew: isNew}, nil
}
