package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"tcg-gacha/internal/api"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/domain"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importPayload = `{"data":[
 {"id":"a","attributes":{"card_number":"BT23-001","name":"Agumon","rarity":"c","color":"red","level":3}},
 {"id":"b","attributes":{"card_number":"BT23-002","name":"Greymon","rarity":"r"}},
 {"id":"c","attributes":{"card_number":"BT23-003","name":"Omnimon","rarity":"SEC","type":"digimon"}}
]}`

func newImportService(t *testing.T, f *fixture, handler http.HandlerFunc) *ImportService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.NewHeroiccClient(&config.Config{CatalogAPIURL: srv.URL})
	return NewImportService(client, f.cards, zerolog.Nop())
}

func TestImportIsIdempotent(t *testing.T) {
	f := newFixture(t, 16000, 1000)
	svc := newImportService(t, f, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(importPayload))
	})
	ctx := context.Background()

	snapshot := func() []domain.Card {
		cards, err := f.catalog.List(ctx, domain.CardFilter{})
		require.NoError(t, err)
		for i := range cards {
			cards[i].CreatedAt = time.Time{}
			cards[i].UpdatedAt = time.Time{}
		}
		return cards
	}

	summary, err := svc.Import(ctx, "bt23", true)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[string]int{"common": 1, "rare": 1, "secret_rare": 1}, summary.ByRarity)
	first := snapshot()

	_, err = svc.Import(ctx, "bt23", true)
	require.NoError(t, err)
	assert.Equal(t, first, snapshot())

	assert.Equal(t, "colorless", first[1].Color)
	assert.Equal(t, "https://images.heroi.cc/cards/bt23-002.jpg", first[1].ImageURL)
}

func TestImportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty release", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[]}`))
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 16000, 1000)
			cards := f.seed(t)
			svc := newImportService(t, f, tt.handler)

			_, err := svc.Import(context.Background(), "bt23", true)
			assert.ErrorIs(t, err, domain.ErrImportFailure)

			total, err := f.cards.Count(context.Background())
			require.NoError(t, err)
			assert.Equal(t, len(cards), total)
		})
	}
}
