package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"tcg-gacha/internal/domain"
	"time"

	"github.com/rs/zerolog"
)

var errInvalidInput = errors.New("invalid input")

type errorResponse struct {
	Error    string `json:"error"`
	Required *int64 `json:"required,omitempty"`
	Current  *int64 `json:"current,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto status codes. Anything unrecognised is a 500
// and its message is not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var insufficient *domain.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    "Insufficient balance",
			Required: &insufficient.Required,
			Current:  &insufficient.Current,
		})
	case errors.Is(err, domain.ErrInvalidPackCount):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Count must be between 1 and 10"})
	case errors.Is(err, errInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, domain.ErrPoolExhausted):
		logger.Error().Err(err).Msg("card pool exhausted")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Card pool exhausted"})
	default:
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

type cardJSON struct {
	ID              string   `json:"id"`
	CardNumber      string   `json:"cardNumber"`
	Name            string   `json:"name"`
	Rarity          string   `json:"rarity"`
	Color           string   `json:"color"`
	Type            string   `json:"type"`
	Level           *int     `json:"level"`
	DP              *int     `json:"dp"`
	PlayCost        *int     `json:"playCost"`
	DigivolveCost   *string  `json:"digivolveCost"`
	Form            *string  `json:"form"`
	Attribute       *string  `json:"attribute"`
	TypeTraits      []string `json:"typeTraits"`
	MainEffect      *string  `json:"mainEffect"`
	InheritedEffect *string  `json:"inheritedEffect"`
	Artist          *string  `json:"artist"`
	ImageURL        string   `json:"imageUrl"`
}

func toCardJSON(c domain.Card) cardJSON {
	traits := c.TypeTraits
	if traits == nil {
		traits = []string{}
	}
	return cardJSON{
		ID:              c.ID,
		CardNumber:      c.CardNumber,
		Name:            c.Name,
		Rarity:          string(c.Rarity),
		Color:           c.Color,
		Type:            c.Type,
		Level:           c.Level,
		DP:              c.DP,
		PlayCost:        c.PlayCost,
		DigivolveCost:   c.DigivolveCost,
		Form:            c.Form,
		Attribute:       c.Attribute,
		TypeTraits:      traits,
		MainEffect:      c.MainEffect,
		InheritedEffect: c.InheritedEffect,
		Artist:          c.Artist,
		ImageURL:        c.ImageURL,
	}
}

func toCardsJSON(cards []domain.Card) []cardJSON {
	out := make([]cardJSON, len(cards))
	for i, c := range cards {
		out[i] = toCardJSON(c)
	}
	return out
}

type pulledCardJSON struct {
	cardJSON
	IsNew bool `json:"isNew"`
}

func toPulledJSON(cards []domain.PulledCard) []pulledCardJSON {
	out := make([]pulledCardJSON, len(cards))
	for i, c := range cards {
		out[i] = pulledCardJSON{cardJSON: toCardJSON(c.Card), IsNew: c.IsNew}
	}
	return out
}

type ownedCardJSON struct {
	cardJSON
	Quantity  int       `json:"quantity"`
	FirstPull time.Time `json:"firstPull"`
	LastPull  time.Time `json:"lastPull"`
}

type sessionJSON struct {
	ID        string     `json:"id"`
	Balance   int64      `json:"balance"`
	CreatedAt time.Time  `json:"createdAt"`
	LastPull  *time.Time `json:"lastPull"`
}

func toSessionJSON(s *domain.Session) sessionJSON {
	return sessionJSON{ID: s.ID, Balance: s.Balance, CreatedAt: s.CreatedAt, LastPull: s.LastPull}
}

type historyCardJSON struct {
	ID         string `json:"id"`
	CardNumber string `json:"cardNumber"`
	Name       string `json:"name"`
	Rarity     string `json:"rarity"`
	ImageURL   string `json:"imageUrl"`
}

type historyEntryJSON struct {
	ID        string          `json:"id"`
	Card      historyCardJSON `json:"card"`
	PullType  string          `json:"pullType"`
	Timestamp time.Time       `json:"timestamp"`
}
