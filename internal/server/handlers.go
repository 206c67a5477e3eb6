package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/middleware"
	"time"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    constants.APIName,
		"version": constants.APIVersion,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cards, err := s.catalog.List(r.Context(), domain.CardFilter{
		Rarity: q.Get("rarity"),
		Color:  q.Get("color"),
		Type:   q.Get("type"),
		Search: q.Get("search"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardsJSON(cards),
		"total": len(cards),
	})
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	card, err := s.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"card": toCardJSON(*card)})
}

func (s *Server) handleCardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.catalog.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":    stats.Total,
		"byRarity": stats.ByRarity,
		"byColor":  stats.ByColor,
		"byType":   stats.ByType,
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionJSON(middleware.SessionFrom(r.Context())))
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	fresh := middleware.SessionFrom(r.Context())

	// a session issued by this request is already fresh and has its cookie
	if !middleware.SessionCreated(r.Context()) {
		var err error
		fresh, err = s.sessions.Reset(r.Context(), fresh.ID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		middleware.SetSessionCookie(w, fresh.ID, s.cookies)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Session reset successfully",
		"session": toSessionJSON(fresh),
	})
}

func (s *Server) handlePull(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	result, err := s.gacha.PullPack(r.Context(), session.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards":            toPulledJSON(result.Cards),
		"remainingBalance": result.RemainingBalance,
		"packCost":         result.TotalCost,
	})
}

type pullMultipleRequest struct {
	Count int `json:"count"`
}

func (s *Server) handlePullMultiple(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	var body pullMultipleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, fmt.Errorf("%w: body must be {\"count\": <1-10>}", errInvalidInput))
		return
	}

	result, err := s.gacha.PullPacks(r.Context(), session.ID, body.Count)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards":            toPulledJSON(result.Cards),
		"packsOpened":      result.PacksOpened,
		"remainingBalance": result.RemainingBalance,
		"totalCost":        result.TotalCost,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: limit must be a number", errInvalidInput))
			return
		}
		limit = n
	}

	entries, err := s.gacha.History(r.Context(), session.ID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pulls := make([]historyEntryJSON, len(entries))
	for i, e := range entries {
		pulls[i] = historyEntryJSON{
			ID: e.ID,
			Card: historyCardJSON{
				ID:         e.Card.ID,
				CardNumber: e.Card.CardNumber,
				Name:       e.Card.Name,
				Rarity:     string(e.Card.Rarity),
				ImageURL:   e.Card.ImageURL,
			},
			PullType:  string(e.PullType),
			Timestamp: e.Timestamp,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pulls": pulls,
		"total": len(pulls),
	})
}

func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	rates := s.gacha.Rates()
	writeJSON(w, http.StatusOK, map[string]any{
		"rates":        rates.Rates,
		"guarantees":   rates.Guarantees,
		"packCost":     rates.PackCost,
		"cardsPerPack": rates.CardsPerPack,
	})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	owned, err := s.collection.List(r.Context(), session.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards := make([]ownedCardJSON, len(owned))
	for i, o := range owned {
		cards[i] = ownedCardJSON{
			cardJSON:  toCardJSON(o.Card),
			Quantity:  o.Quantity,
			FirstPull: o.FirstPull,
			LastPull:  o.LastPull,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards": cards,
		"total": len(cards),
	})
}

func (s *Server) handleCollectionStats(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	stats, err := s.collection.Stats(r.Context(), session.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"totalCards":           stats.TotalCards,
		"ownedCards":           stats.OwnedCards,
		"completionPercentage": stats.CompletionPercentage,
		"totalPulls":           stats.TotalPulls,
		"totalDuplicates":      stats.TotalDuplicates,
		"byRarity":             stats.ByRarity,
		"byColor":              stats.ByColor,
		"byType":               stats.ByType,
	})
}

func (s *Server) handleMissing(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r.Context())

	missing, err := s.collection.Missing(r.Context(), session.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardsJSON(missing),
		"total": len(missing),
	})
}
