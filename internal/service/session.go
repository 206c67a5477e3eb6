package service

import (
	"context"
	"errors"
	"fmt"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"
	"tcg-gacha/internal/repository"

	"github.com/rs/zerolog"
)

type SessionService struct {
	repo            *repository.SessionRepository
	startingBalance int64
	logger          zerolog.Logger
}

func NewSessionService(repo *repository.SessionRepository, cfg *config.Config, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, startingBalance: cfg.StartingBalance, logger: logger}
}

// Resolve returns the session for id, creating a fresh one when id is empty or
// unknown. created reports whether a new session was issued.
func (s *SessionService) Resolve(ctx context.Context, id string) (session *domain.Session, created bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if id != "" {
		session, err := s.repo.Get(ctx, id)
		if err == nil {
			return session, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, err
		}
		s.logger.Debug().Str("session_id", id).Msg("unknown session cookie, issuing a new session")
	}

	session, err = s.repo.Create(ctx, s.startingBalance)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create session: %w", err)
	}
	s.logger.Info().Str("session_id", session.ID).Int64("balance", session.Balance).Msg("session created")
	return session, true, nil
}

func (s *SessionService) Reset(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.repo.Reset(ctx, id, s.startingBalance)
}
