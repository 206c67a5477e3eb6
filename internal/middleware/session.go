package middleware

import (
	"context"
	"net/http"
	"tcg-gacha/internal/constants"
	"tcg-gacha/internal/domain"

	"github.com/rs/zerolog"
)

const (
	SessionKey        contextKey = "session"
	sessionCreatedKey contextKey = "session_created"
)

type SessionResolver interface {
	Resolve(ctx context.Context, id string) (*domain.Session, bool, error)
}

type CookieOptions struct {
	Secure bool
}

// Session resolves the session_id cookie, issuing a new session and cookie when
// it is missing or unknown. Handlers read the result with SessionFrom.
func Session(resolver SessionResolver, opts CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(constants.SessionCookieName); err == nil {
				id = c.Value
			}

			session, created, err := resolver.Resolve(r.Context(), id)
			if err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to resolve session")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"failed to resolve session"}`))
				return
			}

			if created {
				SetSessionCookie(w, session.ID, opts)
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			ctx = context.WithValue(ctx, sessionCreatedKey, created)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SetSessionCookie(w http.ResponseWriter, id string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(constants.SessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func SessionFrom(ctx context.Context) *domain.Session {
	if s, ok := ctx.Value(SessionKey).(*domain.Session); ok {
		return s
	}
	return nil
}

// SessionCreated reports whether the session was issued for this request.
func SessionCreated(ctx context.Context) bool {
	created, _ := ctx.Value(sessionCreatedKey).(bool)
	return created
}
