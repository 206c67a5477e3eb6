package server

import (
	"net/http"
	"tcg-gacha/internal/config"
	"tcg-gacha/internal/middleware"
	"tcg-gacha/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	sessions   *service.SessionService
	catalog    *service.CatalogService
	gacha      *service.GachaService
	collection *service.CollectionService
	cookies    middleware.CookieOptions
	logger     zerolog.Logger
}

func NewServer(
	sessions *service.SessionService,
	catalog *service.CatalogService,
	gacha *service.GachaService,
	collection *service.CollectionService,
	cfg *config.Config,
	logger zerolog.Logger,
) *Server {
	return &Server{
		sessions:   sessions,
		catalog:    catalog,
		gacha:      gacha,
		collection: collection,
		cookies:    middleware.CookieOptions{Secure: cfg.CookieSecure},
		logger:     logger,
	}
}

// Handler returns the route table. Catalog and health routes need no session.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	withSession := middleware.Session(s.sessions, s.cookies)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/cards", s.handleListCards)
	mux.HandleFunc("GET /api/cards/stats/summary", s.handleCardStats)
	mux.HandleFunc("GET /api/cards/{id}", s.handleGetCard)

	mux.Handle("GET /api/session", withSession(http.HandlerFunc(s.handleGetSession)))
	mux.Handle("POST /api/session/reset", withSession(http.HandlerFunc(s.handleResetSession)))

	mux.Handle("POST /api/gacha/pull", withSession(http.HandlerFunc(s.handlePull)))
	mux.Handle("POST /api/gacha/pull-multiple", withSession(http.HandlerFunc(s.handlePullMultiple)))
	mux.Handle("GET /api/gacha/history", withSession(http.HandlerFunc(s.handleHistory)))
	mux.HandleFunc("GET /api/gacha/rates", s.handleRates)

	mux.Handle("GET /api/collection", withSession(http.HandlerFunc(s.handleCollection)))
	mux.Handle("GET /api/collection/stats", withSession(http.HandlerFunc(s.handleCollectionStats)))
	mux.Handle("GET /api/collection/missing", withSession(http.HandlerFunc(s.handleMissing)))

	return mux
}
