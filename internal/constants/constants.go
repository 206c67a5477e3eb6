package constants

import "time"

const (
	CardsPerPack    = 12
	MinPacksPerPull = 1
	MaxPacksPerPull = 10
)

const (
	HistoryDefaultLimit = 50
	HistoryMaxLimit     = 100
)

const (
	SessionCookieName   = "session_id"
	SessionCookieMaxAge = 365 * 24 * time.Hour
)

const (
	ExternalAPITimeout = 30 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	ImportTimeout      = 2 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
	DBBusyTimeoutMs   = 5000
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	APIName    = "TCG Gacha API"
	APIVersion = "1.0.0"
)
