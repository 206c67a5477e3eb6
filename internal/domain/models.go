package domain

import (
	"time"
)

type Rarity string

const (
	RarityCommon     Rarity = "common"
	RarityUncommon   Rarity = "uncommon"
	RarityRare       Rarity = "rare"
	RaritySuperRare  Rarity = "super_rare"
	RaritySecretRare Rarity = "secret_rare"
)

// Rarities in ascending order.
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RaritySuperRare, RaritySecretRare}

func (r Rarity) IsRareOrBetter() bool {
	return r == RarityRare || r == RaritySuperRare || r == RaritySecretRare
}

func (r Rarity) Valid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

const (
	DefaultColor = "colorless"
	DefaultType  = "digimon"
)

type PullType string

const (
	PullTypeSinglePack PullType = "single_pack"
)

type Card struct {
	ID              string
	CardNumber      string
	Name            string
	Rarity          Rarity
	Color           string // "red", "blue", ..., "colorless"
	Type            string // "digimon", "tamer", "option"
	Level           *int
	DP              *int
	PlayCost        *int
	DigivolveCost   *string
	Form            *string
	Attribute       *string
	TypeTraits      []string
	MainEffect      *string
	InheritedEffect *string
	Artist          *string
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Session struct {
	ID        string // uuid
	Balance   int64
	CreatedAt time.Time
	LastPull  *time.Time
}

type CollectionEntry struct {
	ID        string // nanoid
	SessionID string
	CardID    string
	Quantity  int
	FirstPull time.Time
	LastPull  time.Time
}

// enriched
type OwnedCard struct {
	Card      Card
	Quantity  int
	FirstPull time.Time
	LastPull  time.Time
}

type HistoryEntry struct {
	ID        string
	Card      Card
	PullType  PullType
	Timestamp time.Time
}

// PulledCard is one draw. IsNew reflects the collection at the moment of that draw.
type PulledCard struct {
	Card  Card
	IsNew bool
}

type CardFilter struct {
	Rarity string
	Color  string
	Type   string
	Search string
}

type CatalogStats struct {
	Total    int
	ByRarity map[string]int
	ByColor  map[string]int
	ByType   map[string]int
}

type CollectionSummary struct {
	OwnedCards      int
	TotalDuplicates int
	ByRarity        map[string]int
	ByColor         map[string]int
	ByType          map[string]int
}

type CollectionStats struct {
	TotalCards           int
	OwnedCards           int
	CompletionPercentage int
	TotalPulls           int
	TotalDuplicates      int
	ByRarity             map[string]int
	ByColor              map[string]int
	ByType               map[string]int
}
