package gacha

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"tcg-gacha/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed rates.yaml
var defaultRatesYAML []byte

var ErrInvalidRates = errors.New("invalid rate table")

type RarityRate struct {
	Rarity domain.Rarity `yaml:"rarity"`
	Rate   float64       `yaml:"rate"`
}

// RateTable is walked in declaration order by the weighted draw.
type RateTable struct {
	Rates      []RarityRate      `yaml:"rates"`
	Guarantees map[string]string `yaml:"guarantees"`
}

func DefaultRates() *RateTable {
	table, err := ParseRates(defaultRatesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded rate table: %v", err))
	}
	return table
}

// LoadRates reads an operator supplied table. An empty path means the built-in one.
func LoadRates(path string) (*RateTable, error) {
	if path == "" {
		return DefaultRates(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	return ParseRates(b)
}

func ParseRates(b []byte) (*RateTable, error) {
	var table RateTable
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("parse rates: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

func (t *RateTable) Validate() error {
	if len(t.Rates) == 0 {
		return fmt.Errorf("%w: no rarities", ErrInvalidRates)
	}
	seen := make(map[domain.Rarity]bool, len(t.Rates))
	sum := 0.0
	for _, rr := range t.Rates {
		if !rr.Rarity.Valid() {
			return fmt.Errorf("%w: unknown rarity %q", ErrInvalidRates, rr.Rarity)
		}
		if seen[rr.Rarity] {
			return fmt.Errorf("%w: duplicate rarity %q", ErrInvalidRates, rr.Rarity)
		}
		seen[rr.Rarity] = true
		if err := validateProb(rr.Rate); err != nil {
			return fmt.Errorf("%w: rarity %q: %v", ErrInvalidRates, rr.Rarity, err)
		}
		sum += rr.Rate
	}
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("%w: rates sum to %.4f", ErrInvalidRates, sum)
	}
	return nil
}

// Percentages renders each rate the way the rates endpoint discloses it, e.g. "58.3%".
func (t *RateTable) Percentages() map[string]string {
	out := make(map[string]string, len(t.Rates))
	for _, rr := range t.Rates {
		out[string(rr.Rarity)] = fmt.Sprintf("%.1f%%", rr.Rate*100)
	}
	return out
}

func validateProb(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return errors.New("rate is not a number")
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("rate %v outside [0, 1]", p)
	}
	return nil
}
