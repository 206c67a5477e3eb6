package gacha

import (
	"os"
	"path/filepath"
	"tcg-gacha/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRates(t *testing.T) {
	table := DefaultRates()

	require.Len(t, table.Rates, len(domain.Rarities))
	for i, rr := range table.Rates {
		assert.Equal(t, domain.Rarities[i], rr.Rarity)
	}
	assert.Equal(t, map[string]string{
		"common":      "58.3%",
		"uncommon":    "25.0%",
		"rare":        "14.6%",
		"super_rare":  "1.9%",
		"secret_rare": "0.2%",
	}, table.Percentages())
	assert.Equal(t, "1 per pack", table.Guarantees["rare_or_better"])
}

func TestLoadRatesEmptyPathUsesDefault(t *testing.T) {
	table, err := LoadRates("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRates(), table)
}

func TestLoadRatesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	data := []byte(`
rates:
  - rarity: common
    rate: 0.5
  - rarity: rare
    rate: 0.5
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	table, err := LoadRates(path)
	require.NoError(t, err)
	require.Len(t, table.Rates, 2)
	assert.Equal(t, domain.RarityRare, table.Rates[1].Rarity)
}

func TestParseRatesRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", `rates: []`},
		{"unknown rarity", "rates:\n  - rarity: mythic\n    rate: 1.0\n"},
		{"duplicate", "rates:\n  - rarity: common\n    rate: 0.5\n  - rarity: common\n    rate: 0.5\n"},
		{"negative", "rates:\n  - rarity: common\n    rate: 1.5\n  - rarity: rare\n    rate: -0.5\n"},
		{"bad sum", "rates:\n  - rarity: common\n    rate: 0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRates([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalidRates)
		})
	}
}
