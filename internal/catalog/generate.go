package catalog

import (
	"math/rand/v2"
	"strconv"

	"github.com/JonMunkholm/suitctl/internal/core"
)

// Codes are drawn from [minCode, minCode+codeSpan).
const (
	minCode  = 100000
	codeSpan = 900000
)

// generate builds a synthetic catalog: perCategory suits for each category,
// then suits of random category until total is reached. Codes are unique
// within the run and durability is uniform over the full range.
func generate(rng *rand.Rand, total, perCategory int) []core.Suit {
	categories := core.Categories()
	seen := make(map[string]bool, total)
	suits := make([]core.Suit, 0, max(total, perCategory*len(categories)))

	add := func(category core.Category) {
		suits = append(suits, core.Suit{
			Code:       uniqueCode(rng, seen),
			Category:   category,
			Durability: core.MinDurability + rng.IntN(core.MaxDurability-core.MinDurability+1),
		})
	}

	for _, category := range categories {
		for i := 0; i < perCategory; i++ {
			add(category)
		}
	}
	for len(suits) < total {
		add(categories[rng.IntN(len(categories))])
	}

	return suits
}

func uniqueCode(rng *rand.Rand, seen map[string]bool) string {
	for {
		code := strconv.Itoa(minCode + rng.IntN(codeSpan))
		if !seen[code] {
			seen[code] = true
			return code
		}
	}
}
