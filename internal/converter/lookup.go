package converter

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type categoryAlias struct {
	name     string
	category Category
}

var categoryAliases = []categoryAlias{
	{"length", Length},
	{"longitud", Length},
	{"len", Length},
	{"weight", Weight},
	{"peso", Weight},
	{"masa", Weight},
	{"temp", Temperature},
	{"temperature", Temperature},
	{"temperatura", Temperature},
}

// LookupCategory resolves a user-typed category name. Exact aliases win, then
// prefixes, then the closest fuzzy match.
func LookupCategory(query string) (Category, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty name", ErrUnknownCategory)
	}
	lower := strings.ToLower(trimmed)
	for _, alias := range categoryAliases {
		if alias.name == lower {
			return alias.category, nil
		}
	}
	for _, alias := range categoryAliases {
		if strings.HasPrefix(alias.name, lower) {
			return alias.category, nil
		}
	}
	names := make([]string, len(categoryAliases))
	for i, alias := range categoryAliases {
		names[i] = alias.name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, trimmed)
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return categoryAliases[best.OriginalIndex].category, nil
}
