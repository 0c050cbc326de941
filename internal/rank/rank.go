// Package rank orders catalog entries for a query.
package rank

import (
	"sort"

	"cmdpick/internal/domain"
	"cmdpick/internal/match"
)

// Rank matches every catalog entry against query and returns the matches
// sorted by (score descending, entry index ascending). The order is total
// and deterministic; an empty list is a valid "no matches" result.
func Rank(query string, catalog domain.Catalog) domain.RankedList {
	var ranked domain.RankedList
	for i, entry := range catalog {
		result, ok := match.Match(query, entry)
		if !ok {
			continue
		}
		result.EntryIndex = i
		ranked = append(ranked, result)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].EntryIndex < ranked[j].EntryIndex
	})

	return ranked
}
