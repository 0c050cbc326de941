// Package match implements the fuzzy matcher that scores catalog entries
// against the current query.
//
// An entry matches when every query character appears, in order, as a
// (possibly non-contiguous) subsequence of the entry text or of one of its
// tags. Matching is case-insensitive. Positions are picked greedily left to
// right, which keeps scoring deterministic and cheap.
//
// Scoring constants (these fix the ranking order and are asserted by tests):
//   - each contiguous run of L matched characters contributes L*L*runWeight
//   - a run starting at a word boundary (start of string, or right after a
//     non-alphanumeric separator) adds boundaryBonus
//   - the total span of the match (last position - first position + 1)
//     subtracts spanPenalty per rune, so tight matches beat sprawling ones
package match

import (
	"unicode"

	"cmdpick/internal/domain"
)

const (
	runWeight     = 4
	boundaryBonus = 8
	spanPenalty   = 1
)

// Match scores query against a single entry. The entry text is tried first,
// then each tag; the best-scoring field wins, with the text preferred on
// ties. An empty query matches every entry with score 0.
func Match(query string, entry domain.Entry) (domain.MatchResult, bool) {
	if query == "" {
		return domain.MatchResult{Field: domain.FieldText}, true
	}

	qr := lowerRunes(query)

	best := domain.MatchResult{Field: domain.FieldText}
	found := false

	if score, positions, ok := matchTarget(qr, entry.Text); ok {
		best.Score = score
		best.Positions = positions
		found = true
	}

	for i, tag := range entry.Tags {
		score, positions, ok := matchTarget(qr, tag)
		if !ok {
			continue
		}
		if !found || score > best.Score {
			best.Score = score
			best.Field = i
			best.Positions = positions
			found = true
		}
	}

	return best, found
}

// matchTarget runs the greedy subsequence scan of query runes over one
// target string and scores the resulting positions.
func matchTarget(query []rune, target string) (score int, positions []int, ok bool) {
	tr := lowerRunes(target)
	if len(query) > len(tr) {
		return 0, nil, false
	}

	positions = make([]int, 0, len(query))
	qi := 0
	for ti := 0; ti < len(tr) && qi < len(query); ti++ {
		if tr[ti] == query[qi] {
			positions = append(positions, ti)
			qi++
		}
	}
	if qi < len(query) {
		return 0, nil, false
	}

	return scorePositions(positions, tr), positions, true
}

// scorePositions turns a set of matched positions into a score per the
// package constants. Positions are strictly increasing and non-empty.
func scorePositions(positions []int, target []rune) int {
	score := 0
	runStart := 0
	for i := 1; i <= len(positions); i++ {
		if i == len(positions) || positions[i] != positions[i-1]+1 {
			runLen := i - runStart
			score += runLen * runLen * runWeight
			if isWordBoundary(target, positions[runStart]) {
				score += boundaryBonus
			}
			runStart = i
		}
	}

	span := positions[len(positions)-1] - positions[0] + 1
	score -= span * spanPenalty

	return score
}

// isWordBoundary reports whether pos starts a word: the start of the string
// or the position right after a non-alphanumeric separator.
func isWordBoundary(runes []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	prev := runes[pos-1]
	return !unicode.IsLetter(prev) && !unicode.IsDigit(prev)
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}
