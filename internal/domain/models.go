package domain

// Entry represents one selectable command in the catalog
type Entry struct {
	Text        string   // command text emitted on selection
	Description string   // shown dimmed next to the command, may be empty
	Tags        []string // keywords the entry can be found by
}

// Catalog is the ordered set of entries for one session. Entry identity is
// its index in the slice; the slice is never mutated after load.
type Catalog []Entry

// FieldText marks a match that landed in the entry text rather than a tag.
const FieldText = -1

// MatchResult represents a scored match of the current query against one entry
type MatchResult struct {
	EntryIndex int
	Score      int
	Field      int   // FieldText, or the index of the matched tag
	Positions  []int // rune indices of matched characters within the field
}

// RankedList is the ordered result set for one query, sorted by
// (score descending, entry index ascending).
type RankedList []MatchResult
