// Package state holds the selection state machine for one chooser session.
//
// The state is the (query, cursor, ranked, highlight) tuple; every intent
// has a total, defined effect on it, so the machine cannot reach an invalid
// state. Query edits recompute the ranking synchronously before the next
// intent is applied.
package state

import (
	"cmdpick/internal/domain"
	"cmdpick/internal/rank"
	"cmdpick/internal/ui/input"
)

// NoHighlight is the highlight sentinel used while the ranked list is empty
const NoHighlight = -1

// Status reports how a transition left the session
type Status int

const (
	StatusRunning Status = iota
	StatusSelected
	StatusAborted
)

// SelectionState is the live state of a chooser session
type SelectionState struct {
	Query     []rune
	Cursor    int // 0..len(Query)
	Ranked    domain.RankedList
	Highlight int // index into Ranked, or NoHighlight

	catalog domain.Catalog
}

// New creates the initial state: empty query, the whole catalog ranked in
// stable order with score 0, highlight on the first entry if any
func New(catalog domain.Catalog) *SelectionState {
	s := &SelectionState{catalog: catalog}
	s.rerank()
	return s
}

// Catalog returns the catalog the session ranks against
func (s *SelectionState) Catalog() domain.Catalog {
	return s.catalog
}

// SetCatalog swaps in a reloaded catalog and re-ranks the current query
func (s *SelectionState) SetCatalog(catalog domain.Catalog) {
	s.catalog = catalog
	s.rerank()
}

// Selected returns the highlighted entry, if there is one
func (s *SelectionState) Selected() (domain.Entry, bool) {
	if s.Highlight == NoHighlight {
		return domain.Entry{}, false
	}
	return s.catalog[s.Ranked[s.Highlight].EntryIndex], true
}

// Apply performs the transition for one intent and reports whether the
// session keeps running. Confirm with no matches is a no-op rather than a
// termination; Cancel always terminates.
func (s *SelectionState) Apply(intent input.Intent) Status {
	switch intent := intent.(type) {
	case input.InsertChar:
		rest := append([]rune{intent.Rune}, s.Query[s.Cursor:]...)
		s.Query = append(s.Query[:s.Cursor:s.Cursor], rest...)
		s.Cursor++
		s.rerank()

	case input.DeleteBack:
		if s.Cursor > 0 {
			s.Query = append(s.Query[:s.Cursor-1], s.Query[s.Cursor:]...)
			s.Cursor--
			s.rerank()
		}

	case input.MoveUp:
		if s.Highlight > 0 {
			s.Highlight--
		}

	case input.MoveDown:
		if s.Highlight != NoHighlight && s.Highlight < len(s.Ranked)-1 {
			s.Highlight++
		}

	case input.Confirm:
		if s.Highlight != NoHighlight {
			return StatusSelected
		}

	case input.Cancel:
		return StatusAborted

	case input.Resize, input.Ignore:
		// Resize only affects layout; both leave the tuple alone.
	}

	return StatusRunning
}

func (s *SelectionState) rerank() {
	s.Ranked = rank.Rank(string(s.Query), s.catalog)
	if len(s.Ranked) == 0 {
		s.Highlight = NoHighlight
	} else {
		s.Highlight = 0
	}
}
