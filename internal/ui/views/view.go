// Package views turns selection state into terminal output. Projection
// (what is on screen) is separated from rendering (how it is styled) so the
// window and scroll behavior can be tested without styling noise.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"cmdpick/internal/domain"
	"cmdpick/internal/ui/state"
)

// Lines of fixed chrome around the result list: the query line and the
// match counter. The help footer is appended by the model.
const chromeLines = 2

// Viewport is the drawable area
type Viewport struct {
	Width  int
	Height int
}

// Row is one visible result line
type Row struct {
	Text        string
	Description string
	Tags        []string
	Field       int   // domain.FieldText or matched tag index
	Positions   []int // matched rune positions within the field
	Selected    bool
}

// ScreenDescription is the pure projection of a session state onto a
// viewport: everything the screen writer needs, no styling
type ScreenDescription struct {
	Prompt       string
	Query        string
	Cursor       int // rune offset within Query
	Rows         []Row
	TotalMatches int
	CatalogSize  int
	Offset       int
	MoreAbove    bool
	MoreBelow    bool
}

// Renderer projects selection state and styles the projection
type Renderer struct {
	styles     *Styles
	prompt     string
	maxVisible int // 0 means fill the viewport
}

// NewRenderer creates a renderer
func NewRenderer(prompt string, maxVisible int) *Renderer {
	return &Renderer{
		styles:     NewStyles(),
		prompt:     prompt,
		maxVisible: maxVisible,
	}
}

// Project computes the screen description for a state and viewport. The
// previous scroll offset is passed in and the adjusted offset returned;
// the window moves the minimum amount needed to keep the highlight visible.
func (r *Renderer) Project(st *state.SelectionState, vp Viewport, offset int) (ScreenDescription, int) {
	listHeight := vp.Height - chromeLines - 1 // -1 for the help footer
	if r.maxVisible > 0 && listHeight > r.maxVisible {
		listHeight = r.maxVisible
	}
	if listHeight < 0 {
		listHeight = 0
	}

	n := len(st.Ranked)
	if offset > n-listHeight {
		offset = n - listHeight
	}
	if offset < 0 {
		offset = 0
	}
	if st.Highlight != state.NoHighlight && listHeight > 0 {
		if st.Highlight < offset {
			offset = st.Highlight
		} else if st.Highlight >= offset+listHeight {
			offset = st.Highlight - listHeight + 1
		}
	}

	end := offset + listHeight
	if end > n {
		end = n
	}

	catalog := st.Catalog()
	rows := make([]Row, 0, end-offset)
	for i := offset; i < end; i++ {
		result := st.Ranked[i]
		entry := catalog[result.EntryIndex]
		rows = append(rows, Row{
			Text:        entry.Text,
			Description: entry.Description,
			Tags:        entry.Tags,
			Field:       result.Field,
			Positions:   result.Positions,
			Selected:    i == st.Highlight,
		})
	}

	return ScreenDescription{
		Prompt:       r.prompt,
		Query:        string(st.Query),
		Cursor:       st.Cursor,
		Rows:         rows,
		TotalMatches: n,
		CatalogSize:  len(catalog),
		Offset:       offset,
		MoreAbove:    offset > 0,
		MoreBelow:    end < n,
	}, offset
}

// Render styles a screen description into the string handed to the
// terminal. Lines are truncated to the viewport width; a viewport too
// small for the list still gets the query line.
func (r *Renderer) Render(sd ScreenDescription, vp Viewport) string {
	var lines []string

	lines = append(lines, r.renderQueryLine(sd, vp.Width))
	if vp.Height >= 2 {
		lines = append(lines, r.renderCounterLine(sd, vp.Width))
	}
	for _, row := range sd.Rows {
		lines = append(lines, r.renderRow(row, vp.Width))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderQueryLine(sd ScreenDescription, width int) string {
	runes := []rune(sd.Query)
	before := string(runes[:sd.Cursor])

	// The cursor is drawn by reversing the rune under it, or a space when
	// it sits at the end of the query.
	under := " "
	after := ""
	if sd.Cursor < len(runes) {
		under = string(runes[sd.Cursor])
		after = string(runes[sd.Cursor+1:])
	}

	line := r.styles.Prompt.Render(sd.Prompt) + before + r.styles.Cursor.Render(under) + after
	return truncate(line, width)
}

func (r *Renderer) renderCounterLine(sd ScreenDescription, width int) string {
	counter := fmt.Sprintf("%d/%d", sd.TotalMatches, sd.CatalogSize)
	line := r.styles.Counter.Render(counter)
	if sd.MoreAbove {
		line += " " + r.styles.Scroll.Render("↑")
	}
	if sd.MoreBelow {
		line += " " + r.styles.Scroll.Render("↓")
	}
	return truncate(line, width)
}

func (r *Renderer) renderRow(row Row, width int) string {
	marker := "  "
	if row.Selected {
		marker = r.styles.Marker.Render("▌ ")
	}

	budget := width - 2
	if budget < 1 {
		budget = 1
	}

	text := runewidth.Truncate(row.Text, budget, "…")
	var rendered string
	if row.Field == domain.FieldText {
		rendered = r.emphasize(text, row.Positions, row.Selected)
	} else if row.Selected {
		rendered = r.styles.Selected.Render(text)
	} else {
		rendered = text
	}

	line := marker + rendered
	used := 2 + runewidth.StringWidth(text)

	if row.Description != "" && used+2 < width {
		desc := runewidth.Truncate(row.Description, width-used-2, "…")
		line += "  " + r.styles.Description.Render(desc)
		used += 2 + runewidth.StringWidth(desc)
	}

	if tagged := r.renderTags(row, width-used-2); tagged != "" {
		line += "  " + tagged
	}

	return line
}

// renderTags renders the tag list dimmed, with the matched tag's characters
// emphasized when the match landed in a tag
func (r *Renderer) renderTags(row Row, budget int) string {
	if len(row.Tags) == 0 || budget < 4 {
		return ""
	}

	plain := "[" + strings.Join(row.Tags, " ") + "]"
	if runewidth.StringWidth(plain) > budget {
		return ""
	}

	parts := make([]string, 0, len(row.Tags))
	for i, tag := range row.Tags {
		if i == row.Field {
			parts = append(parts, r.emphasize(tag, row.Positions, false))
		} else {
			parts = append(parts, r.styles.Tag.Render(tag))
		}
	}
	return r.styles.Tag.Render("[") + strings.Join(parts, " ") + r.styles.Tag.Render("]")
}

// emphasize styles the matched rune positions within text
func (r *Renderer) emphasize(text string, positions []int, selected bool) string {
	if len(positions) == 0 {
		if selected {
			return r.styles.Selected.Render(text)
		}
		return text
	}

	matched := make(map[int]bool, len(positions))
	for _, p := range positions {
		matched[p] = true
	}

	var b strings.Builder
	for i, ru := range []rune(text) {
		s := string(ru)
		switch {
		case matched[i]:
			b.WriteString(r.styles.Match.Render(s))
		case selected:
			b.WriteString(r.styles.Selected.Render(s))
		default:
			b.WriteString(s)
		}
	}
	return b.String()
}

// truncate cuts a styled line to the viewport width without splitting ANSI
// sequences
func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "")
}
