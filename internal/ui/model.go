// Package ui drives one interactive chooser session as a bubbletea model.
// Everything drawn goes to the program's output (stderr); the final
// selection is read off the model by the caller after the program exits.
package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"cmdpick/internal/domain"
	"cmdpick/internal/ui/input"
	"cmdpick/internal/ui/state"
	"cmdpick/internal/ui/views"
)

// Outcome is how the session ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSelected
	OutcomeAborted
)

// CatalogReloadedMsg swaps the session catalog for a freshly loaded one.
// It is sent into the running program when the catalog file changes.
type CatalogReloadedMsg struct {
	Catalog domain.Catalog
}

// NoticeMsg shows a transient message on the counter line
type NoticeMsg struct {
	Text string
}

// Options configure a session model
type Options struct {
	Catalog    domain.Catalog
	Prompt     string
	MaxVisible int
}

// Model represents the UI state
type Model struct {
	state    *state.SelectionState
	decoder  *input.Decoder
	renderer *views.Renderer
	help     help.Model

	width  int
	height int
	offset int // list scroll offset, carried across renders
	notice string

	outcome   Outcome
	selection domain.Entry
}

// NewModel creates a session model over a pre-built catalog
func NewModel(opts Options) *Model {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = "> "
	}

	return &Model{
		state:    state.New(opts.Catalog),
		decoder:  input.NewDecoder(),
		renderer: views.NewRenderer(prompt, opts.MaxVisible),
		help:     help.New(),
		// Sensible defaults until the first WindowSizeMsg arrives.
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model: decode the raw event, apply the resulting
// transitions, quit on a terminal one
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogReloadedMsg:
		m.state.SetCatalog(msg.Catalog)
		m.notice = "catalog reloaded"
		return m, nil

	case NoticeMsg:
		m.notice = msg.Text
		return m, nil
	}

	for _, intent := range m.decoder.Decode(msg) {
		if resize, ok := intent.(input.Resize); ok {
			m.width = resize.Width
			m.height = resize.Height
			m.help.Width = resize.Width
		}

		switch m.state.Apply(intent) {
		case state.StatusSelected:
			entry, _ := m.state.Selected()
			m.selection = entry
			m.outcome = OutcomeSelected
			log.Printf("Session confirmed: %q", entry.Text)
			return m, tea.Quit

		case state.StatusAborted:
			m.outcome = OutcomeAborted
			log.Printf("Session aborted")
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	if m.outcome != OutcomeNone {
		return ""
	}

	vp := views.Viewport{Width: m.width, Height: m.height}
	sd, offset := m.renderer.Project(m.state, vp, m.offset)
	m.offset = offset

	content := m.renderer.Render(sd, vp)
	if m.height >= 3 {
		footer := m.help.View(m.decoder.Keys())
		if m.notice != "" {
			footer += "  " + m.notice
		}
		content += "\n" + footer
	}
	return content
}

// Outcome reports how the session ended
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Selection returns the confirmed entry; valid only when Outcome is
// OutcomeSelected
func (m *Model) Selection() domain.Entry {
	return m.selection
}
