package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt      lipgloss.Style
	Cursor      lipgloss.Style
	Counter     lipgloss.Style
	Marker      lipgloss.Style
	Selected    lipgloss.Style
	Match       lipgloss.Style
	Description lipgloss.Style
	Tag         lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Counter:     lipgloss.NewStyle().Faint(true),
		Marker:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Selected:    lipgloss.NewStyle().Bold(true),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Faint(true),
		Tag:         lipgloss.NewStyle().Faint(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
