package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, msg tea.Msg) Intent {
	t.Helper()
	intents := NewDecoder().Decode(msg)
	require.Len(t, intents, 1)
	return intents[0]
}

func TestDecodePrintableRune(t *testing.T) {
	intent := decodeOne(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.IsType(t, InsertChar{}, intent)
	assert.Equal(t, 'a', intent.(InsertChar).Rune)
}

func TestDecodeSpace(t *testing.T) {
	intent := decodeOne(t, tea.KeyMsg{Type: tea.KeySpace})
	require.IsType(t, InsertChar{}, intent)
	assert.Equal(t, ' ', intent.(InsertChar).Rune)
}

func TestDecodePasteProducesOneIntentPerRune(t *testing.T) {
	intents := NewDecoder().Decode(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("gst")})
	require.Len(t, intents, 3)
	for i, r := range "gst" {
		require.IsType(t, InsertChar{}, intents[i])
		assert.Equal(t, r, intents[i].(InsertChar).Rune)
	}
}

func TestDecodeNavigation(t *testing.T) {
	assert.IsType(t, MoveUp{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyUp}))
	assert.IsType(t, MoveUp{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyCtrlP}))
	assert.IsType(t, MoveDown{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyDown}))
	assert.IsType(t, MoveDown{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyCtrlN}))
}

func TestDecodeTerminals(t *testing.T) {
	assert.IsType(t, Confirm{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyEnter}))
	assert.IsType(t, Cancel{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyEsc}))
	assert.IsType(t, Cancel{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.IsType(t, DeleteBack{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyBackspace}))
}

func TestDecodeResize(t *testing.T) {
	intent := decodeOne(t, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.IsType(t, Resize{}, intent)
	resize := intent.(Resize)
	assert.Equal(t, 120, resize.Width)
	assert.Equal(t, 40, resize.Height)
}

func TestUnknownEventsDecodeToIgnore(t *testing.T) {
	assert.IsType(t, Ignore{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyTab}))
	assert.IsType(t, Ignore{}, decodeOne(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}))
	assert.IsType(t, Ignore{}, decodeOne(t, tea.MouseMsg{}))
	assert.IsType(t, Ignore{}, decodeOne(t, struct{}{}))
}
