package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMapBindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msgs    []tea.KeyMsg
	}{
		{"up", km.Up, []tea.KeyMsg{{Type: tea.KeyUp}, runeKey('w')}},
		{"right", km.Right, []tea.KeyMsg{{Type: tea.KeyRight}, runeKey('d')}},
		{"down", km.Down, []tea.KeyMsg{{Type: tea.KeyDown}, runeKey('s')}},
		{"left", km.Left, []tea.KeyMsg{{Type: tea.KeyLeft}, runeKey('a')}},
		{"pause", km.Pause, []tea.KeyMsg{runeKey('p')}},
		{"reset", km.Reset, []tea.KeyMsg{{Type: tea.KeyEnter}, runeKey('r')}},
		{"quit", km.Quit, []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runeKey('q')}},
		{"help", km.Help, []tea.KeyMsg{runeKey('?')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.binding.Help().Desc == "" {
				t.Error("binding has no help text")
			}
			for _, msg := range tt.msgs {
				if !key.Matches(msg, tt.binding) {
					t.Errorf("%q does not match", msg.String())
				}
			}
		})
	}
}

func TestKeyMapNoOverlap(t *testing.T) {
	km := DefaultKeyMap()
	seen := make(map[string]bool)
	for _, column := range km.FullHelp() {
		for _, b := range column {
			for _, k := range b.Keys() {
				if seen[k] {
					t.Errorf("key %q bound twice", k)
				}
				seen[k] = true
			}
		}
	}
}

func TestFullHelpHeight(t *testing.T) {
	longest := 0
	for _, column := range DefaultKeyMap().FullHelp() {
		longest = max(longest, len(column))
	}
	if longest != fullHelpLines {
		t.Errorf("fullHelpLines = %d, longest help column = %d", fullHelpLines, longest)
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
