package testhelpers

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key builds a key message for a special key
func Key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// Runes builds a key message for typed text
func Runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// Type sends each rune of s to update as a separate key press
func Type(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		if r == ' ' {
			update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
