package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typetest/internal/engine"
)

type keyMap struct {
	Quit       key.Binding
	Restart    key.Binding
	DeleteWord key.Binding
	Backspace  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w", "alt+backspace"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "erase"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Restart, k.DeleteWord}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit, k.Restart}, {k.DeleteWord, k.Backspace}}
}

// classifyKey turns a terminal key event into the keystrokes the processor
// understands. Pasted or batched runes become one keystroke each.
func classifyKey(msg tea.KeyMsg, km keyMap) []engine.Key {
	switch {
	case key.Matches(msg, km.Quit):
		return []engine.Key{{Kind: engine.KeyQuit}}
	case key.Matches(msg, km.Restart):
		return []engine.Key{{Kind: engine.KeyRestart}}
	case key.Matches(msg, km.DeleteWord):
		return []engine.Key{{Kind: engine.KeyDeleteWord}}
	case key.Matches(msg, km.Backspace):
		return []engine.Key{{Kind: engine.KeyBackspace}}
	}
	switch msg.Type {
	case tea.KeySpace:
		return []engine.Key{engine.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		keys := make([]engine.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, engine.Char(r))
		}
		return keys
	}
	return []engine.Key{{Kind: engine.KeyOther}}
}
