// Package text defines styled text fragments and the surface they are drawn on.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Style selects how a fragment is presented. It never affects the counted length.
type Style int

const (
	// StylePlain renders text without decoration.
	StylePlain Style = iota
	// StylePending marks text that has not been typed yet.
	StylePending
	// StyleCorrect marks a correctly typed character.
	StyleCorrect
	// StyleIncorrect marks a mistyped character.
	StyleIncorrect
	// StyleAccent highlights a headline value.
	StyleAccent
	// StyleGood highlights a good result.
	StyleGood
	// StyleMuted is used for hints and the footer.
	StyleMuted
)

var styles = map[Style]lipgloss.Style{
	StylePlain:     lipgloss.NewStyle(),
	StylePending:   lipgloss.NewStyle().Faint(true),
	StyleCorrect:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	StyleIncorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true),
	StyleAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	StyleGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	StyleMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")),
}

// Lipgloss returns the lipgloss style backing s.
func (s Style) Lipgloss() lipgloss.Style {
	if st, ok := styles[s]; ok {
		return st
	}
	return styles[StylePlain]
}

// Render decorates str with the style.
func (s Style) Render(str string) string {
	if s == StylePlain {
		return str
	}
	return s.Lipgloss().Render(str)
}

// Fragment pairs raw characters with a presentation style.
type Fragment struct {
	Text  string
	Style Style
}

// New returns a plain fragment.
func New(s string) Fragment {
	return Fragment{Text: s}
}

// FromRune returns a plain single-character fragment.
func FromRune(r rune) Fragment {
	return Fragment{Text: string(r)}
}

// WithStyle returns a copy of f using style s.
func (f Fragment) WithStyle(s Style) Fragment {
	f.Style = s
	return f
}

// Len is the plain length of the fragment in characters. Surfaces place one
// character per cell, so this is also its width in cells; word sources only
// admit single-cell characters (see wordlist.SingleCell).
func (f Fragment) Len() int {
	return utf8.RuneCountInString(f.Text)
}

// Runes returns the raw characters of the fragment.
func (f Fragment) Runes() []rune {
	return []rune(f.Text)
}

// String renders the fragment with its styling applied.
func (f Fragment) String() string {
	return f.Style.Render(f.Text)
}

// Len sums the plain lengths of frags.
func Len(frags []Fragment) int {
	total := 0
	for _, f := range frags {
		total += f.Len()
	}
	return total
}

// Plain concatenates the raw characters of frags.
func Plain(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}
