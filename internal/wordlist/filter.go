// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterFor returns the filter for the ascii-only setting. Without ascii-only,
// words must still be single-cell: the screen places one character per cell.
func FilterFor(asciiOnly bool) FilterFunc {
	if asciiOnly {
		return ASCIIPrintable
	}
	return SingleCell
}

// ASCIIPrintable keeps words made only of printable, non-space ASCII
// characters, so every character takes exactly one cell.
func ASCIIPrintable(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch <= ' ' || ch > '~' {
			return false
		}
	}
	return true
}

// SingleCell keeps words whose characters are printable and exactly one
// terminal cell wide. Wide (CJK, emoji) and zero-width (combining) runes are
// rejected.
func SingleCell(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) || runewidth.RuneWidth(r) != 1 {
			return false
		}
	}
	return true
}
