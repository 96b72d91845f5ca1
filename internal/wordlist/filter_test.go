package wordlist

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestASCIIPrintable(t *testing.T) {
	filter := FilterFor(true)
	for _, word := range []string{"hello", "don't", "co-op", "Go1.24"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass ascii filter", word)
		}
	}
	for _, word := range []string{"", "résumé", "naïve", "don’t", "tab\tbed"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestSingleCell(t *testing.T) {
	eastAsian := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = false
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = eastAsian })

	filter := FilterFor(false)
	for _, word := range []string{"hello", "résumé", "naïve", "don’t", "Straße"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass single-cell filter", word)
		}
	}
	for _, word := range []string{"", "日本", "e\u0301", "go😀", "tab\tbed"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
