// Package model defines shared data structures.
package model

// Config defines typing test settings.
type Config struct {
	Words           int
	WordFile        string
	Corpus          string
	CapsPct         float64
	PunctPct        float64
	PunctSet        string
	ASCIIOnly       bool
	WidthPct        float64
	MaxWordsPerLine int
	FooterLines     int
	MinWidth        int
	Seed            int64
}
