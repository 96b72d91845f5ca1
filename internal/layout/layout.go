// Package layout wraps a word sequence into display lines and places them on a surface.
package layout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Separator is appended after every word of a line except the last word of the text.
const Separator = " "

const (
	// DefaultWidthPct is the share of the terminal width a line may use.
	DefaultWidthPct = 0.4
	// DefaultMaxWordsPerLine caps the number of words on one line.
	DefaultMaxWordsPerLine = 10
	// DefaultFooterLines is the number of rows kept free below the text.
	DefaultFooterLines = 2
	// DefaultMinWidth is the minimum number of terminal columns.
	DefaultMinWidth = 50
	// MinFooterLines is the fewest rows reserved below the text. With two
	// rows free the centered block ends at height-2 at the latest, leaving the
	// last row to the footer.
	MinFooterLines = 2
)

// ErrNoWords is returned when there is nothing to lay out.
var ErrNoWords = errors.New("no words to display")

// Measurer returns the display length of a word.
type Measurer func(word string) int

// CellWidth measures words in terminal cells.
func CellWidth(word string) int {
	return runewidth.StringWidth(word)
}

// Dimension names the terminal dimension a LayoutError is about.
type Dimension string

const (
	// Lines is the terminal height.
	Lines Dimension = "lines"
	// Columns is the terminal width.
	Columns Dimension = "columns"
)

// LayoutError reports that the terminal is too small for the wrapped text.
type LayoutError struct {
	Dimension Dimension
	Required  int
	Available int
}

func (e *LayoutError) Error() string {
	if e.Dimension == Lines {
		return fmt.Sprintf("terminal height is too short: requires at least %d lines, got %d lines", e.Required, e.Available)
	}
	return fmt.Sprintf("terminal width is too low: requires at least %d columns, got %d columns", e.Required, e.Available)
}

// Line is one wrapped line of words.
type Line struct {
	Words []string
	// Trailing is set on every line but the last; the line then ends with a
	// separator the user types before moving to the next line.
	Trailing bool
}

// Text returns the characters of the line as they are typed.
func (l Line) Text() string {
	s := strings.Join(l.Words, Separator)
	if l.Trailing {
		s += Separator
	}
	return s
}

// Layout is the result of wrapping a word sequence.
type Layout struct {
	Words        []string
	Lines        []Line
	MaxLineWidth int
}

// Engine holds the wrapping bounds.
type Engine struct {
	WidthPct        float64
	MaxWordsPerLine int
	FooterLines     int
	MinWidth        int
	// MinLines is the smallest text area, in rows, the terminal must offer
	// even when the wrapped text is shorter. Pages drawn in place of the text
	// set it.
	MinLines int
	Measure  Measurer
}

// NewEngine returns an engine with the default bounds.
func NewEngine() Engine {
	return Engine{
		WidthPct:        DefaultWidthPct,
		MaxWordsPerLine: DefaultMaxWordsPerLine,
		FooterLines:     DefaultFooterLines,
		MinWidth:        DefaultMinWidth,
		Measure:         CellWidth,
	}
}

// MaxLineWidth returns the line width bound for a terminal width.
func (e Engine) MaxLineWidth(termWidth int) int {
	return int(math.Floor(float64(termWidth)*e.WidthPct + 1e-9))
}

// Layout wraps words for a terminal of the given size and checks that the
// result fits. Nothing may be drawn when it returns an error.
func (e Engine) Layout(words []string, width, height int) (Layout, error) {
	if len(words) == 0 {
		return Layout{}, ErrNoWords
	}
	maxWidth := e.MaxLineWidth(width)
	lines := Wrap(words, maxWidth, e.MaxWordsPerLine, e.measure())
	if err := e.Validate(lines, words, width, height); err != nil {
		return Layout{}, err
	}
	return Layout{Words: words, Lines: lines, MaxLineWidth: maxWidth}, nil
}

// Validate checks wrapped lines against the terminal size.
func (e Engine) Validate(lines []Line, words []string, width, height int) error {
	footer := max(e.FooterLines, MinFooterLines)
	if required := max(len(lines), e.MinLines) + footer; required > height {
		return &LayoutError{Dimension: Lines, Required: required, Available: height}
	}
	measure := e.measure()
	longest := 0
	for _, w := range words {
		longest = max(longest, measure(w)+1)
	}
	if required := max(longest+1, e.MinWidth); required > width {
		return &LayoutError{Dimension: Columns, Required: required, Available: width}
	}
	return nil
}

func (e Engine) measure() Measurer {
	if e.Measure == nil {
		return CellWidth
	}
	return e.Measure
}

// Wrap splits words into lines of at most maxWords words whose running width,
// counting one separator per word, stays within maxWidth. A word wider than
// maxWidth gets a line of its own.
func Wrap(words []string, maxWidth, maxWords int, measure Measurer) []Line {
	if maxWords < 1 {
		maxWords = 1
	}
	var lines []Line
	var current []string
	width := 0
	for _, w := range words {
		n := measure(w) + len(Separator)
		if len(current) == 0 || (len(current) < maxWords && width+n <= maxWidth) {
			current = append(current, w)
			width += n
			continue
		}
		lines = append(lines, Line{Words: current, Trailing: true})
		current = []string{w}
		width = n
	}
	if len(current) > 0 {
		lines = append(lines, Line{Words: current})
	}
	return lines
}
