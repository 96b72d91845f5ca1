package layout

import (
	"fmt"

	"github.com/verte-zerg/typetest/internal/cursor"
	"github.com/verte-zerg/typetest/internal/text"
)

// Placed is a layout drawn on a surface: where each line landed and the
// characters the user has to type.
type Placed struct {
	Lines  []cursor.Line
	Target []rune
	Words  int
}

// Display clears the surface, draws the wrapped lines centered and faint, and
// leaves the surface cursor on the first character.
func Display(s text.Surface, l Layout) (Placed, error) {
	if len(l.Lines) == 0 {
		return Placed{}, ErrNoWords
	}
	if err := s.ClearAndHome(); err != nil {
		return Placed{}, fmt.Errorf("failed to clear screen: %w", err)
	}
	frags := make([][]text.Fragment, len(l.Lines))
	for i, line := range l.Lines {
		frags[i] = []text.Fragment{text.New(line.Text()).WithStyle(text.StylePending)}
	}
	origins, err := printLines(s, frags)
	if err != nil {
		return Placed{}, err
	}

	placed := Placed{Words: len(l.Words)}
	for i, line := range l.Lines {
		runes := []rune(line.Text())
		placed.Lines = append(placed.Lines, cursor.Line{Row: origins[i].row, Col: origins[i].col, Length: len(runes)})
		placed.Target = append(placed.Target, runes...)
	}
	first := placed.Lines[0]
	if err := s.MoveCursorTo(first.Row, first.Col); err != nil {
		return Placed{}, fmt.Errorf("failed to move cursor: %w", err)
	}
	if err := s.ShowCursor(); err != nil {
		return Placed{}, fmt.Errorf("failed to show cursor: %w", err)
	}
	if err := s.Flush(); err != nil {
		return Placed{}, fmt.Errorf("failed to flush screen: %w", err)
	}
	return placed, nil
}

// PrintLines draws each line of fragments centered on the surface and flushes.
func PrintLines(s text.Surface, lines [][]text.Fragment) error {
	if _, err := printLines(s, lines); err != nil {
		return err
	}
	if err := s.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}
	return nil
}

type origin struct {
	row int
	col int
}

func printLines(s text.Surface, lines [][]text.Fragment) ([]origin, error) {
	width, height := s.Dimensions()
	offset := len(lines) / 2
	origins := make([]origin, 0, len(lines))
	for i, line := range lines {
		o := origin{
			row: height/2 + i - offset,
			col: width/2 - text.Len(line)/2,
		}
		if err := s.MoveCursorTo(o.row, o.col); err != nil {
			return nil, fmt.Errorf("failed to move cursor: %w", err)
		}
		for _, f := range line {
			if err := s.WriteStyled(f); err != nil {
				return nil, fmt.Errorf("failed to write line %d: %w", i, err)
			}
		}
		origins = append(origins, o)
	}
	return origins, nil
}
