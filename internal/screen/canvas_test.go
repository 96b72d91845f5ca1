package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/typetest/internal/text"
)

func TestWriteStyledAdvancesCursor(t *testing.T) {
	c := NewCanvas(10, 3)
	if err := c.MoveCursorTo(1, 2); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := c.WriteStyled(text.New("abc").WithStyle(text.StyleCorrect)); err != nil {
		t.Fatalf("write: %v", err)
	}
	row, col, visible := c.Cursor()
	if row != 1 || col != 5 || !visible {
		t.Fatalf("expected visible cursor at (1,5), got (%d,%d) visible=%v", row, col, visible)
	}
	if got := c.PlainRow(1); got != "  abc     " {
		t.Fatalf("unexpected row %q", got)
	}
	if r, style := c.Cell(1, 3); r != 'b' || style != text.StyleCorrect {
		t.Fatalf("unexpected cell %q style %d", r, style)
	}
}

func TestWriteOutsideFails(t *testing.T) {
	c := NewCanvas(4, 1)
	if err := c.MoveCursorTo(0, 2); err != nil {
		t.Fatalf("move: %v", err)
	}
	if err := c.WriteStyled(text.New("abc")); err == nil {
		t.Fatalf("expected error writing past the right edge")
	}
	if err := c.MoveCursorTo(1, 0); err == nil {
		t.Fatalf("expected error moving below the last row")
	}
}

func TestClearAndHome(t *testing.T) {
	c := NewCanvas(5, 2)
	_ = c.MoveCursorTo(1, 1)
	_ = c.WriteStyled(text.New("xy"))
	if err := c.ClearAndHome(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if row, col, _ := c.Cursor(); row != 0 || col != 0 {
		t.Fatalf("expected cursor home, got (%d,%d)", row, col)
	}
	if got := c.PlainRow(1); strings.TrimSpace(got) != "" {
		t.Fatalf("expected blank row, got %q", got)
	}
}

func TestResizeKeepsContent(t *testing.T) {
	c := NewCanvas(6, 2)
	_ = c.WriteStyled(text.New("hello"))
	c.Resize(3, 4)
	if w, h := c.Dimensions(); w != 3 || h != 4 {
		t.Fatalf("expected 3x4, got %dx%d", w, h)
	}
	if got := c.PlainRow(0); got != "hel" {
		t.Fatalf("unexpected row %q", got)
	}
}

func TestRowsKeepWidth(t *testing.T) {
	c := NewCanvas(8, 2)
	_ = c.MoveCursorTo(0, 1)
	_ = c.WriteStyled(text.New("ab").WithStyle(text.StylePending))
	_ = c.WriteStyled(text.New("cd").WithStyle(text.StyleIncorrect))
	_ = c.MoveCursorTo(0, 2)
	for i, row := range c.Rows() {
		if got := ansi.StringWidth(row); got != 8 {
			t.Fatalf("row %d: expected width 8, got %d", i, got)
		}
	}
	if got := ansi.Strip(c.Render()); got != " abcd   \n        " {
		t.Fatalf("unexpected render %q", got)
	}
	_ = c.HideCursor()
	if _, _, visible := c.Cursor(); visible {
		t.Fatalf("expected hidden cursor")
	}
	_ = c.Flush()
	if c.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", c.Frames())
	}
}
