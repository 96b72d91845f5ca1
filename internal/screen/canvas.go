// Package screen provides an in-memory terminal surface rendered with lipgloss.
package screen

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/typetest/internal/text"
)

type cell struct {
	r     rune
	style text.Style
}

var blank = cell{r: ' ', style: text.StylePlain}

// Canvas is a grid of styled cells with a terminal-like cursor. It implements
// text.Surface.
type Canvas struct {
	width  int
	height int
	cells  [][]cell

	row           int
	col           int
	cursorVisible bool
	frames        int
}

// NewCanvas returns a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{cursorVisible: true}
	c.Resize(width, height)
	return c
}

// Resize changes the canvas size, keeping the cells that still fit.
func (c *Canvas) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			if y < len(c.cells) && x < len(c.cells[y]) {
				cells[y][x] = c.cells[y][x]
			} else {
				cells[y][x] = blank
			}
		}
	}
	c.width = width
	c.height = height
	c.cells = cells
}

// ClearAndHome blanks every cell and moves the cursor to the top-left corner.
func (c *Canvas) ClearAndHome() error {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
	c.row, c.col = 0, 0
	return nil
}

// WriteStyled draws f at the cursor and moves the cursor past it.
func (c *Canvas) WriteStyled(f text.Fragment) error {
	for _, r := range f.Text {
		if !c.inside(c.row, c.col) {
			return fmt.Errorf("write at %d,%d outside %dx%d screen", c.row, c.col, c.width, c.height)
		}
		c.cells[c.row][c.col] = cell{r: r, style: f.Style}
		c.col++
	}
	return nil
}

// MoveCursorTo places the cursor on a cell.
func (c *Canvas) MoveCursorTo(row, col int) error {
	if !c.inside(row, col) {
		return fmt.Errorf("cursor position %d,%d outside %dx%d screen", row, col, c.width, c.height)
	}
	c.row, c.col = row, col
	return nil
}

// HideCursor stops drawing the cursor.
func (c *Canvas) HideCursor() error {
	c.cursorVisible = false
	return nil
}

// ShowCursor draws the cursor again.
func (c *Canvas) ShowCursor() error {
	c.cursorVisible = true
	return nil
}

// Flush marks the end of a batch of writes.
func (c *Canvas) Flush() error {
	c.frames++
	return nil
}

// Dimensions returns the canvas size.
func (c *Canvas) Dimensions() (width, height int) {
	return c.width, c.height
}

// Cursor returns the cursor cell and whether it is visible.
func (c *Canvas) Cursor() (row, col int, visible bool) {
	return c.row, c.col, c.cursorVisible
}

// Frames returns how many times the canvas was flushed.
func (c *Canvas) Frames() int {
	return c.frames
}

// Cell returns the character and style at a position.
func (c *Canvas) Cell(row, col int) (rune, text.Style) {
	if !c.inside(row, col) {
		return ' ', text.StylePlain
	}
	cl := c.cells[row][col]
	return cl.r, cl.style
}

// PlainRow returns a row without styling.
func (c *Canvas) PlainRow(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[row] {
		b.WriteRune(cl.r)
	}
	return b.String()
}

// Rows renders every row with styling. Runs of equally styled cells are
// rendered together; the cursor cell is drawn reversed when visible.
func (c *Canvas) Rows() []string {
	rows := make([]string, c.height)
	for y := range c.cells {
		rows[y] = c.renderRow(y)
	}
	return rows
}

// Render returns the whole canvas as one string.
func (c *Canvas) Render() string {
	return strings.Join(c.Rows(), "\n")
}

func (c *Canvas) renderRow(y int) string {
	var b strings.Builder
	var run strings.Builder
	runStyle := text.StylePlain
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}
	for x, cl := range c.cells[y] {
		if c.cursorVisible && y == c.row && x == c.col {
			flush()
			b.WriteString(cl.style.Lipgloss().Reverse(true).Render(string(cl.r)))
			continue
		}
		if cl.style != runStyle {
			flush()
			runStyle = cl.style
		}
		run.WriteRune(cl.r)
	}
	flush()
	return b.String()
}

func (c *Canvas) inside(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}
