// Package cursor tracks the typing position across wrapped lines.
package cursor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLines is returned when a cursor is built without lines.
	ErrNoLines = errors.New("cursor needs at least one line")
	// ErrEmptyLine is returned when a line has no characters.
	ErrEmptyLine = errors.New("cursor line has zero length")
)

// Line describes one displayed line: where it starts on screen and how many
// characters it holds.
type Line struct {
	Row    int
	Col    int
	Length int
}

// Model is a (line, offset) position over a fixed set of lines.
type Model struct {
	lines  []Line
	line   int
	offset int
}

// New builds a cursor positioned at the first character of the first line.
func New(lines []Line) (*Model, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	for i, l := range lines {
		if l.Length <= 0 {
			return nil, fmt.Errorf("line %d: %w", i, ErrEmptyLine)
		}
	}
	return &Model{lines: append([]Line(nil), lines...)}, nil
}

// Advance moves one character forward, wrapping onto the next line. At the
// last character of the last line it stays put.
func (m *Model) Advance() {
	if m.offset < m.lines[m.line].Length-1 {
		m.offset++
		return
	}
	if m.line+1 < len(m.lines) {
		m.line++
		m.offset = 0
	}
}

// Retreat moves one character back, wrapping onto the end of the previous
// line. At the very start it stays put.
func (m *Model) Retreat() {
	if m.offset > 0 {
		m.offset--
		return
	}
	if m.line > 0 {
		m.line--
		m.offset = m.lines[m.line].Length - 1
	}
}

// Position returns the screen cell of the cursor.
func (m *Model) Position() (row, col int) {
	l := m.lines[m.line]
	return l.Row, l.Col + m.offset
}

// Line returns the index of the current line.
func (m *Model) Line() int {
	return m.line
}

// Offset returns the offset within the current line.
func (m *Model) Offset() int {
	return m.offset
}

// Index returns the linear character index of the cursor.
func (m *Model) Index() int {
	idx := m.offset
	for _, l := range m.lines[:m.line] {
		idx += l.Length
	}
	return idx
}

// AtStart reports whether the cursor is on the first character.
func (m *Model) AtStart() bool {
	return m.line == 0 && m.offset == 0
}

// AtEnd reports whether the cursor is on the last character of the last line.
func (m *Model) AtEnd() bool {
	return m.line == len(m.lines)-1 && m.offset == m.lines[m.line].Length-1
}
