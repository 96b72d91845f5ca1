// Package engine processes keystrokes for a running typing test.
package engine

import (
	"fmt"
	"time"

	"github.com/verte-zerg/typetest/internal/cursor"
	"github.com/verte-zerg/typetest/internal/layout"
	"github.com/verte-zerg/typetest/internal/results"
	"github.com/verte-zerg/typetest/internal/text"
)

// KeyKind classifies a keystroke.
type KeyKind int

const (
	// KeyOther is ignored.
	KeyOther KeyKind = iota
	// KeyQuit aborts the run.
	KeyQuit
	// KeyRestart asks for a new run.
	KeyRestart
	// KeyDeleteWord erases back to the previous word boundary.
	KeyDeleteWord
	// KeyChar types Key.Rune.
	KeyChar
	// KeyBackspace erases one character.
	KeyBackspace
)

// Key is one classified keystroke.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Char returns a character keystroke.
func Char(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Status is the state of a run.
type Status int

const (
	// Running means more keystrokes are expected.
	Running Status = iota
	// Finished means the whole text was typed.
	Finished
	// Aborted means the user quit or the surface failed.
	Aborted
	// RestartRequested means the user asked for a new text.
	RestartRequested
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	case RestartRequested:
		return "restart"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// IOError wraps a surface failure that ended the run.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Counters are lifetime counts for one run. They never go down.
type Counters struct {
	CharsTyped int
	Errors     int
}

// Processor owns the typed input, the cursor and the counters of one run.
type Processor struct {
	surface text.Surface
	cursor  *cursor.Model
	target  []rune
	words   int
	now     func() time.Time

	typed     []rune
	counters  Counters
	status    Status
	startedAt time.Time
	endedAt   time.Time
}

// Option configures a Processor.
type Option func(*Processor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

// New starts a run over text already drawn on s.
func New(s text.Surface, placed layout.Placed, opts ...Option) (*Processor, error) {
	cur, err := cursor.New(placed.Lines)
	if err != nil {
		return nil, fmt.Errorf("failed to build cursor: %w", err)
	}
	p := &Processor{
		surface: s,
		cursor:  cur,
		target:  placed.Target,
		words:   placed.Words,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// HandleKey consumes one keystroke. Once the run has left Running, further
// keys are ignored. A surface failure aborts the run and is returned as an
// *IOError.
func (p *Processor) HandleKey(k Key) (Status, error) {
	if p.status != Running {
		return p.status, nil
	}
	if p.startedAt.IsZero() {
		p.startedAt = p.now()
	}

	var err error
	switch k.Kind {
	case KeyQuit:
		return p.stop(Aborted), nil
	case KeyRestart:
		return p.stop(RestartRequested), nil
	case KeyDeleteWord:
		err = p.deleteWord()
	case KeyChar:
		p.typed = append(p.typed, k.Rune)
		if len(p.typed) >= len(p.target) {
			return p.stop(Finished), nil
		}
		err = p.typeChar(k.Rune)
	case KeyBackspace:
		if len(p.typed) > 0 {
			err = p.erase()
		}
	default:
		return p.status, nil
	}
	if err == nil {
		if ferr := p.surface.Flush(); ferr != nil {
			err = &IOError{Op: "flush screen", Err: ferr}
		}
	}
	if err != nil {
		p.stop(Aborted)
		return p.status, err
	}
	return p.status, nil
}

func (p *Processor) stop(s Status) Status {
	p.status = s
	p.endedAt = p.now()
	return s
}

func (p *Processor) typeChar(c rune) error {
	p.counters.CharsTyped++
	expected := p.target[len(p.typed)-1]
	frag := text.FromRune(c).WithStyle(text.StyleCorrect)
	if c != expected {
		frag = text.FromRune(expected).WithStyle(text.StyleIncorrect)
		p.counters.Errors++
	}
	if err := p.surface.WriteStyled(frag); err != nil {
		return &IOError{Op: "draw typed character", Err: err}
	}
	p.cursor.Advance()
	return p.moveToCursor()
}

// erase pops one typed character and redraws its target as pending.
func (p *Processor) erase() error {
	p.typed = p.typed[:len(p.typed)-1]
	p.cursor.Retreat()
	if err := p.moveToCursor(); err != nil {
		return err
	}
	frag := text.FromRune(p.target[len(p.typed)]).WithStyle(text.StylePending)
	if err := p.surface.WriteStyled(frag); err != nil {
		return &IOError{Op: "redraw character", Err: err}
	}
	return p.moveToCursor()
}

// deleteWord erases at least one character, then keeps erasing until the
// input is empty or ends with a separator.
func (p *Processor) deleteWord() error {
	if len(p.typed) == 0 {
		return nil
	}
	if err := p.erase(); err != nil {
		return err
	}
	for len(p.typed) > 0 && string(p.typed[len(p.typed)-1]) != layout.Separator {
		if err := p.erase(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) moveToCursor() error {
	row, col := p.cursor.Position()
	if err := p.surface.MoveCursorTo(row, col); err != nil {
		return &IOError{Op: "move cursor", Err: err}
	}
	return nil
}

// Status returns the current state of the run.
func (p *Processor) Status() Status {
	return p.status
}

// Counters returns the lifetime counters.
func (p *Processor) Counters() Counters {
	return p.counters
}

// Typed returns the typed input.
func (p *Processor) Typed() string {
	return string(p.typed)
}

// Target returns the text being typed.
func (p *Processor) Target() string {
	return string(p.target)
}

// Cursor returns the cursor line and offset.
func (p *Processor) Cursor() (line, offset int) {
	return p.cursor.Line(), p.cursor.Offset()
}

// Started reports whether a keystroke has been received.
func (p *Processor) Started() bool {
	return !p.startedAt.IsZero()
}

// Results summarises the run. While the run is still going the current time
// stands in for the end.
func (p *Processor) Results() results.Record {
	end := p.endedAt
	if p.status == Running {
		end = p.now()
	}
	return results.Compute(results.Input{
		Typed:      p.typed,
		Target:     p.target,
		TotalWords: p.words,
		CharsTyped: p.counters.CharsTyped,
		Errors:     p.counters.Errors,
		StartedAt:  p.startedAt,
		EndedAt:    end,
	})
}
