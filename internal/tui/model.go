// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/verte-zerg/typetest/internal/engine"
	"github.com/verte-zerg/typetest/internal/layout"
	"github.com/verte-zerg/typetest/internal/results"
	"github.com/verte-zerg/typetest/internal/screen"
	"github.com/verte-zerg/typetest/internal/text"
)

// WordSource supplies the words of a new test.
type WordSource interface {
	Words() ([]string, error)
}

// PageLines is the number of rows the results page needs. The layout engine
// must reserve at least this many rows for the text area.
const PageLines = 4

type phase int

const (
	phaseWaiting phase = iota
	phaseTyping
	phaseResults
	phaseFailed
)

// Model implements the Bubble Tea typing UI. It owns the canvas and feeds
// keystrokes to the processor of the current run.
type Model struct {
	source WordSource
	layout layout.Engine
	canvas *screen.Canvas
	keys   keyMap
	help   help.Model
	now    func() time.Time
	logger *log.Logger

	width  int
	height int

	words  []string
	proc   *engine.Processor
	phase  phase
	record results.Record
	runErr error
	err    error
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sends run lifecycle logs to l instead of the standard logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// NewModel constructs a typing TUI model. words, when non-empty, are used for
// the first run; later runs draw from source.
func NewModel(source WordSource, eng layout.Engine, words []string, opts ...Option) *Model {
	h := help.New()
	h.Styles.ShortKey = text.StyleMuted.Lipgloss().Bold(true)
	h.Styles.ShortDesc = text.StyleMuted.Lipgloss()
	h.Styles.ShortSeparator = text.StyleMuted.Lipgloss()
	eng.MinLines = max(eng.MinLines, PageLines)
	m := &Model{
		source: source,
		layout: eng,
		canvas: screen.NewCanvas(0, 0),
		keys:   defaultKeyMap(),
		help:   h,
		now:    time.Now,
		logger: log.Default(),
		words:  words,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Err returns the error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch m.phase {
		case phaseTyping:
			return m.handleTyping(msg)
		default:
			return m.handleMenu(msg)
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	rows := m.canvas.Rows()
	if m.height >= 2 {
		footer := ansi.Truncate(m.renderFooter(), m.width, "…")
		rows[len(rows)-1] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) resize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.canvas.Resize(width, height)
	var err error
	switch {
	case m.phase == phaseWaiting:
		err = m.startRun(false)
	case m.phase == phaseTyping && !m.proc.Started():
		err = m.startRun(false)
	case m.phase == phaseResults:
		err = m.showResults()
	case m.phase == phaseFailed:
		err = m.showFailure()
	}
	if err != nil {
		return m.fail(err)
	}
	return m, nil
}

func (m *Model) handleTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range classifyKey(msg, m.keys) {
		status, err := m.proc.HandleKey(k)
		if err != nil {
			m.logger.Printf("run aborted: %v", err)
			m.runErr = err
			m.phase = phaseFailed
			if err := m.showFailure(); err != nil {
				return m.fail(err)
			}
			return m, nil
		}
		switch status {
		case engine.Running:
			continue
		case engine.Finished:
			m.record = m.proc.Results()
			m.logger.Printf("run finished: %d words in %s, %.1f wpm, %.1f%% accuracy",
				m.record.TotalWords, m.record.Duration(), m.record.WPM(), m.record.Accuracy()*100)
			m.phase = phaseResults
			if err := m.showResults(); err != nil {
				return m.fail(err)
			}
			return m, nil
		case engine.Aborted:
			m.logger.Printf("run aborted by user")
			return m, tea.Quit
		case engine.RestartRequested:
			m.logger.Printf("restart requested")
			if err := m.startRun(true); err != nil {
				return m.fail(err)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) handleMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, k := range classifyKey(msg, m.keys) {
		switch k.Kind {
		case engine.KeyQuit:
			return m, tea.Quit
		case engine.KeyRestart:
			if m.phase == phaseWaiting {
				continue
			}
			if err := m.startRun(true); err != nil {
				return m.fail(err)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Printf("fatal: %v", err)
	m.err = err
	return m, tea.Quit
}

// startRun lays out and draws a text and starts a new processor. fresh draws
// new words from the source.
func (m *Model) startRun(fresh bool) error {
	if fresh || len(m.words) == 0 {
		words, err := m.source.Words()
		if err != nil {
			return fmt.Errorf("failed to generate words: %w", err)
		}
		m.words = words
	}
	l, err := m.layout.Layout(m.words, m.width, m.height)
	if err != nil {
		return err
	}
	placed, err := layout.Display(m.canvas, l)
	if err != nil {
		return err
	}
	proc, err := engine.New(m.canvas, placed, engine.WithClock(m.now))
	if err != nil {
		return err
	}
	m.logger.Printf("run started: %d words on %d lines", len(m.words), len(l.Lines))
	m.proc = proc
	m.runErr = nil
	m.phase = phaseTyping
	return nil
}

func (m *Model) showResults() error {
	if err := m.canvas.ClearAndHome(); err != nil {
		return err
	}
	if err := layout.PrintLines(m.canvas, resultLines(m.record)); err != nil {
		return fmt.Errorf("failed to show results: %w", err)
	}
	return m.canvas.HideCursor()
}

func (m *Model) showFailure() error {
	if err := m.canvas.ClearAndHome(); err != nil {
		return err
	}
	lines := [][]text.Fragment{
		{text.New("The test stopped:").WithStyle(text.StyleIncorrect)},
		{text.New(m.runErr.Error())},
	}
	if err := layout.PrintLines(m.canvas, lines); err != nil {
		return fmt.Errorf("failed to show error: %w", err)
	}
	return m.canvas.HideCursor()
}

func resultLines(r results.Record) [][]text.Fragment {
	return [][]text.Fragment{
		{text.New(fmt.Sprintf("Took %ds for %d words", int(r.Duration().Seconds()), r.TotalWords))},
		{text.New(fmt.Sprintf("Accuracy: %.1f%%", r.Accuracy()*100)).WithStyle(text.StyleAccent)},
		{text.New(fmt.Sprintf("Mistakes: %d out of %d characters", r.Errors, r.CharsInText))},
		{
			text.New("Speed: "),
			text.New(fmt.Sprintf("%.1f wpm", r.WPM())).WithStyle(text.StyleGood),
			text.New(" (words per minute)"),
		},
	}
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.phase == phaseTyping && m.proc != nil {
		target := len([]rune(m.proc.Target()))
		progress := 0
		if target > 0 {
			progress = int(float64(len([]rune(m.proc.Typed()))) / float64(target) * 100)
		}
		segments = append(segments, fmt.Sprintf("Progress %d%%", progress))
		if m.proc.Started() {
			live := m.proc.Results()
			segments = append(segments, fmt.Sprintf("%.1f WPM", live.WPM()))
		}
	}
	segments = append(segments, m.help.ShortHelpView(m.keys.ShortHelp()))
	footer := strings.Join(segments, "  ")
	return text.StyleMuted.Render(footer)
}
