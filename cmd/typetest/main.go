// Package main provides the CLI entrypoint for typetest.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typetest/internal/config"
	"github.com/verte-zerg/typetest/internal/generator"
	"github.com/verte-zerg/typetest/internal/layout"
	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/tui"
	"github.com/verte-zerg/typetest/internal/wordlist"
)

const (
	defaultWords         = 25
	defaultCaps          = 0.0
	defaultPunct         = 0.0
	defaultASCIIOnly     = true
	defaultGenerateWidth = 80
)

const defaultPunctSet = ".,!?;:\"'-"

const debugLogEnv = "TYPETEST_LOG"

var (
	testWords           int
	testWordFile        string
	testCorpus          string
	testCaps            float64
	testPunct           float64
	testPunctSet        string
	testASCIIOnly       bool
	testSeed            int64
	testWidthPct        float64
	testMaxWordsPerLine int
	testFooterLines     int
	testMinWidth        int

	generateWidth int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typetest",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&testWords, "words", defaultWords, "words per text")
	flags.StringVar(&testWordFile, "word-file", "", "word list file (default: built-in list)")
	flags.StringVar(&testCorpus, "corpus", "", "corpus file for Markov text generation")
	flags.Float64Var(&testCaps, "caps", defaultCaps, "probability of capitalized first letter (0-1)")
	flags.Float64Var(&testPunct, "punct", defaultPunct, "punctuation probability per word (0-1)")
	flags.StringVar(&testPunctSet, "punct-set", defaultPunctSet, "punctuation set")
	flags.BoolVar(&testASCIIOnly, "ascii-only", defaultASCIIOnly, "skip words with non-ASCII characters")
	flags.Int64Var(&testSeed, "seed", 0, "random seed (0: time based)")
	flags.Float64Var(&testWidthPct, "width-pct", layout.DefaultWidthPct, "share of the terminal width used for text (0-1]")
	flags.IntVar(&testMaxWordsPerLine, "max-words-per-line", layout.DefaultMaxWordsPerLine, "maximum words on one line")
	rootCmd.Flags().IntVar(&testFooterLines, "footer-lines", layout.DefaultFooterLines, "rows reserved below the text")
	rootCmd.Flags().IntVar(&testMinWidth, "min-width", layout.DefaultMinWidth, "minimum terminal width in columns")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	source, err := buildSource(cfg)
	if err != nil {
		return err
	}
	eng := layoutEngine(cfg)

	words, err := source.Words()
	if err != nil {
		return fmt.Errorf("failed to generate words: %w", err)
	}
	if err := preflight(eng, words); err != nil {
		return err
	}

	closeLog, err := setupDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(source, eng, words)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if fm, ok := final.(*tui.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

// preflight checks the current terminal before entering the alt screen so
// a too small terminal fails with a plain message.
func preflight(eng layout.Engine, words []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	if _, err := eng.Layout(words, width, height); err != nil {
		return err
	}
	return nil
}

func setupDebugLog() (func(), error) {
	path := strings.TrimSpace(os.Getenv(debugLogEnv))
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "typetest")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	file := fileCfg.Test
	applyIntConfig(cmd, "words", &testWords, file.Words)
	applyStringConfig(cmd, "word-file", &testWordFile, file.WordFile)
	applyStringConfig(cmd, "corpus", &testCorpus, file.Corpus)
	applyFloatConfig(cmd, "caps", &testCaps, file.CapsPct)
	applyFloatConfig(cmd, "punct", &testPunct, file.PunctPct)
	applyStringConfig(cmd, "punct-set", &testPunctSet, file.PunctSet)
	applyBoolConfig(cmd, "ascii-only", &testASCIIOnly, file.ASCIIOnly)
	applyInt64Config(cmd, "seed", &testSeed, file.Seed)
	applyFloatConfig(cmd, "width-pct", &testWidthPct, file.WidthPct)
	applyIntConfig(cmd, "max-words-per-line", &testMaxWordsPerLine, file.MaxWordsPerLine)
	applyIntConfig(cmd, "footer-lines", &testFooterLines, file.FooterLines)
	applyIntConfig(cmd, "min-width", &testMinWidth, file.MinWidth)

	cfg := model.Config{
		Words:           testWords,
		WordFile:        testWordFile,
		Corpus:          testCorpus,
		CapsPct:         testCaps,
		PunctPct:        testPunct,
		PunctSet:        testPunctSet,
		ASCIIOnly:       testASCIIOnly,
		WidthPct:        testWidthPct,
		MaxWordsPerLine: testMaxWordsPerLine,
		FooterLines:     testFooterLines,
		MinWidth:        testMinWidth,
		Seed:            testSeed,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// buildSource picks the Markov source when a corpus is configured and the
// uniform word-list sampler otherwise.
func buildSource(cfg model.Config) (tui.WordSource, error) {
	gen := generator.New(cfg.Seed)
	keep := wordlist.FilterFor(cfg.ASCIIOnly)

	if cfg.Corpus != "" {
		runs, err := wordlist.LoadRuns(cfg.Corpus, keep)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus: %w", err)
		}
		chain, err := generator.BuildChainRuns(runs)
		if err != nil {
			return nil, fmt.Errorf("failed to build markov chain from %s: %w", cfg.Corpus, err)
		}
		return generator.MarkovSource{Gen: gen, Chain: chain, Count: cfg.Words}, nil
	}

	list, err := loadWordList(cfg.WordFile, keep)
	if err != nil {
		return nil, err
	}
	return generator.ListSource{
		Gen:      gen,
		List:     list,
		Count:    cfg.Words,
		CapsPct:  cfg.CapsPct,
		PunctPct: cfg.PunctPct,
		PunctSet: []rune(cfg.PunctSet),
	}, nil
}

// loadWordList reads path, or the default word list path when path is empty.
// A missing default list falls back to the built-in words.
func loadWordList(path string, keep wordlist.FilterFunc) ([]string, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultWordListPath()
	}
	words, err := wordlist.LoadWords(path, keep)
	if err == nil {
		return words, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return wordlist.Default(), nil
	}
	return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
}

func layoutEngine(cfg model.Config) layout.Engine {
	eng := layout.NewEngine()
	eng.WidthPct = cfg.WidthPct
	eng.MaxWordsPerLine = cfg.MaxWordsPerLine
	eng.FooterLines = cfg.FooterLines
	eng.MinWidth = cfg.MinWidth
	eng.MinLines = tui.PageLines
	return eng
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print generated practice text",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&generateWidth, "width", defaultGenerateWidth, "line width in columns")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if generateWidth <= 0 {
		return fmt.Errorf("--width must be > 0")
	}
	source, err := buildSource(cfg)
	if err != nil {
		return err
	}
	words, err := source.Words()
	if err != nil {
		return fmt.Errorf("failed to generate words: %w", err)
	}
	lines := layout.Wrap(words, generateWidth, cfg.MaxWordsPerLine, layout.CellWidth)
	for _, line := range lines {
		text := strings.TrimSuffix(line.Text(), layout.Separator)
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typetest configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# words = %d                 # Words per text
# word-file = %q             # Word list file (built-in list when missing)
# corpus = ""                # Corpus file; enables Markov text generation
# caps = %.2f                # Probability of capitalized first letter (0-1)
# punct = %.2f               # Punctuation probability per word (0-1)
# punct-set = %q             # Punctuation set
# ascii-only = %t            # Skip words with non-ASCII characters
# seed = 0                   # Random seed (0: time based)
# width-pct = %.2f           # Share of the terminal width used for text
# max-words-per-line = %d    # Maximum words on one line
# footer-lines = %d          # Rows reserved below the text
# min-width = %d             # Minimum terminal width in columns
`,
		defaultWords,
		config.DefaultWordListPath(),
		defaultCaps,
		defaultPunct,
		defaultPunctSet,
		defaultASCIIOnly,
		layout.DefaultWidthPct,
		layout.DefaultMaxWordsPerLine,
		layout.DefaultFooterLines,
		layout.DefaultMinWidth,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.CapsPct < 0 || cfg.CapsPct > 1 {
		return fmt.Errorf("--caps must be between 0 and 1")
	}
	if cfg.PunctPct < 0 || cfg.PunctPct > 1 {
		return fmt.Errorf("--punct must be between 0 and 1")
	}
	if cfg.PunctPct > 0 && cfg.PunctSet == "" {
		return fmt.Errorf("--punct-set must not be empty")
	}
	if cfg.WidthPct <= 0 || cfg.WidthPct > 1 {
		return fmt.Errorf("--width-pct must be in (0, 1]")
	}
	if cfg.MaxWordsPerLine <= 0 {
		return fmt.Errorf("--max-words-per-line must be > 0")
	}
	if cfg.FooterLines < layout.MinFooterLines {
		return fmt.Errorf("--footer-lines must be >= %d", layout.MinFooterLines)
	}
	if cfg.MinWidth < 0 {
		return fmt.Errorf("--min-width must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
