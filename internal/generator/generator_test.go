package generator

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

func TestBuildChainRecordsContinuations(t *testing.T) {
	chain, err := BuildChain([]string{"a", "b", "c", "a", "b", "d"})
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	want := map[string][]string{
		"a b": {"c", "d"},
		"b c": {"a"},
		"c a": {"b"},
	}
	if chain.Len() != len(want) {
		t.Fatalf("expected %d contexts, got %d: %v", len(want), chain.Len(), chain.Keys())
	}
	for key, next := range want {
		if diff := cmp.Diff(next, chain.Continuations(key)); diff != "" {
			t.Fatalf("continuations of %q (-want +got):\n%s", key, diff)
		}
	}
	if diff := cmp.Diff([]string{"a b", "b c", "c a"}, chain.Keys()); diff != "" {
		t.Fatalf("unexpected key order (-want +got):\n%s", diff)
	}
}

func TestBuildChainKeepsDuplicates(t *testing.T) {
	chain, err := BuildChain(strings.Fields("x y z x y z x y w"))
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	if diff := cmp.Diff([]string{"z", "z", "w"}, chain.Continuations("x y")); diff != "" {
		t.Fatalf("unexpected continuations (-want +got):\n%s", diff)
	}
}

func TestBuildChainTooSmall(t *testing.T) {
	for _, tokens := range [][]string{nil, {"a"}, {"a", "b"}} {
		_, err := BuildChain(tokens)
		var tooSmall *CorpusTooSmallError
		if !errors.As(err, &tooSmall) {
			t.Fatalf("expected CorpusTooSmallError for %v, got %v", tokens, err)
		}
		if tooSmall.Tokens != len(tokens) {
			t.Fatalf("expected %d tokens in error, got %d", len(tokens), tooSmall.Tokens)
		}
	}
}

func TestBuildChainRunsKeepsRunsApart(t *testing.T) {
	chain, err := BuildChainRuns([][]string{{"a", "b", "c"}, {"d", "e", "f", "g"}})
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	if diff := cmp.Diff([]string{"a b", "d e", "e f"}, chain.Keys()); diff != "" {
		t.Fatalf("unexpected keys (-want +got):\n%s", diff)
	}
	if got := chain.Continuations("b c"); len(got) != 0 {
		t.Fatalf("expected no context across runs, got %v", got)
	}
}

func TestBuildChainRunsAllTooShort(t *testing.T) {
	_, err := BuildChainRuns([][]string{{"a", "b"}, {"c"}, {"d", "e"}})
	var tooSmall *CorpusTooSmallError
	if !errors.As(err, &tooSmall) {
		t.Fatalf("expected CorpusTooSmallError, got %v", err)
	}
	if tooSmall.Tokens != 2 {
		t.Fatalf("expected longest run of 2, got %d", tooSmall.Tokens)
	}
}

func TestGenerateStopsAtTerminalContext(t *testing.T) {
	chain, err := BuildChain([]string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	words := chain.Generate(rand.New(rand.NewSource(1)), 10)
	if diff := cmp.Diff([]string{"one"}, words); diff != "" {
		t.Fatalf("unexpected words (-want +got):\n%s", diff)
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	chain, err := BuildChain(strings.Fields("the cat sat on the mat and the cat ran to the mat and the dog sat"))
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	a := New(42).Markov(chain, 8)
	b := New(42).Markov(chain, 8)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different text (-a +b):\n%s", diff)
	}
}

func TestGenerateUsesRecordedContinuations(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tokens := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c", "d"}), 3, 40).Draw(t, "tokens")
		seed := rapid.Int64().Draw(t, "seed")
		count := rapid.IntRange(1, 30).Draw(t, "count")
		chain, err := BuildChain(tokens)
		if err != nil {
			t.Fatalf("build chain: %v", err)
		}
		words := chain.Generate(rand.New(rand.NewSource(seed)), count)
		if len(words) == 0 || len(words) > count {
			t.Fatalf("generated %d words for count %d", len(words), count)
		}
		for i := 0; i+2 < len(words); i++ {
			next := chain.Continuations(words[i] + " " + words[i+1])
			found := false
			for _, w := range next {
				if w == words[i+2] {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("%q does not follow %q %q in the corpus", words[i+2], words[i], words[i+1])
			}
		}
	})
}

func TestGenerateUniform(t *testing.T) {
	g := New(7)
	words := g.Generate([]string{"alpha", "beta"}, 20, 0, 0, nil)
	if len(words) != 20 {
		t.Fatalf("expected 20 words, got %d", len(words))
	}
	for _, w := range words {
		if w != "alpha" && w != "beta" {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestGenerateDecorations(t *testing.T) {
	g := New(3)
	words := g.Generate([]string{"word"}, 10, 1, 1, []rune("."))
	for _, w := range words {
		if w != "Word." {
			t.Fatalf("expected decorated word, got %q", w)
		}
	}
}

func TestSources(t *testing.T) {
	list := ListSource{Gen: New(1), List: []string{"go"}, Count: 3}
	words, err := list.Words()
	if err != nil {
		t.Fatalf("list words: %v", err)
	}
	if diff := cmp.Diff([]string{"go", "go", "go"}, words); diff != "" {
		t.Fatalf("unexpected words (-want +got):\n%s", diff)
	}
	if _, err := (ListSource{Gen: New(1), Count: 3}).Words(); err == nil {
		t.Fatalf("expected error for empty list")
	}

	chain, err := BuildChain(strings.Fields("a b a b a b"))
	if err != nil {
		t.Fatalf("build chain: %v", err)
	}
	words, err = MarkovSource{Gen: New(1), Chain: chain, Count: 4}.Words()
	if err != nil {
		t.Fatalf("markov words: %v", err)
	}
	if len(words) != 4 {
		t.Fatalf("expected 4 words, got %v", words)
	}
}
