package generator

import (
	"fmt"
	"math/rand"
)

const contextSeparator = " "

// MinCorpusTokens is the smallest corpus that yields a transition.
const MinCorpusTokens = 3

// CorpusTooSmallError is returned when a corpus cannot produce any transition.
// Tokens is the longest run of consecutive tokens found.
type CorpusTooSmallError struct {
	Tokens int
}

func (e *CorpusTooSmallError) Error() string {
	return fmt.Sprintf("corpus has %d consecutive tokens, need at least %d", e.Tokens, MinCorpusTokens)
}

type bigram struct {
	first  string
	second string
}

func (c bigram) key() string {
	return c.first + contextSeparator + c.second
}

// Chain is an order-2 Markov transition table. Each context maps to every word
// that followed it in the corpus, duplicates included, so frequent
// continuations are drawn proportionally more often.
type Chain struct {
	contexts []bigram
	next     map[string][]string
}

// BuildChain records the continuations of every pair of adjacent tokens.
func BuildChain(tokens []string) (*Chain, error) {
	return BuildChainRuns([][]string{tokens})
}

// BuildChainRuns builds one chain over several token runs. Tokens are only
// adjacent within a run; no context spans two runs.
func BuildChainRuns(runs [][]string) (*Chain, error) {
	c := &Chain{next: map[string][]string{}}
	longest := 0
	for _, tokens := range runs {
		longest = max(longest, len(tokens))
		for i := 0; i+2 < len(tokens); i++ {
			ctx := bigram{first: tokens[i], second: tokens[i+1]}
			key := ctx.key()
			if _, ok := c.next[key]; !ok {
				c.contexts = append(c.contexts, ctx)
			}
			c.next[key] = append(c.next[key], tokens[i+2])
		}
	}
	if longest < MinCorpusTokens {
		return nil, &CorpusTooSmallError{Tokens: longest}
	}
	return c, nil
}

// Len returns the number of distinct contexts.
func (c *Chain) Len() int {
	return len(c.contexts)
}

// Keys returns the contexts in first-seen order, as "first second".
func (c *Chain) Keys() []string {
	keys := make([]string, len(c.contexts))
	for i, ctx := range c.contexts {
		keys[i] = ctx.key()
	}
	return keys
}

// Continuations returns the recorded followers of a context key.
func (c *Chain) Continuations(key string) []string {
	return append([]string(nil), c.next[key]...)
}

// Generate starts from a random context and emits up to count words. It stops
// early when a context has no recorded continuation.
func (c *Chain) Generate(rnd *rand.Rand, count int) []string {
	if count <= 0 || len(c.contexts) == 0 {
		return nil
	}
	out := make([]string, 0, count)
	ctx := c.contexts[rnd.Intn(len(c.contexts))]
	for i := 0; i < count; i++ {
		options, ok := c.next[ctx.key()]
		if !ok {
			break
		}
		word := options[rnd.Intn(len(options))]
		out = append(out, ctx.first)
		ctx = bigram{first: ctx.second, second: word}
	}
	return out
}
