package generator

import "fmt"

// ListSource samples words uniformly from a word list.
type ListSource struct {
	Gen      *Generator
	List     []string
	Count    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Words returns a fresh word sequence.
func (s ListSource) Words() ([]string, error) {
	if len(s.List) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return s.Gen.Generate(s.List, s.Count, s.CapsPct, s.PunctPct, s.PunctSet), nil
}

// MarkovSource generates words from a Markov chain.
type MarkovSource struct {
	Gen   *Generator
	Chain *Chain
	Count int
}

// Words returns a fresh word sequence. It may be shorter than Count when the
// walk reaches the end of the corpus.
func (s MarkovSource) Words() ([]string, error) {
	words := s.Gen.Markov(s.Chain, s.Count)
	if len(words) == 0 {
		return nil, fmt.Errorf("markov chain produced no words")
	}
	return words, nil
}
