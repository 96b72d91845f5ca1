// Package wordlist loads word lists and corpora from files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LoadWords reads whitespace-separated words from the provided file path,
// keeping those accepted by keep. A nil keep accepts every word.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	words, err := ReadWords(file, keep)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// ReadWords tokenizes r on whitespace.
func ReadWords(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		if keep != nil && !keep(word) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// LoadRuns reads a corpus from path and splits its tokens into runs at every
// token keep rejects, so tokens stay adjacent only where they were adjacent in
// the file. Empty runs are dropped.
func LoadRuns(path string, keep FilterFunc) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			_ = cerr
		}
	}()

	runs, err := ReadRuns(file, keep)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return runs, nil
}

// ReadRuns tokenizes r on whitespace, starting a new run after each rejected
// token.
func ReadRuns(r io.Reader, keep FilterFunc) ([][]string, error) {
	var runs [][]string
	var current []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		if keep != nil && !keep(word) {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs, nil
}
