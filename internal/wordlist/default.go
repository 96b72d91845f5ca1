package wordlist

import (
	_ "embed"
	"strings"
)

//go:embed english_common.txt
var englishCommon string

// Default returns the built-in word list.
func Default() []string {
	return strings.Fields(englishCommon)
}
