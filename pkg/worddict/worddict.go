// Package worddict loads, merges and persists the word dictionaries
// behind the rhyme index: the raw pronunciation source, the usage
// frequency list and the blacklist. It supports multiple input formats
// via pluggable Loader implementations and a generic line-based loader
// for textual sources.
package worddict

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Dictionary maps a headword to its raw pronunciations, each one a
// space-separated ARPAbet string. Heteronyms keep one entry per
// distinct pronunciation.
type Dictionary map[string][]string

// Entry is the runtime record for a word that survived the index
// build: its usage frequency (0 means unknown or rare) and its
// pronunciations.
type Entry struct {
	Frequency      int
	Pronunciations []string
}

// Lexicon is the frequency-annotated dictionary persisted by the
// offline build and read-only afterwards.
type Lexicon map[string]Entry

// NormalizeWord is the func used to normalize headwords and lookup
// input: lowercased, trimmed, diacritic marks removed after canonical
// decomposition so that "café" finds the entry "cafe".
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(removeDiacritics(s)))
}

// removeDiacritics returns a copy of s where all non-spacing marks
// (Unicode category Mn) have been removed after NFD decomposition.
func removeDiacritics(s string) string {
	decomposed := norm.NFD.String(s)

	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
