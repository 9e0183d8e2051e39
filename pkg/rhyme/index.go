// Package rhyme builds and serves the rhyme index: a mapping from
// rhyme-signature key to the sorted set of words whose pronunciation
// produces that signature. The index is built once offline and is
// read-only afterwards.
package rhyme

import (
	"encoding/gob"
	"fmt"
	"io"
	"sort"

	"github.com/verse-tools/rime/pkg/arpabet"
	"github.com/verse-tools/rime/pkg/worddict"
)

// Index maps a canonical signature key to the words sharing it.
// Buckets are persisted as sorted, deduplicated sequences, and every
// bucket holds at least two words: a signature with a single word
// identifies no rhyme pair and is pruned by Build.
type Index map[string][]string

// BuildStats summarizes an offline build for logging.
type BuildStats struct {
	Words          int // headwords in the input dictionary
	Pronunciations int // (word, pronunciation) pairs indexed
	Signatures     int // buckets kept after pruning
	Pruned         int // single-word buckets discarded
}

// Build computes the rhyme index from a pronunciation dictionary and
// returns it together with the frequency-annotated lexicon restricted
// to words that actually have rhymes. Words whose every signature
// bucket was pruned never need their pronunciations at runtime and are
// dropped from the lexicon entirely.
//
// A pronunciation without any stress digit aborts the build: the
// signature would be meaningless, and the input data needs fixing.
func Build(dict worddict.Dictionary, freq map[string]int) (Index, worddict.Lexicon, BuildStats, error) {
	var stats BuildStats
	stats.Words = len(dict)

	index := make(Index, len(dict))
	for word, prons := range dict {
		for _, raw := range prons {
			key, err := arpabet.SignatureKey(raw)
			if err != nil {
				return nil, nil, stats, fmt.Errorf("build index: word %q: %w", word, err)
			}
			index[key] = append(index[key], word)
			stats.Pronunciations++
		}
	}

	survivors := make(map[string]struct{}, len(dict))
	for key, words := range index {
		words = sortedUnique(words)
		if len(words) < 2 {
			delete(index, key)
			stats.Pruned++
			continue
		}
		index[key] = words
		for _, w := range words {
			survivors[w] = struct{}{}
		}
	}
	stats.Signatures = len(index)

	lex := make(worddict.Lexicon, len(survivors))
	for word := range survivors {
		lex[word] = worddict.Entry{
			Frequency:      freq[word],
			Pronunciations: dict[word],
		}
	}
	return index, lex, stats, nil
}

// sortedUnique sorts words lexicographically and collapses duplicates
// in place, for deterministic persisted output.
func sortedUnique(words []string) []string {
	sort.Strings(words)
	out := words[:0]
	for i, w := range words {
		if i > 0 && w == words[i-1] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// WriteIndex persists the index. It is written once by the offline
// build and read-only afterwards.
func WriteIndex(w io.Writer, index Index) error {
	if err := gob.NewEncoder(w).Encode(index); err != nil {
		return fmt.Errorf("encode rhyme index: %w", err)
	}
	return nil
}

// ReadIndex loads a persisted Index.
func ReadIndex(r io.Reader) (Index, error) {
	index := make(Index)
	if err := gob.NewDecoder(r).Decode(&index); err != nil {
		return nil, fmt.Errorf("decode rhyme index: %w", err)
	}
	return index, nil
}
