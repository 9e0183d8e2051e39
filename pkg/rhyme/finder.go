package rhyme

import (
	"sort"

	"golang.org/x/text/language"

	"github.com/verse-tools/rime/pkg/arpabet"
	"github.com/verse-tools/rime/pkg/worddict"
)

// dataset pairs an index with its lexicon for one language.
type dataset struct {
	index Index
	lex   worddict.Lexicon
}

// Finder answers rhyme lookups against prebuilt, read-only data. It is
// constructed once at process start and passed to every lookup call;
// there is no lazily-initialized global state, so substituting test
// data is just a matter of building another Finder.
type Finder struct {
	tags     []language.Tag
	datasets []dataset
	matcher  language.Matcher
}

// NewFinder builds a Finder serving index and lex as its American
// English data set. Further languages can be added with AddLanguage.
//
// Only English pronunciation data is shipped today: lookups in any
// unregistered language resolve to the first registered data set. That
// fallback is a stopgap, not a phonology claim; real support for a
// second language needs its own dictionary and index.
func NewFinder(index Index, lex worddict.Lexicon) *Finder {
	f := &Finder{}
	f.AddLanguage(language.AmericanEnglish, index, lex)
	return f
}

// AddLanguage registers a per-language data set. The first registered
// language is the fallback for unmatched tags.
func (f *Finder) AddLanguage(tag language.Tag, index Index, lex worddict.Lexicon) {
	f.tags = append(f.tags, tag)
	f.datasets = append(f.datasets, dataset{index: index, lex: lex})
	f.matcher = language.NewMatcher(f.tags)
}

// dataFor resolves the data set serving a language tag.
func (f *Finder) dataFor(lang language.Tag) dataset {
	_, i, _ := f.matcher.Match(lang)
	return f.datasets[i]
}

// RhymesOf returns every word sharing a rhyme signature with any
// pronunciation of word, deduplicated, sorted, and with word itself
// removed: a word never rhymes with itself in output. Unknown words
// and words without recorded rhymes yield an empty, non-nil slice.
func (f *Finder) RhymesOf(word string, lang language.Tag) ([]string, error) {
	word = worddict.NormalizeWord(word)
	d := f.dataFor(lang)

	keys, err := f.signatureKeys(word, d)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, key := range keys {
		for _, w := range d.index[key] {
			if w == word {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out, nil
}

// SignaturesOf returns the canonical signature keys of every
// pronunciation of word, or an empty slice for unknown words.
func (f *Finder) SignaturesOf(word string, lang language.Tag) ([]string, error) {
	word = worddict.NormalizeWord(word)
	return f.signatureKeys(word, f.dataFor(lang))
}

func (f *Finder) signatureKeys(word string, d dataset) ([]string, error) {
	entry, ok := d.lex[word]
	if !ok {
		return []string{}, nil
	}

	keys := make([]string, 0, len(entry.Pronunciations))
	for _, raw := range entry.Pronunciations {
		key, err := arpabet.SignatureKey(raw)
		if err != nil {
			// Persisted data was validated at build time; reaching this
			// means the artifacts are stale or corrupted.
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Frequency reports the usage frequency recorded for word, 0 when the
// word is unknown.
func (f *Finder) Frequency(word string, lang language.Tag) int {
	return f.dataFor(lang).lex[worddict.NormalizeWord(word)].Frequency
}

// SplitByFrequency partitions words into common and rare subsets. A
// recorded frequency of exactly zero occurrences means rare, as does
// absence from the lexicon. Input order is preserved.
func (f *Finder) SplitByFrequency(words []string, lang language.Tag) (common, rare []string) {
	d := f.dataFor(lang)
	common = []string{}
	rare = []string{}
	for _, w := range words {
		if d.lex[worddict.NormalizeWord(w)].Frequency > 0 {
			common = append(common, w)
		} else {
			rare = append(rare, w)
		}
	}
	return common, rare
}
