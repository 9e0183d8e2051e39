package rhyme

import (
	"context"
	"unicode"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
	"golang.org/x/text/language"
)

// Tagger annotates running text with rhyme-signature keys so that
// callers can detect rhyme schemes in verse: every word found in the
// lexicon gets a Fragment whose Transformed value is the canonical
// signature key of its first pronunciation. Words that are unknown, or
// that carry several pronunciations with distinct signatures, keep
// only that first reading; the Tagger is a sketching tool, not a
// scansion engine.
//
// It implements the textual Processor shape so that it can be chained
// with other textual.Result processors.
type Tagger struct {
	finder *Finder
	lang   language.Tag
}

// NewTagger constructs a Tagger over the given Finder's data.
func NewTagger(finder *Finder, lang language.Tag) *Tagger {
	return &Tagger{finder: finder, lang: lang}
}

// Apply annotates every incoming Parcel. The original text and any
// incoming fragment coordinates are preserved; rhyme tags are appended
// as new fragments.
func (t *Tagger) Apply(ctx context.Context, in <-chan textual.Result) <-chan textual.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan textual.Result)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				// Stop emitting results but drain upstream to avoid
				// blocking senders.
				for range in {
				}
				return
			case res, ok := <-in:
				if !ok {
					return
				}

				processed := t.processParcel(res)

				select {
				case <-ctx.Done():
					return
				case out <- processed:
				}
			}
		}
	}()

	return out
}

// processParcel appends one rhyme-tag fragment per recognized word.
func (t *Tagger) processParcel(res textual.Result) textual.Result {
	text := string(res.Text)
	if len(text) == 0 {
		return res
	}

	out := res
	out.Fragments = make([]textual.Fragment, len(res.Fragments), len(res.Fragments)+8)
	copy(out.Fragments, res.Fragments)

	for _, tok := range tokenizeWords(text) {
		keys, err := t.finder.SignaturesOf(tok.text, t.lang)
		if err != nil || len(keys) == 0 {
			continue
		}
		out.Fragments = append(out.Fragments, textual.Fragment{
			Pos:         tok.runeStart,
			Len:         tok.runeLen,
			Transformed: textual.UTF8String(keys[0]),
		})
	}
	return out
}

// wordToken is a word span in the original text, in rune offsets.
type wordToken struct {
	text      string
	runeStart int
	runeLen   int
}

// tokenizeWords splits text into word spans. Letters and apostrophes
// are word runes, everything else is a separator.
func tokenizeWords(text string) []wordToken {
	runes := []rune(text)
	n := len(runes)
	tokens := make([]wordToken, 0, n/4)

	inWord := false
	wordStart := 0

	for i, r := range runes {
		if isWordRune(r) {
			if !inWord {
				inWord = true
				wordStart = i
			}
			continue
		}
		if inWord {
			tokens = append(tokens, newWordToken(runes, wordStart, i))
			inWord = false
		}
	}
	if inWord {
		tokens = append(tokens, newWordToken(runes, wordStart, n))
	}
	return tokens
}

func newWordToken(runes []rune, start, end int) wordToken {
	return wordToken{
		text:      string(runes[start:end]),
		runeStart: start,
		runeLen:   end - start,
	}
}

func isWordRune(r rune) bool {
	if unicode.IsLetter(r) {
		return true
	}
	switch r {
	case '\'', '’':
		return true
	default:
		return false
	}
}
