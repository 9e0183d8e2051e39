package worddict

import (
	"encoding/gob"
	"fmt"
	"io"
	"unicode/utf8"
)

// GobLoader handles gob-encoded Dictionary sources, typically the
// output of an earlier preprocessing run.
type GobLoader struct{}

// Kind reports the loader kind identifier for gob dictionaries.
func (g *GobLoader) Kind() Kind { return KindGOB }

// Sniff identifies gob payloads using binary heuristics: bytes that
// are not valid UTF-8, or that contain NULs, are very likely a gob
// payload rather than a text dictionary.
func (g *GobLoader) Sniff(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	if !utf8.Valid(sniff) {
		return true
	}
	for _, b := range sniff {
		if b == 0 {
			return true
		}
	}
	return false
}

// LoadAll deserializes a Dictionary.
func (g *GobLoader) LoadAll(r io.Reader) (Dictionary, error) {
	dict := make(Dictionary)
	err := gob.NewDecoder(r).Decode(&dict)
	return dict, err
}

// Load decodes a gob-encoded Dictionary and emits all entries.
func (g *GobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	dict, err := g.LoadAll(r)
	if err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	for w, prons := range dict {
		if len(prons) == 0 {
			continue
		}
		if err := emit(w, prons); err != nil {
			return err
		}
	}
	return nil
}

// WriteLexicon persists the frequency-annotated dictionary. It is
// written once by the offline build and read-only afterwards.
func WriteLexicon(w io.Writer, lex Lexicon) error {
	if err := gob.NewEncoder(w).Encode(lex); err != nil {
		return fmt.Errorf("encode lexicon: %w", err)
	}
	return nil
}

// ReadLexicon loads a persisted Lexicon.
func ReadLexicon(r io.Reader) (Lexicon, error) {
	lex := make(Lexicon)
	if err := gob.NewDecoder(r).Decode(&lex); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	return lex, nil
}
