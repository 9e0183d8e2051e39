package worddict

import (
	"bufio"
	"bytes"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/verse-tools/rime/pkg/arpabet"
)

// apostropheWords is the curated whitelist of apostrophe-initial
// headwords that are kept even though their first rune is not a
// letter. Everything else starting with a non-letter (punctuation
// pseudo-entries and the like) is dropped.
var apostropheWords = map[string]struct{}{
	"'bout":   {},
	"'cause":  {},
	"'course": {},
	"'cuse":   {},
	"'em":     {},
	"'frisco": {},
	"'gain":   {},
	"'kay":    {},
	"'round":  {},
	"'til":    {},
	"'tis":    {},
	"'twas":   {},
}

// newCMULoader builds the loader for the line-oriented pronunciation
// text format:
//
//	WORD  PH1 PH2 ...
//	WORD(2)  PH1 PH2 ...
//	;;; comment
//
// The upstream file is ISO-8859-1 encoded, so the loader decodes it
// to UTF-8 before scanning.
func newCMULoader() Loader {
	return NewLineLoader(
		KindCMUTxt,
		charmap.ISO8859_1,
		sniffCMU,
		parseCMULine,
	)
}

// sniffCMU detects the pronunciation text format by checking that the
// first few data lines consist of a headword followed by ARPAbet
// symbols.
func sniffCMU(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	scanner := bufio.NewScanner(bytes.NewReader(sniff))

	validLines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return false
		}
		for _, f := range fields[1:] {
			if !isARPAbetSymbol(f) {
				return false
			}
		}
		validLines++
		if validLines >= 3 {
			break
		}
	}
	return validLines > 0
}

// isARPAbetSymbol reports whether f looks like an ARPAbet phoneme:
// one to three uppercase letters with an optional stress digit.
func isARPAbetSymbol(f string) bool {
	if _, ok := arpabet.Stress(f); ok {
		f = arpabet.StripStress(f)
	}
	if len(f) == 0 || len(f) > 3 {
		return false
	}
	for i := 0; i < len(f); i++ {
		if f[i] < 'A' || f[i] > 'Z' {
			return false
		}
	}
	return true
}

// parseCMULine parses a single line of the pronunciation text format.
// Comments, punctuation pseudo-entries and malformed lines yield
// word == "" and are skipped by the loader. The vowel-variant merge
// (arpabet.Normalize) is applied to the raw phoneme text here, before
// any tokenization or signature computation downstream.
func parseCMULine(line string) (string, []string, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", nil, nil
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, nil
	}

	word, ok := headword(fields[0])
	if !ok {
		return "", nil, nil
	}

	pron := arpabet.Normalize(strings.Join(fields[1:], " "))
	return word, []string{pron}, nil
}

// headword normalizes a raw headword token: the "(2)"-style variant
// suffix is dropped so that heteronyms merge under one entry, and
// non-letter-initial tokens are rejected unless whitelisted.
func headword(raw string) (string, bool) {
	word := NormalizeWord(trimVariant(raw))
	if word == "" {
		return "", false
	}

	first := word[0]
	if first >= 'a' && first <= 'z' {
		return word, true
	}
	if _, ok := apostropheWords[word]; ok {
		return word, true
	}
	return "", false
}

// trimVariant strips a trailing parenthesized variant index, e.g.
// "HOUSE(2)" -> "HOUSE".
func trimVariant(raw string) string {
	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return raw
	}
	return raw[:open]
}
