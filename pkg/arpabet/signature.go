package arpabet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoStress reports a pronunciation without a single stress digit.
// Valid phonetic data always carries at least one vowel, so this is a
// precondition violation: the caller must fail rather than fall back
// to an empty signature.
var ErrNoStress = errors.New("arpabet: pronunciation carries no stress digit")

// Signature computes the rhyme signature of a pronunciation: the
// suffix running from the most-stressed vowel to the end of the word,
// with stress digits stripped from every kept symbol.
//
// Three tiers are tried strictly in order, each one a full backward
// scan of its own:
//
//  1. stop at the last symbol with primary stress (digit 1);
//  2. failing that, stop at the last symbol with secondary stress (2);
//  3. failing that, stop at the last unstressed vowel (0), i.e. the
//     final syllable's vowel plus any trailing consonants.
//
// Stripping the digits is what lets two words with different stress
// levels on the matching vowel count as rhymes.
func Signature(p Pronunciation) (Pronunciation, error) {
	for _, digit := range [...]int{1, 2, 0} {
		if sig, ok := suffixFrom(p, digit); ok {
			return sig, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoStress, p.String())
}

// suffixFrom scans p from the end and, at the last symbol whose stress
// digit equals the wanted one, returns the stripped suffix from that
// symbol through the end of the word.
func suffixFrom(p Pronunciation, digit int) (Pronunciation, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		d, ok := Stress(p[i])
		if !ok || d != digit {
			continue
		}
		sig := make(Pronunciation, 0, len(p)-i)
		for _, symbol := range p[i:] {
			sig = append(sig, StripStress(symbol))
		}
		return sig, true
	}
	return nil, false
}

// Key renders a signature in its canonical form, symbols joined by a
// single space, for use as a mapping key.
func Key(sig Pronunciation) string {
	return strings.Join(sig, " ")
}

// SignatureKey is the common Parse/Signature/Key composition for one
// raw pronunciation string.
func SignatureKey(raw string) (string, error) {
	sig, err := Signature(Parse(raw))
	if err != nil {
		return "", err
	}
	return Key(sig), nil
}
