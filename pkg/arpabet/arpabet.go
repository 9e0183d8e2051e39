// Package arpabet represents ARPAbet pronunciations and derives the
// rhyme signature used as the lookup key by the rhyme index.
//
// A pronunciation is an ordered sequence of phoneme symbols. Vowel
// symbols carry a trailing stress digit (0 unstressed, 1 primary,
// 2 secondary); consonant symbols never do.
package arpabet

import "strings"

// Pronunciation is an ordered sequence of ARPAbet symbols, e.g.
// ["K", "AE1", "T"]. It is not mutated after parsing.
type Pronunciation []string

// Stress reports the stress digit of a symbol. ok is false for
// consonant symbols, which carry no digit.
func Stress(symbol string) (digit int, ok bool) {
	if symbol == "" {
		return 0, false
	}
	last := symbol[len(symbol)-1]
	if last < '0' || last > '2' {
		return 0, false
	}
	return int(last - '0'), true
}

// StripStress returns the symbol without its trailing stress digit.
// Consonant symbols are returned unchanged.
func StripStress(symbol string) string {
	if _, ok := Stress(symbol); ok {
		return symbol[:len(symbol)-1]
	}
	return symbol
}

// Parse normalizes a raw pronunciation string and splits it into
// symbols. The input is the phoneme part of a dictionary line,
// symbols separated by whitespace.
func Parse(raw string) Pronunciation {
	return Pronunciation(strings.Fields(Normalize(raw)))
}

// String joins the symbols back into their textual form.
func (p Pronunciation) String() string {
	return strings.Join(p, " ")
}
