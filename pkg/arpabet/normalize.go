package arpabet

import "strings"

// Normalize rewrites raw pronunciation text before tokenization.
//
// The source dictionary distinguishes the vowel of "beer" (IH before R)
// from the vowel of "bee" (IY), but speakers hear "ear"-type and
// "beer"-type words as rhyming. Every adjacent pair "IHx R" is
// therefore rewritten to "IYx R" at the same stress level. This is a
// deliberate, narrow correction for this dictionary, not a general
// phonology rule; no other symbols are altered.
func Normalize(raw string) string {
	for _, d := range [...]string{"0", "1", "2"} {
		raw = strings.ReplaceAll(raw, "IH"+d+" R", "IY"+d+" R")
	}
	return raw
}
