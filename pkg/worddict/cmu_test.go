package worddict

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleCMU = `;;; sample pronunciation data
CAT  K AE1 T
HAT  HH AE1 T
HOUSE  HH AW1 S
HOUSE(2)  HH AW1 Z
'BOUT  B AW1 T
!EXCLAMATION-POINT  EH2 K S K L AH0 M EY1 SH AH0 N P OY2 N T
"CLOSE-QUOTE  K L OW1 Z K W OW1 T
BEER  B IH1 R
`

func TestParseCMULine(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		wantWord string
		wantPron string
	}{
		{name: "plain entry", line: "CAT  K AE1 T", wantWord: "cat", wantPron: "K AE1 T"},
		{name: "variant suffix merged", line: "HOUSE(2)  HH AW1 Z", wantWord: "house", wantPron: "HH AW1 Z"},
		{name: "whitelisted apostrophe word", line: "'BOUT  B AW1 T", wantWord: "'bout", wantPron: "B AW1 T"},
		{name: "vowel variant merge applied", line: "BEER  B IH1 R", wantWord: "beer", wantPron: "B IY1 R"},
		{name: "comment skipped", line: ";;; header", wantWord: ""},
		{name: "punctuation entry skipped", line: "!EXCLAMATION-POINT  EH2 K S", wantWord: ""},
		{name: "non-whitelisted apostrophe skipped", line: "'ALLO  AA1 L OW0", wantWord: ""},
		{name: "blank line skipped", line: "   ", wantWord: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			word, prons, err := parseCMULine(tc.line)
			if err != nil {
				t.Fatalf("parseCMULine(%q) returned error: %v", tc.line, err)
			}
			if word != tc.wantWord {
				t.Fatalf("parseCMULine(%q) word = %q, want %q", tc.line, word, tc.wantWord)
			}
			if tc.wantWord == "" {
				return
			}
			if len(prons) != 1 || prons[0] != tc.wantPron {
				t.Fatalf("parseCMULine(%q) prons = %#v, want [%q]", tc.line, prons, tc.wantPron)
			}
		})
	}
}

func TestSniffCMU(t *testing.T) {
	if !sniffCMU([]byte(sampleCMU), true) {
		t.Fatalf("sniffCMU rejected valid pronunciation data")
	}
	if sniffCMU([]byte("cat/50 -> cats,catlike\n"), true) {
		t.Fatalf("sniffCMU accepted frequency data")
	}
	if sniffCMU(nil, true) {
		t.Fatalf("sniffCMU accepted empty input")
	}
}

func TestLoadPathsMergesAndDeduplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"dict-a.txt": {Data: []byte("CAT  K AE1 T\nHAT  HH AE1 T\n")},
		"dict-b.txt": {Data: []byte("CAT  K AE1 T\nBAT  B AE1 T\n")},
	}

	dict, err := LoadPaths(fsys, "dict-a.txt", "dict-b.txt")
	if err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}

	if len(dict) != 3 {
		t.Fatalf("expected 3 headwords, got %d (%#v)", len(dict), dict)
	}
	if got := dict["cat"]; len(got) != 1 || got[0] != "K AE1 T" {
		t.Fatalf("duplicate pronunciation not collapsed: %#v", got)
	}
}

func TestLoadPathsHeteronyms(t *testing.T) {
	fsys := fstest.MapFS{
		"dict.txt": {Data: []byte(sampleCMU)},
	}

	dict, err := LoadPaths(fsys, "dict.txt")
	if err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}

	house := dict["house"]
	if len(house) != 2 || house[0] != "HH AW1 S" || house[1] != "HH AW1 Z" {
		t.Fatalf("unexpected pronunciations for 'house': %#v", house)
	}
	if _, ok := dict["!exclamation-point"]; ok {
		t.Fatalf("punctuation pseudo-entry leaked into the dictionary")
	}
	if _, ok := dict["'bout"]; !ok {
		t.Fatalf("whitelisted apostrophe word missing")
	}
}

func TestLoadPathsDecodesLatin1(t *testing.T) {
	// "DÉJÀ" in ISO-8859-1: the accented bytes are not valid UTF-8 on
	// their own, but the decoder and NormalizeWord fold them to "deja".
	line := append([]byte{'D', 0xC9, 'J', 0xC0}, []byte("  D EY1 ZH AA1\n")...)
	fsys := fstest.MapFS{
		"dict.txt": {Data: append([]byte("CAT  K AE1 T\n"), line...)},
	}

	dict, err := LoadPaths(fsys, "dict.txt")
	if err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}
	if _, ok := dict["deja"]; !ok {
		t.Fatalf("latin-1 headword not decoded and folded: %#v", dict)
	}
}

func TestCMULoaderLoadAll(t *testing.T) {
	dict, err := newCMULoader().LoadAll(strings.NewReader(sampleCMU))
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if got := dict["beer"]; len(got) != 1 || got[0] != "B IY1 R" {
		t.Fatalf("vowel variant merge missing in LoadAll: %#v", got)
	}
}
