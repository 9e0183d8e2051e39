package worddict

import (
	"bytes"
	"encoding/gob"
	"testing"
	"testing/fstest"
)

func TestLoadPathsReadsGobDictionary(t *testing.T) {
	src := Dictionary{
		"cat": {"K AE1 T"},
		"hat": {"HH AE1 T"},
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(src); err != nil {
		t.Fatalf("encode: %v", err)
	}

	fsys := fstest.MapFS{
		"dict.gob": {Data: buf.Bytes()},
	}
	dict, err := LoadPaths(fsys, "dict.gob")
	if err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}
	if len(dict) != 2 {
		t.Fatalf("expected 2 headwords, got %d", len(dict))
	}
	if got := dict["cat"]; len(got) != 1 || got[0] != "K AE1 T" {
		t.Fatalf("unexpected entry for 'cat': %#v", got)
	}
}

func TestLexiconRoundTrip(t *testing.T) {
	lex := Lexicon{
		"cat": {Frequency: 50, Pronunciations: []string{"K AE1 T"}},
		"bat": {Frequency: 0, Pronunciations: []string{"B AE1 T"}},
	}

	var buf bytes.Buffer
	if err := WriteLexicon(&buf, lex); err != nil {
		t.Fatalf("WriteLexicon failed: %v", err)
	}
	got, err := ReadLexicon(&buf)
	if err != nil {
		t.Fatalf("ReadLexicon failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if e := got["cat"]; e.Frequency != 50 || len(e.Pronunciations) != 1 {
		t.Fatalf("unexpected entry for 'cat': %#v", e)
	}
}

func TestNormalizeWord(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "  CAT ", want: "cat"},
		{in: "café", want: "cafe"},
		{in: "Déjà", want: "deja"},
	}
	for _, tc := range cases {
		if got := NormalizeWord(tc.in); got != tc.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
