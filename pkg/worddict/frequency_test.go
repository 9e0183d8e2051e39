package worddict

import (
	"strings"
	"testing"
)

func TestParseFrequencies(t *testing.T) {
	src := `; corpus counts
cat/50 -> cats,catlike
hat/30
bat
run/80 -> ran/95,running
`
	freq, err := ParseFrequencies(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseFrequencies failed: %v", err)
	}

	cases := []struct {
		word string
		want int
	}{
		{word: "cat", want: 50},
		{word: "cats", want: 50},    // inherits headword count
		{word: "catlike", want: 50}, // inherits headword count
		{word: "hat", want: 30},
		{word: "bat", want: 0}, // no count recorded
		{word: "ran", want: 95},
		{word: "running", want: 80},
	}
	for _, tc := range cases {
		if got := freq[tc.word]; got != tc.want {
			t.Errorf("freq[%q] = %d, want %d", tc.word, got, tc.want)
		}
	}
	if _, ok := freq["; corpus counts"]; ok {
		t.Errorf("comment line leaked into the frequency map")
	}
}

func TestParseFrequenciesKeepsHighestCount(t *testing.T) {
	src := "cat/10\ncat/50\n"
	freq, err := ParseFrequencies(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseFrequencies failed: %v", err)
	}
	if got := freq["cat"]; got != 50 {
		t.Fatalf("freq[cat] = %d, want 50", got)
	}
}

func TestParseFrequenciesBadCount(t *testing.T) {
	if _, err := ParseFrequencies(strings.NewReader("cat/many\n")); err == nil {
		t.Fatalf("expected error for non-numeric count")
	}
	if _, err := ParseFrequencies(strings.NewReader("cat/-3\n")); err == nil {
		t.Fatalf("expected error for negative count")
	}
}

func TestBlacklistRemove(t *testing.T) {
	bl, err := ParseBlacklist(strings.NewReader("# excluded\nslur\nabsent\n"))
	if err != nil {
		t.Fatalf("ParseBlacklist failed: %v", err)
	}

	dict := Dictionary{
		"slur": {"S L ER1"},
		"cat":  {"K AE1 T"},
	}
	if got, want := bl.Remove(dict), 1; got != want {
		t.Fatalf("Remove reported %d removals, want %d", got, want)
	}
	if _, ok := dict["slur"]; ok {
		t.Fatalf("blacklisted word still present")
	}
	if _, ok := dict["cat"]; !ok {
		t.Fatalf("unrelated word removed")
	}
}
