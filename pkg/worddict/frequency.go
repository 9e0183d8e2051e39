package worddict

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseFrequencies reads the usage-frequency source:
//
//	word[/count] -> altform1,altform2,...
//	; comment
//
// and returns word -> count. A missing "/count" means 0 (unknown).
// Alternate forms inherit the headword's count: the corpus counts are
// recorded per lemma, and for rhyme ranking an inflected form is as
// common as its lemma.
func ParseFrequencies(r io.Reader) (map[string]int, error) {
	freq := make(map[string]int, 1<<15)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		head := line
		var alts string
		if i := strings.Index(line, "->"); i >= 0 {
			head = strings.TrimSpace(line[:i])
			alts = strings.TrimSpace(line[i+2:])
		}

		word, count, err := splitCount(head)
		if err != nil {
			return nil, fmt.Errorf("frequency line %q: %w", line, err)
		}
		if word == "" {
			continue
		}
		record(freq, word, count)

		if alts == "" {
			continue
		}
		for _, alt := range strings.Split(alts, ",") {
			// Alternate forms may carry their own count suffix.
			w, c, err := splitCount(strings.TrimSpace(alt))
			if err != nil {
				return nil, fmt.Errorf("frequency line %q: %w", line, err)
			}
			if w == "" {
				continue
			}
			if c == 0 {
				c = count
			}
			record(freq, w, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return freq, nil
}

// splitCount splits "word/123" into ("word", 123); a bare "word"
// yields count 0.
func splitCount(token string) (string, int, error) {
	word, countStr, found := strings.Cut(token, "/")
	word = NormalizeWord(word)
	if !found {
		return word, 0, nil
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return "", 0, fmt.Errorf("bad count %q: %w", countStr, err)
	}
	if count < 0 {
		return "", 0, fmt.Errorf("negative count %d", count)
	}
	return word, count, nil
}

// record keeps the highest count seen for a word; a form can appear
// both as a headword and as someone else's alternate.
func record(freq map[string]int, word string, count int) {
	if existing, ok := freq[word]; !ok || count > existing {
		freq[word] = count
	}
}
