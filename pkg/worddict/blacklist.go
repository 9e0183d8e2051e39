package worddict

import (
	"bufio"
	"io"
	"strings"
)

// Blacklist is a set of words excluded from the dictionary before any
// index construction.
type Blacklist map[string]struct{}

// ParseBlacklist reads a plain list of words, one per line. Empty
// lines and "#" comments are ignored.
func ParseBlacklist(r io.Reader) (Blacklist, error) {
	bl := make(Blacklist)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bl[NormalizeWord(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return bl, nil
}

// Remove deletes every blacklisted word from dict and reports how many
// entries were removed. Removal happens once, before any signature
// computation.
func (bl Blacklist) Remove(dict Dictionary) int {
	removed := 0
	for word := range bl {
		if _, ok := dict[word]; ok {
			delete(dict, word)
			removed++
		}
	}
	return removed
}
