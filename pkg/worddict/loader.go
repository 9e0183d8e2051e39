package worddict

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

func init() {
	// Built-in loaders, ordered from most specific to most generic.
	builtinLoaders = []Loader{
		newCMULoader(),
		&GobLoader{},
	}

	// Fall back to the pronunciation text format when sniffing is
	// inconclusive.
	defaultLoader = builtinLoaders[0]
}

// OnEntryFunc is called by a Loader for each dictionary entry
// (headword, pronunciations).
type OnEntryFunc func(word string, prons []string) error

// Loader parses a dictionary source (file or bytes) and emits
// (headword, pronunciations) entries through the provided callback.
type Loader interface {
	// Kind returns a short identifier for the loader.
	Kind() Kind

	// Sniff inspects a prefix of the input (sniff) and decides whether
	// this loader is appropriate for the source.
	//
	// - sniff: initial bytes of the source (up to a few KB).
	// - isEOF: true if sniff contains the full source.
	Sniff(sniff []byte, isEOF bool) bool

	// Load parses the entire source from r and calls emit for each entry.
	Load(r io.Reader, emit OnEntryFunc) error

	// LoadAll loads the entire source into memory. May be more efficient
	// for pure loaders like GOB.
	LoadAll(r io.Reader) (Dictionary, error)
}

// Kind identifies the "type" of loader used. It is mostly
// informational but can be useful for debugging.
type Kind string

const (
	// KindGOB identifies a gob-encoded Dictionary, used to serialize
	// preprocessed dictionaries natively in Go.
	KindGOB Kind = "dict_gob"

	// KindCMUTxt identifies the line-oriented pronunciation text format:
	//   WORD  PH1 PH2 ...
	// with ";;;" comments and "(2)"-style variant suffixes.
	KindCMUTxt Kind = "cmu_txt"
)

// sniffLen defines the size of the block used to sniff the type.
const sniffLen = 4 * 1024 // a few kilobytes, like http.DetectContentType

var (
	builtinLoaders []Loader
	defaultLoader  Loader
)

// selectLoader chooses the first loader whose Sniff method returns
// true. If none match, it falls back to defaultLoader.
func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, l := range builtinLoaders {
		if l.Sniff(sniff, isEOF) {
			return l
		}
	}
	return defaultLoader
}

// LoadPaths loads and merges dictionaries from a sequence of file
// paths. Duplicate (word, pronunciation) pairs across sources are
// collapsed; the order of paths and of pronunciations is respected.
func LoadPaths(fsys fs.FS, paths ...string) (Dictionary, error) {
	dict := make(Dictionary, 1<<16)
	seen := make(map[string]struct{}, 1<<17)

	for _, p := range paths {
		path := strings.TrimSpace(p)
		if path == "" {
			continue
		}
		if err := loadFromFile(fsys, dict, seen, path); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

// loadFromFile opens a file, sniffs its format and runs the matching loader.
func loadFromFile(fsys fs.FS, dict Dictionary, seen map[string]struct{}, path string) error {
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(f, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return fmt.Errorf("sniff %s: %w", path, readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	l := selectLoader(buf, isEOF)
	reader := io.MultiReader(bytes.NewReader(buf), f)
	return runLoader(l, reader, dict, seen)
}

// runLoader executes a loader, normalizing headwords and collapsing
// duplicate (word, pronunciation) pairs across all sources.
func runLoader(l Loader, r io.Reader, dict Dictionary, seen map[string]struct{}) error {
	emit := func(word string, prons []string) error {
		word = NormalizeWord(word)
		if word == "" || len(prons) == 0 {
			return nil
		}
		baseKey := word + "\x00"

		for _, p := range prons {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			key := baseKey + p
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			dict[word] = append(dict[word], p)
		}
		return nil
	}

	if err := l.Load(r, emit); err != nil {
		return fmt.Errorf("load (%s): %w", l.Kind(), err)
	}
	return nil
}
