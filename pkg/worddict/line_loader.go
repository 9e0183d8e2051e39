package worddict

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewLineLoader constructs a Loader that reads a text source line by
// line and delegates actual parsing to the provided LineParser. When
// enc is non-nil, the source bytes are decoded to UTF-8 through it
// before scanning (the pronunciation source ships as ISO-8859-1).
func NewLineLoader(
	kind Kind,
	enc encoding.Encoding,
	sniff func(sniff []byte, isEOF bool) bool,
	parser LineParser,
) Loader {
	return &lineLoader{
		kind:      kind,
		enc:       enc,
		sniffFunc: sniff,
		parseLine: parser,
	}
}

// LineParser is a per-line parser for text-based formats.
//
// It receives a single logical line and should return the headword and
// its pronunciations. If the line should be ignored, it can return
// word == "" or len(prons) == 0.
type LineParser func(line string) (word string, prons []string, err error)

// lineLoader is a generic implementation for textual formats where
// each entry fits on a single line.
type lineLoader struct {
	kind      Kind
	enc       encoding.Encoding
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine LineParser
}

func (l *lineLoader) Kind() Kind { return l.kind }

func (l *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if l.sniffFunc == nil {
		return false
	}
	return l.sniffFunc(sniff, isEOF)
}

func (l *lineLoader) LoadAll(r io.Reader) (Dictionary, error) {
	dict := make(Dictionary)
	err := l.Load(r, func(word string, prons []string) error {
		dict[word] = append(dict[word], prons...)
		return nil
	})
	return dict, err
}

func (l *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	if l.enc != nil {
		r = transform.NewReader(r, l.enc.NewDecoder())
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		word, prons, err := l.parseLine(line)
		if err != nil {
			return fmt.Errorf("(%s): parse line %q: %w", l.kind, line, err)
		}
		if word == "" || len(prons) == 0 {
			continue
		}
		if err := emit(word, prons); err != nil {
			return err
		}
	}
	return scanner.Err()
}
