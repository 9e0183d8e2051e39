// Command rime answers rhyme and word-association lookups against the
// artifacts produced by rimebuild.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/text/language"

	"github.com/verse-tools/rime/pkg/query"
	"github.com/verse-tools/rime/pkg/related"
	"github.com/verse-tools/rime/pkg/rhyme"
	"github.com/verse-tools/rime/pkg/worddict"
)

func main() {
	dataFlag := flag.String("data", ".", "directory holding rhymes.gob and words.gob")
	wordFlag := flag.String("word", "", "first input word")
	word2Flag := flag.String("word2", "", "second input word")
	goalFlag := flag.String("goal", "rhymes", "one of: rhymes, related, related-rhyme-sets, rhyme-pairs, filtered-rhymes")
	langFlag := flag.String("lang", "en-US", "BCP 47 language tag")
	maxFlag := flag.Int("max", 50, "result cap")
	apiFlag := flag.String("api", "", "word-association API base URL (default production endpoint)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	finder, err := loadFinder(*dataFlag)
	if err != nil {
		log.Fatalf("%v\nRebuild the dictionary first: rimebuild -cmudict <file> -out %s", err, *dataFlag)
	}

	goal, ok := query.ParseGoal(*goalFlag)
	if !ok {
		log.Fatalf("invalid goal %q; valid goals: rhymes, related, related-rhyme-sets, rhyme-pairs, filtered-rhymes", *goalFlag)
	}

	lang, err := language.Parse(*langFlag)
	if err != nil {
		log.Fatalf("invalid language tag %q: %v", *langFlag, err)
	}

	engine := query.NewEngine(finder, related.NewClient(*apiFlag))
	res := engine.Run(ctx, query.Request{
		WordA: *wordFlag,
		WordB: *word2Flag,
		Goal:  goal,
		Lang:  lang,
		Max:   *maxFlag,
	})

	switch res.Outcome {
	case query.OutcomeNoInput:
		// Both words blank: nothing to look up, nothing to print.
		return
	case query.OutcomeBadGoal:
		log.Fatalf("%s", res.Header)
	case query.OutcomeError:
		log.Fatalf("lookup failed: %v", res.Err)
	}

	fmt.Println(res.Header)
	switch res.Kind {
	case query.KindWords:
		if len(res.Words) == 0 {
			fmt.Println("  (none)")
			return
		}
		_, rare := finder.SplitByFrequency(res.Words, lang)
		rareSet := make(map[string]struct{}, len(rare))
		for _, w := range rare {
			rareSet[w] = struct{}{}
		}
		for _, w := range res.Words {
			if _, isRare := rareSet[w]; isRare {
				fmt.Printf("  %s (rare)\n", w)
			} else {
				fmt.Printf("  %s\n", w)
			}
		}
	case query.KindPairs:
		if len(res.Pairs) == 0 {
			fmt.Println("  (none)")
			return
		}
		for _, p := range res.Pairs {
			fmt.Printf("  %s / %s\n", p.A, p.B)
		}
	}
}

// loadFinder opens both persisted artifacts. A missing file is a
// startup error: the service cannot operate without its precomputed
// index.
func loadFinder(dir string) (*rhyme.Finder, error) {
	indexFile, err := os.Open(filepath.Join(dir, "rhymes.gob"))
	if err != nil {
		return nil, fmt.Errorf("open rhyme index: %w", err)
	}
	defer indexFile.Close()
	index, err := rhyme.ReadIndex(indexFile)
	if err != nil {
		return nil, err
	}

	lexFile, err := os.Open(filepath.Join(dir, "words.gob"))
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer lexFile.Close()
	lex, err := worddict.ReadLexicon(lexFile)
	if err != nil {
		return nil, err
	}

	return rhyme.NewFinder(index, lex), nil
}
