// Command rimebuild is the offline preprocessing step: it reads the
// raw pronunciation source, the usage-frequency list and an optional
// blacklist, builds the rhyme index and writes the persisted artifacts
// consumed by the rime command.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/verse-tools/rime/pkg/rhyme"
	"github.com/verse-tools/rime/pkg/worddict"
)

func main() {
	cmudictFlag := flag.String("cmudict", "cmudict.txt", "path to the pronunciation source")
	freqFlag := flag.String("freq", "", "path to the usage-frequency source (optional)")
	blacklistFlag := flag.String("blacklist", "", "path to the blacklist, one word per line (optional)")
	outFlag := flag.String("out", ".", "output directory for rhymes.gob and words.gob")
	flag.Parse()

	// Whole files in memory, one-shot batch: any read failure aborts
	// the build.
	cmudictPath, err := filepath.Abs(*cmudictFlag)
	if err != nil {
		log.Fatalf("resolve %s: %v", *cmudictFlag, err)
	}
	dict, err := worddict.LoadPaths(os.DirFS(filepath.Dir(cmudictPath)), filepath.Base(cmudictPath))
	if err != nil {
		log.Fatalf("load pronunciations: %v", err)
	}
	fmt.Printf("Loaded %d headwords from %s\n", len(dict), *cmudictFlag)

	freq := map[string]int{}
	if *freqFlag != "" {
		f, err := os.Open(*freqFlag)
		if err != nil {
			log.Fatalf("open frequency source: %v", err)
		}
		freq, err = worddict.ParseFrequencies(f)
		f.Close()
		if err != nil {
			log.Fatalf("parse frequency source: %v", err)
		}
		fmt.Printf("Loaded %d frequency entries from %s\n", len(freq), *freqFlag)
	}

	if *blacklistFlag != "" {
		f, err := os.Open(*blacklistFlag)
		if err != nil {
			log.Fatalf("open blacklist: %v", err)
		}
		bl, err := worddict.ParseBlacklist(f)
		f.Close()
		if err != nil {
			log.Fatalf("parse blacklist: %v", err)
		}
		removed := bl.Remove(dict)
		fmt.Printf("Blacklist removed %d entries\n", removed)
	}

	index, lex, stats, err := rhyme.Build(dict, freq)
	if err != nil {
		log.Fatalf("build rhyme index: %v", err)
	}
	fmt.Printf("Indexed %d pronunciations into %d signatures (%d single-word signatures pruned)\n",
		stats.Pronunciations, stats.Signatures, stats.Pruned)
	fmt.Printf("Runtime lexicon keeps %d of %d words\n", len(lex), stats.Words)

	if err := writeArtifact(filepath.Join(*outFlag, "rhymes.gob"), func(f *os.File) error {
		return rhyme.WriteIndex(f, index)
	}); err != nil {
		log.Fatalf("write rhyme index: %v", err)
	}
	if err := writeArtifact(filepath.Join(*outFlag, "words.gob"), func(f *os.File) error {
		return worddict.WriteLexicon(f, lex)
	}); err != nil {
		log.Fatalf("write lexicon: %v", err)
	}
	fmt.Printf("Wrote artifacts to %s\n", *outFlag)
}

func writeArtifact(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
