package query

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/language"

	"github.com/verse-tools/rime/pkg/related"
	"github.com/verse-tools/rime/pkg/rhyme"
	"github.com/verse-tools/rime/pkg/worddict"
)

// Request is one lookup intent. WordA and WordB are both optional;
// which ones a goal needs is documented on the Goal constants.
type Request struct {
	WordA string
	WordB string
	Goal  Goal
	Lang  language.Tag
	Max   int
}

// Result is the typed answer to a Request. Words and Pairs are always
// non-nil for their Kind; absence of results is an empty slice, never
// nil.
type Result struct {
	Outcome Outcome
	Kind    Kind
	Header  string
	Words   []string
	Pairs   []Pair
	Err     error
}

// Engine dispatches requests against the rhyme finder and the
// word-association client. It holds only read-only collaborators and
// is safe for concurrent use.
type Engine struct {
	finder *rhyme.Finder
	client *related.Client
}

// NewEngine builds an Engine over its two collaborators.
func NewEngine(finder *rhyme.Finder, client *related.Client) *Engine {
	return &Engine{finder: finder, client: client}
}

// Run executes one request. The goal switch is exhaustive over the
// closed Goal set; anything else is classified as a bad goal, and a
// request with both words blank is vacuous rather than erroneous.
func (e *Engine) Run(ctx context.Context, req Request) Result {
	a := worddict.NormalizeWord(req.WordA)
	b := worddict.NormalizeWord(req.WordB)
	if a == "" && b == "" {
		return Result{Outcome: OutcomeNoInput, Words: []string{}, Pairs: []Pair{}}
	}
	if a == "" {
		// Single-word goals accept either slot.
		a, b = b, ""
	}

	switch req.Goal {
	case GoalRhymes:
		words, err := e.finder.RhymesOf(a, req.Lang)
		if err != nil {
			return errorResult(err)
		}
		return e.wordsResult(fmt.Sprintf("words that rhyme with %q", a), words, req)

	case GoalRelated:
		words, err := e.client.Related(ctx, a, req.Max)
		if err != nil {
			return errorResult(err)
		}
		return e.wordsResult(fmt.Sprintf("words related to %q", a), words, req)

	case GoalRelatedRhymeSets:
		rel, err := e.client.Related(ctx, a, req.Max)
		if err != nil {
			return errorResult(err)
		}
		pairs, err := e.rhymingPairs(rel, rel, req.Lang, true)
		if err != nil {
			return errorResult(err)
		}
		return e.pairsResult(fmt.Sprintf("rhyming pairs among words related to %q", a), pairs, req)

	case GoalRhymePairs:
		relA, err := e.client.Related(ctx, a, req.Max)
		if err != nil {
			return errorResult(err)
		}
		relB, err := e.relatedTo(ctx, b, req.Max)
		if err != nil {
			return errorResult(err)
		}
		pairs, err := e.rhymingPairs(relA, relB, req.Lang, false)
		if err != nil {
			return errorResult(err)
		}
		return e.pairsResult(fmt.Sprintf("rhyming pairs across words related to %q and %q", a, b), pairs, req)

	case GoalFilteredRhymes:
		rhymes, err := e.finder.RhymesOf(a, req.Lang)
		if err != nil {
			return errorResult(err)
		}
		relB, err := e.relatedTo(ctx, b, req.Max)
		if err != nil {
			return errorResult(err)
		}
		words := intersect(rhymes, relB)
		return e.wordsResult(fmt.Sprintf("rhymes of %q related to %q", a, b), words, req)

	default:
		return Result{
			Outcome: OutcomeBadGoal,
			Header:  fmt.Sprintf("unknown goal %q", req.Goal),
			Words:   []string{},
			Pairs:   []Pair{},
		}
	}
}

// relatedTo fetches the related-word set for word, degrading a blank
// second word to an empty set instead of a spurious API call.
func (e *Engine) relatedTo(ctx context.Context, word string, max int) ([]string, error) {
	if word == "" {
		return []string{}, nil
	}
	return e.client.Related(ctx, word, max)
}

// rhymingPairs pairs every left word with every right word sharing a
// rhyme signature. Words absent from the dictionary have no signature
// and never pair. For sameList the pairing is order-insensitive, so
// each pair is reported once with A < B.
func (e *Engine) rhymingPairs(left, right []string, lang language.Tag, sameList bool) ([]Pair, error) {
	byKey := make(map[string][]string)
	for _, w := range dedupe(right) {
		keys, err := e.finder.SignaturesOf(w, lang)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			byKey[key] = append(byKey[key], w)
		}
	}

	seen := make(map[Pair]struct{})
	pairs := []Pair{}
	for _, x := range dedupe(left) {
		keys, err := e.finder.SignaturesOf(x, lang)
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			for _, y := range byKey[key] {
				if x == y {
					continue
				}
				p := Pair{A: x, B: y}
				if sameList && p.B < p.A {
					p = Pair{A: y, B: x}
				}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				pairs = append(pairs, p)
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A == pairs[j].A {
			return pairs[i].B < pairs[j].B
		}
		return pairs[i].A < pairs[j].A
	})
	return pairs, nil
}

func (e *Engine) wordsResult(header string, words []string, req Request) Result {
	words = dedupe(words)
	if req.Max > 0 && len(words) > req.Max {
		words = words[:req.Max]
	}
	return Result{
		Outcome: OutcomeResults,
		Kind:    KindWords,
		Header:  header,
		Words:   words,
		Pairs:   []Pair{},
	}
}

func (e *Engine) pairsResult(header string, pairs []Pair, req Request) Result {
	if req.Max > 0 && len(pairs) > req.Max {
		pairs = pairs[:req.Max]
	}
	return Result{
		Outcome: OutcomeResults,
		Kind:    KindPairs,
		Header:  header,
		Words:   []string{},
		Pairs:   pairs,
	}
}

func errorResult(err error) Result {
	return Result{
		Outcome: OutcomeError,
		Err:     err,
		Words:   []string{},
		Pairs:   []Pair{},
	}
}

// dedupe collapses duplicates preserving first occurrence order.
func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := []string{}
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// intersect keeps the words of a that are present in b, preserving a's
// order.
func intersect(a, b []string) []string {
	set := make(map[string]struct{}, len(b))
	for _, w := range b {
		set[w] = struct{}{}
	}
	out := []string{}
	for _, w := range a {
		if _, ok := set[w]; ok {
			out = append(out, w)
		}
	}
	return out
}
