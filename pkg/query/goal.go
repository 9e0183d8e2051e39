// Package query maps user intents to result sets: each request names a
// goal, up to two input words, a language and a result cap, and gets
// back a typed result with a human-readable header and an outcome
// classification.
package query

// Goal is the closed set of lookup intents.
type Goal int

const (
	// GoalUnknown is the zero value; running it yields OutcomeBadGoal.
	GoalUnknown Goal = iota

	// GoalRhymes lists the words rhyming with the input word.
	GoalRhymes

	// GoalRelated lists the words the association service relates to
	// the input word.
	GoalRelated

	// GoalRelatedRhymeSets lists the pairs of words related to the
	// input word that rhyme with each other.
	GoalRelatedRhymeSets

	// GoalRhymePairs lists the rhyming pairs across the two input
	// words' related-word sets.
	GoalRhymePairs

	// GoalFilteredRhymes lists the rhymes of the first word that are
	// related to the second word.
	GoalFilteredRhymes
)

var goalNames = map[Goal]string{
	GoalRhymes:           "rhymes",
	GoalRelated:          "related",
	GoalRelatedRhymeSets: "related-rhyme-sets",
	GoalRhymePairs:       "rhyme-pairs",
	GoalFilteredRhymes:   "filtered-rhymes",
}

// ParseGoal resolves a goal name from the CLI or an HTTP form. ok is
// false for names outside the closed set.
func ParseGoal(s string) (Goal, bool) {
	for g, name := range goalNames {
		if name == s {
			return g, true
		}
	}
	return GoalUnknown, false
}

func (g Goal) String() string {
	if name, ok := goalNames[g]; ok {
		return name
	}
	return "unknown"
}

// Outcome classifies how a request ended.
type Outcome int

const (
	// OutcomeResults is a normal answer, possibly with zero entries.
	OutcomeResults Outcome = iota

	// OutcomeNoInput marks a vacuous request: both words blank. It is
	// not an error and carries no message.
	OutcomeNoInput

	// OutcomeBadGoal marks a request naming no valid goal.
	OutcomeBadGoal

	// OutcomeError marks a failed request, e.g. an association-service
	// outage. Result.Err carries the cause.
	OutcomeError
)

// Kind tags which result payload is populated.
type Kind int

const (
	// KindWords means Result.Words holds the payload.
	KindWords Kind = iota

	// KindPairs means Result.Pairs holds the payload.
	KindPairs
)

// Pair is one rhyming word pair.
type Pair struct {
	A string
	B string
}
