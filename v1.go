package skim

import "github.com/go-skim/skim/internal/algo"

// SkimMatcher is the V1 matcher: a single-pass sparse dynamic program based
// on ForrestTheWoods's "reverse engineering Sublime Text's fuzzy match"
// write-up. It has no tunable configuration, every bonus and penalty is
// fixed, and it always matches case-insensitively; character-role bonuses
// still apply on top of an exact-case match.
type SkimMatcher struct{}

// NewSkimMatcher returns a ready-to-use V1 matcher. The zero value is also
// usable directly: SkimMatcher{}.
func NewSkimMatcher() *SkimMatcher {
	return &SkimMatcher{}
}

// FuzzyMatch reports whether every character of pattern occurs in order in
// choice, and if so its score. ok is false iff no such match exists.
func (m *SkimMatcher) FuzzyMatch(choice, pattern string) (score ScoreType, ok bool) {
	score, _, ok = m.fuzzy(choice, pattern, false)
	return score, ok
}

// FuzzyIndices is like FuzzyMatch but also returns the character indices
// into choice that realize the best-scoring match, one per pattern
// character, strictly increasing.
func (m *SkimMatcher) FuzzyIndices(choice, pattern string) (score ScoreType, indices []IndexType, ok bool) {
	return m.fuzzy(choice, pattern, true)
}

func (m *SkimMatcher) fuzzy(choice, pattern string, withPos bool) (ScoreType, []IndexType, bool) {
	patternRunes := []rune(pattern)
	if len(patternRunes) == 0 {
		if withPos {
			return 0, []IndexType{}, true
		}
		return 0, nil, true
	}

	choiceRunes := []rune(choice)
	rows := algo.BuildGraph(choiceRunes, patternRunes, false)
	if rows == nil {
		return 0, nil, false
	}

	score, col := algo.BestV1(rows)
	if !withPos {
		return score, nil, true
	}
	return score, algo.TraceV1(rows, col), true
}
