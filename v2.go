package skim

import "github.com/go-skim/skim/internal/algo"

// SkimMatcherV2 is the Gotoh affine-gap matcher. Build one with
// NewSkimMatcherV2 and zero or more Options; the zero value is not ready to
// use on its own (it needs a non-zero ScoreConfig), so always go through
// the constructor.
type SkimMatcherV2 struct {
	scoreConfig  ScoreConfig
	elementLimit int
	caseMatching CaseMatching
	useCache     bool

	scratch algo.ScratchPool
}

// Option configures a SkimMatcherV2 at construction time.
type Option func(*SkimMatcherV2)

// WithScoreConfig overrides the default scoring constants.
func WithScoreConfig(cfg ScoreConfig) Option {
	return func(m *SkimMatcherV2) { m.scoreConfig = cfg }
}

// WithElementLimit sets the rows*cols cell count above which FuzzyMatch and
// FuzzyIndices bypass matrix construction and fall back to SimpleMatch. 0
// (the default) disables the limit.
func WithElementLimit(n int) Option {
	return func(m *SkimMatcherV2) { m.elementLimit = n }
}

// IgnoreCase makes every match case-insensitive (ASCII-folded).
func IgnoreCase() Option {
	return func(m *SkimMatcherV2) { m.caseMatching = algo.Ignore }
}

// SmartCase makes a match case-sensitive iff pattern contains an ASCII
// upper-case letter. This is the default.
func SmartCase() Option {
	return func(m *SkimMatcherV2) { m.caseMatching = algo.Smart }
}

// RespectCase makes every match case-sensitive.
func RespectCase() Option {
	return func(m *SkimMatcherV2) { m.caseMatching = algo.Respect }
}

// UseCache controls whether score-matrix backing storage is retained
// between calls. Default true: capacity grows to the high-water mark of
// inputs seen. false releases the backing storage at the end of every
// call instead of returning it to the pool.
func UseCache(enabled bool) Option {
	return func(m *SkimMatcherV2) { m.useCache = enabled }
}

// NewSkimMatcherV2 builds a V2 matcher with the given options applied over
// the defaults: DefaultScoreConfig, no element limit, SmartCase, caching
// enabled.
func NewSkimMatcherV2(opts ...Option) *SkimMatcherV2 {
	m := &SkimMatcherV2{
		scoreConfig:  DefaultScoreConfig(),
		elementLimit: 0,
		caseMatching: algo.Smart,
		useCache:     true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FuzzyMatch reports whether every character of pattern occurs in order in
// choice, and if so its score.
func (m *SkimMatcherV2) FuzzyMatch(choice, pattern string) (score ScoreType, ok bool) {
	score, _, ok = m.fuzzy(choice, pattern, false)
	return score, ok
}

// FuzzyIndices is like FuzzyMatch but also returns the character indices
// into choice realizing the best alignment, one per pattern character,
// strictly increasing.
func (m *SkimMatcherV2) FuzzyIndices(choice, pattern string) (score ScoreType, indices []IndexType, ok bool) {
	return m.fuzzy(choice, pattern, true)
}

// SimpleMatch runs the linear right-anchor fallback directly, bypassing
// matrix construction. It's also what FuzzyMatch and FuzzyIndices fall
// back to once rows*cols exceeds the configured element limit.
func (m *SkimMatcherV2) SimpleMatch(choice, pattern string, withPos bool) (score ScoreType, indices []IndexType, ok bool) {
	patternRunes := []rune(pattern)
	choiceRunes := []rune(choice)
	caseSensitive := algo.CaseSensitive(m.caseMatching, patternRunes)

	if !algo.CheapMatches(choiceRunes, patternRunes, caseSensitive) {
		return 0, nil, false
	}

	s, pos, ok := algo.SimpleMatch(choiceRunes, patternRunes, caseSensitive, withPos, m.scoreConfig)
	if !ok {
		return 0, nil, false
	}
	return s, pos, true
}

func (m *SkimMatcherV2) fuzzy(choice, pattern string, withPos bool) (ScoreType, []IndexType, bool) {
	patternRunes := []rune(pattern)
	if len(patternRunes) == 0 {
		if withPos {
			return 0, []IndexType{}, true
		}
		return 0, nil, true
	}

	choiceRunes := []rune(choice)
	caseSensitive := algo.CaseSensitive(m.caseMatching, patternRunes)

	if !algo.CheapMatches(choiceRunes, patternRunes, caseSensitive) {
		return 0, nil, false
	}

	compressed := !withPos
	cols := len(choiceRunes) + 1
	numPattern := len(patternRunes)
	rows := numPattern + 1
	if compressed {
		rows = 2
	}

	if m.elementLimit > 0 && rows*cols > m.elementLimit {
		s, pos, ok := algo.SimpleMatch(choiceRunes, patternRunes, caseSensitive, withPos, m.scoreConfig)
		if !ok {
			return 0, nil, false
		}
		return s, pos, true
	}

	scratch := m.scratch.Get()
	scratch.M.Resize(rows, cols)
	scratch.P.Resize(rows, cols)

	algo.BuildScoreMatrix(&scratch.M, &scratch.P, choiceRunes, patternRunes, compressed, caseSensitive, m.scoreConfig)
	score, col := algo.ArgmaxLastRow(&scratch.M, numPattern, compressed)

	var indices []IndexType
	if withPos {
		indices = algo.TracebackV2(&scratch.M, &scratch.P, numPattern, col)
	}

	if m.useCache {
		m.scratch.Put(scratch)
	}

	return int64(score), indices, true
}
