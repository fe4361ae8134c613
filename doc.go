// Package skim is a fuzzy string matcher: given a choice string (a
// candidate line) and a pattern string (a query), it decides whether every
// character of pattern occurs, in order but not necessarily contiguously,
// inside choice, and if so computes a score that ranks candidates by
// perceived quality.
//
// Two independent matchers are exported.
//
// SkimMatcher (V1) runs a single-pass dynamic program over the sparse grid
// of pattern/choice character coincidences. It finds every occurrence of
// each pattern character and propagates the best-scoring chain through
// them, rewarding matches at word heads, camelCase transitions and
// characters right after a separator, and penalizing the gap before the
// first match and the gaps between matched characters.
//
// SkimMatcherV2 runs a Gotoh-style sequence alignment with an affine gap
// penalty (opening a gap costs more than extending one already open),
// computed over two score matrices: M, the best alignment ending in a
// match, and P, the best alignment ending in a skipped choice character.
// When an element limit is set (WithElementLimit) and the matrices would
// exceed it, it falls back to SimpleMatch, a linear right-anchor scan that
// never allocates a matrix; by default there is no limit.
//
//	matcher := skim.NewSkimMatcherV2()
//	score, ok := matcher.FuzzyMatch("axbycz", "abc")
//	score, indices, ok := matcher.FuzzyIndices("axbycz", "abc")
//
// Both matchers are pure functions of their inputs and safe to call from
// any number of goroutines at once; SkimMatcherV2 reuses its score-matrix
// backing storage across calls via a pool private to each matcher value.
package skim
