package skim

import "github.com/go-skim/skim/internal/algo"

// ScoreConfig holds the tunable scoring constants used by SkimMatcherV2.
// Build one with DefaultScoreConfig and adjust individual fields.
type ScoreConfig = algo.ScoreConfig

// DefaultScoreConfig returns the scoring constants spec'd in the V2 match
// rule: a match is worth 16, a gap costs 3 to open plus 1 per skipped
// character, and bonuses reward word heads, camelCase transitions and
// matches right after a separator.
func DefaultScoreConfig() ScoreConfig {
	return algo.DefaultScoreConfig()
}
