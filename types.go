package skim

import "github.com/go-skim/skim/internal/algo"

// ScoreType is the ranking score returned alongside a match: higher is
// better. It's wide enough to hold score_match times the longest plausible
// choice plus every bonus/penalty without overflow.
type ScoreType = int64

// IndexType indexes characters (not bytes) of the choice string.
type IndexType = int

// CaseMatching selects how choice/pattern characters are compared. Select
// one with the RespectCase, IgnoreCase or SmartCase matcher options.
type CaseMatching = algo.CaseMatching
