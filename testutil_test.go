package skim

import "testing"

// matcher is the minimal surface both SkimMatcher and SkimMatcherV2 share,
// enough to drive the scenario and ordering tests below against either
// engine.
type matcher interface {
	FuzzyMatch(choice, pattern string) (ScoreType, bool)
	FuzzyIndices(choice, pattern string) (ScoreType, []IndexType, bool)
}

// wrapMatches brackets the matched characters of line, e.g.
// wrapMatches("axbycz", []int{0,2,4}) == "[a]x[b]y[c]z".
func wrapMatches(line string, indices []IndexType) string {
	runes := []rune(line)
	marked := make(map[int]bool, len(indices))
	for _, idx := range indices {
		marked[idx] = true
	}

	out := make([]rune, 0, len(runes)+2*len(indices))
	for i, r := range runes {
		if marked[i] {
			out = append(out, '[', r, ']')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}

func wrapFuzzyMatch(t *testing.T, m matcher, line, pattern string) string {
	t.Helper()
	_, indices, ok := m.FuzzyIndices(line, pattern)
	if !ok {
		t.Fatalf("FuzzyIndices(%q, %q): expected a match", line, pattern)
	}
	return wrapMatches(line, indices)
}

// assertOrder checks that choices is already sorted in score-descending
// order against pattern under m.
func assertOrder(t *testing.T, m matcher, pattern string, choices []string) {
	t.Helper()
	prevScore, havePrev := ScoreType(0), false
	for _, choice := range choices {
		score, ok := m.FuzzyMatch(choice, pattern)
		if !ok {
			t.Fatalf("FuzzyMatch(%q, %q): expected a match", choice, pattern)
		}
		if havePrev && score > prevScore {
			t.Errorf("expected order %v for pattern %q, but %q (%d) scored above its predecessor (%d)",
				choices, pattern, choice, score, prevScore)
		}
		prevScore, havePrev = score, true
	}
}

// assertIndices checks the exact FuzzyIndices result for one choice/pattern
// pair against a known-good index set.
func assertIndices(t *testing.T, m matcher, choice, pattern string, want []IndexType) {
	t.Helper()
	_, got, ok := m.FuzzyIndices(choice, pattern)
	if !ok {
		t.Fatalf("FuzzyIndices(%q, %q): expected a match", choice, pattern)
	}
	if len(got) != len(want) {
		t.Fatalf("FuzzyIndices(%q, %q) = %v, want %v", choice, pattern, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FuzzyIndices(%q, %q) = %v, want %v", choice, pattern, got, want)
		}
	}
}
