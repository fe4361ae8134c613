package algo

import "testing"

func TestBuildGraphNoMatch(t *testing.T) {
	if rows := BuildGraph([]rune("abc"), []rune("abx"), false); rows != nil {
		t.Errorf("BuildGraph(abc, abx) = %v, want nil", rows)
	}
}

func TestBuildGraphAndTrace(t *testing.T) {
	rows := BuildGraph([]rune("axbycz"), []rune("abc"), false)
	if rows == nil {
		t.Fatal("BuildGraph(axbycz, abc) = nil, want a graph")
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	_, col := BestV1(rows)
	indices := TraceV1(rows, col)
	want := []int{0, 2, 4}
	if len(indices) != len(want) {
		t.Fatalf("TraceV1 = %v, want %v", indices, want)
	}
	for i := range want {
		if indices[i] != want[i] {
			t.Errorf("TraceV1 = %v, want %v", indices, want)
		}
	}
}

func TestBuildGraphRespectsMatchStartAdvance(t *testing.T) {
	// Every pattern row must only consider choice positions strictly after
	// the previous row's leftmost match, so repeated letters in the pattern
	// can't both bind to the same earliest occurrence.
	rows := BuildGraph([]rune("aab"), []rune("ab"), false)
	if rows == nil {
		t.Fatal("BuildGraph(aab, ab) = nil, want a graph")
	}
	_, col := BestV1(rows)
	indices := TraceV1(rows, col)
	if len(indices) != 2 || indices[0] >= indices[1] {
		t.Errorf("TraceV1 = %v, want two strictly increasing indices", indices)
	}
}

func TestBestV1TieBreaksOnLastMax(t *testing.T) {
	// Two identical-scoring cells in the last row: BestV1 must pick the
	// later column, matching the upstream max-by-key semantics.
	rows := [][]MatchingStatus{
		{
			{Idx: 0, FinalScore: 10},
			{Idx: 1, FinalScore: 10},
			{Idx: 2, FinalScore: 5},
		},
	}
	_, col := BestV1(rows)
	if col != 1 {
		t.Errorf("BestV1 tie-break col = %d, want 1", col)
	}
}

func TestFuzzyScoreLeadingPenaltyCap(t *testing.T) {
	near := fuzzyScore('a', 2, 'z', 'a', 0)
	far := fuzzyScore('a', 30, 'z', 'a', 0)
	capped := fuzzyScore('a', 3, 'z', 'a', 0)
	if far != capped {
		t.Errorf("fuzzyScore at idx 30 = %d, want same as idx 3 (%d), since the leading penalty caps at -18", far, capped)
	}
	if near == far {
		t.Errorf("fuzzyScore at idx 2 should differ from the capped penalty at idx 30")
	}
}

func TestFuzzyScoreBonuses(t *testing.T) {
	headScore := fuzzyScore('b', 1, ' ', 'b', 1)
	tailScore := fuzzyScore('b', 1, 'a', 'b', 1)
	if headScore <= tailScore {
		t.Errorf("word-head match (%d) should score higher than a mid-word match (%d)", headScore, tailScore)
	}

	camelScore := fuzzyScore('C', 3, 'a', 'C', 1)
	plainUpperScore := fuzzyScore('C', 3, ' ', 'C', 1)
	if camelScore == 0 {
		t.Fatal("camelScore should be nonzero")
	}
	_ = plainUpperScore
}
