package algo

// MatchingStatus is one sparse cell of the V1 DP: a candidate position in
// choice that could realize the pattern character for its row.
type MatchingStatus struct {
	Idx        int   // position in choice
	Score      int64 // base cell score (fuzzyScore)
	FinalScore int64 // best DP value into this cell
	AdjNum     int   // gap to the back-reference; 0 means adjacent
	BackRef    int   // column index in the previous row
}

// BuildGraph runs the two-phase sparse DP: phase one locates every
// case-policy occurrence of each pattern character in choice, phase two
// propagates the best-scoring chain through them. It returns nil if some
// pattern character has no occurrence in choice after the previous row's
// leftmost match.
func BuildGraph(choice, pattern []rune, caseSensitive bool) [][]MatchingStatus {
	rows := make([][]MatchingStatus, 0, len(pattern))
	matchStartIdx := 0

	for patIdx, patCh := range pattern {
		row := make([]MatchingStatus, 0)
		var choicePrevCh rune
		for idx, ch := range choice {
			if CharEqual(ch, patCh, caseSensitive) && idx >= matchStartIdx {
				score := fuzzyScore(ch, idx, choicePrevCh, patCh, patIdx)
				row = append(row, MatchingStatus{
					Idx:        idx,
					Score:      score,
					FinalScore: score,
					AdjNum:     1,
					BackRef:    0,
				})
			}
			choicePrevCh = ch
		}

		if len(row) == 0 {
			return nil
		}
		matchStartIdx = row[0].Idx + 1
		rows = append(rows, row)
	}

	for patIdx := 1; patIdx < len(rows); patIdx++ {
		prevRow := rows[patIdx-1]
		curRow := rows[patIdx]

		for idx := range curRow {
			next := curRow[idx]
			prev := MatchingStatus{AdjNum: 1} // zero default: idx 0, score 0, back_ref 0
			if idx > 0 {
				prev = curRow[idx-1]
			}

			scoreBeforeIdx := prev.FinalScore - prev.Score + next.Score
			scoreBeforeIdx += PenaltyUnmatched * int64(next.Idx-prev.Idx)
			if prev.AdjNum == 0 {
				scoreBeforeIdx -= BonusAdjacency
			}

			backRef, score, adjNum := prev.BackRef, scoreBeforeIdx, prev.AdjNum
			found := false
			for back, c := range prevRow {
				if c.Idx >= next.Idx {
					break
				}
				if c.Idx < prev.Idx {
					continue
				}
				adj := next.Idx - c.Idx - 1
				final := c.FinalScore + next.Score
				if adj == 0 {
					final += BonusAdjacency
				} else {
					final += PenaltyUnmatched * int64(adj)
				}
				// Mirrors Rust's Iterator::max_by_key, which keeps the
				// *last* element on ties.
				if !found || final >= score {
					backRef, score, adjNum = back, final, adj
					found = true
				}
			}

			if idx > 0 && score < scoreBeforeIdx {
				curRow[idx] = MatchingStatus{
					Idx:        next.Idx,
					Score:      next.Score,
					FinalScore: scoreBeforeIdx,
					AdjNum:     adjNum,
					BackRef:    prev.BackRef,
				}
			} else {
				curRow[idx] = MatchingStatus{
					Idx:        next.Idx,
					Score:      next.Score,
					FinalScore: score,
					AdjNum:     adjNum,
					BackRef:    backRef,
				}
			}
		}
	}

	return rows
}

// BestV1 returns the highest final score in the last row along with its
// column, the entry point for both FuzzyMatch and FuzzyIndices.
func BestV1(rows [][]MatchingStatus) (score int64, col int) {
	last := rows[len(rows)-1]
	bestCol := 0
	best := last[0].FinalScore
	for i := 1; i < len(last); i++ {
		// Mirrors Rust's Iterator::max_by_key, which keeps the *last*
		// element on ties.
		if last[i].FinalScore >= best {
			best, bestCol = last[i].FinalScore, i
		}
	}
	return best, bestCol
}

// TraceV1 walks back from (last row, col) following BackRef, collecting the
// matched choice indices in pattern order.
func TraceV1(rows [][]MatchingStatus, col int) []int {
	picked := make([]int, len(rows))
	nextCol := col
	for patIdx := len(rows) - 1; patIdx >= 0; patIdx-- {
		status := rows[patIdx][nextCol]
		picked[patIdx] = status.Idx
		nextCol = status.BackRef
	}
	return picked
}

// fuzzyScore computes the base cell score for matching choiceCh (at
// choiceIdx, preceded by choicePrevCh) against patCh at patIdx: a flat
// match bonus, a case-match or case-mismatch adjustment, word-role bonuses
// for heads/breaks/camelCase, and a capped penalty for characters skipped
// before the pattern's first match.
func fuzzyScore(choiceCh rune, choiceIdx int, choicePrevCh rune, patCh rune, patIdx int) int64 {
	score := BonusMatched

	choicePrevType := TypeOf(choicePrevCh)
	role := RoleOf(choicePrevType, TypeOf(choiceCh))

	if patCh == choiceCh {
		if unicodeIsUpper(patCh) {
			score += BonusUpperMatch
		} else {
			score += BonusCaseMatch
		}
	} else {
		score += PenaltyCaseUnmatched
	}

	if role == Head || role == Break || role == Camel {
		score += BonusCamel
	}

	if choicePrevType == HardSep || choicePrevType == SoftSep {
		score += BonusSeparator
	}

	if patIdx == 0 {
		leading := int64(choiceIdx) * PenaltyLeading
		if leading < PenaltyMaxLeading {
			leading = PenaltyMaxLeading
		}
		score += leading
	}

	return score
}
