package algo

// SimpleMatch is the large-input fallback: two linear passes locate the
// right-anchored occurrence of pattern in choice, then score that window
// once, left to right. It never builds a matrix, so it's the escape hatch
// V2 reaches for when rows*cols exceeds the configured element limit.
func SimpleMatch(choice, pattern []rune, caseSensitive, withPos bool, cfg ScoreConfig) (score int64, pos []int, ok bool) {
	if len(pattern) == 0 {
		if withPos {
			return 0, []int{}, true
		}
		return 0, nil, true
	}

	startIdx, endIdx, startChars, matched := simpleForward(choice, pattern, caseSensitive)
	if !matched {
		return 0, nil, false
	}
	anchoredStart := simpleBackward(choice, pattern, startIdx, endIdx, caseSensitive)
	score, pos = scoreWindow(choice, pattern, anchoredStart, endIdx, startChars+(anchoredStart-startIdx), caseSensitive, withPos, cfg)
	return score, pos, true
}

// simpleForward greedily consumes pattern while scanning choice
// left-to-right, recording where the first matched character landed
// (startIdx), how many unmatched choice characters preceded it
// (startChars), and the index just past the last consumed character
// (endIdx).
func simpleForward(choice, pattern []rune, caseSensitive bool) (startIdx, endIdx, startChars int, ok bool) {
	startIdx = -1
	patIdx := 0
	lastMatched := -1

	for idx := 0; idx < len(choice); idx++ {
		if patIdx >= len(pattern) {
			break
		}
		if CharEqual(choice[idx], pattern[patIdx], caseSensitive) {
			patIdx++
			if startIdx < 0 {
				startIdx = idx
			}
			lastMatched = idx
		}
		if startIdx < 0 {
			startChars++
		}
	}

	if patIdx != len(pattern) {
		return 0, 0, 0, false
	}
	return startIdx, lastMatched + 1, startChars, true
}

// simpleBackward walks choice[startIdx:endIdx] right-to-left consuming
// pattern in reverse, right-anchoring the match window as tightly as
// possible (e.g. "xxyz" vs "xyz" anchors on the 'x' at index 1, not the 'x'
// at index 0 that the forward pass matched first).
func simpleBackward(choice, pattern []rune, startIdx, endIdx int, caseSensitive bool) int {
	nearest := startIdx
	revIdx := len(pattern) - 1
	for idx := endIdx - 1; idx >= startIdx; idx-- {
		if revIdx < 0 {
			break
		}
		if CharEqual(choice[idx], pattern[revIdx], caseSensitive) {
			revIdx--
			nearest = idx
		}
	}
	return nearest
}

// scoreWindow scores choice[startIdx:endIdx] against pattern once, left to
// right. The character preceding the window is treated as the Empty
// sentinel rather than the real previous choice character (we don't have
// it without rescanning, and neither does the original).
func scoreWindow(choice, pattern []rune, startIdx, endIdx, startChars int, caseSensitive, withPos bool, cfg ScoreConfig) (int64, []int) {
	var pos []int
	if withPos {
		pos = make([]int, 0, len(pattern))
	}

	var prevCh rune
	patIdx := 0
	var total int64
	inGap := false
	var consecutive int64

	for cIdx := startIdx; cIdx < endIdx; cIdx++ {
		if patIdx >= len(pattern) {
			break
		}
		c := choice[cIdx]
		globalIdx := (cIdx - startIdx) + startChars

		if matchScore, ok := CalculateMatchScore(prevCh, c, pattern[patIdx], globalIdx, caseSensitive, cfg); ok {
			if withPos {
				pos = append(pos, globalIdx)
			}
			total += int64(matchScore)
			total += consecutive * int64(cfg.BonusConsecutive)
			inGap = false
			consecutive++
			patIdx++
		} else {
			if !inGap {
				total += int64(cfg.GapStart)
			}
			total += int64(cfg.GapExtension)
			inGap = true
			consecutive = 0
		}
		prevCh = c
	}

	return total, pos
}
