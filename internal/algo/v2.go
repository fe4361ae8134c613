package algo

// CalculateMatchScore computes the per-cell match score: a flat per-match
// score plus a word-role bonus (head/camel/break), the role bonus doubled on
// the first choice character, and penalized on a case fold. ok is false when c and p
// don't agree under the case policy.
func CalculateMatchScore(prevCh, c, p rune, cIdx int, caseSensitive bool, cfg ScoreConfig) (score uint16, ok bool) {
	if !CharEqual(c, p, caseSensitive) {
		return 0, false
	}

	base := cfg.ScoreMatch
	bonus := inPlaceBonus(TypeOf(prevCh), TypeOf(c), cfg)

	if cIdx == 0 {
		bonus *= cfg.BonusFirstCharMultiplier
	}
	if !caseSensitive && p != c {
		bonus += cfg.PenaltyCaseMismatch
	}

	total := base + bonus
	if total < 0 {
		total = 0
	}
	return uint16(total), true
}

func inPlaceBonus(prevType, curType CharType, cfg ScoreConfig) int32 {
	switch RoleOf(prevType, curType) {
	case Head:
		return cfg.BonusHead
	case Camel:
		return cfg.BonusCamel
	case Break:
		return cfg.BonusBreak
	default:
		return 0
	}
}

func adjustRowIdx(rowIdx int, compressed bool) int {
	if compressed {
		return rowIdx & 1
	}
	return rowIdx
}

// BuildScoreMatrix fills M and P per the Gotoh affine-gap recurrence: M
// holds the best alignment ending in a match, P the best alignment ending
// in a skipped choice character, with separate gap-open and gap-extension
// costs. m and p must already be Resize'd to the right dimensions.
func BuildScoreMatrix(m, p *ScoreMatrix, choice, pattern []rune, compressed, caseSensitive bool, cfg ScoreConfig) {
	for i := 0; i < m.Rows; i++ {
		m.SetCell(i, 0, NegInfinity, Skip)
	}
	for j := 0; j < m.Cols; j++ {
		m.SetCell(0, j, NegInfinity, Skip)
	}
	for i := 0; i < p.Rows; i++ {
		p.SetCell(i, 0, NegInfinity, Skip)
	}
	for j := 0; j < p.Cols; j++ {
		p.SetCell(0, j, cfg.GapExtension, Skip)
	}

	for i, pCh := range pattern {
		row := adjustRowIdx(i+1, compressed)
		rowPrev := adjustRowIdx(i, compressed)
		// Compressed mode reuses row 0, whose P column 0 holds the row-0 gap
		// value; reset column 0 so it reads as unreachable like in a full matrix.
		m.SetCell(row, 0, NegInfinity, Skip)
		p.SetCell(row, 0, NegInfinity, Skip)

		for j, cCh := range choice {
			col := j + 1
			colPrev := j
			var prevCh rune
			if j > 0 {
				prevCh = choice[j-1]
			}

			if matchScore, ok := CalculateMatchScore(prevCh, cCh, pCh, j, caseSensitive, cfg); ok {
				prevMatch := m.Score(rowPrev, colPrev)
				prevSkip := p.Score(rowPrev, colPrev)
				mv := Skip
				if prevMatch >= prevSkip {
					mv = Match
				}
				best := prevSkip
				if c := prevMatch + cfg.BonusConsecutive; c > best {
					best = c
				}
				m.SetCell(row, col, int32(matchScore)+best, mv)
			} else {
				m.SetCell(row, col, NegInfinity, Skip)
			}

			fromMatch := cfg.GapStart + cfg.GapExtension + m.Score(row, colPrev)
			fromSkip := cfg.GapExtension + p.Score(row, colPrev)
			if fromMatch >= fromSkip {
				p.SetCell(row, col, fromMatch, Match)
			} else {
				p.SetCell(row, col, fromSkip, Skip)
			}
		}
	}
}

// ArgmaxLastRow returns the best score and its column in M's last pattern
// row (row = len(pattern), adjusted for row compression).
func ArgmaxLastRow(m *ScoreMatrix, numPattern int, compressed bool) (score int32, col int) {
	row := m.Row(adjustRowIdx(numPattern, compressed))
	best, bestCol := row[0], 0
	for j := 1; j < len(row); j++ {
		// Mirrors Rust's Iterator::max_by_key, which keeps the *last*
		// element on ties.
		if row[j] >= best {
			best, bestCol = row[j], j
		}
	}
	return best, bestCol
}

// TracebackV2 walks M/P from (numPattern, col) back to the start, emitting
// the matched choice indices (0-based) in increasing order. Only valid
// against full, uncompressed matrices.
func TracebackV2(m, p *ScoreMatrix, numPattern, col int) []int {
	positions := make([]int, 0, numPattern)

	i, j := numPattern, col
	currentIsM := true
	currentMove := Match
	for i > 0 && j > 0 {
		if currentMove == Match {
			positions = append(positions, j-1)
		}

		if currentIsM {
			currentMove = m.Movement(i, j)
			i--
		} else {
			currentMove = p.Movement(i, j)
		}
		j--

		currentIsM = currentMove == Match
	}

	for l, r := 0, len(positions)-1; l < r; l, r = l+1, r-1 {
		positions[l], positions[r] = positions[r], positions[l]
	}
	return positions
}
