package algo

// CheapMatches reports whether every rune of pattern occurs, in order, in
// choice under the active case policy. It never allocates and is the
// short-circuit that lets callers skip matrix construction entirely on a
// miss, the same role fzf's asciiFuzzyIndex plays ahead of FuzzyMatchV2.
func CheapMatches(choice, pattern []rune, caseSensitive bool) bool {
	pidx := 0
	for _, c := range choice {
		if pidx == len(pattern) {
			break
		}
		if CharEqual(c, pattern[pidx], caseSensitive) {
			pidx++
		}
	}
	return pidx == len(pattern)
}
