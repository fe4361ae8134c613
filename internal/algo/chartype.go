// Package algo is the matching engine behind the public skim package: the
// character classifier, the cheap prefilter, the V1 sparse DP, the V2 affine
// gap matrices and their large-input fallback, and the scratch buffers they
// share across calls.
package algo

// CharType categorizes a single rune the way the scoring rules need to see
// it. Empty stands for the sentinel before the first character of a string.
type CharType int

const (
	Empty CharType = iota
	Upper
	Lower
	Number
	HardSep
	SoftSep
)

// asciiCharTypes is a branch-free lookup table for the ASCII range, built
// once at init time. Non-ASCII runes are classified directly in TypeOf.
var asciiCharTypes [128]CharType

func init() {
	for i := 0; i < 128; i++ {
		asciiCharTypes[i] = classifyASCII(rune(i))
	}
}

func classifyASCII(ch rune) CharType {
	switch ch {
	case ' ', '/', '\\', '|', '(', ')', '[', ']', '{', '}':
		return HardSep
	}
	if ch >= '0' && ch <= '9' {
		return Number
	}
	if ch >= 'A' && ch <= 'Z' {
		return Upper
	}
	if ch >= 'a' && ch <= 'z' {
		return Lower
	}
	if isASCIIPunct(ch) {
		return SoftSep
	}
	return Lower
}

func isASCIIPunct(ch rune) bool {
	return (ch >= '!' && ch <= '/') ||
		(ch >= ':' && ch <= '@') ||
		(ch >= '[' && ch <= '`') ||
		(ch >= '{' && ch <= '~')
}

// TypeOf classifies ch. The nil rune ('\x00') used as the sentinel before
// the start of a string maps to Empty; ASCII goes through the lookup table;
// every non-ASCII rune classifies as Lower, which keeps scripts without
// letter case working.
func TypeOf(ch rune) CharType {
	if ch == 0 {
		return Empty
	}
	if ch < 128 {
		return asciiCharTypes[ch]
	}
	return Lower
}

// CharRole is the contextual role a matched position plays, derived from
// the character types on either side of it.
type CharRole int

const (
	Tail CharRole = iota
	Head
	Camel
	Break
)

// RoleOf derives the role of cur given the type of the character preceding
// it in the choice string.
func RoleOf(prev, cur CharType) CharRole {
	switch prev {
	case Empty, HardSep:
		return Head
	case SoftSep:
		return Break
	}
	if (prev == Lower || prev == Number) && cur == Upper {
		return Camel
	}
	return Tail
}
