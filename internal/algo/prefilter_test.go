package algo

import "testing"

func TestCheapMatches(t *testing.T) {
	cases := []struct {
		choice, pattern string
		caseSensitive   bool
		want            bool
	}{
		{"axbycz", "abc", false, true},
		{"axbycz", "xyz", false, true},
		{"abc", "abx", false, false},
		{"abc", "", false, true},
		{"", "a", false, false},
		{"aBc", "abc", false, true},
		{"aBc", "abc", true, false},
		{"aBc", "aBc", true, true},
	}
	for _, c := range cases {
		if got := CheapMatches([]rune(c.choice), []rune(c.pattern), c.caseSensitive); got != c.want {
			t.Errorf("CheapMatches(%q, %q, %v) = %v, want %v", c.choice, c.pattern, c.caseSensitive, got, c.want)
		}
	}
}
