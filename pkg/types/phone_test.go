package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidNumber(t *testing.T) {
	valid := []string{
		"123",
		"+0",
		"abc",
		"(123)",
		"+(phone)",
		"(123) 234 345-456",
		"+0 (123) 456-789-ABcd",
		"123 (345) 456",
		"123-45",
		"1 23 45",
		"a-bc-def",
		"123 abc",
		"+1 (555) 12-34",
		"(ab)-cd",
	}
	for _, n := range valid {
		t.Run("valid "+n, func(t *testing.T) {
			assert.True(t, IsValidNumber(n), "expected %q to be accepted", n)
		})
	}

	invalid := []string{
		"",
		"+",
		"++123",
		"123 45 6",
		"(123) (123)",
		"123 (45) (67)",
		"(1) (2)",
		"123 (4)",
		"12 3",
		"(123",
		"123)",
		"123--45",
		"123  45",
		"12.34",
		"12 34 ",
		" 12",
		"+1 (",
		"abc#",
	}
	for _, n := range invalid {
		t.Run("invalid "+n, func(t *testing.T) {
			assert.False(t, IsValidNumber(n), "expected %q to be rejected", n)
		})
	}
}

func TestIsValidNumberGroupedForms(t *testing.T) {
	// Each grouped form accepts any number of trailing two-character groups.
	groups := []string{"", " 12", " 12-ab", " 12-ab 34cd"}
	heads := []string{"1 23", "(1)", "1 (23)", "+1-23", "+(1)", "+1 (23)"}
	for _, h := range heads {
		for _, g := range groups {
			n := h + g
			assert.True(t, IsValidNumber(n), "expected %q to be accepted", n)
			assert.False(t, IsValidNumber(n+" 9"), "expected %q to be rejected", n+" 9")
		}
	}
}

// groupedNumber is an independent reading of the phone grammar: an optional
// "+", then groups split on single "-" or " ". One group may be a bare or
// parenthesized word. With more groups, a parenthesized group may come first
// or second, and every group after the first holds two or more characters.
func groupedNumber(s string) bool {
	s = strings.TrimPrefix(s, "+")
	groups := strings.Split(strings.ReplaceAll(s, "-", " "), " ")

	word := func(g string, min int) bool {
		if len(g) < min {
			return false
		}
		for i := 0; i < len(g); i++ {
			c := g[i]
			if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
				return false
			}
		}
		return true
	}
	paren := func(g string, min int) bool {
		return len(g) >= 2 && g[0] == '(' && g[len(g)-1] == ')' && word(g[1:len(g)-1], min)
	}

	if len(groups) == 1 {
		return word(groups[0], 1) || paren(groups[0], 1)
	}
	var tail []string
	switch {
	case paren(groups[0], 1):
		tail = groups[1:]
	case word(groups[0], 1) && (paren(groups[1], 2) || word(groups[1], 2)):
		tail = groups[2:]
	default:
		return false
	}
	for _, g := range tail {
		if !word(g, 2) {
			return false
		}
	}
	return true
}

func FuzzIsValidNumber(f *testing.F) {
	seeds := []string{
		"123", "+0", "(123)", "+(phone)", "(123) 234 345-456", "+0 (123) 456-789-ABcd",
		"123 (345) 456", "1 23 45", "(ab)-cd", "+1 (555) 12-34",
		"", "+", "++123", "123 45 6", "(123) (123)", "123 (4)", "12 3", "(123",
		"123--45", "12.34", " 12", "12 34 ", "+1 (", "abc#", "12\n", "(1)(2)",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		assert.Equal(t, groupedNumber(s), IsValidNumber(s), "candidate %q", s)
	})
}
