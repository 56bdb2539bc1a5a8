package types

import "regexp"

// Phone number shapes: an optional "+", then a bare word, or one of three
// grouped forms where groups after the first hold at least two characters
// and are separated by "-" or " ". At most one group may be parenthesized,
// and only the first or second.
const (
	phoneParenFirst  = `\(\w+\)([- ]\w{2,})*`
	phoneParenSecond = `\w+[- ]\(\w{2,}\)([- ]\w{2,})*`
	phoneGrouped     = `\w+[- ]\w{2,}([- ]\w{2,})*`
)

var phonePattern = regexp.MustCompile(`(?i)^\+?(\w+|` +
	phoneParenFirst + `|` + phoneParenSecond + `|` + phoneGrouped + `)$`)

// IsValidNumber reports whether candidate is an accepted phone number.
func IsValidNumber(candidate string) bool {
	return phonePattern.MatchString(candidate)
}
