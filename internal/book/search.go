package book

import (
	"regexp"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Search returns the records whose name, or phone, or (for a Person)
// surname fully matches ".*query.*", ignoring case. Results keep book order
// and carry each record's position in the book. The query is a regular
// expression; one that does not compile is matched literally.
func (b *Book) Search(query string) []Entry {
	re := compileQuery(query)
	var matches []Entry
	for i, c := range b.records {
		if matchContact(re, c) {
			matches = append(matches, Entry{Position: i + 1, Contact: c})
		}
	}
	return matches
}

// compileQuery anchors ".*query.*" as a whole, so alternations bind as in
// ".*a|z.*": either ending in a or starting with z. The unanchored form is
// compiled first so a query with unbalanced groups cannot escape the anchors.
func compileQuery(query string) *regexp.Regexp {
	expr := ".*" + query + ".*"
	if _, err := regexp.Compile(expr); err != nil {
		expr = ".*" + regexp.QuoteMeta(query) + ".*"
	}
	return regexp.MustCompile("(?i)^(?:" + expr + ")$")
}

func matchContact(re *regexp.Regexp, c types.Contact) bool {
	if re.MatchString(c.Name()) || re.MatchString(c.Phone()) {
		return true
	}
	if p, ok := c.(*types.Person); ok {
		return re.MatchString(p.Surname)
	}
	return false
}
