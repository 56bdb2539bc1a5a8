package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Describe renders every field of a record, one "Label: value" per line.
func Describe(c types.Contact) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}

	switch v := c.(type) {
	case *types.Person:
		line("Name", v.Name())
		line("Surname", v.Surname)
		line("Birth date", v.BirthDate)
		line("Gender", v.Gender)
		line("Number", v.Phone())
	case *types.Organization:
		line("Organization name", v.Name())
		line("Address", v.Address)
		line("Number", v.Phone())
	}
	line("Time created", c.Created().UTC().Format(time.RFC3339))
	line("Time last edit", c.TimeEdited().UTC().Format(time.RFC3339))
	return b.String()
}
