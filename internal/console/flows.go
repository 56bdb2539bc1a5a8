package console

import (
	"errors"
	"strings"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// fieldPrompt pairs a field with the prompt that asks for it.
type fieldPrompt struct {
	field types.Field
	text  string
}

// addPrompts lists the values collected for each kind, in order.
var addPrompts = map[types.Kind][]fieldPrompt{
	types.KindPerson: {
		{types.FieldName, "Enter the name: "},
		{types.FieldSurname, "Enter the surname: "},
		{types.FieldBirth, "Enter the birth date: "},
		{types.FieldGender, "Enter the gender (M, F): "},
		{types.FieldNumber, "Enter the number: "},
	},
	types.KindOrganization: {
		{types.FieldName, "Enter the organization name: "},
		{types.FieldAddress, "Enter the address: "},
		{types.FieldNumber, "Enter the number: "},
	},
}

// editPrompts asks for the new value of a field.
var editPrompts = map[types.Field]string{
	types.FieldName:    "Enter name: ",
	types.FieldSurname: "Enter surname: ",
	types.FieldBirth:   "Enter the birth date: ",
	types.FieldGender:  "Enter the gender (M, F): ",
	types.FieldNumber:  "Enter number: ",
	types.FieldAddress: "Enter address: ",
}

// noticeText is what the user sees when a value is replaced by a placeholder.
var noticeText = map[error]string{
	types.ErrInvalidNumber:    "Wrong number format!",
	types.ErrInvalidGender:    "Bad gender!",
	types.ErrInvalidBirthDate: "Bad birth date!",
}

func (s *Shell) add() error {
	var kind types.Kind
	for {
		in, err := s.prompt("Enter the type (person, organization): ")
		if err != nil {
			return err
		}
		if kind, err = types.ParseKind(in); err == nil {
			break
		}
		s.println("Wrong input")
	}

	fields := types.Fields{}
	for _, p := range addPrompts[kind] {
		v, err := s.prompt(p.text)
		if err != nil {
			return err
		}
		fields[p.field] = v
	}

	out, err := s.book.Add(kind, fields)
	s.notices(out.Notices)
	if err != nil {
		s.saveFailed(err)
		return nil
	}
	s.println("The record added.")
	return nil
}

func (s *Shell) list() error {
	for _, line := range s.book.Listing() {
		s.println(line)
	}
	if s.book.Count() == 0 {
		return nil
	}

	for {
		in, err := s.prompt(listPrompt)
		if err != nil {
			return err
		}
		if in == "back" {
			return nil
		}
		if pos, ok := s.choose(in, s.book.Count()); ok {
			return s.record(pos)
		}
	}
}

func (s *Shell) search() error {
	for {
		query, err := s.prompt(queryPrompt)
		if err != nil {
			return err
		}

		results := s.book.Search(query)
		if len(results) == 0 {
			s.println("No matching records.")
		} else {
			s.printf("Found %d results:\n", len(results))
			for i, e := range results {
				s.printf("%d. %s\n", i+1, e.Contact.DisplayName())
			}
		}

		again := false
		for !again {
			in, err := s.prompt(searchPrompt)
			if err != nil {
				return err
			}
			switch in {
			case "back":
				return nil
			case "again":
				again = true
			default:
				if i, ok := s.choose(in, len(results)); ok {
					return s.record(results[i-1].Position)
				}
			}
		}
	}
}

// record shows the record at pos and runs the record menu until the user
// returns to the top menu or deletes the record.
func (s *Shell) record(pos int) error {
	c, err := s.book.Get(pos)
	if err != nil {
		s.println("Invalid index.")
		return nil
	}
	s.println(Describe(c))

	for {
		in, err := s.prompt(recordPrompt)
		if err != nil {
			return err
		}
		switch in {
		case "edit":
			if err := s.edit(pos); err != nil {
				return err
			}
		case "delete":
			if _, err := s.book.Remove(pos); err != nil {
				s.saveFailed(err)
			}
			s.println("The record removed!")
			return nil
		case "menu":
			return nil
		}
	}
}

func (s *Shell) edit(pos int) error {
	c, err := s.book.Get(pos)
	if err != nil {
		s.println("Invalid index.")
		return nil
	}

	names := make([]string, 0, len(c.EditableFields()))
	for _, f := range c.EditableFields() {
		names = append(names, string(f))
	}
	in, err := s.prompt("Select a field (" + strings.Join(names, ", ") + "): ")
	if err != nil {
		return err
	}
	field, err := types.ParseField(in)
	if err != nil || !types.HasField(c, field) {
		s.println("Wrong field")
		return nil
	}

	value, err := s.prompt(editPrompts[field])
	if err != nil {
		return err
	}
	out, err := s.book.Edit(pos, field, value)
	s.notices(out.Notices)
	if err != nil {
		s.saveFailed(err)
		return nil
	}
	s.println("Saved")
	s.println(Describe(out.Contact))
	return nil
}

func (s *Shell) notices(errs []error) {
	for _, n := range errs {
		for sentinel, text := range noticeText {
			if errors.Is(n, sentinel) {
				s.println(text)
			}
		}
	}
}

func (s *Shell) saveFailed(err error) {
	s.printf("Error saving contacts: %v\n", err)
}
