package types

import "strings"

// Field names an editable attribute of a Contact. The values are the words
// a user types in the edit flow.
type Field string

// Editable fields. Person accepts name, surname, birth, gender and number;
// Organization accepts address and number.
const (
	FieldName    Field = "name"
	FieldSurname Field = "surname"
	FieldBirth   Field = "birth"
	FieldGender  Field = "gender"
	FieldNumber  Field = "number"
	FieldAddress Field = "address"
)

// fieldAliases maps alternate spellings to a Field.
var fieldAliases = map[string]Field{
	"phone":     FieldNumber,
	"birthdate": FieldBirth,
}

// ParseField maps user input to a Field. Matching is case-insensitive.
// It returns ErrUnknownField for anything unrecognized.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch f := Field(s); f {
	case FieldName, FieldSurname, FieldBirth, FieldGender, FieldNumber, FieldAddress:
		return f, nil
	}
	if f, ok := fieldAliases[s]; ok {
		return f, nil
	}
	return "", ErrUnknownField
}

// Fields carries the values collected for a new record, keyed by Field.
// Missing keys are treated as empty strings.
type Fields map[Field]string

// HasField reports whether c accepts f in Edit.
func HasField(c Contact, f Field) bool {
	for _, ef := range c.EditableFields() {
		if ef == f {
			return true
		}
	}
	return false
}
