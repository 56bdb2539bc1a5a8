package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind names a Contact variant. The value doubles as the "type"
// discriminator in the data file.
type Kind string

// Contact variants.
const (
	KindPerson       Kind = "Person"
	KindOrganization Kind = "Organization"
)

// ParseKind maps the word typed in the add flow ("person", "organization")
// to a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "person":
		return KindPerson, nil
	case "organization":
		return KindOrganization, nil
	default:
		return "", ErrUnknownKind
	}
}

// Placeholder values stored when user input fails validation.
const (
	NoNumber = "[no number]"
	NoData   = "[no data]"
)

// Contact is a record in the phone book: either a *Person or an
// *Organization. Callers that need variant fields use a type switch.
type Contact interface {
	ID() string
	Kind() Kind
	Name() string
	Phone() string
	Created() time.Time
	TimeEdited() time.Time

	// DisplayName is the label used in listings and search results.
	DisplayName() string

	// EditableFields lists the fields Edit accepts for this variant,
	// in prompt order.
	EditableFields() []Field

	// Set assigns value to field without validation. It returns
	// ErrUnknownField if the variant has no such editable field.
	Set(field Field, value string) error

	// Touch records an edit made at t. The edit time never moves backwards.
	Touch(t time.Time)

	// AssignID gives the record an ID if it has none.
	AssignID() bool
}

// base holds the fields shared by every variant.
type base struct {
	id         string
	name       string
	phone      string
	created    time.Time
	timeEdited time.Time
}

func newBase(name, phone string, now time.Time) base {
	now = now.UTC().Round(0)
	return base{
		id:         NewID(),
		name:       name,
		phone:      phone,
		created:    now,
		timeEdited: now,
	}
}

func (b *base) ID() string            { return b.id }
func (b *base) Name() string          { return b.name }
func (b *base) Phone() string         { return b.phone }
func (b *base) Created() time.Time    { return b.created }
func (b *base) TimeEdited() time.Time { return b.timeEdited }

func (b *base) Touch(t time.Time) {
	t = t.UTC().Round(0)
	if t.Before(b.timeEdited) {
		return
	}
	b.timeEdited = t
}

func (b *base) AssignID() bool {
	if b.id != "" {
		return false
	}
	b.id = NewID()
	return true
}

// Person is a Contact for an individual.
type Person struct {
	base
	Surname   string
	Gender    string // "M", "F" or NoData
	BirthDate string // free text or NoData
}

// NewPerson creates a Person stamped with now. Fields are stored as given;
// use Normalize first to apply the placeholder rules.
func NewPerson(name, surname, birthDate, gender, phone string, now time.Time) *Person {
	return &Person{
		base:      newBase(name, phone, now),
		Surname:   surname,
		Gender:    gender,
		BirthDate: birthDate,
	}
}

func (p *Person) Kind() Kind { return KindPerson }

func (p *Person) DisplayName() string {
	return p.name + " " + p.Surname
}

func (p *Person) EditableFields() []Field {
	return []Field{FieldName, FieldSurname, FieldBirth, FieldGender, FieldNumber}
}

func (p *Person) Set(field Field, value string) error {
	switch field {
	case FieldName:
		p.name = value
	case FieldSurname:
		p.Surname = value
	case FieldBirth:
		p.BirthDate = value
	case FieldGender:
		p.Gender = value
	case FieldNumber:
		p.phone = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Organization is a Contact for a company or other body.
type Organization struct {
	base
	Address string
}

// NewOrganization creates an Organization stamped with now.
func NewOrganization(name, address, phone string, now time.Time) *Organization {
	return &Organization{
		base:    newBase(name, phone, now),
		Address: address,
	}
}

func (o *Organization) Kind() Kind { return KindOrganization }

func (o *Organization) DisplayName() string { return o.name }

func (o *Organization) EditableFields() []Field {
	return []Field{FieldAddress, FieldNumber}
}

func (o *Organization) Set(field Field, value string) error {
	switch field {
	case FieldAddress:
		o.Address = value
	case FieldNumber:
		o.phone = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Restore rebuilds the shared fields of a Contact read back from storage.
// Timestamps are taken as stored; created is not reset.
func Restore(c Contact, id, name, phone string, created, timeEdited time.Time) {
	var b *base
	switch v := c.(type) {
	case *Person:
		b = &v.base
	case *Organization:
		b = &v.base
	default:
		return
	}
	b.id = id
	b.name = name
	b.phone = phone
	b.created = created
	b.timeEdited = timeEdited
}

// NewID returns a UUID v7 string for a new record.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
