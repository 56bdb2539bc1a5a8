package book

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Add creates a record of the given kind from fields, appends it and saves
// the book. Invalid phone, gender and birth date values are replaced by
// placeholders and reported in Outcome.Notices. If the save fails the record
// stays in memory and the error is returned.
func (b *Book) Add(kind types.Kind, fields types.Fields) (Outcome, error) {
	var notices []error
	check := func(f types.Field) string {
		v, err := types.Normalize(f, fields[f])
		if err != nil {
			notices = append(notices, err)
		}
		return v
	}

	var c types.Contact
	switch kind {
	case types.KindPerson:
		c = types.NewPerson(
			fields[types.FieldName],
			fields[types.FieldSurname],
			check(types.FieldBirth),
			check(types.FieldGender),
			check(types.FieldNumber),
			b.now(),
		)
	case types.KindOrganization:
		c = types.NewOrganization(
			fields[types.FieldName],
			fields[types.FieldAddress],
			check(types.FieldNumber),
			b.now(),
		)
	default:
		return Outcome{}, fmt.Errorf("%w %q", types.ErrUnknownKind, kind)
	}

	b.records = append(b.records, c)
	out := Outcome{Position: len(b.records), Contact: c, Notices: notices}
	b.logger.Debug("added record",
		zap.String("id", c.ID()), zap.String("type", string(kind)), zap.Int("position", out.Position))

	return out, b.Save()
}

// Edit sets one field of the record at position, re-validating phone, gender
// and birth date, moves its edit time to now and saves the book. A field the
// record's variant does not have is rejected with types.ErrUnknownField and
// nothing changes.
func (b *Book) Edit(position int, field types.Field, value string) (Outcome, error) {
	c, err := b.Get(position)
	if err != nil {
		return Outcome{}, err
	}
	if !types.HasField(c, field) {
		return Outcome{}, fmt.Errorf("%w %q for %s", types.ErrUnknownField, field, c.Kind())
	}

	v, notice := types.Normalize(field, value)
	if err := c.Set(field, v); err != nil {
		return Outcome{}, err
	}
	c.Touch(b.now())

	out := Outcome{Position: position, Contact: c}
	if notice != nil {
		out.Notices = []error{notice}
	}
	b.logger.Debug("edited record",
		zap.String("id", c.ID()), zap.String("field", string(field)), zap.Int("position", position))

	return out, b.Save()
}

// Remove deletes the record at position; later records move up one place.
// The book is saved and the removed record returned.
func (b *Book) Remove(position int) (types.Contact, error) {
	c, err := b.Get(position)
	if err != nil {
		return nil, err
	}
	b.records = append(b.records[:position-1], b.records[position:]...)
	b.logger.Debug("removed record", zap.String("id", c.ID()), zap.Int("position", position))

	return c, b.Save()
}
