package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// ErrParse marks a data file that cannot be decoded: malformed JSON, an
// unknown or missing "type", a missing required field, or a bad timestamp.
var ErrParse = errors.New("parse phone book")

// timeLayout keeps full precision so decoding reproduces the exact instant.
const timeLayout = time.RFC3339Nano

// Encode renders records as an indented JSON array terminated by a newline.
// The output depends only on the records, so encoding an unchanged list
// twice yields identical bytes.
func Encode(records []types.Contact) ([]byte, error) {
	elems := make([]any, 0, len(records))
	for i, c := range records {
		elem, err := encodeContact(c)
		if err != nil {
			return nil, fmt.Errorf("encoding record %d: %w", i, err)
		}
		elems = append(elems, elem)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(elems); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeContact(c types.Contact) (any, error) {
	name, phone := c.Name(), c.Phone()
	created := formatTime(c.Created())
	edited := formatTime(c.TimeEdited())

	switch v := c.(type) {
	case *types.Person:
		return personJSON{
			Type:       string(types.KindPerson),
			ID:         v.ID(),
			Name:       &name,
			Surname:    &v.Surname,
			Gender:     &v.Gender,
			BirthDate:  &v.BirthDate,
			Phone:      &phone,
			Created:    &created,
			TimeEdited: &edited,
		}, nil
	case *types.Organization:
		return organizationJSON{
			Type:       string(types.KindOrganization),
			ID:         v.ID(),
			Name:       &name,
			Address:    &v.Address,
			Phone:      &phone,
			Created:    &created,
			TimeEdited: &edited,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", types.ErrUnknownKind, c)
	}
}

// Decode parses a JSON array of records. Any failure is returned wrapped in
// ErrParse together with the index of the offending element.
func Decode(data []byte) ([]types.Contact, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	records := make([]types.Contact, 0, len(raw))
	for i, elem := range raw {
		c, err := decodeContact(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrParse, i, err)
		}
		records = append(records, c)
	}
	return records, nil
}

func decodeContact(elem json.RawMessage) (types.Contact, error) {
	var env envelope
	if err := json.Unmarshal(elem, &env); err != nil {
		return nil, err
	}
	if env.Type == nil {
		return nil, errors.New(`missing "type"`)
	}

	switch types.Kind(*env.Type) {
	case types.KindPerson:
		var w personJSON
		if err := json.Unmarshal(elem, &w); err != nil {
			return nil, err
		}
		if err := requireFields(map[string]*string{
			"name": w.Name, "surname": w.Surname, "gender": w.Gender,
			"birthDate": w.BirthDate, "phone": w.Phone,
			"created": w.Created, "timeEdited": w.TimeEdited,
		}); err != nil {
			return nil, err
		}
		p := &types.Person{Surname: *w.Surname, Gender: *w.Gender, BirthDate: *w.BirthDate}
		if err := restore(p, w.ID, *w.Name, *w.Phone, *w.Created, *w.TimeEdited); err != nil {
			return nil, err
		}
		return p, nil

	case types.KindOrganization:
		var w organizationJSON
		if err := json.Unmarshal(elem, &w); err != nil {
			return nil, err
		}
		if err := requireFields(map[string]*string{
			"name": w.Name, "address": w.Address, "phone": w.Phone,
			"created": w.Created, "timeEdited": w.TimeEdited,
		}); err != nil {
			return nil, err
		}
		o := &types.Organization{Address: *w.Address}
		if err := restore(o, w.ID, *w.Name, *w.Phone, *w.Created, *w.TimeEdited); err != nil {
			return nil, err
		}
		return o, nil

	default:
		return nil, fmt.Errorf("%w %q", types.ErrUnknownKind, *env.Type)
	}
}

// requireFields reports the first missing key, checked in sorted order so the
// message is stable.
func requireFields(fields map[string]*string) error {
	var missing []string
	for k, v := range fields {
		if v == nil {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("missing %q", missing[0])
}

func restore(c types.Contact, id, name, phone, created, edited string) error {
	ct, err := time.Parse(timeLayout, created)
	if err != nil {
		return fmt.Errorf("created: %w", err)
	}
	et, err := time.Parse(timeLayout, edited)
	if err != nil {
		return fmt.Errorf("timeEdited: %w", err)
	}
	types.Restore(c, id, name, phone, ct.UTC(), et.UTC())
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
