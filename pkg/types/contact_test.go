package types

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 123456789, time.FixedZone("CET", 3600))
	p := NewPerson("Ann", "Smith", "1990-01-02", "F", "+1 555", now)

	assert.Equal(t, KindPerson, p.Kind())
	assert.Equal(t, "Ann", p.Name())
	assert.Equal(t, "Smith", p.Surname)
	assert.Equal(t, "+1 555", p.Phone())
	assert.Equal(t, "Ann Smith", p.DisplayName())
	assert.True(t, p.Created().Equal(now))
	assert.Equal(t, time.UTC, p.Created().Location())
	assert.Equal(t, p.Created(), p.TimeEdited())

	_, err := uuid.Parse(p.ID())
	assert.NoError(t, err)
}

func TestNewOrganization(t *testing.T) {
	now := time.Now()
	o := NewOrganization("Acme", "1 Main St", "123", now)

	assert.Equal(t, KindOrganization, o.Kind())
	assert.Equal(t, "Acme", o.DisplayName())
	assert.Equal(t, "1 Main St", o.Address)
	assert.Equal(t, []Field{FieldAddress, FieldNumber}, o.EditableFields())
}

func TestContactSet(t *testing.T) {
	p := NewPerson("Ann", "Smith", "", "", "", time.Now())
	require.NoError(t, p.Set(FieldName, "Anna"))
	require.NoError(t, p.Set(FieldSurname, "Jones"))
	require.NoError(t, p.Set(FieldBirth, "1990"))
	require.NoError(t, p.Set(FieldGender, "F"))
	require.NoError(t, p.Set(FieldNumber, "555"))
	assert.Equal(t, "Anna Jones", p.DisplayName())
	assert.Equal(t, "1990", p.BirthDate)
	assert.Equal(t, "F", p.Gender)
	assert.Equal(t, "555", p.Phone())
	assert.ErrorIs(t, p.Set(FieldAddress, "x"), ErrUnknownField)

	o := NewOrganization("Acme", "", "", time.Now())
	require.NoError(t, o.Set(FieldAddress, "2 Side St"))
	require.NoError(t, o.Set(FieldNumber, "777"))
	assert.Equal(t, "2 Side St", o.Address)
	assert.Equal(t, "777", o.Phone())
	assert.ErrorIs(t, o.Set(FieldName, "Other"), ErrUnknownField)
	assert.Equal(t, "Acme", o.Name())
}

func TestContactTouch(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPerson("Ann", "Smith", "", "", "", created)

	later := created.Add(time.Hour)
	p.Touch(later)
	assert.True(t, p.TimeEdited().Equal(later))
	assert.True(t, p.Created().Equal(created), "created must not change")

	p.Touch(created.Add(-time.Hour))
	assert.True(t, p.TimeEdited().Equal(later), "edit time must not move backwards")
}

func TestRestoreAndAssignID(t *testing.T) {
	created := time.Date(2023, 5, 6, 7, 8, 9, 10, time.UTC)
	edited := created.Add(time.Minute)

	o := &Organization{Address: "Road"}
	Restore(o, "", "Acme", "123", created, edited)
	assert.Equal(t, "Acme", o.Name())
	assert.Equal(t, "", o.ID())
	assert.True(t, o.Created().Equal(created))
	assert.True(t, o.TimeEdited().Equal(edited))

	assert.True(t, o.AssignID())
	assert.NotEmpty(t, o.ID())
	id := o.ID()
	assert.False(t, o.AssignID())
	assert.Equal(t, id, o.ID())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr error
	}{
		{"person", KindPerson, nil},
		{"Organization", KindOrganization, nil},
		{" PERSON ", KindPerson, nil},
		{"company", "", ErrUnknownKind},
		{"", "", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{"name", FieldName, false},
		{"Surname", FieldSurname, false},
		{"birth", FieldBirth, false},
		{"birthdate", FieldBirth, false},
		{"GENDER", FieldGender, false},
		{"number", FieldNumber, false},
		{"phone", FieldNumber, false},
		{"address", FieldAddress, false},
		{"email", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasField(t *testing.T) {
	p := NewPerson("Ann", "Smith", "", "", "", time.Now())
	o := NewOrganization("Acme", "", "", time.Now())
	assert.True(t, HasField(p, FieldSurname))
	assert.False(t, HasField(p, FieldAddress))
	assert.True(t, HasField(o, FieldAddress))
	assert.False(t, HasField(o, FieldName))
}
