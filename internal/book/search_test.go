package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func positions(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Position
	}
	return out
}

func TestSearchPairsOriginalPositions(t *testing.T) {
	b, _ := openTestBook(t)
	addOrganization(t, b, "Zeta Ltd")
	addPerson(t, b, "Ann", "Smith")
	addOrganization(t, b, "Bank Org")

	got := b.Search("ann")
	require.Len(t, got, 2)
	assert.Equal(t, []int{2, 3}, positions(got))
	assert.Equal(t, "Ann Smith", got[0].Contact.DisplayName())
	assert.Equal(t, "Bank Org", got[1].Contact.DisplayName())

	// Selecting the second result and deleting it removes "Bank Org".
	_, err := b.Remove(got[1].Position)
	require.NoError(t, err)
	assert.Equal(t, []string{"1- Zeta Ltd", "2- Ann Smith"}, b.Listing())
}

func TestSearchFields(t *testing.T) {
	b, _ := openTestBook(t)
	_, err := b.Add(types.KindPerson, types.Fields{
		types.FieldName: "Ann", types.FieldSurname: "Smith", types.FieldNumber: "+1 555-0100",
	})
	require.NoError(t, err)
	_, err = b.Add(types.KindOrganization, types.Fields{
		types.FieldName: "Acme", types.FieldAddress: "Smith Street", types.FieldNumber: "777",
	})
	require.NoError(t, err)

	tests := []struct {
		query string
		want  []int
	}{
		{"SMITH", []int{1}}, // surname, not the organization's address
		{"555", []int{1}},   // phone
		{"77", []int{2}},    // organization phone
		{"a", []int{1, 2}},  // names
		{"", []int{1, 2}},   // empty query matches everything
		{"^acm", []int{2}},  // regular expression
		{"h|c", []int{1}},   // whole-value match: ends in h or starts with c
		{"+1", []int{1}},    // invalid expression matched literally
		{"n)|(a", []int{}},  // unbalanced groups matched literally
		{"zzz", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(b.Search(tt.query)))
		})
	}
}
