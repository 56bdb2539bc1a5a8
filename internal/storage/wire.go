// Wire structures for the phone book data file.
// The file is a JSON array; each element is one of these structs with a
// "type" discriminator naming the variant.
package storage

// personJSON is the on-disk form of a Person. Pointer fields are required:
// a nil pointer after decoding means the key was missing.
type personJSON struct {
	Type       string  `json:"type"`
	ID         string  `json:"id,omitempty"`
	Name       *string `json:"name"`
	Surname    *string `json:"surname"`
	Gender     *string `json:"gender"`
	BirthDate  *string `json:"birthDate"`
	Phone      *string `json:"phone"`
	Created    *string `json:"created"`
	TimeEdited *string `json:"timeEdited"`
}

// organizationJSON is the on-disk form of an Organization.
type organizationJSON struct {
	Type       string  `json:"type"`
	ID         string  `json:"id,omitempty"`
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Created    *string `json:"created"`
	TimeEdited *string `json:"timeEdited"`
}

// envelope reads only the discriminator of an element.
type envelope struct {
	Type *string `json:"type"`
}
