package types

import "errors"

// Record errors.
var (
	ErrUnknownKind  = errors.New("unknown record type")
	ErrUnknownField = errors.New("unknown field")
)

// Validation errors. These are wrapped in a *ValidationError and reported as
// notices; the value is replaced by a placeholder and the operation goes on.
var (
	ErrInvalidNumber    = errors.New("wrong number format")
	ErrInvalidGender    = errors.New("bad gender")
	ErrInvalidBirthDate = errors.New("bad birth date")
)
