package types

import (
	"fmt"
	"strings"
)

// ValidationError reports user input that was replaced by a placeholder.
// It is a notice, not a failure: the operation that produced it completed.
type ValidationError struct {
	Field Field
	Value string // rejected input
	Err   error  // ErrInvalidNumber, ErrInvalidGender or ErrInvalidBirthDate
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// CheckNumber returns phone unchanged if it is valid, otherwise NoNumber
// and a *ValidationError.
func CheckNumber(phone string) (string, error) {
	if IsValidNumber(phone) {
		return phone, nil
	}
	return NoNumber, &ValidationError{Field: FieldNumber, Value: phone, Err: ErrInvalidNumber}
}

// CheckGender upper-cases gender and accepts only "M" or "F". Anything else
// becomes NoData with a *ValidationError.
func CheckGender(gender string) (string, error) {
	g := strings.ToUpper(strings.TrimSpace(gender))
	if g == "M" || g == "F" {
		return g, nil
	}
	return NoData, &ValidationError{Field: FieldGender, Value: gender, Err: ErrInvalidGender}
}

// CheckBirthDate accepts any non-empty text. An empty value becomes NoData
// with a *ValidationError.
func CheckBirthDate(date string) (string, error) {
	if strings.TrimSpace(date) != "" {
		return date, nil
	}
	return NoData, &ValidationError{Field: FieldBirth, Value: date, Err: ErrInvalidBirthDate}
}

// Normalize applies the placeholder rule for field. Fields without a rule
// pass through unchanged with a nil error.
func Normalize(field Field, value string) (string, error) {
	switch field {
	case FieldNumber:
		return CheckNumber(value)
	case FieldGender:
		return CheckGender(value)
	case FieldBirth:
		return CheckBirthDate(value)
	default:
		return value, nil
	}
}
