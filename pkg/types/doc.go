// Package types defines the phone book record variants (Person and
// Organization), their editable fields, input validation with placeholder
// substitution, CLI configuration, and the standard errors shared by the
// storage, book and console packages.
package types
