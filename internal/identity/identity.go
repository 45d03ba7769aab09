// Package identity generates the string identifiers used as primary keys
// across all persisted entities.
package identity

import "github.com/google/uuid"

// New returns a random version 4 UUID in its canonical text form.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID. Handlers use this to decide
// whether a submitted author value is a reference to an existing record or
// a plain name.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
