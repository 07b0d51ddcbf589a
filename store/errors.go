package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by id-keyed lookups, updates and deletes
	// that match no row.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized collapses unknown-email and bad-password failures
	// into one message so callers cannot enumerate accounts.
	ErrUnauthorized = errors.New("invalid email or password")
)

// DuplicateError reports a unique-constraint violation on the named field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already exists"
}

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// translateDuplicate maps a gorm duplicated-key error to a DuplicateError,
// attributing the field from the driver message when possible. Other
// errors pass through untouched.
func translateDuplicate(err error, fields ...string) error {
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	msg := err.Error()
	for _, f := range fields {
		if strings.Contains(msg, f) {
			return &DuplicateError{Field: f}
		}
	}
	if len(fields) > 0 {
		return &DuplicateError{Field: strings.Join(fields, " or ")}
	}
	return &DuplicateError{Field: "value"}
}

// IsDuplicate reports whether err is a unique-constraint violation.
func IsDuplicate(err error) bool {
	var dup *DuplicateError
	return errors.As(err, &dup) || errors.Is(err, gorm.ErrDuplicatedKey)
}
