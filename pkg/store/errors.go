package store

import (
	"errors"
	"fmt"
)

// UnavailableError reports that a load or save against the backend failed.
// It aborts the current sync attempt and leaves the persisted state
// untouched; retrying is the caller's decision.
type UnavailableError struct {
	Op  string
	Err error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("documentation store unavailable during %s: %v", e.Op, e.Err)
}

func (e UnavailableError) Unwrap() error {
	return e.Err
}

// SchemaError reports persisted data that does not match the expected
// shape, e.g. a worksheet that was manually edited into an inconsistent
// layout.
type SchemaError struct {
	Reason string
}

func (e SchemaError) Error() string {
	return "invalid documentation schema: " + e.Reason
}

// IsUnavailable reports whether err stems from an unreachable backend.
func IsUnavailable(err error) bool {
	var unavailable UnavailableError
	return errors.As(err, &unavailable)
}

// IsSchemaInvalid reports whether err stems from malformed persisted data.
func IsSchemaInvalid(err error) bool {
	var schema SchemaError
	return errors.As(err, &schema)
}
