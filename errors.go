package scim2

import "fmt"

// ErrorKind tags the failure classes the library produces.
type ErrorKind int

const (
	// ErrMissingRequiredField reports a structurally required attribute
	// that is absent or empty.
	ErrMissingRequiredField ErrorKind = iota
	// ErrInvalidFieldValue is reserved for value-level validation. The
	// current validators never emit it; it is part of the stable API.
	ErrInvalidFieldValue
	// ErrSerialization wraps a failure of the underlying JSON writer.
	ErrSerialization
	// ErrDeserialization wraps a failure of the underlying JSON reader,
	// including shape mismatches and missing required attributes.
	ErrDeserialization
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingRequiredField:
		return "missing required field"
	case ErrInvalidFieldValue:
		return "invalid field value"
	case ErrSerialization:
		return "serialization error"
	case ErrDeserialization:
		return "deserialization error"
	}

	return "unknown"
}

// Error is the tagged failure type shared by the codec and the validators.
// Field holds the stable attribute identifier for field-level kinds; Err
// holds the wrapped cause for codec kinds.
type Error struct {
	Kind   ErrorKind
	Field  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrMissingRequiredField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case ErrInvalidFieldValue:
		return fmt.Sprintf("invalid value for field %s: %s", e.Field, e.Detail)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingRequiredField reports the first required attribute a validator
// found absent. The field name is the attribute's stable identifier, not
// its wire spelling.
func MissingRequiredField(field string) *Error {
	return &Error{Kind: ErrMissingRequiredField, Field: field}
}

// InvalidFieldValue reports a present attribute carrying an unusable value.
func InvalidFieldValue(field, detail string) *Error {
	return &Error{Kind: ErrInvalidFieldValue, Field: field, Detail: detail}
}

// SerializationError wraps a JSON writer failure.
func SerializationError(err error) *Error {
	return &Error{Kind: ErrSerialization, Err: err}
}

// DeserializationError wraps a JSON reader failure.
func DeserializationError(err error) *Error {
	return &Error{Kind: ErrDeserialization, Err: err}
}
