package dbf

import "errors"

var (
	// ErrInvalidInput is returned when a value's kind does not fit the
	// field it is encoded into, or a date input is not a real date.
	ErrInvalidInput = errors.New("invalid value for field")
	// ErrMissingField is returned when a record has no entry for a
	// field declared in the schema.
	ErrMissingField = errors.New("record is missing a declared field")
	// ErrUnsupportedType is returned for type codes outside C, N, D, L, T.
	// The reference dialect silently encoded such fields to zero bytes;
	// failing here is a deliberate behavior change.
	ErrUnsupportedType = errors.New("unsupported field type")
	// ErrInvalidFieldSize is returned when a C or N field declares a
	// zero width.
	ErrInvalidFieldSize = errors.New("invalid field size")
)
