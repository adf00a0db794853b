package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier = errors.New("identifier is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidUTF8     = errors.New("value is not valid UTF-8")
)
