package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-quick-post/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldIdentifier targets the handle or email of a login request.
	FieldIdentifier = "identifier"

	// FieldPassword targets the password of a login request.
	FieldPassword = "password"
)

// SessionValidator checks login input before it is sent to the server.
type SessionValidator struct {
}

// NewSessionValidator constructs a new SessionValidator and returns it as the
// Validator interface.
func NewSessionValidator() Validator {
	return &SessionValidator{}
}

// Validate accepts models.CreateSessionRequest by value or non-nil pointer and
// returns ErrUnsupportedType for anything else.
func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateCreateSessionRequest(ctx, value, fields...)
	case *models.CreateSessionRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateSessionRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateCreateSessionRequest(_ context.Context, request models.CreateSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if strings.TrimSpace(request.Identifier) == "" {
				return ErrEmptyIdentifier
			}
			if !utf8.ValidString(request.Identifier) {
				return ErrInvalidUTF8
			}
		case FieldPassword:
			// passwords are sent verbatim, surrounding spaces included
			if request.Password == "" {
				return ErrEmptyPassword
			}
			if !utf8.ValidString(request.Password) {
				return ErrInvalidUTF8
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
