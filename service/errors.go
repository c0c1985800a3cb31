package service

import "errors"

// Sentinel error kinds. Every service failure wraps exactly one of these;
// the controller maps the kind to an HTTP status.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("invalid credentials")
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrSelfFollow = errors.New("you cannot follow yourself")
)

// Error pairs a sentinel kind with a caller-facing message.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// fail builds an Error of the given kind. errors.Is(err, kind) holds for
// the result.
func fail(kind error, message string) error {
	return &Error{kind: kind, message: message}
}
