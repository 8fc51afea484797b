package repository

import "errors"

// Kind identifies the category of a repository failure.
type Kind int

// Failure kinds, most specific last. DuplicateKey and ForeignKey are
// subkinds of Integrity: IsIntegrity matches all three.
const (
	KindOther Kind = iota
	KindNotFound
	KindMultipleRows
	KindInvalidRequest
	KindIntegrity
	KindDuplicateKey
	KindForeignKey
)

// Error is the single error type produced by the repository layer. Every
// storage failure leaves a repository operation as exactly one of these,
// carrying a resolved human message and the causing error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the causing error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given kind, message, and cause.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// IsNotFound reports whether err is or wraps an Error with KindNotFound.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsMultipleRows reports whether err is or wraps an Error with KindMultipleRows.
func IsMultipleRows(err error) bool {
	return hasKind(err, KindMultipleRows)
}

// IsInvalidRequest reports whether err is or wraps an Error with KindInvalidRequest.
func IsInvalidRequest(err error) bool {
	return hasKind(err, KindInvalidRequest)
}

// IsDuplicateKey reports whether err is or wraps an Error with KindDuplicateKey.
func IsDuplicateKey(err error) bool {
	return hasKind(err, KindDuplicateKey)
}

// IsForeignKey reports whether err is or wraps an Error with KindForeignKey.
func IsForeignKey(err error) bool {
	return hasKind(err, KindForeignKey)
}

// IsIntegrity reports whether err is or wraps an integrity-class Error.
// DuplicateKey and ForeignKey count as integrity failures.
func IsIntegrity(err error) bool {
	var repoErr *Error
	if errors.As(err, &repoErr) {
		switch repoErr.Kind {
		case KindIntegrity, KindDuplicateKey, KindForeignKey:
			return true
		}
	}
	return false
}

// IsRepositoryError reports whether err is or wraps any repository Error.
func IsRepositoryError(err error) bool {
	var repoErr *Error
	return errors.As(err, &repoErr)
}

// hasKind checks whether err is or wraps an *Error with the given kind.
func hasKind(err error, kind Kind) bool {
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
