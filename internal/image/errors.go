package image

import (
	"errors"
	"net/http"
)

// Kind classifies a failed upload or gallery request.
type Kind string

const (
	// MissingFile: no multipart part named "file" with a filename (400).
	MissingFile Kind = "MissingFile"
	// EmptyFilename: the file part was sent with filename="" (400).
	EmptyFilename Kind = "EmptyFilename"
	// UnsupportedType: the declared media type is not image/* (415).
	UnsupportedType Kind = "UnsupportedType"
	// PayloadTooLarge: the body exceeds the upload limit (413).
	PayloadTooLarge Kind = "PayloadTooLarge"
	// StorageFailure: the storage gateway failed (500).
	StorageFailure Kind = "StorageFailure"
)

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case MissingFile, EmptyFilename:
		return http.StatusBadRequest
	case UnsupportedType:
		return http.StatusUnsupportedMediaType
	case PayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error is a request failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err; errors that are not *Error are StorageFailure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageFailure
}
