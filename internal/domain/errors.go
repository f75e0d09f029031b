package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrPostNotFound signals an unknown blog post slug.
	ErrPostNotFound = errors.New("post not found")
	// ErrSourceUnavailable signals that the content source could not serve a document.
	ErrSourceUnavailable = errors.New("content source unavailable")
	// ErrMalformedDocument signals a document that could not be decoded.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnknownTechnology signals a project referencing a technology id that is not declared.
	ErrUnknownTechnology = errors.New("unknown technology")
	// ErrInvalidStandard signals an unsupported language standard.
	ErrInvalidStandard = errors.New("invalid language standard")
)

// DocumentError wraps ErrMalformedDocument with the document path.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrMalformedDocument.Error(), e.Path, e.Err)
}

func (e *DocumentError) Unwrap() []error { return []error{ErrMalformedDocument, e.Err} }

// NewDocumentError creates a malformed document error for path.
func NewDocumentError(path string, err error) error {
	return &DocumentError{Path: path, Err: err}
}
