// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the data layer.
var (
	ErrInvalidURI           = errors.New("invalid uri")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidPayload       = errors.New("invalid payload")
	ErrStoreFailure         = errors.New("store failure")
	ErrInternal             = errors.New("internal error")

	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("product out of stock")
)

// URIError records the operation and URI that were rejected.
type URIError struct {
	Op  string
	URI string
	Err error
}

func (e *URIError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URI, e.Err)
}

func (e *URIError) Unwrap() error {
	return e.Err
}

// PayloadError identifies the first field that failed validation.
type PayloadError struct {
	Field  string
	Reason string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %s %s", e.Field, e.Reason)
}

func (e *PayloadError) Unwrap() error {
	return ErrInvalidPayload
}
