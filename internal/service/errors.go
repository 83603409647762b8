package service

import (
	"errors"
	"fmt"
)

// NoEncontradoError indicates the target or a referenced record does not exist.
type NoEncontradoError struct{ Mensaje string }

func (e *NoEncontradoError) Error() string { return e.Mensaje }

// ConflictoError covers uniqueness violations, invalid references,
// insufficient stock and deletes blocked by dependent records.
type ConflictoError struct{ Mensaje string }

func (e *ConflictoError) Error() string { return e.Mensaje }

// UpstreamError wraps a failure from an external collaborator, today only
// the object storage service.
type UpstreamError struct {
	Mensaje string
	Causa   error
}

func (e *UpstreamError) Error() string {
	if e.Causa != nil {
		return fmt.Sprintf("%s: %v", e.Mensaje, e.Causa)
	}
	return e.Mensaje
}

func (e *UpstreamError) Unwrap() error { return e.Causa }

func noEncontrado(format string, args ...any) error {
	return &NoEncontradoError{Mensaje: fmt.Sprintf(format, args...)}
}

func conflicto(format string, args ...any) error {
	return &ConflictoError{Mensaje: fmt.Sprintf(format, args...)}
}

func EsNoEncontrado(err error) bool {
	var e *NoEncontradoError
	return errors.As(err, &e)
}

func EsConflicto(err error) bool {
	var e *ConflictoError
	return errors.As(err, &e)
}

func EsUpstream(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}
