// Package domain holds the sentinel errors shared across arkcutt use cases.
package domain

import "errors"

var (
	// ErrInvalidInput signals a malformed request (empty text, non-positive font size).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidFile signals an unreadable or non-DXF upload.
	ErrInvalidFile = errors.New("invalid dxf file")
	// ErrDraftFailed signals a failure while building or saving a drawing.
	ErrDraftFailed = errors.New("drafting failed")
	// ErrNotImplemented signals an unimplemented feature.
	ErrNotImplemented = errors.New("not implemented")
	// ErrInterpreterUnavailable signals that the LLM interpretation refiner
	// could not produce a usable answer. Callers fall back to the keyword heuristic.
	ErrInterpreterUnavailable = errors.New("interpreter unavailable")
)
