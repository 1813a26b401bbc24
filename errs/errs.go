// Package errs defines the sentinel errors returned by arrayniac packages.
//
// Callers wrap these with context (usually the offending path) using fmt.Errorf
// and %w, so errors.Is is the intended way to classify a failure.
package errs

import "errors"

// Input errors.
var (
	ErrInvalidInput     = errors.New("invalid JSON input")
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	ErrInvalidMaxDepth  = errors.New("max depth must be positive")
)

// Encoding errors.
var (
	// ErrShapeMismatch reports that an object's live field set disagrees with the
	// shape it was assigned. It indicates a defect, not bad input.
	ErrShapeMismatch = errors.New("object does not match its assigned shape")
	// ErrAmbiguousPath reports a path at which both objects and plain arrays occur.
	ErrAmbiguousPath = errors.New("objects and arrays share a path")
)

// Decoding errors.
var (
	ErrMissingSchemaEntry = errors.New("no schema entry for path")
	ErrShapeTagOutOfRange = errors.New("shape tag out of range")
	ErrMalformedDocument  = errors.New("malformed compact document")
	ErrMalformedIndex     = errors.New("malformed index document")
)

// Bundle errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid bundle header size")
	ErrInvalidHeaderFlags = errors.New("invalid bundle header flags")
	ErrInvalidMagicNumber = errors.New("invalid bundle magic number")
	ErrPayloadSize        = errors.New("bundle payload size mismatch")
	ErrChecksumMismatch   = errors.New("bundle checksum mismatch")
	ErrPayloadTooLarge    = errors.New("bundle payload too large")
)
