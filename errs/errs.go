// Package errs defines the sentinel errors returned by tradegrid packages.
//
// Callers should match them with errors.Is, since most are wrapped with
// additional context before they reach the caller.
package errs

import "errors"

// Grid key errors.
var (
	ErrNonFiniteCoordinate  = errors.New("coordinate is not finite")
	ErrCoordinateOutOfRange = errors.New("coordinate bucket exceeds 16-bit range")
	ErrInvalidWorkerCount   = errors.New("worker count must be positive")
)

// Supply reading errors. The messages are part of the public contract.
var (
	ErrEmptyReading       = errors.New("empty supply reading")
	ErrMalformedReading   = errors.New("malformed supply reading")
	ErrInvalidNumber      = errors.New("invalid number in supply reading")
	ErrMissingLevelSuffix = errors.New("missing level-suffix in supply reading")
	ErrInvalidUnit        = errors.New("invalid unit in supply reading")
	ErrInvalidReading     = errors.New("invalid supply reading")
)

// Line counter and stream errors.
var (
	ErrIO                 = errors.New("i/o failure")
	ErrInvalidBufferSize  = errors.New("buffer size must be positive")
	ErrInvalidCompression = errors.New("invalid compression type")
)
