// Package errs defines the sentinel errors returned by the encoder.
//
// Callers should use errors.Is against the exported Err* values rather
// than comparing error strings; call sites wrap these sentinels with
// fmt.Errorf("%w: ...", ...) to attach context.
package errs

import "errors"

var (
	// ErrOutOfMemory names the out-of-memory entry of the error taxonomy
	// (buffer growth or seen-table insertion failing). No code path in this
	// module returns it: in Go a failed allocation is a fatal runtime
	// error, not an error value.
	ErrOutOfMemory = errors.New("sereal: out of memory")

	// ErrRecursionLimit is returned when the configured recursion ceiling,
	// or the encoder's internal stack-safety ceiling, is hit.
	ErrRecursionLimit = errors.New("sereal: recursion limit exceeded")

	// ErrUnsupportedType is returned when a value classifies as "other".
	ErrUnsupportedType = errors.New("sereal: type not implemented")

	// ErrNotImplemented is returned for wire-protocol features that are
	// reserved but not yet implemented, currently the Snappy compression modes.
	ErrNotImplemented = errors.New("sereal: not implemented")

	// ErrHostError wraps a failure reported by the value.Model collaborator,
	// e.g. a UTF-8 transcoding failure.
	ErrHostError = errors.New("sereal: host error")

	// ErrEncoderClosed is returned when Dump is called on an encoder that
	// already had Close called on it.
	ErrEncoderClosed = errors.New("sereal: encoder already closed")
)
