// Package errs defines the sentinel errors returned by the decode pipeline.
//
// Every error the header, body and table stages return wraps exactly one of
// these sentinels via fmt.Errorf("%w: ...", ...), so callers can distinguish
// error kinds with errors.Is regardless of the positional detail attached to
// a given occurrence. Two kinds of error carry no sentinel: a failure inside
// a compression codec's Decompress, which Decode wraps with its own message,
// and the context error body.Parse returns when its context is done.
package errs

import "errors"

var (
	// ErrUnsupportedVersion is returned when the header's first line is not
	// "1.0" or "1.1".
	ErrUnsupportedVersion = errors.New("unsupported UDF header version")

	// ErrMalformedHeader is returned for a structurally invalid header line:
	// wrong field count, non-numeric numeric field, duplicate sensor tag, or
	// an axis/type count mismatch against the declared event size.
	ErrMalformedHeader = errors.New("malformed UDF header")

	// ErrUnknownType is returned when a header line names a type mnemonic
	// absent from the type registry.
	ErrUnknownType = errors.New("unknown UDF type mnemonic")

	// ErrUnrecognizedTag is returned when a body byte at a record boundary
	// is neither a control tag (timestamp, label) nor a tag declared in the
	// header.
	ErrUnrecognizedTag = errors.New("unrecognized body record tag")

	// ErrTruncatedEvent is returned in strict mode when fewer bytes remain
	// in the blob than a record requires.
	ErrTruncatedEvent = errors.New("truncated event record")

	// ErrLabelWithoutTimestamp is returned when a label record (0xF8)
	// appears before any timestamp record has been observed.
	ErrLabelWithoutTimestamp = errors.New("label record before first timestamp")

	// ErrDuplicateSensorName is a non-fatal sentinel attached to
	// DecodeResult.Warnings when two distinct sensor tags declare the same
	// trimmed name. It never causes Decode to fail.
	ErrDuplicateSensorName = errors.New("duplicate sensor name across distinct tags")

	// ErrUnsupportedCompression is returned by the input stage when a blob's
	// magic bytes identify a compression format with no registered codec.
	ErrUnsupportedCompression = errors.New("unsupported input compression")

	// ErrAlreadyScaled is returned by Scale when asked to scale a table
	// whose "Was Scaled" metadata is already "True".
	ErrAlreadyScaled = errors.New("table has already been scaled")

	// ErrColumnNotFound is returned by table lookups for an unknown column
	// name.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowIndexOutOfRange names a row index outside [0, RowCount). No
	// accessor in this module returns it: Column.At and Column.IsValid do
	// not bounds-check their row argument.
	ErrRowIndexOutOfRange = errors.New("row index out of range")
)
