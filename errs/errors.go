// Package errs defines the sentinel errors returned by binowl packages.
//
// Callers should match errors with errors.Is. Errors raised while parsing a
// stream are wrapped in a *FormatError that records the byte offset at which
// the problem was detected.
package errs

import (
	"errors"
	"fmt"
)

// Format errors. These are fatal for the current read.
var (
	ErrTruncated            = errors.New("truncated stream")
	ErrIndexOutOfRange      = errors.New("dictionary index out of range")
	ErrInvalidWidthMarker   = errors.New("unrecognized width marker")
	ErrInvalidLiteralMarker = errors.New("unrecognized literal marker")
	ErrInvalidValueTag      = errors.New("unrecognized value tag")
	ErrInvalidKind          = errors.New("unrecognized object kind")
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidHeaderFlags   = errors.New("invalid header flags")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrChecksumMismatch     = errors.New("payload checksum mismatch")
	ErrTrailingBytes        = errors.New("unexpected trailing bytes")
	ErrLengthOverflow       = errors.New("length exceeds platform limits")
	ErrDuplicateEntry       = errors.New("duplicate dictionary entry")
	ErrCorruptPayload       = errors.New("corrupt compressed payload")
	ErrNestingTooDeep       = errors.New("object nesting too deep")
	ErrPayloadTooLarge      = errors.New("payload exceeds size limit")
	ErrCountMismatch        = errors.New("section count does not match header")
)

// Usage errors.
var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrTableFrozen     = errors.New("table is frozen")
	ErrTableFull       = errors.New("table has reached its maximum size")
	ErrUnsupportedKind = errors.New("unsupported object kind")
	ErrNotFound        = errors.New("not found")
	ErrIncompressible  = errors.New("payload is not compressible")
)

// FormatError describes a malformed or truncated stream.
type FormatError struct {
	// Offset is the byte offset in the stream where the problem was detected.
	Offset int
	// Op names the read operation that failed, e.g. "read uvarint".
	Op string
	// Err is the underlying sentinel.
	Err error
}

// NewFormatError wraps err with the given offset and operation.
func NewFormatError(offset int, op string, err error) *FormatError {
	return &FormatError{Offset: offset, Op: op, Err: err}
}

func (e *FormatError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("binowl: %v at offset %d", e.Err, e.Offset)
	}

	return fmt.Sprintf("binowl: %s: %v at offset %d", e.Op, e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
