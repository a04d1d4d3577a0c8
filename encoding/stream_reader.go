package encoding

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/errs"
)

// Reader consumes binowl primitives from a byte slice and tracks the current offset.
//
// Every failure is returned as an *errs.FormatError carrying the offset at which
// the read started, so callers can report where a stream is corrupt.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data. A nil engine selects endian.Default.
func NewReader(data []byte, engine endian.EndianEngine) *Reader {
	if engine == nil {
		engine = endian.Default()
	}

	return &Reader{data: data, engine: engine}
}

// Engine returns the byte order used for fixed-width integers.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Fail builds a FormatError at the current offset. Higher layers use it for
// semantic errors such as out-of-range indices.
func (r *Reader) Fail(op string, err error) error {
	return errs.NewFormatError(r.off, op, err)
}

// FailAt builds a FormatError at an explicit offset.
func (r *Reader) FailAt(offset int, op string, err error) error {
	return errs.NewFormatError(offset, op, err)
}

func (r *Reader) take(n int, op string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, errs.NewFormatError(r.off, op, errs.ErrTruncated)
	}

	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1, "read uint8")
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// PeekUint8 returns the next byte without consuming it.
func (r *Reader) PeekUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, errs.NewFormatError(r.off, "peek uint8", errs.ErrTruncated)
	}

	return r.data[r.off], nil
}

// ReadInt8 reads a signed byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.take(1, "read int8")
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil //nolint:gosec
}

// ReadBool reads a byte that must be 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	start := r.off
	b, err := r.take(1, "read bool")
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.NewFormatError(start, "read bool", errs.ErrInvalidValueTag)
	}
}

// ReadInt16 reads a two-byte signed integer.
func (r *Reader) ReadInt16() (int16, error) {
	b, err := r.take(2, "read int16")
	if err != nil {
		return 0, err
	}

	return int16(r.engine.Uint16(b)), nil //nolint:gosec
}

// ReadInt32 reads a four-byte signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.take(4, "read int32")
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil //nolint:gosec
}

// ReadUint32 reads a four-byte unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4, "read uint32")
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadUint64 reads an eight-byte unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8, "read uint64")
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadUvarint reads an unsigned varint.
func (r *Reader) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.off:])
	if n <= 0 {
		if n == 0 {
			return 0, errs.NewFormatError(r.off, "read uvarint", errs.ErrTruncated)
		}

		return 0, errs.NewFormatError(r.off, "read uvarint", errs.ErrLengthOverflow)
	}
	r.off += n

	return v, nil
}

// ReadCount reads a collection size written by Writer.WriteCount.
//
// Every element binowl writes occupies at least one byte, so a count larger than
// the remaining input is reported as truncation before anything is allocated.
func (r *Reader) ReadCount() (int, error) {
	start := r.off
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	if v > math.MaxInt32 {
		return 0, errs.NewFormatError(start, "read count", errs.ErrLengthOverflow)
	}
	if v > uint64(r.Remaining()) { //nolint:gosec
		return 0, errs.NewFormatError(start, "read count", errs.ErrTruncated)
	}

	return int(v), nil
}

// ReadIndex reads a varint index that must be below bound.
func (r *Reader) ReadIndex(bound int) (int, error) {
	start := r.off
	v, err := r.ReadUvarint()
	if err != nil {
		return 0, err
	}

	if v >= uint64(bound) { //nolint:gosec
		return 0, errs.NewFormatError(start, "read index", errs.ErrIndexOutOfRange)
	}

	return int(v), nil //nolint:gosec
}

// ReadString reads a [length:uvarint][bytes:UTF-8] string.
func (r *Reader) ReadString() (string, error) {
	start := r.off
	n, err := r.ReadUvarint()
	if err != nil {
		return "", err
	}

	if n > uint64(r.Remaining()) { //nolint:gosec
		r.off = start
		return "", errs.NewFormatError(start, "read string", errs.ErrTruncated)
	}

	b, _ := r.take(int(n), "read string") //nolint:gosec

	return string(b), nil
}

// ReadRaw reads exactly n bytes. The returned slice aliases the input.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	return r.take(n, "read raw")
}

// Finish reports an error if unread bytes remain.
func (r *Reader) Finish() error {
	if r.Remaining() != 0 {
		return errs.NewFormatError(r.off, "finish", errs.ErrTrailingBytes)
	}

	return nil
}
