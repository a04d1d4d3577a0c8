package encoding

import (
	"encoding/binary"
	"io"

	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/internal/pool"
)

// Writer appends binowl primitives to a pooled in-memory buffer.
//
// Fixed-width integers follow the writer's byte order; counts and string lengths are
// unsigned varints. Writes never fail: the buffer grows as needed and the caller
// copies the result out with Bytes or WriteTo.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	release func(*pool.ByteBuffer)
}

// NewWriter creates a Writer for small streams such as a single table. A nil
// engine selects endian.Default.
func NewWriter(engine endian.EndianEngine) *Writer {
	if engine == nil {
		engine = endian.Default()
	}

	return &Writer{
		buf:     pool.GetStreamBuffer(),
		engine:  engine,
		release: pool.PutStreamBuffer,
	}
}

// NewPayloadWriter creates a Writer backed by the larger buffers used for whole
// document payloads.
func NewPayloadWriter(engine endian.EndianEngine) *Writer {
	if engine == nil {
		engine = endian.Default()
	}

	return &Writer{
		buf:     pool.GetPayloadBuffer(),
		engine:  engine,
		release: pool.PutPayloadBuffer,
	}
}

// Engine returns the byte order used for fixed-width integers.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf.MustWriteByte(v)
}

// WriteInt8 appends a signed byte.
func (w *Writer) WriteInt8(v int8) {
	w.buf.MustWriteByte(byte(v))
}

// WriteBool appends 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.MustWriteByte(1)
		return
	}
	w.buf.MustWriteByte(0)
}

// WriteInt16 appends a two-byte signed integer.
func (w *Writer) WriteInt16(v int16) {
	w.buf.B = w.engine.AppendUint16(w.buf.B, uint16(v)) //nolint:gosec
}

// WriteInt32 appends a four-byte signed integer.
func (w *Writer) WriteInt32(v int32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, uint32(v)) //nolint:gosec
}

// WriteUint32 appends a four-byte unsigned integer.
func (w *Writer) WriteUint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// WriteUint64 appends an eight-byte unsigned integer.
func (w *Writer) WriteUint64(v uint64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// WriteUvarint appends v as an unsigned varint.
func (w *Writer) WriteUvarint(v uint64) {
	w.buf.B = binary.AppendUvarint(w.buf.B, v)
}

// WriteCount appends a non-negative collection size or index as an unsigned varint.
// Negative values are a programming error and panic.
func (w *Writer) WriteCount(n int) {
	if n < 0 {
		panic("encoding: negative count")
	}
	w.WriteUvarint(uint64(n))
}

// WriteString appends s as [length:uvarint][bytes:UTF-8].
func (w *Writer) WriteString(s string) {
	w.buf.Grow(UvarintSize(uint64(len(s))) + len(s))
	w.buf.B = binary.AppendUvarint(w.buf.B, uint64(len(s)))
	w.buf.MustWriteString(s)
}

// WriteRaw appends p without a length prefix.
func (w *Writer) WriteRaw(p []byte) {
	w.buf.MustWrite(p)
}

// Bytes returns the bytes written so far. The slice is invalidated by Reset and Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// WriteTo copies the written bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// Reset discards the written bytes and keeps the buffer.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// Release returns the buffer to the pool. The Writer must not be used afterwards.
func (w *Writer) Release() {
	w.release(w.buf)
	w.buf = nil
}

// UvarintSize returns the number of bytes binary.AppendUvarint uses for n.
func UvarintSize(n uint64) int {
	size := 1
	for n >= 0x80 {
		n >>= 7
		size++
	}

	return size
}
