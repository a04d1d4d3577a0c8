// Package encoding provides the primitive byte streams that binowl tables and
// documents are written to and read from.
//
// Writer appends to a pooled buffer and never fails. Reader consumes a byte slice
// and reports every problem as an *errs.FormatError carrying the byte offset where
// the read started.
//
// Primitive layouts:
//
//	uint8 / int8        1 byte
//	int16               2 bytes, stream byte order
//	int32 / uint32      4 bytes, stream byte order
//	uint64              8 bytes, stream byte order
//	count / index       unsigned varint
//	string              [length:uvarint][bytes:UTF-8]
//
// The byte order is big-endian unless configured otherwise, which keeps streams
// compatible with readers built on java.io.DataInput.
package encoding
