// Package endian selects the byte order used for multi-byte integers in binowl streams.
//
// Reference deltas, dictionary counts and section headers are all written through an
// EndianEngine. binowl defaults to big-endian so streams stay byte compatible with
// readers built on Java's DataInput, but little-endian streams are fully supported
// and flagged in the section header.
//
//	engine := endian.GetBigEndianEngine()
//	w := encoding.NewWriter(engine)
package endian

import (
	"encoding/binary"
	"strings"
)

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a single value
// can both decode fixed-width integers in place and append them to a growing buffer.
//
// binary.LittleEndian and binary.BigEndian both satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Default returns the engine used when no byte order is configured.
func Default() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var b [2]byte
	engine.PutUint16(b[:], 0x0102)

	return b[0] == 0x01
}

// Parse maps "big" or "little" (case-insensitive, with an optional "-endian" suffix)
// to an engine.
func Parse(name string) (EndianEngine, bool) {
	n := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "-endian")
	switch n {
	case "big", "":
		return binary.BigEndian, true
	case "little":
		return binary.LittleEndian, true
	default:
		return nil, false
	}
}
