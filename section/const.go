package section

import (
	"math"

	"github.com/arloliu/binowl/format"
)

const (
	// Bit masks of DictionaryFlag.Options
	SortedMask           = 0x0001 // Mask for sorted dictionary bit (bit 0)
	EndiannessMask       = 0x0002 // Mask for endianness bit (bit 1)
	LiteralInterningMask = 0x0004 // Mask for literal interning bit (bit 2)
	ReservedBitsMask     = 0x0008 // Mask for reserved bit (bit 3)
	MagicNumberMask      = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicDictionaryV1Opt = 0xB010 // MagicDictionaryV1Opt identifies a version 1 binowl document.

	// FormatVersion is the value of the version byte written by this package.
	FormatVersion = 1
)

// offsets and sizes in the document
const (
	HeaderSize    = 32             // fixed header size in bytes
	PayloadOffset = HeaderSize     // byte offset where the payload starts
	MaxCount      = math.MaxUint32 // maximum value of any header count or size
)

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}
