package section

import (
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
)

// DictionaryFlag is the packed flag field at the start of a DictionaryHeader.
type DictionaryFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the sorted dictionary flag, 1 means tables were renumbered in canonical order.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2 is the literal interning flag, 0 means every literal is written raw.
	// Bit 3 is reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number 0xB010.
	Options uint16

	// Compression indicates the compression applied to the payload.
	Compression uint8

	// Version is the format version, currently FormatVersion.
	Version uint8
}

// NewDictionaryFlag creates a flag for a big-endian, uncompressed document with
// literal interning enabled.
func NewDictionaryFlag() DictionaryFlag {
	flag := DictionaryFlag{
		Options:     MagicDictionaryV1Opt,
		Compression: uint8(format.CompressionNone),
		Version:     FormatVersion,
	}
	flag.WithBigEndian()
	flag.SetLiteralInterning(true)

	return flag
}

// IsSorted returns whether the dictionaries are in canonical order.
func (f DictionaryFlag) IsSorted() bool {
	return (f.Options & SortedMask) != 0
}

// SetSorted records whether the dictionaries are in canonical order.
func (f *DictionaryFlag) SetSorted(enabled bool) {
	if enabled {
		f.Options |= SortedMask
	} else {
		f.Options &^= SortedMask
	}
}

// HasLiteralInterning returns whether literals may be written as table references.
func (f DictionaryFlag) HasLiteralInterning() bool {
	return (f.Options & LiteralInterningMask) != 0
}

// SetLiteralInterning enables or disables literal interning.
func (f *DictionaryFlag) SetLiteralInterning(enabled bool) {
	if enabled {
		f.Options |= LiteralInterningMask
	} else {
		f.Options &^= LiteralInterningMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f DictionaryFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f DictionaryFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *DictionaryFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *DictionaryFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f DictionaryFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *DictionaryFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f DictionaryFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks if the flag contains valid values.
func (f DictionaryFlag) Validate() error {
	if f.GetMagicNumber() != MagicDictionaryV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if f.Version != FormatVersion {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
