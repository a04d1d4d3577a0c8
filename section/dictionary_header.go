package section

import (
	"fmt"

	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/internal/hash"
)

// DictionaryHeader is the fixed 32-byte header in front of every encoded document.
//
// The first four bytes (Options, Compression, Version) are independent of byte order;
// Options is always little-endian. The remaining fields use the order selected by the
// endianness bit.
type DictionaryHeader struct {
	// Flag is the packed options, compression and version field.
	Flag DictionaryFlag // 4 bytes, offset 0-3

	// IRICount is the number of entries in the IRI dictionary.
	IRICount uint32 // 4 bytes, offset 4-7
	// LiteralCount is the number of entries in the literal dictionary.
	LiteralCount uint32 // 4 bytes, offset 8-11
	// AnnotationCount is the number of entries in the annotation dictionary.
	AnnotationCount uint32 // 4 bytes, offset 12-15
	// AxiomCount is the number of axioms in the axiom stream.
	AxiomCount uint32 // 4 bytes, offset 16-19
	// PayloadSize is the uncompressed size of the payload in bytes.
	PayloadSize uint32 // 4 bytes, offset 20-23
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 24-31
}

// NewDictionaryHeader creates a header with default flags and zero counts.
func NewDictionaryHeader() *DictionaryHeader {
	return &DictionaryHeader{Flag: NewDictionaryFlag()}
}

// SetCounts fills the count fields, rejecting values that do not fit in 32 bits.
func (h *DictionaryHeader) SetCounts(iris, literals, annotations, axioms int) error {
	for _, n := range []int{iris, literals, annotations, axioms} {
		if n < 0 || uint64(n) > MaxCount {
			return fmt.Errorf("%w: header count %d", errs.ErrLengthOverflow, n)
		}
	}

	h.IRICount = uint32(iris)               //nolint:gosec
	h.LiteralCount = uint32(literals)       //nolint:gosec
	h.AnnotationCount = uint32(annotations) //nolint:gosec
	h.AxiomCount = uint32(axioms)           //nolint:gosec

	return nil
}

// Seal records the size and checksum of the uncompressed payload.
func (h *DictionaryHeader) Seal(payload []byte) error {
	if uint64(len(payload)) > MaxCount {
		return fmt.Errorf("%w: payload of %d bytes", errs.ErrLengthOverflow, len(payload))
	}

	h.PayloadSize = uint32(len(payload)) //nolint:gosec
	h.Checksum = hash.Checksum(payload)

	return nil
}

// Verify checks payload against the recorded size and checksum.
func (h *DictionaryHeader) Verify(payload []byte) error {
	if uint64(len(payload)) != uint64(h.PayloadSize) {
		return errs.NewFormatError(PayloadOffset, "verify payload",
			fmt.Errorf("%w: %d bytes, header declares %d", errs.ErrChecksumMismatch, len(payload), h.PayloadSize))
	}

	if sum := hash.Checksum(payload); sum != h.Checksum {
		return errs.NewFormatError(PayloadOffset, "verify payload",
			fmt.Errorf("%w: got %#016x, header declares %#016x", errs.ErrChecksumMismatch, sum, h.Checksum))
	}

	return nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *DictionaryHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.NewFormatError(0, "parse header", errs.ErrInvalidHeaderSize)
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Flag.Version = data[3]

	if err := h.Flag.Validate(); err != nil {
		return errs.NewFormatError(0, "parse header", err)
	}

	engine := h.GetEndianEngine()

	h.IRICount = engine.Uint32(data[4:8])
	h.LiteralCount = engine.Uint32(data[8:12])
	h.AnnotationCount = engine.Uint32(data[12:16])
	h.AxiomCount = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *DictionaryHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Flag.Version

	engine := h.GetEndianEngine()
	engine.PutUint32(b[4:8], h.IRICount)
	engine.PutUint32(b[8:12], h.LiteralCount)
	engine.PutUint32(b[12:16], h.AnnotationCount)
	engine.PutUint32(b[16:20], h.AxiomCount)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint64(b[24:32], h.Checksum)

	return b
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *DictionaryHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// SetEndianEngine sets the endianness bit to match engine.
func (h *DictionaryHeader) SetEndianEngine(engine endian.EndianEngine) {
	if endian.IsBigEndian(engine) {
		h.Flag.WithBigEndian()
	} else {
		h.Flag.WithLittleEndian()
	}
}
