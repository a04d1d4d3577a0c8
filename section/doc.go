// Package section defines the fixed binary header of a binowl document.
//
// # Document Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ DictionaryHeader (32 bytes, fixed)                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (variable, optionally compressed)               │
//	│  - IRI dictionary                                       │
//	│  - Literal dictionary                                   │
//	│  - Annotation dictionary                                │
//	│  - Document annotations                                 │
//	│  - Axiom stream                                         │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type   | Description
//	-------|-----------------|--------|----------------------------------
//	0-1    | Options         | uint16 | Flags and magic, always little-endian
//	2      | Compression     | uint8  | Payload compression (format.CompressionType)
//	3      | Version         | uint8  | Format version, currently 1
//	4-7    | IRICount        | uint32 | IRI dictionary entries
//	8-11   | LiteralCount    | uint32 | Literal dictionary entries
//	12-15  | AnnotationCount | uint32 | Annotation dictionary entries
//	16-19  | AxiomCount      | uint32 | Axioms in the stream
//	20-23  | PayloadSize     | uint32 | Uncompressed payload size
//	24-31  | Checksum        | uint64 | xxHash64 of the uncompressed payload
//
// Options bits:
//
//	Bit 0: Sorted dictionary (1 = tables renumbered in canonical order)
//	Bit 1: Endianness (0 = little-endian, 1 = big-endian)
//	Bit 2: Literal interning (0 = every literal written raw)
//	Bit 3: Reserved (must be 0)
//	Bits 4-15: Magic number 0xB010
//
// Fields after byte 3 and every multi-byte integer in the payload use the byte
// order selected by bit 1.
//
// # Usage
//
//	header := section.NewDictionaryHeader()
//	header.SetEndianEngine(endian.GetBigEndianEngine())
//	if err := header.SetCounts(iris, literals, annotations, axioms); err != nil {
//		return err
//	}
//	if err := header.Seal(payload); err != nil {
//		return err
//	}
//	out := append(header.Bytes(), payload...)
//
// Reading validates the magic number, the reserved bit and the compression type:
//
//	var header section.DictionaryHeader
//	if err := header.Parse(data[:section.HeaderSize]); err != nil {
//		return err // wraps errs.ErrInvalidMagicNumber or errs.ErrInvalidHeaderFlags
//	}
package section
