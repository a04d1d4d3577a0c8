package format

type (
	// WidthClass selects how many bytes follow a reference flag byte.
	WidthClass uint8
	// LiteralMarker is the one-byte prefix of a raw literal.
	LiteralMarker uint8
	// ValueTag discriminates the value of an annotation.
	ValueTag uint8
	// CompressionType selects the payload compression codec.
	CompressionType uint8
)

const (
	WidthInt8     WidthClass = 0x0 // WidthInt8 represents a 1-byte signed delta.
	WidthInt16    WidthClass = 0x1 // WidthInt16 represents a 2-byte signed delta.
	WidthInt32    WidthClass = 0x2 // WidthInt32 represents a 4-byte signed delta.
	WidthReserved WidthClass = 0x3 // WidthReserved is only valid for the not-indexed sentinel.

	LiteralPlain     LiteralMarker = 0x0 // LiteralPlain represents rdf:PlainLiteral.
	LiteralString    LiteralMarker = 0x1 // LiteralString represents xsd:string.
	LiteralBoolean   LiteralMarker = 0x2 // LiteralBoolean represents xsd:boolean true or false.
	LiteralOther     LiteralMarker = 0x3 // LiteralOther represents any other datatype.
	LiteralOtherLang LiteralMarker = 0x4 // LiteralOtherLang represents any other datatype with a language tag.

	ValueIRI       ValueTag = 0x0 // ValueIRI represents an IRI annotation value.
	ValueLiteral   ValueTag = 0x1 // ValueLiteral represents a literal annotation value.
	ValueAnonymous ValueTag = 0x2 // ValueAnonymous represents an anonymous individual value.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Size returns the number of delta bytes that follow the flag byte.
func (w WidthClass) Size() int {
	switch w {
	case WidthInt8:
		return 1
	case WidthInt16:
		return 2
	case WidthInt32:
		return 4
	default:
		return 0
	}
}

func (w WidthClass) String() string {
	switch w {
	case WidthInt8:
		return "Int8"
	case WidthInt16:
		return "Int16"
	case WidthInt32:
		return "Int32"
	case WidthReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

func (m LiteralMarker) String() string {
	switch m {
	case LiteralPlain:
		return "Plain"
	case LiteralString:
		return "String"
	case LiteralBoolean:
		return "Boolean"
	case LiteralOther:
		return "Other"
	case LiteralOtherLang:
		return "OtherLang"
	default:
		return "Unknown"
	}
}

func (t ValueTag) String() string {
	switch t {
	case ValueIRI:
		return "IRI"
	case ValueLiteral:
		return "Literal"
	case ValueAnonymous:
		return "Anonymous"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-sensitive lower-case name to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
