package document

import (
	"github.com/arloliu/binowl/compress"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/section"
)

// Stats describes one encoded document.
type Stats struct {
	// Header is the header that was written.
	Header section.DictionaryHeader
	// Tables holds the delta statistics of every reference written, dictionaries included.
	Tables lookup.SetStats
	// Compression describes the payload compression. Algorithm is CompressionNone
	// when compression was disabled or did not shrink the payload.
	Compression compress.CompressionStats
	// NamespaceCount is the number of distinct IRI namespaces.
	NamespaceCount int
	// DictionarySize is the size in bytes of the three dictionaries.
	DictionarySize int
	// EncodedSize is the total size of the document in bytes.
	EncodedSize int
}

// Info is the result of Decoder.Inspect.
type Info struct {
	// Header is the parsed header.
	Header section.DictionaryHeader
	// CompressedSize is the stored payload size.
	CompressedSize int
	// ChecksumOK reports whether the payload matched the header checksum.
	ChecksumOK bool
	// NamespaceCount is the number of distinct IRI namespaces.
	NamespaceCount int
	// DictionarySize is the size in bytes of the three dictionaries.
	DictionarySize int
}
