// Package binowl provides a compact, deterministic binary format for OWL 2
// ontology documents.
//
// Documents are written as a fixed header followed by three symbol
// dictionaries (IRIs, literals and annotations) and the axioms. Every repeated
// IRI, literal or annotation is written as a reference into its dictionary,
// and references are delta encoded against a small history of recently used
// indices so that most of them take two bytes.
//
// # Core Features
//
//   - Namespace-split IRI dictionary with per-namespace deduplication
//   - Delta-coded references with an LRU history and stride detection
//   - Canonical axiom order: equal documents encode to identical bytes
//   - Optional payload compression (None, Zstd, S2, LZ4)
//   - xxHash64 payload checksum and offset-carrying format errors
//
// # Basic Usage
//
// Encoding a document:
//
//	pizza := owl.Class(owl.NewIRI("http://example.org/pizza#Pizza"))
//	food := owl.Class(owl.NewIRI("http://example.org/pizza#Food"))
//
//	doc := owl.Document{Axioms: []owl.Axiom{
//	    owl.Declaration{Entity: pizza},
//	    owl.SubClassOf{Sub: pizza, Super: food},
//	}}
//
//	data, err := binowl.Encode(doc)
//
// Decoding it again:
//
//	doc, err := binowl.Decode(data)
//
// # Package Structure
//
// This package wraps the building blocks most callers need. For fine-grained
// control use the packages directly:
//
//   - document: whole-document encoder and decoder with options and statistics
//   - lookup: identifier, literal and annotation symbol tables
//   - delta: the reference history and its wire codec
//   - compare: the canonical comparator and sorting helpers
//   - order: right-to-left entity dependency ordering
//   - section: the document header and flag layout
//   - compress: payload codecs
package binowl

import (
	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
)

// BuildIdentifierTable creates an identifier table holding ordered, in order,
// and freezes it.
//
// The position of an IRI in ordered becomes its dictionary index, so callers
// that want small reference deltas should order IRIs the way they will be
// referenced. Duplicates keep their first index.
//
// Available options:
//   - lookup.WithSortedDictionary()
//   - lookup.WithDeltaWidth(n)
//   - lookup.WithCapacity(n)
//
// Example:
//
//	iris, err := binowl.BuildIdentifierTable([]owl.IRI{a, b, c})
//	w := encoding.NewWriter(nil)
//	iris.WriteDictionary(w)
//	iris.WriteReference(w, b)
func BuildIdentifierTable(ordered []owl.IRI, opts ...lookup.TableOption) (*lookup.IdentifierTable, error) {
	table, err := lookup.NewIdentifierTable(opts...)
	if err != nil {
		return nil, err
	}

	for _, iri := range ordered {
		if _, err := table.Intern(iri); err != nil {
			return nil, err
		}
	}
	table.Freeze()

	return table, nil
}

// BuildLiteralTable creates a literal table holding ordered and freezes it.
// Literal datatypes are written through iris; a datatype missing from iris is
// written verbatim.
//
// With lookup.WithLiteralInterning(false) the table stays empty and every
// literal reference is written inline.
func BuildLiteralTable(iris *lookup.IdentifierTable, ordered []owl.Literal, opts ...lookup.TableOption) (*lookup.LiteralTable, error) {
	table, err := lookup.NewLiteralTable(iris, opts...)
	if err != nil {
		return nil, err
	}

	for _, lit := range ordered {
		if _, err := table.Intern(lit); err != nil {
			return nil, err
		}
	}
	table.Freeze()

	return table, nil
}

// NewComparator returns the canonical comparator over the indices of idx.
// A nil idx yields the lexical comparator, which orders IRIs and literals by
// their text.
func NewComparator(idx compare.Indexer) *compare.Comparator {
	if idx == nil {
		return compare.Lexical()
	}

	return compare.New(idx)
}

// Encode serializes doc with the default encoder settings: big-endian,
// literal interning enabled, insertion-ordered dictionaries and no compression.
//
// Parameters:
//   - doc: Document to serialize
//   - opts: Encoder options overriding the defaults
//
// Returns:
//   - []byte: Header followed by the (possibly compressed) payload
//   - error: Invalid options, or ErrUnsupportedKind for values outside the object model
func Encode(doc owl.Document, opts ...document.EncoderOption) ([]byte, error) {
	enc, err := document.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	data, _, err := enc.Encode(doc)

	return data, err
}

// Decode parses data produced by Encode, verifying the payload checksum.
//
// Parameters:
//   - data: Encoded document
//   - opts: Decoder options, e.g. document.WithChecksumVerification(false)
//
// Returns:
//   - owl.Document: Decoded document; empty collections are nil
//   - error: *errs.FormatError for malformed input
func Decode(data []byte, opts ...document.DecoderOption) (owl.Document, error) {
	dec, err := document.NewDecoder(opts...)
	if err != nil {
		return owl.Document{}, err
	}

	return dec.Decode(data)
}
