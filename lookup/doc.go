// Package lookup implements the symbol tables of the binowl format.
//
// A symbol table assigns dense indices to values in the order they are first
// interned, writes the whole dictionary once, and afterwards writes each
// reference to a value as a delta-coded index (see package delta). Values that
// were never interned are written verbatim after the not-indexed sentinel, so
// every value can always be referenced.
//
// Three tables are provided:
//
//   - IdentifierTable interns IRIs and keeps a secondary namespace table so the
//     dictionary stores a namespace index plus a fragment.
//   - LiteralTable interns literals. Plain literals, xsd:string and the two
//     canonical booleans get dedicated one-byte markers; every other datatype is
//     written as an IRI reference into the identifier table.
//   - Table is a generic table parametrized by a key function and a ValueCodec.
//     AnnotationCodec makes it an annotation table.
//
// # Lifecycle
//
// A table is populated by interning, then frozen. Freezing sizes the delta
// history table with the final entry count and, when WithSortedDictionary is
// set, renumbers the entries in lexical order. The first WriteDictionary or
// WriteReference freezes a table implicitly. Interning into a frozen table
// returns errs.ErrTableFrozen.
//
// Reading a dictionary yields a frozen table whose delta state matches the
// writer's state right after it wrote the same dictionary, so references can
// be read back in lockstep.
//
// Tables are not safe for concurrent use and must not be shared between documents.
//
// # Usage
//
//	iris, _ := lookup.NewIdentifierTable()
//	_, _ = iris.Intern(owl.NewIRI("http://example.org/onto#A"))
//
//	w := encoding.NewWriter(nil)
//	iris.WriteDictionary(w)
//	iris.WriteReference(w, owl.NewIRI("http://example.org/onto#A"))
//
//	r := encoding.NewReader(w.Bytes(), nil)
//	decoded, _ := lookup.ReadIdentifierTable(r)
//	iri, _ := decoded.ReadReference(r)
package lookup
