// Package compare provides the canonical total order over owl structural values.
//
// The order dispatches on kind first, using a fixed priority table that covers
// every owl.Kind, and then compares the sub-components of two values of the same
// kind in a fixed, shape-specific field order. Entities and literals are ordered
// by their symbol table index when an Indexer is supplied; interned values sort
// before values that are not interned, and values that are not interned compare
// lexically. Without an Indexer the order is purely lexical.
//
// The order is consistent with equality: two values compare equal only when they
// are structurally identical. Sorting the same collection with comparators built
// from the same table contents always yields the same sequence, which is what
// makes encoded output byte-for-byte reproducible.
//
// Canonicalize sorts every set-valued collection inside a value (class operands,
// equivalence and disjointness sets, annotation sets and so on) so that input
// iteration order never leaks into the encoded stream.
package compare
