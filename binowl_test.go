package binowl

import (
	"testing"

	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/document"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
	"github.com/stretchr/testify/require"
)

const ns = "http://example.org/onto#"

func iri(name string) owl.IRI {
	return owl.IRI{Namespace: ns, Fragment: name}
}

func TestBuildIdentifierTable(t *testing.T) {
	table, err := BuildIdentifierTable([]owl.IRI{iri("C"), iri("B"), iri("A"), iri("B")})
	require.NoError(t, err)
	require.True(t, table.Frozen())
	require.Equal(t, 3, table.Len())

	idx, ok := table.IndexOf(iri("A"))
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, err = table.Intern(iri("D"))
	require.ErrorIs(t, err, errs.ErrTableFrozen)
}

func TestBuildIdentifierTable_RoundTrip(t *testing.T) {
	ordered := []owl.IRI{iri("A"), iri("B"), owl.OWLThing.IRI}
	table, err := BuildIdentifierTable(ordered)
	require.NoError(t, err)

	w := encoding.NewWriter(nil)
	defer w.Release()
	table.WriteDictionary(w)
	for _, i := range []owl.IRI{iri("B"), iri("A"), iri("Unknown"), owl.OWLThing.IRI} {
		table.WriteReference(w, i)
	}

	r := encoding.NewReader(w.Bytes(), nil)
	read, err := lookup.ReadIdentifierTable(r)
	require.NoError(t, err)
	require.Equal(t, ordered, read.Values())

	for _, want := range []owl.IRI{iri("B"), iri("A"), iri("Unknown"), owl.OWLThing.IRI} {
		got, err := read.ReadReference(r)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.NoError(t, r.Finish())
	require.Equal(t, table.Stats(), read.Stats())
}

func TestBuildLiteralTable(t *testing.T) {
	iris, err := BuildIdentifierTable([]owl.IRI{owl.XSDInteger})
	require.NoError(t, err)

	lits := []owl.Literal{owl.NewTypedLiteral("42", owl.XSDInteger), owl.NewPlainLiteral("pizza", "en"), owl.True}
	table, err := BuildLiteralTable(iris, lits)
	require.NoError(t, err)
	require.Equal(t, lits, table.Values())

	empty, err := BuildLiteralTable(iris, lits, lookup.WithLiteralInterning(false))
	require.NoError(t, err)
	require.Zero(t, empty.Len())

	_, err = BuildLiteralTable(nil, lits)
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestNewComparator(t *testing.T) {
	iris, err := BuildIdentifierTable([]owl.IRI{iri("Z"), iri("A")})
	require.NoError(t, err)
	lits, err := BuildLiteralTable(iris, nil)
	require.NoError(t, err)

	set := &lookup.Set{IRIs: iris, Literals: lits}
	z, a := owl.Class(iri("Z")), owl.Class(iri("A"))

	require.Negative(t, NewComparator(set).Compare(z, a))
	require.Positive(t, NewComparator(nil).Compare(z, a))
	require.Equal(t, compare.Lexical().Compare(z, a), NewComparator(nil).Compare(z, a))
}

func TestEncodeDecode(t *testing.T) {
	pizza, food := owl.Class(iri("Pizza")), owl.Class(iri("Food"))
	doc := owl.Document{Axioms: []owl.Axiom{
		owl.Declaration{Entity: pizza},
		owl.SubClassOf{Sub: pizza, Super: food},
	}}

	data, err := Encode(doc, document.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, compare.Lexical().CanonicalizeDocument(doc), compare.Lexical().CanonicalizeDocument(got))

	_, err = Decode(data[:10])
	require.ErrorIs(t, err, errs.ErrTruncated)

	_, err = Encode(doc, document.WithCompression(format.CompressionType(99)))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}
