package document

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
	"github.com/arloliu/binowl/section"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, doc owl.Document, opts ...EncoderOption) ([]byte, Stats) {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	data, stats, err := enc.Encode(doc)
	require.NoError(t, err)

	return data, stats
}

func decode(t *testing.T, data []byte, opts ...DecoderOption) owl.Document {
	t.Helper()

	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	doc, err := dec.Decode(data)
	require.NoError(t, err)

	return doc
}

func requireSameDocument(t *testing.T, want, got owl.Document) {
	t.Helper()

	lex := compare.Lexical()
	require.Equal(t, lex.CanonicalizeDocument(want), lex.CanonicalizeDocument(got))
}

func TestEncoder_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts []EncoderOption
	}{
		{"default", nil},
		{"little endian", []EncoderOption{WithLittleEndian()}},
		{"sorted", []EncoderOption{WithSortedDictionary(true)}},
		{"no literal interning", []EncoderOption{WithLiteralInterning(false)}},
		{"zstd", []EncoderOption{WithCompression(format.CompressionZstd)}},
		{"s2", []EncoderOption{WithCompression(format.CompressionS2)}},
		{"lz4", []EncoderOption{WithCompression(format.CompressionLZ4)}},
		{"everything", []EncoderOption{
			WithLittleEndian(), WithSortedDictionary(true), WithLiteralInterning(false),
			WithCompression(format.CompressionZstd),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := pizzaDocument()
			data, stats := encode(t, doc, tt.opts...)
			require.Len(t, data, stats.EncodedSize)

			got := decode(t, data)
			requireSameDocument(t, doc, got)
			require.Equal(t, doc.IRI, got.IRI)
			require.Len(t, got.Axioms, len(doc.Axioms))

			// decoding then encoding again is a fixed point
			again, _ := encode(t, got, tt.opts...)
			require.Equal(t, data, again)
		})
	}
}

func TestEncoder_HeaderReflectsOptions(t *testing.T) {
	doc := pizzaDocument()

	data, stats := encode(t, doc, WithLittleEndian(), WithSortedDictionary(true), WithLiteralInterning(false))

	var header section.DictionaryHeader
	require.NoError(t, header.Parse(data[:section.HeaderSize]))
	require.Equal(t, stats.Header, header)
	require.True(t, header.Flag.IsLittleEndian())
	require.True(t, header.Flag.IsSorted())
	require.False(t, header.Flag.HasLiteralInterning())
	require.Equal(t, format.CompressionNone, header.Flag.GetCompression())
	require.Equal(t, uint32(len(doc.Axioms)), header.AxiomCount)
	require.Zero(t, header.LiteralCount)
	require.Equal(t, uint32(len(data)-section.HeaderSize), header.PayloadSize)
}

func TestEncoder_Deterministic(t *testing.T) {
	doc := pizzaDocument()
	want, _ := encode(t, doc)

	rng := rand.New(rand.NewPCG(7, 11)) //nolint:gosec
	for range 10 {
		shuffled := doc
		shuffled.Axioms = append([]owl.Axiom(nil), doc.Axioms...)
		rng.Shuffle(len(shuffled.Axioms), func(i, j int) {
			shuffled.Axioms[i], shuffled.Axioms[j] = shuffled.Axioms[j], shuffled.Axioms[i]
		})

		got, _ := encode(t, shuffled)
		require.Equal(t, want, got)
	}
}

func TestEncoder_SetOrderIrrelevant(t *testing.T) {
	a, b, c := class("A"), class("B"), class("C")
	p, q := owl.ObjectProperty(iri("p")), owl.DataProperty(iri("q"))

	first := owl.Document{Axioms: []owl.Axiom{
		owl.DisjointClasses(a, b, c),
		owl.HasKey{Class: a, Properties: []owl.Object{p, q}},
		owl.SubClassOf{Sub: a, Super: owl.ObjectIntersectionOf(b, c), Annotations: []owl.Annotation{label("x"), label("y")}},
	}}
	second := owl.Document{Axioms: []owl.Axiom{
		owl.SubClassOf{Sub: a, Super: owl.ObjectIntersectionOf(c, b), Annotations: []owl.Annotation{label("y"), label("x")}},
		owl.HasKey{Class: a, Properties: []owl.Object{q, p}},
		owl.DisjointClasses(c, a, b),
	}}

	x, _ := encode(t, first)
	y, _ := encode(t, second)
	require.Equal(t, x, y)
}

func TestEncoder_PunnedDeclarationsAreOrderIndependent(t *testing.T) {
	asClass := owl.Declaration{Entity: class("A")}
	asProperty := owl.Declaration{Entity: owl.ObjectProperty(iri("A"))}

	x, _ := encode(t, owl.Document{Axioms: []owl.Axiom{asClass, asProperty}})
	y, _ := encode(t, owl.Document{Axioms: []owl.Axiom{asProperty, asClass}})
	require.Equal(t, x, y)

	got := decode(t, x)
	require.Equal(t, []owl.Axiom{asClass, asProperty}, got.Axioms)
}

func TestEncoder_InternsInDependencyOrder(t *testing.T) {
	a, b, c := class("A"), class("B"), class("C")
	doc := owl.Document{Axioms: []owl.Axiom{
		owl.SubClassOf{Sub: a, Super: b},
		owl.SubClassOf{Sub: b, Super: c},
	}}

	data, _ := encode(t, doc)
	set := readSet(t, data)
	require.Equal(t, []owl.IRI{c.IRI, b.IRI, a.IRI}, set.IRIs.Values())

	data, _ = encode(t, doc, WithSortedDictionary(true))
	set = readSet(t, data)
	require.Equal(t, []owl.IRI{a.IRI, b.IRI, c.IRI}, set.IRIs.Values())
}

func readSet(t *testing.T, data []byte) *lookup.Set {
	t.Helper()

	var header section.DictionaryHeader
	require.NoError(t, header.Parse(data[:section.HeaderSize]))

	set, err := lookup.ReadSet(encoding.NewReader(data[section.HeaderSize:], header.GetEndianEngine()))
	require.NoError(t, err)

	return set
}

func TestEncoder_Compression(t *testing.T) {
	doc := hierarchyDocument(500)
	plain, plainStats := encode(t, doc)
	require.Equal(t, format.CompressionNone, plainStats.Compression.Algorithm)
	require.InDelta(t, 1.0, plainStats.Compression.CompressionRatio(), 1e-9)

	for _, comp := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(comp.String(), func(t *testing.T) {
			data, stats := encode(t, doc, WithCompression(comp))
			require.Equal(t, comp, stats.Compression.Algorithm)
			require.Equal(t, comp, stats.Header.Flag.GetCompression())
			require.Less(t, len(data), len(plain))
			require.Less(t, stats.Compression.CompressionRatio(), 1.0)
			require.Equal(t, plainStats.Header.Checksum, stats.Header.Checksum)

			requireSameDocument(t, doc, decode(t, data))
		})
	}
}

func TestEncoder_IncompressibleFallsBack(t *testing.T) {
	doc := owl.Document{Axioms: []owl.Axiom{owl.Declaration{Entity: class("A")}}}

	data, stats := encode(t, doc, WithCompression(format.CompressionLZ4))
	require.Equal(t, format.CompressionNone, stats.Compression.Algorithm)
	require.Equal(t, format.CompressionNone, stats.Header.Flag.GetCompression())
	requireSameDocument(t, doc, decode(t, data))
}

func TestEncoder_Stats(t *testing.T) {
	doc := hierarchyDocument(64)
	_, stats := encode(t, doc)

	require.GreaterOrEqual(t, stats.NamespaceCount, 2)
	require.Greater(t, stats.Header.IRICount, uint32(64))
	require.Equal(t, uint32(64), stats.Header.AnnotationCount)
	require.Positive(t, stats.DictionarySize)

	total := stats.Tables.Total()
	require.Positive(t, total.References)
	require.Equal(t, total.References, total.Int8+total.Int16+total.Int32)
	require.Zero(t, stats.Tables.IRIs.NotIndexed)
}

func TestEncoder_EmptyDocument(t *testing.T) {
	data, stats := encode(t, owl.Document{})
	require.Zero(t, stats.Header.AxiomCount)
	require.Zero(t, stats.Header.IRICount)

	got := decode(t, data)
	require.Equal(t, owl.Document{}, got)
}

type foreignAxiom struct{}

func (foreignAxiom) Kind() owl.Kind                     { return owl.KindSubClassOf }
func (foreignAxiom) String() string                     { return "Foreign()" }
func (foreignAxiom) AxiomAnnotations() []owl.Annotation { return nil }

func TestEncoder_UnsupportedValues(t *testing.T) {
	tests := []struct {
		name string
		ax   owl.Axiom
	}{
		{"foreign axiom", foreignAxiom{}},
		{"entity with axiom kind", owl.Declaration{Entity: owl.Entity{Type: owl.KindSubClassOf, IRI: iri("A")}}},
		{"inverse of data property", owl.SubClassOf{
			Sub:   class("A"),
			Super: owl.ObjectSomeValuesFrom(owl.ObjectInverseOf{Property: owl.DataProperty(iri("p"))}, class("B")),
		}},
		{"restriction on a class", owl.DatatypeDefinition{
			Datatype: owl.Datatype(iri("D")),
			Range:    owl.DatatypeRestriction{Datatype: owl.Class(iri("C"))},
		}},
		{"definition of a class", owl.DatatypeDefinition{Datatype: owl.Class(iri("D")), Range: owl.Datatype(owl.XSDInteger)}},
		{"annotation on a data property", owl.Declaration{
			Entity:      class("A"),
			Annotations: []owl.Annotation{{Property: owl.DataProperty(iri("p")), Value: iri("x")}},
		}},
		{"missing component", owl.SubClassOf{Sub: class("A")}},
		{"negative cardinality", owl.SubClassOf{Sub: class("A"), Super: owl.ObjectMinCardinality(-1, owl.ObjectProperty(iri("p")), class("B"))}},
	}

	enc, err := NewEncoder()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := enc.Encode(owl.Document{Axioms: []owl.Axiom{tt.ax}})
			require.ErrorIs(t, err, errs.ErrUnsupportedKind)
		})
	}
}

func TestEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0x42)))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)

	_, err = NewDecoder(WithMaxPayloadSize(0))
	require.ErrorIs(t, err, errs.ErrInvalidConfig)
}

func TestEncoder_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data, _ := encode(t, pizzaDocument(), WithLogger(logger))
	require.Contains(t, buf.String(), `"msg":"wrote dictionaries"`)
	require.Contains(t, buf.String(), `"msg":"encoded document"`)

	buf.Reset()
	decode(t, data, WithDecoderLogger(logger))
	require.Contains(t, buf.String(), `"msg":"decoded document"`)

	// nil restores the silent default
	buf.Reset()
	encode(t, pizzaDocument(), WithLogger(logger), WithLogger(nil))
	require.Zero(t, buf.Len())
}

func BenchmarkEncoder_Encode(b *testing.B) {
	doc := hierarchyDocument(2000)
	enc, err := NewEncoder()
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		_, _, _ = enc.Encode(doc)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	enc, err := NewEncoder()
	require.NoError(b, err)
	data, _, err := enc.Encode(hierarchyDocument(2000))
	require.NoError(b, err)

	dec, err := NewDecoder()
	require.NoError(b, err)

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for b.Loop() {
		_, _ = dec.Decode(data)
	}
}
