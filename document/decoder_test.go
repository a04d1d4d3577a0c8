package document

import (
	"testing"

	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
	"github.com/arloliu/binowl/section"
	"github.com/stretchr/testify/require"
)

func newDecoder(t *testing.T, opts ...DecoderOption) *Decoder {
	t.Helper()

	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	return dec
}

// rewriteHeader parses the header of data, applies fn and writes it back.
func rewriteHeader(t *testing.T, data []byte, fn func(h *section.DictionaryHeader)) []byte {
	t.Helper()

	var header section.DictionaryHeader
	require.NoError(t, header.Parse(data[:section.HeaderSize]))
	fn(&header)

	out := append([]byte(nil), data...)
	copy(out, header.Bytes())

	return out
}

func TestDecoder_Errors(t *testing.T) {
	valid, _ := encode(t, pizzaDocument())
	zstd, _ := encode(t, hierarchyDocument(300), WithCompression(format.CompressionZstd))

	flipped := append([]byte(nil), valid...)
	flipped[len(flipped)-1] ^= 0xFF

	badMagic := append([]byte(nil), valid...)
	badMagic[1] = 0x00

	tests := []struct {
		name string
		data []byte
		opts []DecoderOption
		want error
	}{
		{"empty", nil, nil, errs.ErrTruncated},
		{"short header", valid[:section.HeaderSize-1], nil, errs.ErrTruncated},
		{"bad magic", badMagic, nil, errs.ErrInvalidMagicNumber},
		{"checksum", flipped, nil, errs.ErrChecksumMismatch},
		{"trailing bytes", append(append([]byte(nil), valid...), 0x00), nil, errs.ErrTrailingBytes},
		{"truncated payload", valid[:len(valid)-1], nil, errs.ErrTruncated},
		{"payload limit", valid, []DecoderOption{WithMaxPayloadSize(10)}, errs.ErrPayloadTooLarge},
		{"truncated compressed payload", zstd[:len(zstd)-16], nil, errs.ErrCorruptPayload},
		{"axiom count", rewriteHeader(t, valid, func(h *section.DictionaryHeader) { h.AxiomCount++ }), nil, errs.ErrCountMismatch},
		{"iri count", rewriteHeader(t, valid, func(h *section.DictionaryHeader) { h.IRICount-- }), nil, errs.ErrCountMismatch},
		{"unknown compression", rewriteHeader(t, valid, func(h *section.DictionaryHeader) {
			h.Flag.SetCompression(format.CompressionType(0x0F))
		}), nil, errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDecoder(t, tt.opts...).Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
			require.True(t, errs.IsFormatError(err), "expected a format error, got %v", err)
		})
	}
}

func TestDecoder_SkipChecksum(t *testing.T) {
	doc := owl.Document{Axioms: []owl.Axiom{owl.Declaration{Entity: class("A")}}}
	data, _ := encode(t, doc)

	data = rewriteHeader(t, data, func(h *section.DictionaryHeader) { h.Checksum++ })

	_, err := newDecoder(t).Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	got, err := newDecoder(t, WithChecksumVerification(false)).Decode(data)
	require.NoError(t, err)
	requireSameDocument(t, doc, got)
}

// handBuilt assembles a stream with empty dictionaries and the given axiom bytes.
func handBuilt(t *testing.T, axioms int, body ...byte) []byte {
	t.Helper()

	set, err := lookup.NewSet()
	require.NoError(t, err)
	set.Freeze()

	w := encoding.NewWriter(nil)
	defer w.Release()

	require.NoError(t, set.WriteDictionaries(w))
	set.IRIs.WriteReference(w, owl.IRI{})
	w.WriteCount(0)
	w.WriteCount(axioms)
	w.WriteRaw(body)
	payload := w.Bytes()

	header := section.NewDictionaryHeader()
	require.NoError(t, header.SetCounts(0, 0, 0, axioms))
	require.NoError(t, header.Seal(payload))

	return append(header.Bytes(), payload...)
}

func TestDecoder_HandBuilt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := newDecoder(t).Decode(handBuilt(t, 0))
		require.NoError(t, err)
		require.Equal(t, owl.Document{}, got)
	})

	t.Run("invalid kind", func(t *testing.T) {
		data := handBuilt(t, 1, 0xEE)
		_, err := newDecoder(t).Decode(data)
		require.ErrorIs(t, err, errs.ErrInvalidKind)

		var fe *errs.FormatError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, len(data)-section.HeaderSize-1, fe.Offset)
	})

	t.Run("expression in axiom position", func(t *testing.T) {
		_, err := newDecoder(t).Decode(handBuilt(t, 1, uint8(owl.KindObjectIntersectionOf), 0x00))
		require.ErrorIs(t, err, errs.ErrInvalidKind)
	})

	t.Run("axiom body truncated", func(t *testing.T) {
		_, err := newDecoder(t).Decode(handBuilt(t, 1, uint8(owl.KindSubClassOf)))
		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}

func TestDecoder_Inspect(t *testing.T) {
	doc := hierarchyDocument(100)
	data, stats := encode(t, doc, WithCompression(format.CompressionS2))

	info, err := newDecoder(t).Inspect(data)
	require.NoError(t, err)
	require.Equal(t, stats.Header, info.Header)
	require.True(t, info.ChecksumOK)
	require.Equal(t, stats.NamespaceCount, info.NamespaceCount)
	require.Equal(t, stats.DictionarySize, info.DictionarySize)
	require.Equal(t, len(data)-section.HeaderSize, info.CompressedSize)

	plain, _ := encode(t, doc)
	plain[len(plain)-1] ^= 0xFF

	info, err = newDecoder(t).Inspect(plain)
	require.NoError(t, err)
	require.False(t, info.ChecksumOK)

	info, err = newDecoder(t, WithChecksumVerification(false)).Inspect(plain)
	require.NoError(t, err)
	require.True(t, info.ChecksumOK)
}
