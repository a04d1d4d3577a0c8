package delta

import (
	"math/rand"
	"testing"

	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/endian"
	"github.com/arloliu/binowl/errs"
	"github.com/stretchr/testify/require"
)

func TestHistoryTable_Sentinel(t *testing.T) {
	require.Equal(t, byte(0xFF), MustNewHistoryTable(IdentifierConfig(0)).Sentinel())
	require.Equal(t, byte(0x3F), MustNewHistoryTable(Config{Width: 4}).Sentinel())
	require.Equal(t, byte(0x07), MustNewHistoryTable(Config{Width: 1}).Sentinel())
}

func TestHistoryTable_WriteReference_WireBytes(t *testing.T) {
	table := MustNewHistoryTable(IdentifierConfig(0)) // every slot seeded at 0
	w := encoding.NewWriter(endian.GetBigEndianEngine())
	defer w.Release()

	table.WriteReference(w, 5)      // miss, slot 0 becomes 5
	table.WriteReference(w, 1000)   // slot 0 delta 995, slot 1 becomes 1000
	table.WriteReference(w, 100000) // slot 1 delta 99000
	table.WriteNotIndexed(w)

	require.Equal(t, []byte{
		0x00, 0x05,
		0x40, 0x03, 0xE3,
		0x81, 0x00, 0x01, 0x82, 0xB8,
		0xFF,
	}, w.Bytes())

	stats := table.Stats()
	require.Equal(t, 3, stats.References)
	require.Equal(t, 1, stats.Int8)
	require.Equal(t, 1, stats.Int16)
	require.Equal(t, 1, stats.Int32)
	require.Equal(t, 1, stats.NotIndexed)
	require.Equal(t, w.Len(), stats.Bytes())
}

func TestHistoryTable_ReadReference_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, engine := range []endian.EndianEngine{endian.GetBigEndianEngine(), endian.GetLittleEndianEngine()} {
		const universe = 1 << 18
		enc := MustNewHistoryTable(LiteralConfig(universe))
		w := encoding.NewWriter(engine)

		ids := make([]int, 0, 3000)
		for i := range 3000 {
			var id int
			switch {
			case i%10 == 0:
				id = rng.Intn(universe)
			case i%3 == 0 && len(ids) > 0:
				id = ids[len(ids)-1]
			default:
				id = (i * 7) % universe
			}
			ids = append(ids, id)

			if i%97 == 0 {
				enc.WriteNotIndexed(w)
				continue
			}
			enc.WriteReference(w, id)
		}

		dec := MustNewHistoryTable(LiteralConfig(universe))
		r := encoding.NewReader(append([]byte(nil), w.Bytes()...), engine)
		w.Release()

		for i, want := range ids {
			got, indexed, err := dec.ReadReference(r)
			require.NoError(t, err)
			if i%97 == 0 {
				require.False(t, indexed)
				continue
			}
			require.True(t, indexed)
			require.Equal(t, want, got, "reference %d", i)
		}

		require.NoError(t, r.Finish())
		require.Equal(t, enc.Stats(), dec.Stats())
		require.Equal(t, enc.Slots(), dec.Slots())
	}
}

func TestHistoryTable_ReadReference_InvalidWidthMarker(t *testing.T) {
	table := MustNewHistoryTable(IdentifierConfig(10))
	r := encoding.NewReader([]byte{0xC0, 0x00}, nil)

	_, _, err := table.ReadReference(r)
	require.ErrorIs(t, err, errs.ErrInvalidWidthMarker)

	var fe *errs.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 0, fe.Offset)
}

func TestHistoryTable_ReadReference_InvalidClassForNarrowTable(t *testing.T) {
	table := MustNewHistoryTable(Config{Width: 4, MaxValue: 10})

	// class 4 does not exist for a 4-bit slot field
	_, _, err := table.ReadReference(encoding.NewReader([]byte{0x40, 0x00}, nil))
	require.ErrorIs(t, err, errs.ErrInvalidWidthMarker)
}

func TestHistoryTable_ReadReference_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"int8 delta missing", []byte{0x00}},
		{"int16 delta short", []byte{0x40, 0x01}},
		{"int32 delta short", []byte{0x80, 0x00, 0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := MustNewHistoryTable(IdentifierConfig(10))
			_, _, err := table.ReadReference(encoding.NewReader(tt.data, nil))
			require.ErrorIs(t, err, errs.ErrTruncated)
		})
	}
}

func BenchmarkHistoryTable_WriteReference(b *testing.B) {
	table := MustNewHistoryTable(IdentifierConfig(1 << 16))
	w := encoding.NewWriter(nil)
	defer w.Release()

	id := 0
	for b.Loop() {
		id = (id + 1) & 0xFFFF
		table.WriteReference(w, id)
		if w.Len() > 1<<20 {
			w.Reset()
		}
	}
}
