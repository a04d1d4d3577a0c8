package delta

import (
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
)

// Sentinel returns the flag byte that marks a value missing from the table.
// For the default width of 6 it is 0xFF.
func (t *HistoryTable) Sentinel() byte {
	return byte(format.WidthReserved)<<t.width | t.mask
}

// FlagByte returns the flag byte that precedes ref's delta on the wire.
func (t *HistoryTable) FlagByte(ref Reference) byte {
	return byte(ref.Width())<<t.width | (ref.Slot & t.mask)
}

// WriteReference encodes id and appends the flag byte and delta to w.
func (t *HistoryTable) WriteReference(w *encoding.Writer, id int) Reference {
	ref := t.Encode(id)
	t.writeCoded(w, ref)

	return ref
}

func (t *HistoryTable) writeCoded(w *encoding.Writer, ref Reference) {
	width := ref.Width()
	w.WriteUint8(t.FlagByte(ref))

	switch width {
	case format.WidthInt8:
		w.WriteInt8(int8(ref.Delta)) //nolint:gosec
	case format.WidthInt16:
		w.WriteInt16(int16(ref.Delta)) //nolint:gosec
	default:
		w.WriteInt32(ref.Delta)
	}
}

// WriteNotIndexed appends the not-indexed sentinel. The caller writes the raw value next.
func (t *HistoryTable) WriteNotIndexed(w *encoding.Writer) {
	t.stats.NotIndexed++
	w.WriteUint8(t.Sentinel())
}

// ReadReference reads a flag byte and, unless it is the not-indexed sentinel, the
// delta that follows it.
//
// The returned index is not bounds-checked; tables validate it against their size.
//
// Parameters:
//   - r: Reader positioned at a flag byte
//
// Returns:
//   - int: Decoded index
//   - bool: false when the flag byte is the sentinel and the caller must read a raw value
//   - error: Format error for a truncated delta or an unknown width class
func (t *HistoryTable) ReadReference(r *encoding.Reader) (int, bool, error) {
	start := r.Offset()

	flag, err := r.ReadUint8()
	if err != nil {
		return 0, false, err
	}

	if flag == t.Sentinel() {
		t.stats.NotIndexed++
		return 0, false, nil
	}

	ref := Reference{Slot: flag & t.mask}

	switch format.WidthClass(flag >> t.width) {
	case format.WidthInt8:
		v, err := r.ReadInt8()
		if err != nil {
			return 0, false, err
		}
		ref.Delta = int32(v)
	case format.WidthInt16:
		v, err := r.ReadInt16()
		if err != nil {
			return 0, false, err
		}
		ref.Delta = int32(v)
	case format.WidthInt32:
		v, err := r.ReadInt32()
		if err != nil {
			return 0, false, err
		}
		ref.Delta = v
	default:
		return 0, false, r.FailAt(start, "read reference", errs.ErrInvalidWidthMarker)
	}

	return t.Decode(ref), true, nil
}
