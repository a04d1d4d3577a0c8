package delta

import "github.com/arloliu/binowl/format"

// Stats counts how a table has been used. Reader and writer tables that processed
// the same stream report identical statistics.
type Stats struct {
	// References is the number of indexed references encoded or decoded.
	References int
	// Int8, Int16 and Int32 count references by delta width class.
	Int8  int
	Int16 int
	Int32 int
	// ExactHits, CloseHits and Misses count the update policy that was applied.
	ExactHits int
	CloseHits int
	Misses    int
	// StrideEvictions counts slots cleared because a stride run made them redundant.
	StrideEvictions int
	// NotIndexed counts verbatim fallbacks.
	NotIndexed int
}

// Bytes returns the number of bytes the counted references occupy on the wire,
// excluding the raw values that follow not-indexed markers.
func (s Stats) Bytes() int {
	return s.Int8*(1+format.WidthInt8.Size()) +
		s.Int16*(1+format.WidthInt16.Size()) +
		s.Int32*(1+format.WidthInt32.Size()) +
		s.NotIndexed
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		References:      s.References + o.References,
		Int8:            s.Int8 + o.Int8,
		Int16:           s.Int16 + o.Int16,
		Int32:           s.Int32 + o.Int32,
		ExactHits:       s.ExactHits + o.ExactHits,
		CloseHits:       s.CloseHits + o.CloseHits,
		Misses:          s.Misses + o.Misses,
		StrideEvictions: s.StrideEvictions + o.StrideEvictions,
		NotIndexed:      s.NotIndexed + o.NotIndexed,
	}
}

func (s *Stats) countWidth(w format.WidthClass) {
	switch w {
	case format.WidthInt8:
		s.Int8++
	case format.WidthInt16:
		s.Int16++
	default:
		s.Int32++
	}
}
