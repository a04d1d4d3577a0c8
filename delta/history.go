package delta

import (
	"math"

	"github.com/arloliu/binowl/format"
)

// Slot is one predictor of a HistoryTable.
type Slot struct {
	// Value is the index this slot currently predicts.
	Value int
	// Previous is the value before the last close-match update. Only meaningful
	// when HasPrevious is true.
	Previous    int
	HasPrevious bool
	// Stamp is the logical time of the last refresh. Zero means never used.
	Stamp uint64
	// Valid is false for slots cleared by stride eviction. Cleared slots are
	// skipped when searching for the closest value and are evicted first.
	Valid bool
}

// Reference is a coded index: the slot used as predictor and the signed delta from
// that slot's value.
type Reference struct {
	Slot  uint8
	Delta int32
}

// Width returns the smallest width class that represents the delta exactly.
func (r Reference) Width() format.WidthClass {
	switch {
	case r.Delta >= math.MinInt8 && r.Delta <= math.MaxInt8:
		return format.WidthInt8
	case r.Delta >= math.MinInt16 && r.Delta <= math.MaxInt16:
		return format.WidthInt16
	default:
		return format.WidthInt32
	}
}

// HistoryTable is a fixed-size arena of slots with an index-based recency counter.
type HistoryTable struct {
	width    uint8
	mask     uint8
	negClose int
	posClose int
	slots    []Slot
	clock    uint64
	stats    Stats
}

// NewHistoryTable creates a table with 1<<cfg.Width slots seeded evenly across
// [0, cfg.MaxValue).
//
// Parameters:
//   - cfg: Slot-count exponent, index universe size and near-miss window
//
// Returns:
//   - *HistoryTable: Table ready to encode or decode references
//   - error: ErrInvalidConfig when cfg fails Validate
func NewHistoryTable(cfg Config) (*HistoryTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	count := 1 << cfg.Width
	t := &HistoryTable{
		width:    cfg.Width,
		mask:     uint8(count - 1), //nolint:gosec
		negClose: cfg.NegativeClose,
		posClose: cfg.PositiveClose,
		slots:    make([]Slot, count),
	}

	for i := range t.slots {
		t.slots[i] = Slot{
			Value: int(int64(i) * int64(cfg.MaxValue) / int64(count)),
			Valid: true,
		}
	}

	return t, nil
}

// MustNewHistoryTable is like NewHistoryTable but panics on an invalid configuration.
func MustNewHistoryTable(cfg Config) *HistoryTable {
	t, err := NewHistoryTable(cfg)
	if err != nil {
		panic(err)
	}

	return t
}

// Width returns the slot-count exponent.
func (t *HistoryTable) Width() uint8 {
	return t.width
}

// Len returns the number of slots.
func (t *HistoryTable) Len() int {
	return len(t.slots)
}

// Slots returns a copy of the current slot state.
func (t *HistoryTable) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)

	return out
}

// Stats returns the usage counters accumulated so far.
func (t *HistoryTable) Stats() Stats {
	return t.stats
}

// Encode codes id against the closest slot and applies the update policy.
//
// Parameters:
//   - id: Index to code, in [0, math.MaxInt32]
//
// Returns:
//   - Reference: Slot index and signed delta from that slot's value
func (t *HistoryTable) Encode(id int) Reference {
	if id < 0 || id > math.MaxInt32 {
		panic("delta: index out of range")
	}

	slot := t.closest(id)
	d := id - t.slots[slot].Value
	t.update(id, slot, d)

	return Reference{Slot: uint8(slot), Delta: int32(d)} //nolint:gosec
}

// Decode reconstructs the index coded by ref and applies the same update policy
// Encode applied on the writer side.
func (t *HistoryTable) Decode(ref Reference) int {
	slot := int(ref.Slot & t.mask)
	id := t.slots[slot].Value + int(ref.Delta)
	t.update(id, slot, int(ref.Delta))

	return id
}

// closest returns the first valid slot with the smallest distance to id.
// At least one slot is always valid: stride eviction never clears the slot it updates.
func (t *HistoryTable) closest(id int) int {
	best := -1
	bestDist := int64(math.MaxInt64)

	for i := range t.slots {
		s := &t.slots[i]
		if !s.Valid {
			continue
		}

		dist := int64(id) - int64(s.Value)
		if dist < 0 {
			dist = -dist
		}

		if dist < bestDist {
			best, bestDist = i, dist
			if dist == 0 {
				break
			}
		}
	}

	return best
}

func (t *HistoryTable) update(id int, slot int, d int) {
	s := &t.slots[slot]

	switch {
	case d == 0:
		t.stats.ExactHits++
		s.Stamp = t.tick()

	case d >= t.negClose && d <= t.posClose:
		t.stats.CloseHits++
		if s.HasPrevious && d == s.Value-s.Previous {
			t.evictRedundant(slot, id+d)
		}
		s.Previous, s.HasPrevious = s.Value, true
		s.Value = id
		s.Stamp = t.tick()

	default:
		t.stats.Misses++
		lru := t.leastRecentlyUsed()
		t.slots[lru] = Slot{Value: id, Stamp: t.tick(), Valid: true}
	}

	t.stats.References++
	t.stats.countWidth(Reference{Delta: int32(d)}.Width()) //nolint:gosec
}

// evictRedundant clears every slot other than keep that already predicts next.
func (t *HistoryTable) evictRedundant(keep int, next int) {
	for i := range t.slots {
		if i == keep {
			continue
		}

		s := &t.slots[i]
		if s.Valid && s.Value == next {
			*s = Slot{Value: s.Value}
			t.stats.StrideEvictions++
		}
	}
}

// leastRecentlyUsed returns the first slot with the minimum stamp. Cleared slots
// have stamp zero and are therefore reused before any live slot.
func (t *HistoryTable) leastRecentlyUsed() int {
	lru := 0
	for i := 1; i < len(t.slots); i++ {
		if t.slots[i].Stamp < t.slots[lru].Stamp {
			lru = i
		}
	}

	return lru
}

func (t *HistoryTable) tick() uint64 {
	t.clock++
	return t.clock
}
