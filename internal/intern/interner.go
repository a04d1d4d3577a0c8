// Package intern assigns dense, insertion-ordered indices to comparable keys.
package intern

import (
	"math"
	"slices"

	"github.com/arloliu/binowl/errs"
)

// MaxEntries is the largest number of keys an Interner accepts. Indices must fit in a
// signed 32-bit delta on the wire.
const MaxEntries = math.MaxInt32

// Interner maps keys to indices 0..n-1 in first-seen order.
// It keeps a map for lookups and an ordered slice for index-to-key resolution.
type Interner[K comparable] struct {
	index  map[K]int // key → index
	values []K       // index → key
	limit  int
}

// New creates an empty interner with room for capacity keys.
func New[K comparable](capacity int) *Interner[K] {
	if capacity < 0 {
		capacity = 0
	}

	return &Interner[K]{
		index:  make(map[K]int, capacity),
		values: make([]K, 0, capacity),
		limit:  MaxEntries,
	}
}

// Intern returns the index of key, assigning the next index if key is new.
// The second result reports whether key was added by this call.
func (in *Interner[K]) Intern(key K) (int, bool, error) {
	if idx, ok := in.index[key]; ok {
		return idx, false, nil
	}

	if len(in.values) >= in.limit {
		return -1, false, errs.ErrTableFull
	}

	idx := len(in.values)
	in.index[key] = idx
	in.values = append(in.values, key)

	return idx, true, nil
}

// IndexOf returns the index of key without modifying the interner.
func (in *Interner[K]) IndexOf(key K) (int, bool) {
	idx, ok := in.index[key]
	return idx, ok
}

// At returns the key at idx. The boolean is false when idx is out of range.
func (in *Interner[K]) At(idx int) (K, bool) {
	if idx < 0 || idx >= len(in.values) {
		var zero K
		return zero, false
	}

	return in.values[idx], true
}

// Values returns the keys in index order. The slice must not be modified.
func (in *Interner[K]) Values() []K {
	return in.values
}

// Len returns the number of interned keys.
func (in *Interner[K]) Len() int {
	return len(in.values)
}

// Renumber reorders the keys with cmp and reassigns indices to match.
// The sort is stable, so keys that compare equal keep their interning order.
func (in *Interner[K]) Renumber(cmp func(a, b K) int) {
	slices.SortStableFunc(in.values, cmp)
	for i, k := range in.values {
		in.index[k] = i
	}
}

// Reset clears all keys but keeps allocated capacity.
func (in *Interner[K]) Reset() {
	clear(in.index)
	in.values = in.values[:0]
}
