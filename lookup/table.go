package lookup

import (
	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
)

// ValueCodec writes and reads the raw form of a table value.
type ValueCodec[T any] interface {
	WriteValue(w *encoding.Writer, v T) error
	ReadValue(r *encoding.Reader) (T, error)
}

// ValueComparer is implemented by codecs whose values can be sorted. Tables
// built with WithSortedDictionary use it when they are frozen.
type ValueComparer[T any] interface {
	CompareValues(a, b T) int
}

// Table is a generic symbol table. Values are identified by key(v), so values
// that are not comparable, such as annotations, can still be interned.
//
// Dictionary layout: uvarint count, then count raw values.
type Table[T any, K comparable] struct {
	state[K]
	key    func(T) K
	codec  ValueCodec[T]
	values map[K]T
}

// NewTable creates an empty table. window returns the delta configuration for a
// table of the given size, e.g. delta.AnnotationConfig.
func NewTable[T any, K comparable](name string, key func(T) K, codec ValueCodec[T],
	window func(maxValue int) delta.Config, opts ...TableOption,
) (*Table[T, K], error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return newTable(name, key, codec, window, cfg), nil
}

func newTable[T any, K comparable](name string, key func(T) K, codec ValueCodec[T],
	window func(maxValue int) delta.Config, cfg *TableConfig,
) *Table[T, K] {
	return &Table[T, K]{
		state:  newState[K](name, cfg, window),
		key:    key,
		codec:  codec,
		values: make(map[K]T, cfg.capacity),
	}
}

// Intern returns the index of v, assigning the next index if it is new.
func (t *Table[T, K]) Intern(v T) (int, error) {
	k := t.key(v)

	idx, added, err := t.intern(k)
	if err != nil {
		return -1, err
	}
	if added {
		t.values[k] = v
	}

	return idx, nil
}

// IndexOf returns the index of v. It never modifies the table.
func (t *Table[T, K]) IndexOf(v T) (int, bool) {
	return t.keys.IndexOf(t.key(v))
}

// At returns the value at idx.
func (t *Table[T, K]) At(idx int) (T, bool) {
	k, ok := t.keys.At(idx)
	if !ok {
		var zero T
		return zero, false
	}

	return t.values[k], true
}

// Values returns the interned values in index order.
func (t *Table[T, K]) Values() []T {
	keys := t.keys.Values()
	out := make([]T, len(keys))
	for i, k := range keys {
		out[i] = t.values[k]
	}

	return out
}

// Len returns the number of interned values.
func (t *Table[T, K]) Len() int {
	return t.keys.Len()
}

// Frozen reports whether the table accepts no more entries.
func (t *Table[T, K]) Frozen() bool {
	return t.frozen()
}

// Freeze finalizes the indices.
func (t *Table[T, K]) Freeze() {
	t.freeze(t.compareKeys())
}

// Stats returns the delta statistics of the references written or read so far.
func (t *Table[T, K]) Stats() delta.Stats {
	return t.stats()
}

func (t *Table[T, K]) compareKeys() func(a, b K) int {
	c, ok := t.codec.(ValueComparer[T])
	if !ok {
		return nil
	}

	return func(a, b K) int {
		return c.CompareValues(t.values[a], t.values[b])
	}
}

// WriteDictionary freezes the table and writes its dictionary to w.
func (t *Table[T, K]) WriteDictionary(w *encoding.Writer) error {
	t.Freeze()

	w.WriteCount(t.keys.Len())
	for _, k := range t.keys.Values() {
		if err := t.codec.WriteValue(w, t.values[k]); err != nil {
			return err
		}
	}

	return nil
}

// ReadTable reads a dictionary written by WriteDictionary and returns a frozen table.
func ReadTable[T any, K comparable](r *encoding.Reader, name string, key func(T) K, codec ValueCodec[T],
	window func(maxValue int) delta.Config, opts ...TableOption,
) (*Table[T, K], error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.sorted = false

	t := newTable(name, key, codec, window, cfg)
	if err := t.readDictionary(r); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table[T, K]) readDictionary(r *encoding.Reader) error {
	count, err := r.ReadCount()
	if err != nil {
		return err
	}

	for range count {
		start := r.Offset()
		v, err := t.codec.ReadValue(r)
		if err != nil {
			return err
		}

		k := t.key(v)
		if err := t.load(r, start, k); err != nil {
			return err
		}
		t.values[k] = v
	}

	t.freeze(nil)

	return nil
}

// WriteReference writes a reference to v, falling back to the raw form when v
// is not interned. The first call freezes the table.
func (t *Table[T, K]) WriteReference(w *encoding.Writer, v T) error {
	t.Freeze()

	if t.writeIndex(w, t.key(v), nil) {
		return nil
	}

	return t.codec.WriteValue(w, v)
}

// ReadReference reads a reference written by WriteReference.
func (t *Table[T, K]) ReadReference(r *encoding.Reader) (T, error) {
	t.Freeze()

	idx, ok, err := t.readIndex(r, nil)
	if err != nil {
		var zero T
		return zero, err
	}

	if ok {
		v, _ := t.At(idx)
		return v, nil
	}

	return t.codec.ReadValue(r)
}
