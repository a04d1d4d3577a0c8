package lookup

import (
	"fmt"

	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/internal/intern"
)

// state is the interning and delta bookkeeping shared by every table.
type state[K comparable] struct {
	name    string
	keys    *intern.Interner[K]
	window  func(maxValue int) delta.Config
	width   uint8
	sorted  bool
	history *delta.HistoryTable
}

func newState[K comparable](name string, cfg *TableConfig, window func(int) delta.Config) state[K] {
	return state[K]{
		name:   name,
		keys:   intern.New[K](cfg.capacity),
		window: window,
		width:  cfg.width,
		sorted: cfg.sorted,
	}
}

func (s *state[K]) frozen() bool {
	return s.history != nil
}

func (s *state[K]) intern(key K) (int, bool, error) {
	if s.frozen() {
		if idx, ok := s.keys.IndexOf(key); ok {
			return idx, false, nil
		}

		return -1, false, fmt.Errorf("%w: %s table", errs.ErrTableFrozen, s.name)
	}

	idx, added, err := s.keys.Intern(key)
	if err != nil {
		return -1, false, fmt.Errorf("%w: %s table", err, s.name)
	}

	return idx, added, nil
}

// freeze renumbers with cmp when sorting is enabled and creates the history table.
// It is a no-op on a frozen table.
func (s *state[K]) freeze(cmp func(a, b K) int) {
	if s.frozen() {
		return
	}

	if s.sorted && cmp != nil {
		s.keys.Renumber(cmp)
	}

	cfg := s.window(s.keys.Len())
	cfg.Width = s.width
	s.history = delta.MustNewHistoryTable(cfg)
}

// writeIndex writes a delta-coded reference to key, or the not-indexed sentinel.
// It reports whether the key was found; the caller writes the raw value otherwise.
func (s *state[K]) writeIndex(w *encoding.Writer, key K, cmp func(a, b K) int) bool {
	s.freeze(cmp)

	idx, ok := s.keys.IndexOf(key)
	if !ok {
		s.history.WriteNotIndexed(w)
		return false
	}

	s.history.WriteReference(w, idx)

	return true
}

// readIndex reads a reference and validates the index against the table size.
// The boolean is false when a raw value follows.
func (s *state[K]) readIndex(r *encoding.Reader, cmp func(a, b K) int) (int, bool, error) {
	s.freeze(cmp)

	start := r.Offset()
	idx, ok, err := s.history.ReadReference(r)
	if err != nil || !ok {
		return 0, false, err
	}

	if idx < 0 || idx >= s.keys.Len() {
		return 0, false, r.FailAt(start, "read "+s.name+" reference", errs.ErrIndexOutOfRange)
	}

	return idx, true, nil
}

// load interns a key read from a dictionary. Duplicates mean a corrupt stream.
func (s *state[K]) load(r *encoding.Reader, start int, key K) error {
	_, added, err := s.keys.Intern(key)
	if err != nil {
		return r.FailAt(start, "read "+s.name+" dictionary", err)
	}
	if !added {
		return r.FailAt(start, "read "+s.name+" dictionary", errs.ErrDuplicateEntry)
	}

	return nil
}

func (s *state[K]) stats() delta.Stats {
	if s.history == nil {
		return delta.Stats{}
	}

	return s.history.Stats()
}
