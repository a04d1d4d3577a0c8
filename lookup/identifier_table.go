package lookup

import (
	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/internal/intern"
	"github.com/arloliu/binowl/owl"
)

// IdentifierTable interns IRIs. Its dictionary stores each distinct namespace once.
//
// Dictionary layout:
//
//	uvarint nsCount, nsCount x string namespace,
//	uvarint iriCount, iriCount x uvarint nsIndex, iriCount x string fragment
//
// A reference to an IRI that is not interned is the sentinel flag byte followed by
// the namespace and fragment strings.
type IdentifierTable struct {
	state[owl.IRI]
	namespaces *intern.Interner[string]
}

// NewIdentifierTable creates an empty identifier table.
func NewIdentifierTable(opts ...TableOption) (*IdentifierTable, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &IdentifierTable{
		state:      newState[owl.IRI]("identifier", cfg, delta.IdentifierConfig),
		namespaces: intern.New[string](0),
	}, nil
}

// Intern returns the index of iri, assigning the next index if it is new.
func (t *IdentifierTable) Intern(iri owl.IRI) (int, error) {
	idx, _, err := t.intern(iri)
	return idx, err
}

// IndexOf returns the index of iri. It never modifies the table.
func (t *IdentifierTable) IndexOf(iri owl.IRI) (int, bool) {
	return t.keys.IndexOf(iri)
}

// At returns the IRI at idx.
func (t *IdentifierTable) At(idx int) (owl.IRI, bool) {
	return t.keys.At(idx)
}

// Values returns the interned IRIs in index order. The slice must not be modified.
func (t *IdentifierTable) Values() []owl.IRI {
	return t.keys.Values()
}

// Len returns the number of interned IRIs.
func (t *IdentifierTable) Len() int {
	return t.keys.Len()
}

// NamespaceCount returns the number of distinct namespaces. It is only final
// once the table is frozen.
func (t *IdentifierTable) NamespaceCount() int {
	return t.namespaces.Len()
}

// Frozen reports whether the table accepts no more entries.
func (t *IdentifierTable) Frozen() bool {
	return t.frozen()
}

// Freeze finalizes the indices and builds the namespace table.
func (t *IdentifierTable) Freeze() {
	if t.frozen() {
		return
	}

	t.freeze(owl.IRI.Compare)
	t.indexNamespaces()
}

// Stats returns the delta statistics of the references written or read so far.
func (t *IdentifierTable) Stats() delta.Stats {
	return t.stats()
}

func (t *IdentifierTable) indexNamespaces() {
	t.namespaces.Reset()
	for _, iri := range t.keys.Values() {
		_, _, _ = t.namespaces.Intern(iri.Namespace)
	}
}

// WriteDictionary freezes the table and writes its dictionary to w.
func (t *IdentifierTable) WriteDictionary(w *encoding.Writer) {
	t.Freeze()

	w.WriteCount(t.namespaces.Len())
	for _, ns := range t.namespaces.Values() {
		w.WriteString(ns)
	}

	iris := t.keys.Values()
	w.WriteCount(len(iris))
	for _, iri := range iris {
		nsIdx, _ := t.namespaces.IndexOf(iri.Namespace)
		w.WriteCount(nsIdx)
	}
	for _, iri := range iris {
		w.WriteString(iri.Fragment)
	}
}

// ReadIdentifierTable reads a dictionary written by WriteDictionary and returns
// a frozen table. Only WithDeltaWidth is relevant on the read side.
func ReadIdentifierTable(r *encoding.Reader, opts ...TableOption) (*IdentifierTable, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.sorted = false

	t := &IdentifierTable{
		state:      newState[owl.IRI]("identifier", cfg, delta.IdentifierConfig),
		namespaces: intern.New[string](0),
	}

	nsCount, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	for range nsCount {
		start := r.Offset()
		ns, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		if _, added, _ := t.namespaces.Intern(ns); !added {
			return nil, r.FailAt(start, "read namespace table", errs.ErrDuplicateEntry)
		}
	}

	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}

	nsIndices := make([]int, count)
	for i := range nsIndices {
		if nsIndices[i], err = r.ReadIndex(nsCount); err != nil {
			return nil, err
		}
	}

	for _, nsIdx := range nsIndices {
		start := r.Offset()
		fragment, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		ns, _ := t.namespaces.At(nsIdx)
		if err := t.load(r, start, owl.IRI{Namespace: ns, Fragment: fragment}); err != nil {
			return nil, err
		}
	}

	t.freeze(nil)

	return t, nil
}

// WriteReference writes a reference to iri, falling back to the verbatim form
// when iri is not interned. The first call freezes the table.
func (t *IdentifierTable) WriteReference(w *encoding.Writer, iri owl.IRI) {
	t.Freeze()

	if t.writeIndex(w, iri, nil) {
		return
	}

	w.WriteString(iri.Namespace)
	w.WriteString(iri.Fragment)
}

// ReadReference reads a reference written by WriteReference.
func (t *IdentifierTable) ReadReference(r *encoding.Reader) (owl.IRI, error) {
	t.Freeze()

	idx, ok, err := t.readIndex(r, nil)
	if err != nil {
		return owl.IRI{}, err
	}

	if ok {
		iri, _ := t.keys.At(idx)
		return iri, nil
	}

	ns, err := r.ReadString()
	if err != nil {
		return owl.IRI{}, err
	}
	fragment, err := r.ReadString()
	if err != nil {
		return owl.IRI{}, err
	}

	return owl.IRI{Namespace: ns, Fragment: fragment}, nil
}
