package lookup

import (
	"fmt"

	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/owl"
)

const (
	noLang  = 0
	hasLang = 1

	interningOff = 0
	interningOn  = 1
)

// LiteralTable interns literals. Datatypes other than the well-known ones are
// written as references into an IdentifierTable, which must be frozen and
// written before the literal dictionary.
//
// Raw literal layout, by marker byte:
//
//	0 plain:     lang marker (0, or 1 + string lang), string lexical
//	1 string:    string lexical
//	2 boolean:   byte 0 or 1
//	3 other:     IRI reference datatype, string lexical
//	4 otherLang: IRI reference datatype, string lang, string lexical
//
// Dictionary layout: one interning marker byte; when it is 1, a uvarint count
// followed by that many raw literals.
type LiteralTable struct {
	state[owl.Literal]
	iris      *IdentifierTable
	interning bool
}

// NewLiteralTable creates an empty literal table that writes datatypes through iris.
func NewLiteralTable(iris *IdentifierTable, opts ...TableOption) (*LiteralTable, error) {
	if iris == nil {
		return nil, fmt.Errorf("%w: literal table requires an identifier table", errs.ErrInvalidConfig)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return &LiteralTable{
		state:     newState[owl.Literal]("literal", cfg, delta.LiteralConfig),
		iris:      iris,
		interning: cfg.interning,
	}, nil
}

// Intern returns the index of lit, assigning the next index if it is new. With
// interning disabled nothing is stored and the index is -1.
func (t *LiteralTable) Intern(lit owl.Literal) (int, error) {
	if !t.interning {
		return -1, nil
	}

	idx, _, err := t.intern(lit)

	return idx, err
}

// IndexOf returns the index of lit. It never modifies the table.
func (t *LiteralTable) IndexOf(lit owl.Literal) (int, bool) {
	return t.keys.IndexOf(lit)
}

// At returns the literal at idx.
func (t *LiteralTable) At(idx int) (owl.Literal, bool) {
	return t.keys.At(idx)
}

// Values returns the interned literals in index order. The slice must not be modified.
func (t *LiteralTable) Values() []owl.Literal {
	return t.keys.Values()
}

// Len returns the number of interned literals.
func (t *LiteralTable) Len() int {
	return t.keys.Len()
}

// Interning reports whether the table keeps a dictionary.
func (t *LiteralTable) Interning() bool {
	return t.interning
}

// Frozen reports whether the table accepts no more entries.
func (t *LiteralTable) Frozen() bool {
	return t.frozen()
}

// Freeze finalizes the indices.
func (t *LiteralTable) Freeze() {
	t.freeze(owl.Literal.Compare)
}

// Stats returns the delta statistics of the references written or read so far.
func (t *LiteralTable) Stats() delta.Stats {
	return t.stats()
}

// WriteDictionary freezes the table and writes its dictionary to w.
func (t *LiteralTable) WriteDictionary(w *encoding.Writer) {
	t.Freeze()

	if !t.interning {
		w.WriteUint8(interningOff)
		return
	}

	w.WriteUint8(interningOn)
	w.WriteCount(t.keys.Len())
	for _, lit := range t.keys.Values() {
		t.writeRaw(w, lit)
	}
}

// ReadLiteralTable reads a dictionary written by WriteDictionary and returns a
// frozen table. Datatype references are resolved through iris, which must have
// been read from the same stream.
func ReadLiteralTable(r *encoding.Reader, iris *IdentifierTable, opts ...TableOption) (*LiteralTable, error) {
	if iris == nil {
		return nil, fmt.Errorf("%w: literal table requires an identifier table", errs.ErrInvalidConfig)
	}

	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	cfg.sorted = false

	t := &LiteralTable{
		state: newState[owl.Literal]("literal", cfg, delta.LiteralConfig),
		iris:  iris,
	}

	start := r.Offset()
	marker, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	switch marker {
	case interningOff:
	case interningOn:
		t.interning = true

		count, err := r.ReadCount()
		if err != nil {
			return nil, err
		}
		for range count {
			entry := r.Offset()
			lit, err := t.readRaw(r)
			if err != nil {
				return nil, err
			}
			if err := t.load(r, entry, lit); err != nil {
				return nil, err
			}
		}
	default:
		return nil, r.FailAt(start, "read literal dictionary", errs.ErrInvalidLiteralMarker)
	}

	t.freeze(nil)

	return t, nil
}

// WriteReference writes a reference to lit, falling back to the raw form when
// lit is not interned. The first call freezes the table.
func (t *LiteralTable) WriteReference(w *encoding.Writer, lit owl.Literal) {
	t.Freeze()

	if t.writeIndex(w, lit, nil) {
		return
	}

	t.writeRaw(w, lit)
}

// ReadReference reads a reference written by WriteReference.
func (t *LiteralTable) ReadReference(r *encoding.Reader) (owl.Literal, error) {
	t.Freeze()

	idx, ok, err := t.readIndex(r, nil)
	if err != nil {
		return owl.Literal{}, err
	}

	if ok {
		lit, _ := t.keys.At(idx)
		return lit, nil
	}

	return t.readRaw(r)
}

// Marker returns the literal marker lit is written with.
func Marker(lit owl.Literal) format.LiteralMarker {
	switch {
	case lit.Datatype == owl.RDFPlainLiteral:
		return format.LiteralPlain
	case lit.Lang != "":
		return format.LiteralOtherLang
	case lit.Datatype == owl.XSDString:
		return format.LiteralString
	}

	if _, ok := lit.BoolValue(); ok {
		return format.LiteralBoolean
	}

	return format.LiteralOther
}

func (t *LiteralTable) writeRaw(w *encoding.Writer, lit owl.Literal) {
	marker := Marker(lit)
	w.WriteUint8(uint8(marker))

	switch marker {
	case format.LiteralPlain:
		if lit.Lang == "" {
			w.WriteUint8(noLang)
		} else {
			w.WriteUint8(hasLang)
			w.WriteString(lit.Lang)
		}
	case format.LiteralString:
	case format.LiteralBoolean:
		v, _ := lit.BoolValue()
		w.WriteBool(v)

		return
	case format.LiteralOther:
		t.iris.WriteReference(w, lit.Datatype)
	case format.LiteralOtherLang:
		t.iris.WriteReference(w, lit.Datatype)
		w.WriteString(lit.Lang)
	}

	w.WriteString(lit.Lexical)
}

func (t *LiteralTable) readRaw(r *encoding.Reader) (owl.Literal, error) {
	start := r.Offset()
	marker, err := r.ReadUint8()
	if err != nil {
		return owl.Literal{}, err
	}

	var lit owl.Literal

	switch format.LiteralMarker(marker) {
	case format.LiteralPlain:
		lit.Datatype = owl.RDFPlainLiteral

		langStart := r.Offset()
		flag, err := r.ReadUint8()
		if err != nil {
			return owl.Literal{}, err
		}
		switch flag {
		case noLang:
		case hasLang:
			if lit.Lang, err = r.ReadString(); err != nil {
				return owl.Literal{}, err
			}
		default:
			return owl.Literal{}, r.FailAt(langStart, "read literal language", errs.ErrInvalidLiteralMarker)
		}
	case format.LiteralString:
		lit.Datatype = owl.XSDString
	case format.LiteralBoolean:
		boolStart := r.Offset()
		v, err := r.ReadUint8()
		if err != nil {
			return owl.Literal{}, err
		}
		switch v {
		case 0:
			return owl.False, nil
		case 1:
			return owl.True, nil
		default:
			return owl.Literal{}, r.FailAt(boolStart, "read boolean literal", errs.ErrInvalidLiteralMarker)
		}
	case format.LiteralOther:
		if lit.Datatype, err = t.iris.ReadReference(r); err != nil {
			return owl.Literal{}, err
		}
	case format.LiteralOtherLang:
		if lit.Datatype, err = t.iris.ReadReference(r); err != nil {
			return owl.Literal{}, err
		}
		if lit.Lang, err = r.ReadString(); err != nil {
			return owl.Literal{}, err
		}
	default:
		return owl.Literal{}, r.FailAt(start, "read literal", errs.ErrInvalidLiteralMarker)
	}

	if lit.Lexical, err = r.ReadString(); err != nil {
		return owl.Literal{}, err
	}

	return lit, nil
}
