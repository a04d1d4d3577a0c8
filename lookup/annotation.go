package lookup

import (
	"fmt"

	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/format"
	"github.com/arloliu/binowl/owl"
)

// AnnotationTable interns annotations by their exact key.
type AnnotationTable = Table[owl.Annotation, string]

// AnnotationCodec writes an annotation as:
//
//	IRI reference property, byte value tag, value, uvarint nested count, nested annotations
//
// where the value is an IRI reference, a literal reference or a node id string
// depending on the tag. Nested annotations are written inline, recursively.
type AnnotationCodec struct {
	IRIs     *IdentifierTable
	Literals *LiteralTable
}

var _ ValueCodec[owl.Annotation] = AnnotationCodec{}

// WriteValue implements ValueCodec.
func (c AnnotationCodec) WriteValue(w *encoding.Writer, a owl.Annotation) error {
	if err := a.Property.Expect(owl.KindAnnotationProperty); err != nil {
		return err
	}
	c.IRIs.WriteReference(w, a.Property.IRI)

	switch v := a.Value.(type) {
	case owl.IRI:
		w.WriteUint8(uint8(format.ValueIRI))
		c.IRIs.WriteReference(w, v)
	case owl.Literal:
		w.WriteUint8(uint8(format.ValueLiteral))
		c.Literals.WriteReference(w, v)
	case owl.AnonymousIndividual:
		w.WriteUint8(uint8(format.ValueAnonymous))
		w.WriteString(v.NodeID)
	default:
		return fmt.Errorf("%w: annotation value %T", errs.ErrUnsupportedKind, a.Value)
	}

	w.WriteCount(len(a.Annotations))
	for _, nested := range a.Annotations {
		if err := c.WriteValue(w, nested); err != nil {
			return err
		}
	}

	return nil
}

// ReadValue implements ValueCodec.
func (c AnnotationCodec) ReadValue(r *encoding.Reader) (owl.Annotation, error) {
	property, err := c.IRIs.ReadReference(r)
	if err != nil {
		return owl.Annotation{}, err
	}

	a := owl.Annotation{Property: owl.AnnotationProperty(property)}

	start := r.Offset()
	tag, err := r.ReadUint8()
	if err != nil {
		return owl.Annotation{}, err
	}

	switch format.ValueTag(tag) {
	case format.ValueIRI:
		iri, err := c.IRIs.ReadReference(r)
		if err != nil {
			return owl.Annotation{}, err
		}
		a.Value = iri
	case format.ValueLiteral:
		lit, err := c.Literals.ReadReference(r)
		if err != nil {
			return owl.Annotation{}, err
		}
		a.Value = lit
	case format.ValueAnonymous:
		id, err := r.ReadString()
		if err != nil {
			return owl.Annotation{}, err
		}
		a.Value = owl.AnonymousIndividual{NodeID: id}
	default:
		return owl.Annotation{}, r.FailAt(start, "read annotation value", errs.ErrInvalidValueTag)
	}

	count, err := r.ReadCount()
	if err != nil {
		return owl.Annotation{}, err
	}
	if count > 0 {
		a.Annotations = make([]owl.Annotation, count)
		for i := range a.Annotations {
			if a.Annotations[i], err = c.ReadValue(r); err != nil {
				return owl.Annotation{}, err
			}
		}
	}

	return a, nil
}

// CompareValues implements ValueComparer with the lexical canonical order.
func (c AnnotationCodec) CompareValues(a, b owl.Annotation) int {
	return compare.Lexical().Compare(a, b)
}

// NewAnnotationTable creates an empty annotation table over iris and literals.
func NewAnnotationTable(iris *IdentifierTable, literals *LiteralTable, opts ...TableOption) (*AnnotationTable, error) {
	if iris == nil || literals == nil {
		return nil, fmt.Errorf("%w: annotation table requires identifier and literal tables", errs.ErrInvalidConfig)
	}

	return NewTable("annotation", owl.Annotation.Key, AnnotationCodec{IRIs: iris, Literals: literals},
		delta.AnnotationConfig, opts...)
}

// ReadAnnotationTable reads an annotation dictionary written by WriteDictionary.
func ReadAnnotationTable(r *encoding.Reader, iris *IdentifierTable, literals *LiteralTable,
	opts ...TableOption,
) (*AnnotationTable, error) {
	if iris == nil || literals == nil {
		return nil, fmt.Errorf("%w: annotation table requires identifier and literal tables", errs.ErrInvalidConfig)
	}

	return ReadTable(r, "annotation", owl.Annotation.Key, AnnotationCodec{IRIs: iris, Literals: literals},
		delta.AnnotationConfig, opts...)
}
