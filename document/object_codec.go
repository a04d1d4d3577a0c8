package document

import (
	"fmt"
	"math"

	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/lookup"
	"github.com/arloliu/binowl/owl"
)

// maxNesting bounds the recursion depth of a decoded object.
const maxNesting = 512

// nilMarker is written in place of an absent optional component.
const nilMarker = byte(owl.KindInvalid)

// objectWriter writes structural values as a kind byte followed by the components
// of the value's shape. IRIs, literals and annotations go through the symbol
// tables; collections are a uvarint count followed by the elements.
type objectWriter struct {
	w   *encoding.Writer
	set *lookup.Set
}

// writeOptional writes o, or the absent marker when o is nil.
func (ow objectWriter) writeOptional(o owl.Object) error {
	if o == nil {
		ow.w.WriteUint8(nilMarker)
		return nil
	}

	return ow.writeObject(o)
}

func (ow objectWriter) writeObject(o owl.Object) error {
	if o == nil {
		return fmt.Errorf("%w: missing component", errs.ErrUnsupportedKind)
	}

	k := o.Kind()
	if s := shapeOfValue(o); s == shapeNone || s != shapeOfKind(k) {
		return fmt.Errorf("%w: cannot encode %T as %s", errs.ErrUnsupportedKind, o, k)
	}

	ow.w.WriteUint8(uint8(k))

	switch v := o.(type) {
	case owl.IRI:
		ow.set.IRIs.WriteReference(ow.w, v)
	case owl.Literal:
		ow.set.Literals.WriteReference(ow.w, v)
	case owl.AnonymousIndividual:
		ow.w.WriteString(v.NodeID)
	case owl.Annotation:
		return ow.set.Annotations.WriteReference(ow.w, v)
	case owl.Entity:
		ow.set.IRIs.WriteReference(ow.w, v.IRI)
	case owl.ObjectInverseOf:
		if err := v.Property.Expect(owl.KindObjectProperty); err != nil {
			return err
		}
		ow.set.IRIs.WriteReference(ow.w, v.Property.IRI)
	case owl.NaryExpression:
		return ow.writeObjects(v.Operands)
	case owl.Complement:
		return ow.writeObject(v.Operand)
	case owl.Restriction:
		if err := ow.writeObject(v.Property); err != nil {
			return err
		}
		if err := ow.writeOptional(v.Filler); err != nil {
			return err
		}
		if k.IsCardinality() {
			if v.Cardinality < 0 {
				return fmt.Errorf("%w: negative cardinality %d", errs.ErrUnsupportedKind, v.Cardinality)
			}
			ow.w.WriteUvarint(uint64(v.Cardinality))
		}
	case owl.DatatypeRestriction:
		if err := v.Datatype.Expect(owl.KindDatatype); err != nil {
			return err
		}
		ow.set.IRIs.WriteReference(ow.w, v.Datatype.IRI)
		ow.w.WriteCount(len(v.Facets))
		for _, f := range v.Facets {
			ow.writeFacet(f)
		}
	case owl.FacetRestriction:
		ow.writeFacet(v)
	case owl.Axiom:
		return ow.writeAxiomBody(v)
	}

	return nil
}

func (ow objectWriter) writeAxiomBody(ax owl.Axiom) error {
	if err := ow.writeAnnotations(ax.AxiomAnnotations()); err != nil {
		return err
	}

	switch v := ax.(type) {
	case owl.Declaration:
		return ow.writeObject(v.Entity)
	case owl.SubClassOf:
		return ow.writeObjects2(v.Sub, v.Super)
	case owl.NaryAxiom:
		return ow.writeObjects(v.Operands)
	case owl.ClassAssertion:
		return ow.writeObjects2(v.Class, v.Individual)
	case owl.PropertyAssertion:
		if err := ow.writeObjects2(v.Subject, v.Property); err != nil {
			return err
		}
		return ow.writeObject(v.Value)
	case owl.SubPropertyOf:
		return ow.writeObjects2(v.Sub, v.Super)
	case owl.PropertyDomainRange:
		return ow.writeObjects2(v.Property, v.Target)
	case owl.PropertyCharacteristic:
		return ow.writeObject(v.Property)
	case owl.HasKey:
		if err := ow.writeObject(v.Class); err != nil {
			return err
		}
		return ow.writeObjects(v.Properties)
	case owl.SubPropertyChainOf:
		if err := ow.writeObjects(v.Chain); err != nil {
			return err
		}
		return ow.writeObject(v.Super)
	case owl.DatatypeDefinition:
		if err := v.Datatype.Expect(owl.KindDatatype); err != nil {
			return err
		}
		ow.set.IRIs.WriteReference(ow.w, v.Datatype.IRI)
		return ow.writeObject(v.Range)
	default:
		return fmt.Errorf("%w: axiom %T", errs.ErrUnsupportedKind, ax)
	}
}

func (ow objectWriter) writeObjects(objs []owl.Object) error {
	ow.w.WriteCount(len(objs))
	for _, o := range objs {
		if err := ow.writeObject(o); err != nil {
			return err
		}
	}

	return nil
}

func (ow objectWriter) writeObjects2(a, b owl.Object) error {
	if err := ow.writeObject(a); err != nil {
		return err
	}

	return ow.writeObject(b)
}

func (ow objectWriter) writeFacet(f owl.FacetRestriction) {
	ow.set.IRIs.WriteReference(ow.w, f.Facet)
	ow.set.Literals.WriteReference(ow.w, f.Value)
}

func (ow objectWriter) writeAnnotations(anns []owl.Annotation) error {
	ow.w.WriteCount(len(anns))
	for _, a := range anns {
		if err := ow.set.Annotations.WriteReference(ow.w, a); err != nil {
			return err
		}
	}

	return nil
}

// objectReader reverses objectWriter. Empty collections decode as nil slices.
type objectReader struct {
	r     *encoding.Reader
	set   *lookup.Set
	depth int
}

// readObject reads one value, returning nil for the absent marker.
func (or *objectReader) readObject() (owl.Object, error) {
	start := or.r.Offset()
	b, err := or.r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if b == nilMarker {
		return nil, nil
	}

	k := owl.Kind(b)
	s := shapeOfKind(k)
	if s == shapeNone {
		return nil, or.r.FailAt(start, "read object kind", errs.ErrInvalidKind)
	}

	or.depth++
	defer func() { or.depth-- }()
	if or.depth > maxNesting {
		return nil, or.r.FailAt(start, "read object", errs.ErrNestingTooDeep)
	}

	switch s {
	case shapeIRI:
		return wrapObject(or.set.IRIs.ReadReference(or.r))
	case shapeLiteral:
		return wrapObject(or.set.Literals.ReadReference(or.r))
	case shapeAnonymous:
		id, err := or.r.ReadString()
		if err != nil {
			return nil, err
		}
		return owl.AnonymousIndividual{NodeID: id}, nil
	case shapeAnnotation:
		return wrapObject(or.set.Annotations.ReadReference(or.r))
	case shapeEntity:
		iri, err := or.set.IRIs.ReadReference(or.r)
		if err != nil {
			return nil, err
		}
		return owl.Entity{Type: k, IRI: iri}, nil
	case shapeInverse:
		iri, err := or.set.IRIs.ReadReference(or.r)
		if err != nil {
			return nil, err
		}
		return owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}, nil
	case shapeNaryExpression:
		operands, err := or.readObjects()
		if err != nil {
			return nil, err
		}
		return owl.NaryExpression{Type: k, Operands: operands}, nil
	case shapeComplement:
		operand, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		return owl.Complement{Type: k, Operand: operand}, nil
	case shapeRestriction:
		return or.readRestriction(k)
	case shapeDatatypeRestriction:
		return or.readDatatypeRestriction()
	case shapeFacet:
		return wrapObject(or.readFacet())
	default:
		return or.readAxiomBody(k, s)
	}
}

func wrapObject[T owl.Object](v T, err error) (owl.Object, error) {
	if err != nil {
		return nil, err
	}

	return v, nil
}

// readRequired reads a value that must not be the absent marker.
func (or *objectReader) readRequired() (owl.Object, error) {
	start := or.r.Offset()
	o, err := or.readObject()
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, or.r.FailAt(start, "read object", errs.ErrInvalidKind)
	}

	return o, nil
}

// readAxiom reads one top-level axiom.
func (or *objectReader) readAxiom() (owl.Axiom, error) {
	start := or.r.Offset()
	o, err := or.readRequired()
	if err != nil {
		return nil, err
	}

	ax, ok := o.(owl.Axiom)
	if !ok {
		return nil, or.r.FailAt(start, "read axiom", errs.ErrInvalidKind)
	}

	return ax, nil
}

func (or *objectReader) readEntity() (owl.Entity, error) {
	start := or.r.Offset()
	o, err := or.readRequired()
	if err != nil {
		return owl.Entity{}, err
	}

	e, ok := o.(owl.Entity)
	if !ok {
		return owl.Entity{}, or.r.FailAt(start, "read entity", errs.ErrInvalidKind)
	}

	return e, nil
}

func (or *objectReader) readObjects() ([]owl.Object, error) {
	n, err := or.r.ReadCount()
	if err != nil || n == 0 {
		return nil, err
	}

	out := make([]owl.Object, n)
	for i := range out {
		if out[i], err = or.readRequired(); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (or *objectReader) readRequired2() (owl.Object, owl.Object, error) {
	a, err := or.readRequired()
	if err != nil {
		return nil, nil, err
	}
	b, err := or.readRequired()
	if err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

func (or *objectReader) readRestriction(k owl.Kind) (owl.Object, error) {
	property, err := or.readRequired()
	if err != nil {
		return nil, err
	}

	filler, err := or.readObject()
	if err != nil {
		return nil, err
	}

	r := owl.Restriction{Type: k, Property: property, Filler: filler}
	if k.IsCardinality() {
		start := or.r.Offset()
		n, err := or.r.ReadUvarint()
		if err != nil {
			return nil, err
		}
		if n > math.MaxInt32 {
			return nil, or.r.FailAt(start, "read cardinality", errs.ErrLengthOverflow)
		}
		r.Cardinality = int(n)
	}

	return r, nil
}

func (or *objectReader) readDatatypeRestriction() (owl.Object, error) {
	iri, err := or.set.IRIs.ReadReference(or.r)
	if err != nil {
		return nil, err
	}

	d := owl.DatatypeRestriction{Datatype: owl.Datatype(iri)}

	n, err := or.r.ReadCount()
	if err != nil {
		return nil, err
	}
	if n > 0 {
		d.Facets = make([]owl.FacetRestriction, n)
		for i := range d.Facets {
			if d.Facets[i], err = or.readFacet(); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}

func (or *objectReader) readFacet() (owl.FacetRestriction, error) {
	facet, err := or.set.IRIs.ReadReference(or.r)
	if err != nil {
		return owl.FacetRestriction{}, err
	}
	value, err := or.set.Literals.ReadReference(or.r)
	if err != nil {
		return owl.FacetRestriction{}, err
	}

	return owl.FacetRestriction{Facet: facet, Value: value}, nil
}

func (or *objectReader) readAnnotations() ([]owl.Annotation, error) {
	n, err := or.r.ReadCount()
	if err != nil || n == 0 {
		return nil, err
	}

	out := make([]owl.Annotation, n)
	for i := range out {
		if out[i], err = or.set.Annotations.ReadReference(or.r); err != nil {
			return nil, err
		}
	}

	return out, nil
}

//nolint:cyclop
func (or *objectReader) readAxiomBody(k owl.Kind, s shape) (owl.Object, error) {
	anns, err := or.readAnnotations()
	if err != nil {
		return nil, err
	}

	switch s {
	case shapeDeclaration:
		e, err := or.readEntity()
		if err != nil {
			return nil, err
		}
		return owl.Declaration{Entity: e, Annotations: anns}, nil
	case shapeSubClassOf:
		sub, super, err := or.readRequired2()
		if err != nil {
			return nil, err
		}
		return owl.SubClassOf{Sub: sub, Super: super, Annotations: anns}, nil
	case shapeNaryAxiom:
		operands, err := or.readObjects()
		if err != nil {
			return nil, err
		}
		return owl.NaryAxiom{Type: k, Operands: operands, Annotations: anns}, nil
	case shapeClassAssertion:
		class, individual, err := or.readRequired2()
		if err != nil {
			return nil, err
		}
		return owl.ClassAssertion{Class: class, Individual: individual, Annotations: anns}, nil
	case shapePropertyAssertion:
		subject, property, err := or.readRequired2()
		if err != nil {
			return nil, err
		}
		value, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		return owl.PropertyAssertion{Type: k, Subject: subject, Property: property, Value: value, Annotations: anns}, nil
	case shapeSubPropertyOf:
		sub, super, err := or.readRequired2()
		if err != nil {
			return nil, err
		}
		return owl.SubPropertyOf{Type: k, Sub: sub, Super: super, Annotations: anns}, nil
	case shapeDomainRange:
		property, target, err := or.readRequired2()
		if err != nil {
			return nil, err
		}
		return owl.PropertyDomainRange{Type: k, Property: property, Target: target, Annotations: anns}, nil
	case shapeCharacteristic:
		property, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		return owl.PropertyCharacteristic{Type: k, Property: property, Annotations: anns}, nil
	case shapeHasKey:
		class, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		properties, err := or.readObjects()
		if err != nil {
			return nil, err
		}
		return owl.HasKey{Class: class, Properties: properties, Annotations: anns}, nil
	case shapeChain:
		chain, err := or.readObjects()
		if err != nil {
			return nil, err
		}
		super, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		return owl.SubPropertyChainOf{Chain: chain, Super: super, Annotations: anns}, nil
	case shapeDatatypeDefinition:
		iri, err := or.set.IRIs.ReadReference(or.r)
		if err != nil {
			return nil, err
		}
		dataRange, err := or.readRequired()
		if err != nil {
			return nil, err
		}
		return owl.DatatypeDefinition{Datatype: owl.Datatype(iri), Range: dataRange, Annotations: anns}, nil
	default:
		return nil, or.r.Fail("read axiom", errs.ErrInvalidKind)
	}
}
