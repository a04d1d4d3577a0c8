package owl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/binowl/errs"
)

// ObjectInverseOf is the inverse of a named object property.
type ObjectInverseOf struct {
	Property Entity // an object property
}

// Kind implements Object.
func (o ObjectInverseOf) Kind() Kind { return KindObjectInverseOf }

func (o ObjectInverseOf) String() string {
	return "ObjectInverseOf(" + o.Property.String() + ")"
}

// NaryExpression is an intersection, union or enumeration over class expressions,
// data ranges, individuals or literals. Operands are an unordered set.
type NaryExpression struct {
	Type     Kind
	Operands []Object
}

// NewNaryExpression validates k and returns the expression.
func NewNaryExpression(k Kind, operands ...Object) (NaryExpression, error) {
	switch k {
	case KindObjectIntersectionOf, KindObjectUnionOf, KindObjectOneOf,
		KindDataIntersectionOf, KindDataUnionOf, KindDataOneOf:
		return NaryExpression{Type: k, Operands: operands}, nil
	default:
		return NaryExpression{}, kindError(k, "n-ary expression")
	}
}

// ObjectIntersectionOf returns the intersection of class expressions.
func ObjectIntersectionOf(operands ...Object) NaryExpression {
	return NaryExpression{Type: KindObjectIntersectionOf, Operands: operands}
}

// ObjectUnionOf returns the union of class expressions.
func ObjectUnionOf(operands ...Object) NaryExpression {
	return NaryExpression{Type: KindObjectUnionOf, Operands: operands}
}

// ObjectOneOf returns an enumeration of individuals.
func ObjectOneOf(individuals ...Object) NaryExpression {
	return NaryExpression{Type: KindObjectOneOf, Operands: individuals}
}

// DataOneOf returns an enumeration of literals.
func DataOneOf(literals ...Object) NaryExpression {
	return NaryExpression{Type: KindDataOneOf, Operands: literals}
}

// Kind implements Object.
func (n NaryExpression) Kind() Kind { return n.Type }

func (n NaryExpression) String() string {
	return render(n.Type, nil, n.Operands...)
}

// Complement negates a class expression or a data range.
type Complement struct {
	Type    Kind
	Operand Object
}

// ObjectComplementOf returns the complement of a class expression.
func ObjectComplementOf(operand Object) Complement {
	return Complement{Type: KindObjectComplementOf, Operand: operand}
}

// DataComplementOf returns the complement of a data range.
func DataComplementOf(operand Object) Complement {
	return Complement{Type: KindDataComplementOf, Operand: operand}
}

// Kind implements Object.
func (c Complement) Kind() Kind { return c.Type }

func (c Complement) String() string {
	return render(c.Type, nil, c.Operand)
}

// Restriction covers quantified, value, self and cardinality restrictions.
// Filler is nil only for ObjectHasSelf; Cardinality is used only by cardinality kinds.
type Restriction struct {
	Type        Kind
	Property    Object
	Filler      Object
	Cardinality int
}

// NewRestriction validates k and returns the restriction. A nil filler of a
// cardinality restriction defaults to owl:Thing or rdfs:Literal.
func NewRestriction(k Kind, property Object, filler Object, cardinality int) (Restriction, error) {
	if k < KindObjectSomeValuesFrom || k > KindDataMaxCardinality {
		return Restriction{}, kindError(k, "restriction")
	}

	if cardinality < 0 {
		return Restriction{}, fmt.Errorf("%w: negative cardinality %d", errs.ErrInvalidConfig, cardinality)
	}

	if !k.IsCardinality() {
		cardinality = 0
	}

	switch {
	case k == KindObjectHasSelf:
		filler = nil
	case filler == nil && k >= KindObjectMinCardinality && k <= KindObjectMaxCardinality:
		filler = OWLThing
	case filler == nil && k.IsCardinality():
		filler = TopDatatype
	case filler == nil:
		return Restriction{}, fmt.Errorf("%w: %s requires a filler", errs.ErrUnsupportedKind, k)
	}

	return Restriction{Type: k, Property: property, Filler: filler, Cardinality: cardinality}, nil
}

// ObjectSomeValuesFrom returns an existential restriction.
func ObjectSomeValuesFrom(property, filler Object) Restriction {
	return Restriction{Type: KindObjectSomeValuesFrom, Property: property, Filler: filler}
}

// ObjectAllValuesFrom returns a universal restriction.
func ObjectAllValuesFrom(property, filler Object) Restriction {
	return Restriction{Type: KindObjectAllValuesFrom, Property: property, Filler: filler}
}

// ObjectMinCardinality returns a qualified minimum cardinality restriction.
func ObjectMinCardinality(n int, property, filler Object) Restriction {
	return Restriction{Type: KindObjectMinCardinality, Property: property, Filler: filler, Cardinality: n}
}

// ObjectHasSelf returns a local reflexivity restriction.
func ObjectHasSelf(property Object) Restriction {
	return Restriction{Type: KindObjectHasSelf, Property: property}
}

// DataSomeValuesFrom returns an existential data restriction.
func DataSomeValuesFrom(property, filler Object) Restriction {
	return Restriction{Type: KindDataSomeValuesFrom, Property: property, Filler: filler}
}

// DataHasValue returns a data value restriction.
func DataHasValue(property Object, value Literal) Restriction {
	return Restriction{Type: KindDataHasValue, Property: property, Filler: value}
}

// Kind implements Object.
func (r Restriction) Kind() Kind { return r.Type }

func (r Restriction) String() string {
	if r.Type.IsCardinality() {
		var sb strings.Builder
		sb.WriteString(r.Type.String())
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(r.Cardinality))
		sb.WriteByte(' ')
		sb.WriteString(objectString(r.Property))
		sb.WriteByte(' ')
		sb.WriteString(objectString(r.Filler))
		sb.WriteByte(')')

		return sb.String()
	}

	if r.Filler == nil {
		return render(r.Type, nil, r.Property)
	}

	return render(r.Type, nil, r.Property, r.Filler)
}

// FacetRestriction constrains a datatype facet, e.g. xsd:minInclusive 5.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

// Kind implements Object.
func (f FacetRestriction) Kind() Kind { return KindFacetRestriction }

func (f FacetRestriction) String() string {
	return f.Facet.String() + " " + f.Value.String()
}

// DatatypeRestriction restricts a datatype with facets. Facets are an unordered set.
type DatatypeRestriction struct {
	Datatype Entity // must have KindDatatype
	Facets   []FacetRestriction
}

// Kind implements Object.
func (d DatatypeRestriction) Kind() Kind { return KindDatatypeRestriction }

func (d DatatypeRestriction) String() string {
	var sb strings.Builder
	sb.WriteString("DatatypeRestriction(")
	sb.WriteString(d.Datatype.IRI.String())
	for _, f := range d.Facets {
		sb.WriteByte(' ')
		sb.WriteString(f.String())
	}
	sb.WriteByte(')')

	return sb.String()
}

func render(k Kind, anns []Annotation, parts ...Object) string {
	var sb strings.Builder
	sb.WriteString(k.String())
	sb.WriteByte('(')
	writeAnnotations(&sb, anns)
	for i, p := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(objectString(p))
	}
	sb.WriteByte(')')

	return sb.String()
}

func kindError(k Kind, shape string) error {
	return fmt.Errorf("%w: %s is not a %s kind", errs.ErrUnsupportedKind, k, shape)
}
