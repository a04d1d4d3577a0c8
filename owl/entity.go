package owl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/binowl/errs"
)

// Object is a structural value: anything that can be compared, walked and serialized.
// All implementations in this package are value types.
type Object interface {
	Kind() Kind
	String() string
}

// Entity is a named entity: class, property, datatype or named individual.
type Entity struct {
	Type Kind
	IRI  IRI
}

// Class returns a class entity.
func Class(iri IRI) Entity { return Entity{Type: KindClass, IRI: iri} }

// ObjectProperty returns an object property entity.
func ObjectProperty(iri IRI) Entity { return Entity{Type: KindObjectProperty, IRI: iri} }

// DataProperty returns a data property entity.
func DataProperty(iri IRI) Entity { return Entity{Type: KindDataProperty, IRI: iri} }

// AnnotationProperty returns an annotation property entity.
func AnnotationProperty(iri IRI) Entity { return Entity{Type: KindAnnotationProperty, IRI: iri} }

// Datatype returns a datatype entity.
func Datatype(iri IRI) Entity { return Entity{Type: KindDatatype, IRI: iri} }

// NamedIndividual returns a named individual entity.
func NamedIndividual(iri IRI) Entity { return Entity{Type: KindNamedIndividual, IRI: iri} }

// NewEntity returns an entity of kind k, which must be an entity kind.
func NewEntity(k Kind, iri IRI) (Entity, error) {
	if !k.IsEntity() {
		return Entity{}, kindError(k, "entity")
	}

	return Entity{Type: k, IRI: iri}, nil
}

// Kind implements Object.
func (e Entity) Kind() Kind { return e.Type }

func (e Entity) String() string {
	return e.Type.String() + "(" + e.IRI.String() + ")"
}

// Expect returns ErrUnsupportedKind unless e has kind k. Positions that are
// written as a bare IRI use it, since the kind is implied on read.
func (e Entity) Expect(k Kind) error {
	if e.Type != k {
		return fmt.Errorf("%w: %s where %s is required", errs.ErrUnsupportedKind, e, k)
	}

	return nil
}

// AnonymousIndividual is a blank-node individual identified by a node id.
type AnonymousIndividual struct {
	NodeID string
}

// Kind implements Object.
func (a AnonymousIndividual) Kind() Kind { return KindAnonymousIndividual }

func (a AnonymousIndividual) String() string {
	return "_:" + a.NodeID
}

// Annotation attaches a value to an entity or axiom through an annotation property.
// Value is an IRI, a Literal or an AnonymousIndividual.
type Annotation struct {
	// Property must be an annotation property.
	Property    Entity
	Value       Object
	Annotations []Annotation
}

// Kind implements Object.
func (a Annotation) Kind() Kind { return KindAnnotation }

func (a Annotation) String() string {
	var sb strings.Builder
	sb.WriteString("Annotation(")
	writeAnnotations(&sb, a.Annotations)
	sb.WriteString(a.Property.IRI.String())
	sb.WriteByte(' ')
	sb.WriteString(objectString(a.Value))
	sb.WriteByte(')')

	return sb.String()
}

// Key returns a string that identifies the annotation exactly. Unlike String it
// distinguishes how each IRI is split into namespace and fragment.
func (a Annotation) Key() string {
	var sb strings.Builder
	writeAnnotationKey(&sb, a)

	return sb.String()
}

func writeAnnotationKey(sb *strings.Builder, a Annotation) {
	sb.WriteString("A(")
	sb.WriteString(strconv.Itoa(int(a.Property.Type)))
	writeIRIKey(sb, a.Property.IRI)
	switch v := a.Value.(type) {
	case IRI:
		sb.WriteString("I")
		writeIRIKey(sb, v)
	case Literal:
		sb.WriteString("L")
		sb.WriteString(strconv.Quote(v.Lexical))
		writeIRIKey(sb, v.Datatype)
		sb.WriteString(strconv.Quote(v.Lang))
	case AnonymousIndividual:
		sb.WriteString("B")
		sb.WriteString(strconv.Quote(v.NodeID))
	default:
		sb.WriteString("?")
		sb.WriteString(strconv.Quote(objectString(v)))
	}
	for _, nested := range a.Annotations {
		writeAnnotationKey(sb, nested)
	}
	sb.WriteByte(')')
}

func writeIRIKey(sb *strings.Builder, iri IRI) {
	sb.WriteString(strconv.Quote(iri.Namespace))
	sb.WriteString(strconv.Quote(iri.Fragment))
}

func writeAnnotations(sb *strings.Builder, anns []Annotation) {
	for _, a := range anns {
		sb.WriteString(a.String())
		sb.WriteByte(' ')
	}
}

func objectString(o Object) string {
	if o == nil {
		return "<nil>"
	}

	return o.String()
}
