package compare

import (
	"cmp"

	"github.com/arloliu/binowl/owl"
)

// Indexer resolves IRIs and literals to their symbol table indices.
// The second result is false when the value is not interned.
type Indexer interface {
	IRIIndex(iri owl.IRI) (int, bool)
	LiteralIndex(lit owl.Literal) (int, bool)
}

// Comparator implements the canonical order. A nil Indexer yields the lexical order.
//
// A Comparator holds no mutable state, but the Indexer it wraps usually does, so
// it must not be used while the underlying tables are still being interned into
// by another goroutine.
type Comparator struct {
	idx Indexer
}

// New returns a comparator that orders entities and literals by the indices in idx.
func New(idx Indexer) *Comparator {
	return &Comparator{idx: idx}
}

// Lexical returns a comparator that ignores table indices.
func Lexical() *Comparator {
	return &Comparator{}
}

// Equal reports whether a and b compare equal.
func (c *Comparator) Equal(a, b owl.Object) bool {
	return c.Compare(a, b) == 0
}

// Compare returns a negative number when a sorts before b, a positive number when
// it sorts after, and zero when the two are structurally identical. A nil object
// sorts before any other.
func (c *Comparator) Compare(a, b owl.Object) int {
	if a == nil || b == nil {
		return compareNil(a, b)
	}

	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		return cmp.Compare(Rank(ka), Rank(kb))
	}

	switch x := a.(type) {
	case owl.Entity:
		if y, ok := b.(owl.Entity); ok {
			return c.CompareIRI(x.IRI, y.IRI)
		}
	case owl.IRI:
		if y, ok := b.(owl.IRI); ok {
			return c.CompareIRI(x, y)
		}
	case owl.Literal:
		if y, ok := b.(owl.Literal); ok {
			return c.CompareLiteral(x, y)
		}
	case owl.AnonymousIndividual:
		if y, ok := b.(owl.AnonymousIndividual); ok {
			return cmp.Compare(x.NodeID, y.NodeID)
		}
	case owl.Annotation:
		if y, ok := b.(owl.Annotation); ok {
			return c.compareAnnotation(x, y)
		}
	case owl.ObjectInverseOf:
		if y, ok := b.(owl.ObjectInverseOf); ok {
			return c.Compare(x.Property, y.Property)
		}
	case owl.NaryExpression:
		if y, ok := b.(owl.NaryExpression); ok {
			return c.CompareObjects(x.Operands, y.Operands)
		}
	case owl.Complement:
		if y, ok := b.(owl.Complement); ok {
			return c.Compare(x.Operand, y.Operand)
		}
	case owl.Restriction:
		if y, ok := b.(owl.Restriction); ok {
			return c.compareRestriction(x, y)
		}
	case owl.DatatypeRestriction:
		if y, ok := b.(owl.DatatypeRestriction); ok {
			return c.compareDatatypeRestriction(x, y)
		}
	case owl.FacetRestriction:
		if y, ok := b.(owl.FacetRestriction); ok {
			return c.compareFacet(x, y)
		}
	case owl.Declaration:
		if y, ok := b.(owl.Declaration); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Entity, y.Entity))
		}
	case owl.SubClassOf:
		if y, ok := b.(owl.SubClassOf); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Super, y.Super),
				c.Compare(x.Sub, y.Sub))
		}
	case owl.NaryAxiom:
		if y, ok := b.(owl.NaryAxiom); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.CompareObjects(x.Operands, y.Operands))
		}
	case owl.ClassAssertion:
		if y, ok := b.(owl.ClassAssertion); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Class, y.Class),
				c.Compare(x.Individual, y.Individual))
		}
	case owl.PropertyAssertion:
		if y, ok := b.(owl.PropertyAssertion); ok {
			return c.compareAssertion(x, y)
		}
	case owl.SubPropertyOf:
		if y, ok := b.(owl.SubPropertyOf); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Super, y.Super),
				c.Compare(x.Sub, y.Sub))
		}
	case owl.PropertyDomainRange:
		if y, ok := b.(owl.PropertyDomainRange); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Property, y.Property),
				c.Compare(x.Target, y.Target))
		}
	case owl.PropertyCharacteristic:
		if y, ok := b.(owl.PropertyCharacteristic); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Property, y.Property))
		}
	case owl.HasKey:
		if y, ok := b.(owl.HasKey); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Class, y.Class),
				c.CompareObjects(x.Properties, y.Properties))
		}
	case owl.SubPropertyChainOf:
		if y, ok := b.(owl.SubPropertyChainOf); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Super, y.Super),
				c.CompareObjects(x.Chain, y.Chain))
		}
	case owl.DatatypeDefinition:
		if y, ok := b.(owl.DatatypeDefinition); ok {
			return c.chain(x.Annotations, y.Annotations,
				c.Compare(x.Datatype, y.Datatype),
				c.Compare(x.Range, y.Range))
		}
	}

	// same kind, foreign or mismatched shape
	return cmp.Compare(a.String(), b.String())
}

// CompareIRI orders interned IRIs by index, before any IRI that is not interned.
// IRIs that are not interned compare by namespace, then fragment.
func (c *Comparator) CompareIRI(a, b owl.IRI) int {
	if c.idx != nil {
		ia, oka := c.idx.IRIIndex(a)
		ib, okb := c.idx.IRIIndex(b)
		if r, done := compareIndex(ia, oka, ib, okb); done {
			return r
		}
	}

	return a.Compare(b)
}

// CompareLiteral orders interned literals by index, before any literal that is not
// interned. Literals that are not interned compare by lexical value, datatype, then language.
func (c *Comparator) CompareLiteral(a, b owl.Literal) int {
	if c.idx != nil {
		ia, oka := c.idx.LiteralIndex(a)
		ib, okb := c.idx.LiteralIndex(b)
		if r, done := compareIndex(ia, oka, ib, okb); done {
			return r
		}
	}

	if r := cmp.Compare(a.Lexical, b.Lexical); r != 0 {
		return r
	}
	if r := c.CompareIRI(a.Datatype, b.Datatype); r != 0 {
		return r
	}

	return cmp.Compare(a.Lang, b.Lang)
}

// CompareObjects compares two sequences pairwise. When one is a prefix of the
// other the shorter sorts first.
func (c *Comparator) CompareObjects(a, b []owl.Object) int {
	for i := range min(len(a), len(b)) {
		if r := c.Compare(a[i], b[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(a), len(b))
}

// CompareAnnotations compares two annotation sequences pairwise, shorter prefix first.
func (c *Comparator) CompareAnnotations(a, b []owl.Annotation) int {
	for i := range min(len(a), len(b)) {
		if r := c.compareAnnotation(a[i], b[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(a), len(b))
}

func (c *Comparator) compareAnnotation(a, b owl.Annotation) int {
	if r := c.Compare(a.Property, b.Property); r != 0 {
		return r
	}
	if r := c.Compare(a.Value, b.Value); r != 0 {
		return r
	}

	return c.CompareAnnotations(a.Annotations, b.Annotations)
}

func (c *Comparator) compareRestriction(a, b owl.Restriction) int {
	if r := c.Compare(a.Filler, b.Filler); r != 0 {
		return r
	}
	// zero for every kind except the cardinality restrictions
	if r := cmp.Compare(a.Cardinality, b.Cardinality); r != 0 {
		return r
	}

	return c.Compare(a.Property, b.Property)
}

func (c *Comparator) compareDatatypeRestriction(a, b owl.DatatypeRestriction) int {
	if r := c.Compare(a.Datatype, b.Datatype); r != 0 {
		return r
	}

	for i := range min(len(a.Facets), len(b.Facets)) {
		if r := c.compareFacet(a.Facets[i], b.Facets[i]); r != 0 {
			return r
		}
	}

	return cmp.Compare(len(a.Facets), len(b.Facets))
}

func (c *Comparator) compareFacet(a, b owl.FacetRestriction) int {
	if r := c.CompareLiteral(a.Value, b.Value); r != 0 {
		return r
	}

	return c.CompareIRI(a.Facet, b.Facet)
}

// compareAssertion orders object property assertions by subject, property, object
// and every other assertion by value, property, subject.
func (c *Comparator) compareAssertion(a, b owl.PropertyAssertion) int {
	switch a.Type {
	case owl.KindObjectPropertyAssertion, owl.KindNegativeObjectPropertyAssertion:
		return c.chain(a.Annotations, b.Annotations,
			c.Compare(a.Subject, b.Subject),
			c.Compare(a.Property, b.Property),
			c.Compare(a.Value, b.Value))
	default:
		return c.chain(a.Annotations, b.Annotations,
			c.Compare(a.Value, b.Value),
			c.Compare(a.Property, b.Property),
			c.Compare(a.Subject, b.Subject))
	}
}

// chain returns the first non-zero result, then falls back to the axiom annotations.
func (c *Comparator) chain(annsA, annsB []owl.Annotation, results ...int) int {
	for _, r := range results {
		if r != 0 {
			return r
		}
	}

	return c.CompareAnnotations(annsA, annsB)
}

func compareIndex(ia int, oka bool, ib int, okb bool) (int, bool) {
	switch {
	case oka && okb:
		return cmp.Compare(ia, ib), true
	case oka:
		return -1, true
	case okb:
		return 1, true
	default:
		return 0, false
	}
}

func compareNil(a, b owl.Object) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	default:
		return 1
	}
}
