package compare

import (
	"slices"

	"github.com/arloliu/binowl/owl"
)

// SortObjects sorts objs in place.
func (c *Comparator) SortObjects(objs []owl.Object) {
	slices.SortStableFunc(objs, c.Compare)
}

// SortAnnotations sorts anns in place.
func (c *Comparator) SortAnnotations(anns []owl.Annotation) {
	slices.SortStableFunc(anns, c.compareAnnotation)
}

// SortAxioms sorts axioms in place.
func (c *Comparator) SortAxioms(axioms []owl.Axiom) {
	slices.SortStableFunc(axioms, func(a, b owl.Axiom) int {
		return c.Compare(a, b)
	})
}

// Canonicalize returns a copy of o in which every set-valued collection is sorted,
// recursively. Ordered collections, such as a property chain, keep their order.
// The input is never modified.
func (c *Comparator) Canonicalize(o owl.Object) owl.Object {
	switch v := o.(type) {
	case owl.Annotation:
		return c.canonicalAnnotation(v)
	case owl.NaryExpression:
		v.Operands = c.sortedObjects(v.Operands)
		return v
	case owl.Complement:
		v.Operand = c.Canonicalize(v.Operand)
		return v
	case owl.Restriction:
		v.Property = c.Canonicalize(v.Property)
		v.Filler = c.Canonicalize(v.Filler)
		return v
	case owl.DatatypeRestriction:
		if len(v.Facets) > 0 {
			v.Facets = slices.Clone(v.Facets)
			slices.SortStableFunc(v.Facets, c.compareFacet)
		}

		return v
	default:
		if ax, ok := o.(owl.Axiom); ok {
			return c.CanonicalizeAxiom(ax)
		}

		return o
	}
}

// CanonicalizeAxiom is Canonicalize for axioms.
func (c *Comparator) CanonicalizeAxiom(ax owl.Axiom) owl.Axiom {
	switch v := ax.(type) {
	case owl.Declaration:
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.SubClassOf:
		v.Sub = c.Canonicalize(v.Sub)
		v.Super = c.Canonicalize(v.Super)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.NaryAxiom:
		v.Operands = c.sortedObjects(v.Operands)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.ClassAssertion:
		v.Class = c.Canonicalize(v.Class)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.PropertyAssertion:
		v.Property = c.Canonicalize(v.Property)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.SubPropertyOf:
		v.Sub = c.Canonicalize(v.Sub)
		v.Super = c.Canonicalize(v.Super)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.PropertyDomainRange:
		v.Property = c.Canonicalize(v.Property)
		v.Target = c.Canonicalize(v.Target)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.PropertyCharacteristic:
		v.Property = c.Canonicalize(v.Property)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.HasKey:
		v.Class = c.Canonicalize(v.Class)
		v.Properties = c.sortedObjects(v.Properties)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.SubPropertyChainOf:
		if len(v.Chain) > 0 {
			chain := make([]owl.Object, len(v.Chain))
			for i, p := range v.Chain {
				chain[i] = c.Canonicalize(p)
			}
			v.Chain = chain
		}
		v.Super = c.Canonicalize(v.Super)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	case owl.DatatypeDefinition:
		v.Range = c.Canonicalize(v.Range)
		v.Annotations = c.canonicalAnnotations(v.Annotations)
		return v
	default:
		return ax
	}
}

// CanonicalizeDocument canonicalizes every axiom and the document annotations,
// then sorts the axioms.
func (c *Comparator) CanonicalizeDocument(doc owl.Document) owl.Document {
	out := owl.Document{
		IRI:         doc.IRI,
		Annotations: c.canonicalAnnotations(doc.Annotations),
	}

	if len(doc.Axioms) > 0 {
		out.Axioms = make([]owl.Axiom, len(doc.Axioms))
		for i, ax := range doc.Axioms {
			out.Axioms[i] = c.CanonicalizeAxiom(ax)
		}
		c.SortAxioms(out.Axioms)
	}

	return out
}

func (c *Comparator) sortedObjects(objs []owl.Object) []owl.Object {
	if len(objs) == 0 {
		return objs
	}

	out := make([]owl.Object, len(objs))
	for i, o := range objs {
		out[i] = c.Canonicalize(o)
	}
	c.SortObjects(out)

	return out
}

func (c *Comparator) canonicalAnnotation(a owl.Annotation) owl.Annotation {
	a.Annotations = c.canonicalAnnotations(a.Annotations)
	return a
}

func (c *Comparator) canonicalAnnotations(anns []owl.Annotation) []owl.Annotation {
	if len(anns) == 0 {
		return anns
	}

	out := make([]owl.Annotation, len(anns))
	for i, a := range anns {
		out[i] = c.canonicalAnnotation(a)
	}
	c.SortAnnotations(out)

	return out
}
