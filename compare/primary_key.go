package compare

import (
	"slices"

	"github.com/arloliu/binowl/owl"
)

// PrimaryKey returns the IRI an axiom is primarily about: the declared entity,
// the sub class of a SubClassOf, the subject of an assertion, the property of a
// characteristic and so on. The second result is false when that component is
// anonymous, such as a class expression on the left of SubClassOf.
//
// For n-ary axioms the first named operand wins, so callers that need a stable
// key should canonicalize the axiom first.
func PrimaryKey(ax owl.Axiom) (owl.IRI, bool) {
	switch v := ax.(type) {
	case owl.Declaration:
		return v.Entity.IRI, true
	case owl.SubClassOf:
		return namedIRI(v.Sub)
	case owl.NaryAxiom:
		for _, o := range v.Operands {
			if iri, ok := namedIRI(o); ok {
				return iri, true
			}
		}

		return owl.IRI{}, false
	case owl.ClassAssertion:
		return namedIRI(v.Individual)
	case owl.PropertyAssertion:
		return namedIRI(v.Subject)
	case owl.SubPropertyOf:
		return namedIRI(v.Sub)
	case owl.PropertyDomainRange:
		return namedIRI(v.Property)
	case owl.PropertyCharacteristic:
		return namedIRI(v.Property)
	case owl.HasKey:
		return namedIRI(v.Class)
	case owl.SubPropertyChainOf:
		return namedIRI(v.Super)
	case owl.DatatypeDefinition:
		return v.Datatype.IRI, true
	default:
		return owl.IRI{}, false
	}
}

// Group is a run of axioms sharing a primary key.
type Group struct {
	Key    owl.IRI
	Keyed  bool
	Axioms []owl.Axiom
}

// GroupByPrimaryKey buckets axioms by PrimaryKey. Groups are sorted by key, with
// the group of axioms without a named key last; axioms inside a group keep
// their relative order.
func (c *Comparator) GroupByPrimaryKey(axioms []owl.Axiom) []Group {
	index := make(map[owl.IRI]int)
	var groups []Group
	var unkeyed []owl.Axiom

	for _, ax := range axioms {
		iri, ok := PrimaryKey(ax)
		if !ok {
			unkeyed = append(unkeyed, ax)
			continue
		}

		i, seen := index[iri]
		if !seen {
			i = len(groups)
			index[iri] = i
			groups = append(groups, Group{Key: iri, Keyed: true})
		}
		groups[i].Axioms = append(groups[i].Axioms, ax)
	}

	slices.SortFunc(groups, func(a, b Group) int {
		return c.CompareIRI(a.Key, b.Key)
	})

	if len(unkeyed) > 0 {
		groups = append(groups, Group{Axioms: unkeyed})
	}

	return groups
}

// namedIRI returns the IRI of a named entity, an IRI, or the named property of an
// inverse property expression.
func namedIRI(o owl.Object) (owl.IRI, bool) {
	switch v := o.(type) {
	case owl.Entity:
		return v.IRI, true
	case owl.IRI:
		return v, true
	case owl.ObjectInverseOf:
		return v.Property.IRI, true
	default:
		return owl.IRI{}, false
	}
}
