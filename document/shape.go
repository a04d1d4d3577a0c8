package document

import "github.com/arloliu/binowl/owl"

// shape groups the kinds that share a Go value type and therefore a wire layout.
type shape uint8

const (
	shapeNone shape = iota
	shapeIRI
	shapeLiteral
	shapeAnonymous
	shapeAnnotation
	shapeEntity
	shapeInverse
	shapeNaryExpression
	shapeComplement
	shapeRestriction
	shapeDatatypeRestriction
	shapeFacet
	shapeDeclaration
	shapeSubClassOf
	shapeNaryAxiom
	shapeClassAssertion
	shapePropertyAssertion
	shapeSubPropertyOf
	shapeDomainRange
	shapeCharacteristic
	shapeHasKey
	shapeChain
	shapeDatatypeDefinition
)

var kindShapes [owl.Count]shape

func init() {
	set := func(s shape, kinds ...owl.Kind) {
		for _, k := range kinds {
			kindShapes[k] = s
		}
	}
	span := func(s shape, from, to owl.Kind) {
		for k := from; k <= to; k++ {
			kindShapes[k] = s
		}
	}

	set(shapeIRI, owl.KindIRI)
	set(shapeLiteral, owl.KindLiteral)
	set(shapeAnonymous, owl.KindAnonymousIndividual)
	set(shapeAnnotation, owl.KindAnnotation)
	span(shapeEntity, owl.KindClass, owl.KindNamedIndividual)
	set(shapeInverse, owl.KindObjectInverseOf)
	set(shapeNaryExpression, owl.KindObjectIntersectionOf, owl.KindObjectUnionOf, owl.KindObjectOneOf,
		owl.KindDataIntersectionOf, owl.KindDataUnionOf, owl.KindDataOneOf)
	set(shapeComplement, owl.KindObjectComplementOf, owl.KindDataComplementOf)
	span(shapeRestriction, owl.KindObjectSomeValuesFrom, owl.KindDataMaxCardinality)
	set(shapeDatatypeRestriction, owl.KindDatatypeRestriction)
	set(shapeFacet, owl.KindFacetRestriction)
	set(shapeDeclaration, owl.KindDeclaration)
	set(shapeSubClassOf, owl.KindSubClassOf)
	span(shapeNaryAxiom, owl.KindEquivalentClasses, owl.KindDifferentIndividuals)
	set(shapeClassAssertion, owl.KindClassAssertion)
	span(shapePropertyAssertion, owl.KindObjectPropertyAssertion, owl.KindAnnotationAssertion)
	span(shapeSubPropertyOf, owl.KindSubObjectPropertyOf, owl.KindSubAnnotationPropertyOf)
	span(shapeDomainRange, owl.KindObjectPropertyDomain, owl.KindAnnotationPropertyRange)
	span(shapeCharacteristic, owl.KindFunctionalObjectProperty, owl.KindFunctionalDataProperty)
	set(shapeHasKey, owl.KindHasKey)
	set(shapeChain, owl.KindSubPropertyChainOf)
	set(shapeDatatypeDefinition, owl.KindDatatypeDefinition)
}

func shapeOfKind(k owl.Kind) shape {
	if !k.Valid() {
		return shapeNone
	}

	return kindShapes[k]
}

func shapeOfValue(o owl.Object) shape {
	switch o.(type) {
	case owl.IRI:
		return shapeIRI
	case owl.Literal:
		return shapeLiteral
	case owl.AnonymousIndividual:
		return shapeAnonymous
	case owl.Annotation:
		return shapeAnnotation
	case owl.Entity:
		return shapeEntity
	case owl.ObjectInverseOf:
		return shapeInverse
	case owl.NaryExpression:
		return shapeNaryExpression
	case owl.Complement:
		return shapeComplement
	case owl.Restriction:
		return shapeRestriction
	case owl.DatatypeRestriction:
		return shapeDatatypeRestriction
	case owl.FacetRestriction:
		return shapeFacet
	case owl.Declaration:
		return shapeDeclaration
	case owl.SubClassOf:
		return shapeSubClassOf
	case owl.NaryAxiom:
		return shapeNaryAxiom
	case owl.ClassAssertion:
		return shapeClassAssertion
	case owl.PropertyAssertion:
		return shapePropertyAssertion
	case owl.SubPropertyOf:
		return shapeSubPropertyOf
	case owl.PropertyDomainRange:
		return shapeDomainRange
	case owl.PropertyCharacteristic:
		return shapeCharacteristic
	case owl.HasKey:
		return shapeHasKey
	case owl.SubPropertyChainOf:
		return shapeChain
	case owl.DatatypeDefinition:
		return shapeDatatypeDefinition
	default:
		return shapeNone
	}
}
