package compare

import "github.com/arloliu/binowl/owl"

// kindPriority lists every kind in sort order. Entities come first so that
// declarations and signatures cluster at the front of sorted collections.
var kindPriority = [...]owl.Kind{
	owl.KindClass,
	owl.KindObjectProperty,
	owl.KindDataProperty,
	owl.KindAnnotationProperty,
	owl.KindDatatype,
	owl.KindNamedIndividual,
	owl.KindAnonymousIndividual,
	owl.KindIRI,
	owl.KindLiteral,

	owl.KindObjectInverseOf,

	owl.KindObjectIntersectionOf,
	owl.KindObjectUnionOf,
	owl.KindObjectComplementOf,
	owl.KindObjectOneOf,
	owl.KindObjectSomeValuesFrom,
	owl.KindObjectAllValuesFrom,
	owl.KindObjectHasValue,
	owl.KindObjectHasSelf,
	owl.KindObjectMinCardinality,
	owl.KindObjectExactCardinality,
	owl.KindObjectMaxCardinality,
	owl.KindDataSomeValuesFrom,
	owl.KindDataAllValuesFrom,
	owl.KindDataHasValue,
	owl.KindDataMinCardinality,
	owl.KindDataExactCardinality,
	owl.KindDataMaxCardinality,

	owl.KindDataIntersectionOf,
	owl.KindDataUnionOf,
	owl.KindDataComplementOf,
	owl.KindDataOneOf,
	owl.KindDatatypeRestriction,
	owl.KindFacetRestriction,

	owl.KindAnnotation,

	owl.KindDeclaration,
	owl.KindSubClassOf,
	owl.KindEquivalentClasses,
	owl.KindDisjointClasses,
	owl.KindSubObjectPropertyOf,
	owl.KindSubPropertyChainOf,
	owl.KindEquivalentObjectProperties,
	owl.KindDisjointObjectProperties,
	owl.KindInverseObjectProperties,
	owl.KindObjectPropertyDomain,
	owl.KindObjectPropertyRange,
	owl.KindFunctionalObjectProperty,
	owl.KindInverseFunctionalObjectProperty,
	owl.KindReflexiveObjectProperty,
	owl.KindIrreflexiveObjectProperty,
	owl.KindSymmetricObjectProperty,
	owl.KindAsymmetricObjectProperty,
	owl.KindTransitiveObjectProperty,
	owl.KindSubDataPropertyOf,
	owl.KindEquivalentDataProperties,
	owl.KindDisjointDataProperties,
	owl.KindDataPropertyDomain,
	owl.KindDataPropertyRange,
	owl.KindFunctionalDataProperty,
	owl.KindDatatypeDefinition,
	owl.KindHasKey,
	owl.KindSameIndividual,
	owl.KindDifferentIndividuals,
	owl.KindClassAssertion,
	owl.KindObjectPropertyAssertion,
	owl.KindNegativeObjectPropertyAssertion,
	owl.KindDataPropertyAssertion,
	owl.KindNegativeDataPropertyAssertion,
	owl.KindAnnotationAssertion,
	owl.KindSubAnnotationPropertyOf,
	owl.KindAnnotationPropertyDomain,
	owl.KindAnnotationPropertyRange,
}

// kindRank maps a kind to its position in kindPriority. Unranked kinds,
// including KindInvalid, get rank 0 and sort before everything else.
var kindRank = func() [owl.Count]int {
	var r [owl.Count]int
	for i, k := range kindPriority {
		r[k] = i + 1
	}

	return r
}()

// Rank returns the priority of kind k. Lower ranks sort first.
func Rank(k owl.Kind) int {
	if int(k) >= len(kindRank) {
		return len(kindPriority) + 1
	}

	return kindRank[k]
}
