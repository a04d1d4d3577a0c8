package owl

// Kind discriminates structural values. The set is closed: every Object reports
// exactly one of these kinds and every package that switches on Kind handles all of them.
type Kind uint8

const (
	KindInvalid Kind = iota

	// values
	KindIRI
	KindLiteral
	KindAnonymousIndividual
	KindAnnotation

	// entities
	KindClass
	KindObjectProperty
	KindDataProperty
	KindAnnotationProperty
	KindDatatype
	KindNamedIndividual

	// property expressions
	KindObjectInverseOf

	// class expressions
	KindObjectIntersectionOf
	KindObjectUnionOf
	KindObjectComplementOf
	KindObjectOneOf
	KindObjectSomeValuesFrom
	KindObjectAllValuesFrom
	KindObjectHasValue
	KindObjectHasSelf
	KindObjectMinCardinality
	KindObjectExactCardinality
	KindObjectMaxCardinality
	KindDataSomeValuesFrom
	KindDataAllValuesFrom
	KindDataHasValue
	KindDataMinCardinality
	KindDataExactCardinality
	KindDataMaxCardinality

	// data ranges
	KindDataIntersectionOf
	KindDataUnionOf
	KindDataComplementOf
	KindDataOneOf
	KindDatatypeRestriction
	KindFacetRestriction

	// axioms
	KindDeclaration
	KindSubClassOf
	KindEquivalentClasses
	KindDisjointClasses
	KindEquivalentObjectProperties
	KindEquivalentDataProperties
	KindDisjointObjectProperties
	KindDisjointDataProperties
	KindInverseObjectProperties
	KindSameIndividual
	KindDifferentIndividuals
	KindClassAssertion
	KindObjectPropertyAssertion
	KindNegativeObjectPropertyAssertion
	KindDataPropertyAssertion
	KindNegativeDataPropertyAssertion
	KindAnnotationAssertion
	KindSubObjectPropertyOf
	KindSubDataPropertyOf
	KindSubAnnotationPropertyOf
	KindObjectPropertyDomain
	KindObjectPropertyRange
	KindDataPropertyDomain
	KindDataPropertyRange
	KindAnnotationPropertyDomain
	KindAnnotationPropertyRange
	KindFunctionalObjectProperty
	KindInverseFunctionalObjectProperty
	KindSymmetricObjectProperty
	KindAsymmetricObjectProperty
	KindReflexiveObjectProperty
	KindIrreflexiveObjectProperty
	KindTransitiveObjectProperty
	KindFunctionalDataProperty
	KindHasKey
	KindSubPropertyChainOf
	KindDatatypeDefinition

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:                         "Invalid",
	KindIRI:                             "IRI",
	KindLiteral:                         "Literal",
	KindAnonymousIndividual:             "AnonymousIndividual",
	KindAnnotation:                      "Annotation",
	KindClass:                           "Class",
	KindObjectProperty:                  "ObjectProperty",
	KindDataProperty:                    "DataProperty",
	KindAnnotationProperty:              "AnnotationProperty",
	KindDatatype:                        "Datatype",
	KindNamedIndividual:                 "NamedIndividual",
	KindObjectInverseOf:                 "ObjectInverseOf",
	KindObjectIntersectionOf:            "ObjectIntersectionOf",
	KindObjectUnionOf:                   "ObjectUnionOf",
	KindObjectComplementOf:              "ObjectComplementOf",
	KindObjectOneOf:                     "ObjectOneOf",
	KindObjectSomeValuesFrom:            "ObjectSomeValuesFrom",
	KindObjectAllValuesFrom:             "ObjectAllValuesFrom",
	KindObjectHasValue:                  "ObjectHasValue",
	KindObjectHasSelf:                   "ObjectHasSelf",
	KindObjectMinCardinality:            "ObjectMinCardinality",
	KindObjectExactCardinality:          "ObjectExactCardinality",
	KindObjectMaxCardinality:            "ObjectMaxCardinality",
	KindDataSomeValuesFrom:              "DataSomeValuesFrom",
	KindDataAllValuesFrom:               "DataAllValuesFrom",
	KindDataHasValue:                    "DataHasValue",
	KindDataMinCardinality:              "DataMinCardinality",
	KindDataExactCardinality:            "DataExactCardinality",
	KindDataMaxCardinality:              "DataMaxCardinality",
	KindDataIntersectionOf:              "DataIntersectionOf",
	KindDataUnionOf:                     "DataUnionOf",
	KindDataComplementOf:                "DataComplementOf",
	KindDataOneOf:                       "DataOneOf",
	KindDatatypeRestriction:             "DatatypeRestriction",
	KindFacetRestriction:                "FacetRestriction",
	KindDeclaration:                     "Declaration",
	KindSubClassOf:                      "SubClassOf",
	KindEquivalentClasses:               "EquivalentClasses",
	KindDisjointClasses:                 "DisjointClasses",
	KindEquivalentObjectProperties:      "EquivalentObjectProperties",
	KindEquivalentDataProperties:        "EquivalentDataProperties",
	KindDisjointObjectProperties:        "DisjointObjectProperties",
	KindDisjointDataProperties:          "DisjointDataProperties",
	KindInverseObjectProperties:         "InverseObjectProperties",
	KindSameIndividual:                  "SameIndividual",
	KindDifferentIndividuals:            "DifferentIndividuals",
	KindClassAssertion:                  "ClassAssertion",
	KindObjectPropertyAssertion:         "ObjectPropertyAssertion",
	KindNegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	KindDataPropertyAssertion:           "DataPropertyAssertion",
	KindNegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	KindAnnotationAssertion:             "AnnotationAssertion",
	KindSubObjectPropertyOf:             "SubObjectPropertyOf",
	KindSubDataPropertyOf:               "SubDataPropertyOf",
	KindSubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	KindObjectPropertyDomain:            "ObjectPropertyDomain",
	KindObjectPropertyRange:             "ObjectPropertyRange",
	KindDataPropertyDomain:              "DataPropertyDomain",
	KindDataPropertyRange:               "DataPropertyRange",
	KindAnnotationPropertyDomain:        "AnnotationPropertyDomain",
	KindAnnotationPropertyRange:         "AnnotationPropertyRange",
	KindFunctionalObjectProperty:        "FunctionalObjectProperty",
	KindInverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	KindSymmetricObjectProperty:         "SymmetricObjectProperty",
	KindAsymmetricObjectProperty:        "AsymmetricObjectProperty",
	KindReflexiveObjectProperty:         "ReflexiveObjectProperty",
	KindIrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	KindTransitiveObjectProperty:        "TransitiveObjectProperty",
	KindFunctionalDataProperty:          "FunctionalDataProperty",
	KindHasKey:                          "HasKey",
	KindSubPropertyChainOf:              "SubPropertyChainOf",
	KindDatatypeDefinition:              "DatatypeDefinition",
}

// Count is the number of kinds, including KindInvalid.
const Count = int(kindCount)

func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}

	return kindNames[k]
}

// Valid reports whether k is a defined kind other than KindInvalid.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// IsEntity reports whether k is one of the six named entity kinds.
func (k Kind) IsEntity() bool {
	return k >= KindClass && k <= KindNamedIndividual
}

// IsClassExpression reports whether values of kind k can appear where a class expression is expected.
func (k Kind) IsClassExpression() bool {
	return k == KindClass || (k >= KindObjectIntersectionOf && k <= KindDataMaxCardinality)
}

// IsDataRange reports whether values of kind k can appear where a data range is expected.
func (k Kind) IsDataRange() bool {
	return k == KindDatatype || (k >= KindDataIntersectionOf && k <= KindDatatypeRestriction)
}

// IsAxiom reports whether k is an axiom kind.
func (k Kind) IsAxiom() bool {
	return k >= KindDeclaration && k < kindCount
}

// IsCardinality reports whether k is a cardinality restriction.
func (k Kind) IsCardinality() bool {
	switch k {
	case KindObjectMinCardinality, KindObjectExactCardinality, KindObjectMaxCardinality,
		KindDataMinCardinality, KindDataExactCardinality, KindDataMaxCardinality:
		return true
	default:
		return false
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}
