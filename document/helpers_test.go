package document

import (
	"fmt"

	"github.com/arloliu/binowl/owl"
)

const pizzaNS = "http://example.org/pizza#"

func iri(name string) owl.IRI {
	return owl.IRI{Namespace: pizzaNS, Fragment: name}
}

func class(name string) owl.Entity {
	return owl.Class(iri(name))
}

func label(text string) owl.Annotation {
	return owl.Annotation{Property: owl.RDFSLabel, Value: owl.NewPlainLiteral(text, "en")}
}

// pizzaDocument exercises every axiom and expression shape.
func pizzaDocument() owl.Document {
	pizza, topping, base := class("Pizza"), class("Topping"), class("PizzaBase")
	margherita, cheese, tomato := class("Margherita"), class("CheeseTopping"), class("TomatoTopping")
	hasTopping := owl.ObjectProperty(iri("hasTopping"))
	isToppingOf := owl.ObjectProperty(iri("isToppingOf"))
	hasBase := owl.ObjectProperty(iri("hasBase"))
	hasIngredient := owl.ObjectProperty(iri("hasIngredient"))
	hasCalories := owl.DataProperty(iri("hasCalories"))
	positive := owl.Datatype(iri("PositiveInteger"))
	myPizza := owl.NamedIndividual(iri("MyPizza"))
	myBase := owl.NamedIndividual(iri("MyBase"))
	minInclusive := owl.IRI{Namespace: owl.XSDNamespace, Fragment: "minInclusive"}

	return owl.Document{
		IRI: owl.IRI{Namespace: "http://example.org/", Fragment: "pizza"},
		Annotations: []owl.Annotation{
			{Property: owl.RDFSComment, Value: owl.NewStringLiteral("An ontology about pizza")},
		},
		Axioms: []owl.Axiom{
			owl.Declaration{Entity: pizza, Annotations: []owl.Annotation{label("Pizza")}},
			owl.Declaration{Entity: hasTopping},
			owl.SubClassOf{Sub: margherita, Super: pizza},
			owl.SubClassOf{Sub: cheese, Super: topping},
			owl.SubClassOf{Sub: tomato, Super: topping},
			owl.SubClassOf{
				Sub:   margherita,
				Super: owl.ObjectAllValuesFrom(hasTopping, owl.ObjectUnionOf(cheese, tomato)),
				Annotations: []owl.Annotation{{
					Property:    owl.RDFSComment,
					Value:       owl.NewPlainLiteral("closure axiom", ""),
					Annotations: []owl.Annotation{label("nested")},
				}},
			},
			owl.SubClassOf{Sub: pizza, Super: owl.ObjectMinCardinality(1, hasBase, base)},
			owl.SubClassOf{Sub: pizza, Super: owl.ObjectHasSelf(hasIngredient)},
			owl.SubClassOf{Sub: base, Super: owl.ObjectComplementOf(topping)},
			owl.SubClassOf{Sub: pizza, Super: owl.DataHasValue(hasCalories, owl.NewTypedLiteral("800", owl.XSDInteger))},
			owl.SubClassOf{Sub: pizza, Super: owl.DataSomeValuesFrom(hasCalories, positive)},
			owl.DisjointClasses(pizza, topping, base),
			owl.NaryAxiom{Type: owl.KindInverseObjectProperties, Operands: []owl.Object{hasTopping, owl.ObjectInverseOf{Property: isToppingOf}}},
			owl.NaryAxiom{Type: owl.KindDifferentIndividuals, Operands: []owl.Object{myPizza, myBase, owl.AnonymousIndividual{NodeID: "b0"}}},
			owl.ClassAssertion{Class: margherita, Individual: myPizza},
			owl.ObjectPropertyAssertion(myPizza, hasBase, myBase),
			owl.DataPropertyAssertion(myPizza, hasCalories, owl.NewTypedLiteral("750", owl.XSDInteger)),
			owl.PropertyAssertion{Type: owl.KindNegativeObjectPropertyAssertion, Subject: myBase, Property: hasTopping, Value: myPizza},
			owl.AnnotationAssertion(iri("Pizza"), owl.RDFSComment, owl.NewBoolean(true)),
			owl.SubPropertyOf{Type: owl.KindSubObjectPropertyOf, Sub: hasTopping, Super: hasIngredient},
			owl.PropertyDomainRange{Type: owl.KindObjectPropertyDomain, Property: hasTopping, Target: pizza},
			owl.PropertyDomainRange{Type: owl.KindObjectPropertyRange, Property: hasTopping, Target: topping},
			owl.PropertyCharacteristic{Type: owl.KindTransitiveObjectProperty, Property: hasIngredient},
			owl.PropertyCharacteristic{Type: owl.KindFunctionalDataProperty, Property: hasCalories},
			owl.HasKey{Class: pizza, Properties: []owl.Object{hasBase, hasCalories}},
			owl.SubPropertyChainOf{Chain: []owl.Object{hasTopping, hasIngredient}, Super: hasIngredient},
			owl.DatatypeDefinition{
				Datatype: positive,
				Range: owl.DatatypeRestriction{
					Datatype: owl.Datatype(owl.XSDInteger),
					Facets:   []owl.FacetRestriction{{Facet: minInclusive, Value: owl.NewTypedLiteral("1", owl.XSDInteger)}},
				},
			},
			owl.SubClassOf{
				Sub:   cheese,
				Super: owl.ObjectSomeValuesFrom(hasIngredient, owl.ObjectOneOf(myBase, myPizza)),
			},
			owl.SubClassOf{
				Sub:   topping,
				Super: owl.DataSomeValuesFrom(hasCalories, owl.DataComplementOf(owl.DataOneOf(owl.NewTypedLiteral("0", owl.XSDInteger)))),
			},
		},
	}
}

// hierarchyDocument builds a large, repetitive class hierarchy that every codec compresses.
func hierarchyDocument(n int) owl.Document {
	doc := owl.Document{IRI: iri("hierarchy")}
	for i := range n {
		c := class(fmt.Sprintf("Class%04d", i))
		parent := class(fmt.Sprintf("Class%04d", i/4))
		doc.Axioms = append(doc.Axioms,
			owl.Declaration{Entity: c, Annotations: []owl.Annotation{label(fmt.Sprintf("generated class number %04d", i))}},
		)
		if i > 0 {
			doc.Axioms = append(doc.Axioms, owl.SubClassOf{Sub: c, Super: parent})
		}
	}

	return doc
}
