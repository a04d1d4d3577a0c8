package order

import (
	"testing"

	"github.com/arloliu/binowl/owl"
	"github.com/stretchr/testify/require"
)

func class(name string) owl.Entity {
	return owl.Class(owl.IRI{Namespace: "http://example.org/onto#", Fragment: name})
}

func TestRightToLeft_Chain(t *testing.T) {
	a, b, c := class("A"), class("B"), class("C")

	o := NewRightToLeft()
	require.True(t, o.AddAxiom(owl.SubClassOf{Sub: a, Super: b}))
	require.True(t, o.AddAxiom(owl.SubClassOf{Sub: b, Super: c}))

	require.Equal(t, []owl.Entity{c}, o.Roots())
	require.Equal(t, []owl.Entity{c, b, a}, o.Order())
}

func TestRightToLeft_EmitsDirectDependentsFirst(t *testing.T) {
	root, x, y, xx := class("Root"), class("X"), class("Y"), class("XX")

	o := NewRightToLeft()
	o.AddAxiom(owl.SubClassOf{Sub: x, Super: root})
	o.AddAxiom(owl.SubClassOf{Sub: y, Super: root})
	o.AddAxiom(owl.SubClassOf{Sub: xx, Super: x})

	// siblings X and Y come before the grandchild XX
	require.Equal(t, []owl.Entity{root, x, y, xx}, o.Order())
	require.Equal(t, []owl.Entity{x, y}, o.Dependents(root))
	require.Equal(t, []owl.Entity{x}, o.Dependencies(xx))
}

func TestRightToLeft_ComplexExpressions(t *testing.T) {
	a, b, c := class("A"), class("B"), class("C")
	p := owl.ObjectProperty(owl.IRI{Namespace: "http://example.org/onto#", Fragment: "p"})

	o := NewRightToLeft()
	o.AddAxiom(owl.SubClassOf{Sub: a, Super: owl.ObjectSomeValuesFrom(p, owl.ObjectUnionOf(b, c))})

	require.Equal(t, []owl.Entity{b, c}, o.Roots())
	require.Equal(t, []owl.Entity{b, a, c}, o.Order())
	require.Equal(t, 3, o.Len())
}

func TestRightToLeft_EquivalentClasses(t *testing.T) {
	a, b, c, d := class("A"), class("B"), class("C"), class("D")

	o := NewRightToLeft()
	require.True(t, o.AddAxiom(owl.EquivalentClasses(a, owl.ObjectIntersectionOf(b, c), d)))

	// named operands depend on the classes of the anonymous operand only
	require.Equal(t, []owl.Entity{b, c}, o.Dependencies(a))
	require.Equal(t, []owl.Entity{b, c}, o.Dependencies(d))
	require.Equal(t, []owl.Entity{b, a, d, c}, o.Order())
}

func TestRightToLeft_CyclesAreAppended(t *testing.T) {
	a, b, iso := class("A"), class("B"), class("Isolated")

	o := NewRightToLeft()
	o.AddAxiom(owl.SubClassOf{Sub: a, Super: b})
	o.AddAxiom(owl.SubClassOf{Sub: b, Super: a})
	o.AddEntities(iso)

	require.Equal(t, []owl.Entity{iso}, o.Roots())
	require.Equal(t, []owl.Entity{iso, b, a}, o.Order())
}

func TestRightToLeft_SelfEdgesIgnored(t *testing.T) {
	a := class("A")

	o := NewRightToLeft()
	o.AddAxiom(owl.SubClassOf{Sub: a, Super: owl.ObjectIntersectionOf(a)})

	require.Zero(t, o.Len())
	require.Empty(t, o.Order())
}

func TestRightToLeft_IgnoresOtherAxioms(t *testing.T) {
	o := NewRightToLeft()
	require.False(t, o.AddAxiom(owl.DisjointClasses(class("A"), class("B"))))
	require.False(t, o.AddAxiom(owl.Declaration{Entity: class("A")}))
	require.Zero(t, o.Len())
}

func TestRightToLeft_AddDocument(t *testing.T) {
	a, b := class("A"), class("B")
	p := owl.ObjectProperty(owl.IRI{Namespace: "http://example.org/onto#", Fragment: "p"})
	i := owl.NamedIndividual(owl.IRI{Namespace: "http://example.org/onto#", Fragment: "i"})

	doc := owl.Document{
		Axioms: []owl.Axiom{
			owl.ObjectPropertyAssertion(i, p, i),
			owl.SubClassOf{Sub: a, Super: b},
			owl.Declaration{Entity: p},
		},
	}

	o := NewRightToLeft()
	o.AddDocument(doc)

	require.Equal(t, []owl.Entity{b, a, i, p}, o.Order())
}

func TestRightToLeft_Deterministic(t *testing.T) {
	build := func() []owl.Entity {
		o := NewRightToLeft()
		for i := range 50 {
			sub := class(string(rune('A' + i%26)) + string(rune('a'+i/26)))
			sup := class(string(rune('A' + (i*7)%26)))
			o.AddAxiom(owl.SubClassOf{Sub: sub, Super: sup})
		}

		return o.Order()
	}

	first := build()
	for range 5 {
		require.Equal(t, first, build())
	}
}
