// Package order computes an interning order for entities that keeps related
// entities close together, which raises the hit rate of the delta history tables.
//
// RightToLeft builds a graph from hierarchical axioms. Every class in the
// signature of the left-hand side of SubClassOf depends on every class in the
// signature of the right-hand side; for EquivalentClasses each named operand
// depends on the classes of each anonymous operand. The order starts at the
// roots, the nodes without dependencies, and emits each root followed by all of
// its direct dependents before descending into them.
//
// Every collection in the orderer keeps insertion order, so the same input
// sequence always produces the same output.
package order

import "github.com/arloliu/binowl/owl"

type node struct {
	entity owl.Entity
	// rhs are the nodes this node depends on, lhs the nodes depending on it.
	rhs indexSet
	lhs indexSet
}

// RightToLeft orders entities root first. The zero value is not usable; call NewRightToLeft.
type RightToLeft struct {
	nodes []*node
	index map[owl.Entity]int
}

// NewRightToLeft returns an empty orderer.
func NewRightToLeft() *RightToLeft {
	return &RightToLeft{index: make(map[owl.Entity]int)}
}

// Len returns the number of registered entities.
func (o *RightToLeft) Len() int {
	return len(o.nodes)
}

// AddAxiom adds the dependency edges of ax. It reports whether ax is one of the
// hierarchical axiom kinds that contribute edges.
func (o *RightToLeft) AddAxiom(ax owl.Axiom) bool {
	switch v := ax.(type) {
	case owl.SubClassOf:
		o.addLeftRights(v.Sub, v.Super)
		return true
	case owl.NaryAxiom:
		if v.Type != owl.KindEquivalentClasses {
			return false
		}

		var named []owl.Entity
		var anonymous []owl.Object
		for _, op := range v.Operands {
			if e, ok := op.(owl.Entity); ok && e.Type == owl.KindClass {
				named = appendUnique(named, e)
			} else if op != nil {
				anonymous = append(anonymous, op)
			}
		}

		for _, cls := range named {
			for _, expr := range anonymous {
				o.addLeftRights(cls, expr)
			}
		}

		return true
	default:
		return false
	}
}

// AddEntities registers entities that may not take part in any hierarchy. An
// entity without dependencies is a root, so it still appears in the order.
func (o *RightToLeft) AddEntities(entities ...owl.Entity) {
	for _, e := range entities {
		o.node(e)
	}
}

// AddDocument adds the edges of every axiom in doc, then registers the rest of
// the document signature.
func (o *RightToLeft) AddDocument(doc owl.Document) {
	for _, ax := range doc.Axioms {
		o.AddAxiom(ax)
	}

	for _, ann := range doc.Annotations {
		o.AddEntities(owl.Signature(ann)...)
	}
	for _, ax := range doc.Axioms {
		o.AddEntities(owl.Signature(ax)...)
	}
}

// Roots returns the entities without outgoing edges, in insertion order.
func (o *RightToLeft) Roots() []owl.Entity {
	var roots []owl.Entity
	for _, n := range o.nodes {
		if n.rhs.size() == 0 {
			roots = append(roots, n.entity)
		}
	}

	return roots
}

// Dependents returns the entities that directly depend on e.
func (o *RightToLeft) Dependents(e owl.Entity) []owl.Entity {
	i, ok := o.index[e]
	if !ok {
		return nil
	}

	return o.entities(o.nodes[i].lhs.items)
}

// Dependencies returns the entities that e directly depends on.
func (o *RightToLeft) Dependencies(e owl.Entity) []owl.Entity {
	i, ok := o.index[e]
	if !ok {
		return nil
	}

	return o.entities(o.nodes[i].rhs.items)
}

// Order returns every registered entity exactly once. Each root is followed by
// its direct dependents, then the traversal recurses into the dependents that
// were not expanded yet. Nodes only reachable through cycles are appended in
// insertion order.
func (o *RightToLeft) Order() []owl.Entity {
	result := newIndexSet(len(o.nodes))
	todo := make([]bool, len(o.nodes))
	for i := range todo {
		todo[i] = true
	}

	for i, n := range o.nodes {
		if n.rhs.size() == 0 {
			o.visit(i, result, todo)
		}
	}

	for i, pending := range todo {
		if pending {
			result.add(i)
		}
	}

	return o.entities(result.items)
}

func (o *RightToLeft) visit(i int, result *indexSet, todo []bool) {
	if !todo[i] {
		return
	}
	todo[i] = false
	result.add(i)

	n := o.nodes[i]
	for _, dep := range n.lhs.items {
		result.add(dep)
	}
	for _, dep := range n.lhs.items {
		if todo[dep] {
			o.visit(dep, result, todo)
		}
	}
}

func (o *RightToLeft) addLeftRights(lhs, rhs owl.Object) {
	left := owl.ClassesInSignature(lhs)
	right := owl.ClassesInSignature(rhs)

	for _, r := range right {
		for _, l := range left {
			if l == r {
				continue
			}

			ri := o.node(r)
			li := o.node(l)
			o.nodes[li].rhs.add(ri)
			o.nodes[ri].lhs.add(li)
		}
	}
}

func (o *RightToLeft) node(e owl.Entity) int {
	if i, ok := o.index[e]; ok {
		return i
	}

	i := len(o.nodes)
	o.nodes = append(o.nodes, &node{entity: e})
	o.index[e] = i

	return i
}

func (o *RightToLeft) entities(ids []int) []owl.Entity {
	if len(ids) == 0 {
		return nil
	}

	out := make([]owl.Entity, len(ids))
	for i, id := range ids {
		out[i] = o.nodes[id].entity
	}

	return out
}

func appendUnique(dst []owl.Entity, e owl.Entity) []owl.Entity {
	for _, x := range dst {
		if x == e {
			return dst
		}
	}

	return append(dst, e)
}
