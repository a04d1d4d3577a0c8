package owl

// Children returns the direct sub-components of o in field order. Axiom and nested
// annotations come first, matching the order they are serialized in.
func Children(o Object) []Object {
	switch v := o.(type) {
	case Annotation:
		out := annotationObjects(v.Annotations, 2)
		return appendNonNil(out, v.Property, v.Value)
	case ObjectInverseOf:
		return []Object{v.Property}
	case NaryExpression:
		return v.Operands
	case Complement:
		return appendNonNil(nil, v.Operand)
	case Restriction:
		return appendNonNil(nil, v.Property, v.Filler)
	case DatatypeRestriction:
		out := make([]Object, 0, len(v.Facets)+1)
		out = append(out, v.Datatype)
		for _, f := range v.Facets {
			out = append(out, f)
		}

		return out
	case FacetRestriction:
		return []Object{v.Facet, v.Value}
	case Declaration:
		return append(annotationObjects(v.Annotations, 1), v.Entity)
	case SubClassOf:
		return appendNonNil(annotationObjects(v.Annotations, 2), v.Sub, v.Super)
	case NaryAxiom:
		return append(annotationObjects(v.Annotations, len(v.Operands)), v.Operands...)
	case ClassAssertion:
		return appendNonNil(annotationObjects(v.Annotations, 2), v.Class, v.Individual)
	case PropertyAssertion:
		return appendNonNil(annotationObjects(v.Annotations, 3), v.Subject, v.Property, v.Value)
	case SubPropertyOf:
		return appendNonNil(annotationObjects(v.Annotations, 2), v.Sub, v.Super)
	case PropertyDomainRange:
		return appendNonNil(annotationObjects(v.Annotations, 2), v.Property, v.Target)
	case PropertyCharacteristic:
		return appendNonNil(annotationObjects(v.Annotations, 1), v.Property)
	case HasKey:
		out := appendNonNil(annotationObjects(v.Annotations, len(v.Properties)+1), v.Class)
		return append(out, v.Properties...)
	case SubPropertyChainOf:
		out := append(annotationObjects(v.Annotations, len(v.Chain)+1), v.Chain...)
		return appendNonNil(out, v.Super)
	case DatatypeDefinition:
		return appendNonNil(annotationObjects(v.Annotations, 2), v.Datatype, v.Range)
	default:
		// IRI, Literal, Entity, AnonymousIndividual are leaves
		return nil
	}
}

// Walk visits o and its sub-components depth first. Returning false from visit
// skips the children of the visited value.
func Walk(o Object, visit func(Object) bool) {
	if o == nil || !visit(o) {
		return
	}

	for _, c := range Children(o) {
		Walk(c, visit)
	}
}

// Signature returns the named entities occurring in o, in first-seen order.
func Signature(o Object) []Entity {
	return collectEntities(o, func(Entity) bool { return true })
}

// ClassesInSignature returns the classes occurring in o, in first-seen order.
func ClassesInSignature(o Object) []Entity {
	return collectEntities(o, func(e Entity) bool { return e.Type == KindClass })
}

// IRIs returns every IRI occurring in o, including literal datatypes and facet
// IRIs, in first-seen order.
func IRIs(o Object) []IRI {
	seen := make(map[IRI]struct{})
	var out []IRI
	add := func(iri IRI) {
		if _, ok := seen[iri]; !ok {
			seen[iri] = struct{}{}
			out = append(out, iri)
		}
	}

	Walk(o, func(v Object) bool {
		switch x := v.(type) {
		case Entity:
			add(x.IRI)
		case IRI:
			add(x)
		case Literal:
			add(x.Datatype)
		}

		return true
	})

	return out
}

// Literals returns every literal occurring in o, in first-seen order.
func Literals(o Object) []Literal {
	seen := make(map[Literal]struct{})
	var out []Literal

	Walk(o, func(v Object) bool {
		if l, ok := v.(Literal); ok {
			if _, dup := seen[l]; !dup {
				seen[l] = struct{}{}
				out = append(out, l)
			}
		}

		return true
	})

	return out
}

// IsAnonymous reports whether o is a class expression other than a named class.
func IsAnonymous(o Object) bool {
	return o != nil && o.Kind().IsClassExpression() && o.Kind() != KindClass
}

func collectEntities(o Object, keep func(Entity) bool) []Entity {
	seen := make(map[Entity]struct{})
	var out []Entity

	Walk(o, func(v Object) bool {
		if e, ok := v.(Entity); ok && keep(e) {
			if _, dup := seen[e]; !dup {
				seen[e] = struct{}{}
				out = append(out, e)
			}
		}

		return true
	})

	return out
}

func annotationObjects(anns []Annotation, extra int) []Object {
	if len(anns) == 0 && extra == 0 {
		return nil
	}

	out := make([]Object, 0, len(anns)+extra)
	for _, a := range anns {
		out = append(out, a)
	}

	return out
}

func appendNonNil(dst []Object, objs ...Object) []Object {
	for _, o := range objs {
		if o != nil {
			dst = append(dst, o)
		}
	}

	return dst
}
