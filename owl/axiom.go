package owl

// Axiom is an Object that carries axiom annotations.
type Axiom interface {
	Object
	AxiomAnnotations() []Annotation
}

// Declaration declares an entity.
type Declaration struct {
	Entity      Entity
	Annotations []Annotation
}

func (a Declaration) Kind() Kind { return KindDeclaration }
func (a Declaration) AxiomAnnotations() []Annotation { return a.Annotations }
func (a Declaration) String() string { return render(KindDeclaration, a.Annotations, a.Entity) }

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub         Object
	Super       Object
	Annotations []Annotation
}

func (a SubClassOf) Kind() Kind { return KindSubClassOf }
func (a SubClassOf) AxiomAnnotations() []Annotation { return a.Annotations }
func (a SubClassOf) String() string { return render(KindSubClassOf, a.Annotations, a.Sub, a.Super) }

// NaryAxiom relates a set of classes, properties or individuals: equivalence,
// disjointness, inverse properties, same and different individuals.
type NaryAxiom struct {
	Type        Kind
	Operands    []Object
	Annotations []Annotation
}

// NewNaryAxiom validates k and returns the axiom.
func NewNaryAxiom(k Kind, operands []Object, annotations ...Annotation) (NaryAxiom, error) {
	switch k {
	case KindEquivalentClasses, KindDisjointClasses,
		KindEquivalentObjectProperties, KindEquivalentDataProperties,
		KindDisjointObjectProperties, KindDisjointDataProperties,
		KindInverseObjectProperties, KindSameIndividual, KindDifferentIndividuals:
		return NaryAxiom{Type: k, Operands: operands, Annotations: annotations}, nil
	default:
		return NaryAxiom{}, kindError(k, "n-ary axiom")
	}
}

// EquivalentClasses returns an equivalent classes axiom.
func EquivalentClasses(operands ...Object) NaryAxiom {
	return NaryAxiom{Type: KindEquivalentClasses, Operands: operands}
}

// DisjointClasses returns a disjoint classes axiom.
func DisjointClasses(operands ...Object) NaryAxiom {
	return NaryAxiom{Type: KindDisjointClasses, Operands: operands}
}

func (a NaryAxiom) Kind() Kind { return a.Type }
func (a NaryAxiom) AxiomAnnotations() []Annotation { return a.Annotations }
func (a NaryAxiom) String() string { return render(a.Type, a.Annotations, a.Operands...) }

// ClassAssertion states that Individual is an instance of Class.
type ClassAssertion struct {
	Class       Object
	Individual  Object
	Annotations []Annotation
}

func (a ClassAssertion) Kind() Kind { return KindClassAssertion }
func (a ClassAssertion) AxiomAnnotations() []Annotation { return a.Annotations }
func (a ClassAssertion) String() string {
	return render(KindClassAssertion, a.Annotations, a.Class, a.Individual)
}

// PropertyAssertion relates Subject to Value through Property. It covers positive
// and negative object and data property assertions and annotation assertions.
type PropertyAssertion struct {
	Type        Kind
	Subject     Object
	Property    Object
	Value       Object
	Annotations []Annotation
}

// NewPropertyAssertion validates k and returns the assertion.
func NewPropertyAssertion(k Kind, subject, property, value Object, annotations ...Annotation) (PropertyAssertion, error) {
	if k < KindObjectPropertyAssertion || k > KindAnnotationAssertion {
		return PropertyAssertion{}, kindError(k, "property assertion")
	}

	return PropertyAssertion{Type: k, Subject: subject, Property: property, Value: value, Annotations: annotations}, nil
}

// ObjectPropertyAssertion returns an object property assertion.
func ObjectPropertyAssertion(subject, property, value Object) PropertyAssertion {
	return PropertyAssertion{Type: KindObjectPropertyAssertion, Subject: subject, Property: property, Value: value}
}

// DataPropertyAssertion returns a data property assertion.
func DataPropertyAssertion(subject, property Object, value Literal) PropertyAssertion {
	return PropertyAssertion{Type: KindDataPropertyAssertion, Subject: subject, Property: property, Value: value}
}

// AnnotationAssertion annotates subject (an IRI or anonymous individual).
func AnnotationAssertion(subject Object, property Entity, value Object) PropertyAssertion {
	return PropertyAssertion{Type: KindAnnotationAssertion, Subject: subject, Property: property, Value: value}
}

func (a PropertyAssertion) Kind() Kind { return a.Type }
func (a PropertyAssertion) AxiomAnnotations() []Annotation { return a.Annotations }
func (a PropertyAssertion) String() string {
	return render(a.Type, a.Annotations, a.Property, a.Subject, a.Value)
}

// SubPropertyOf states that Sub is a sub-property of Super.
type SubPropertyOf struct {
	Type        Kind
	Sub         Object
	Super       Object
	Annotations []Annotation
}

// NewSubPropertyOf validates k and returns the axiom.
func NewSubPropertyOf(k Kind, sub, super Object, annotations ...Annotation) (SubPropertyOf, error) {
	if k < KindSubObjectPropertyOf || k > KindSubAnnotationPropertyOf {
		return SubPropertyOf{}, kindError(k, "sub-property")
	}

	return SubPropertyOf{Type: k, Sub: sub, Super: super, Annotations: annotations}, nil
}

func (a SubPropertyOf) Kind() Kind { return a.Type }
func (a SubPropertyOf) AxiomAnnotations() []Annotation { return a.Annotations }
func (a SubPropertyOf) String() string { return render(a.Type, a.Annotations, a.Sub, a.Super) }

// PropertyDomainRange states the domain or range of a property.
type PropertyDomainRange struct {
	Type        Kind
	Property    Object
	Target      Object
	Annotations []Annotation
}

// NewPropertyDomainRange validates k and returns the axiom.
func NewPropertyDomainRange(k Kind, property, target Object, annotations ...Annotation) (PropertyDomainRange, error) {
	if k < KindObjectPropertyDomain || k > KindAnnotationPropertyRange {
		return PropertyDomainRange{}, kindError(k, "domain or range")
	}

	return PropertyDomainRange{Type: k, Property: property, Target: target, Annotations: annotations}, nil
}

func (a PropertyDomainRange) Kind() Kind { return a.Type }
func (a PropertyDomainRange) AxiomAnnotations() []Annotation { return a.Annotations }
func (a PropertyDomainRange) String() string {
	return render(a.Type, a.Annotations, a.Property, a.Target)
}

// PropertyCharacteristic states a characteristic of a single property, such as
// functional or transitive.
type PropertyCharacteristic struct {
	Type        Kind
	Property    Object
	Annotations []Annotation
}

// NewPropertyCharacteristic validates k and returns the axiom.
func NewPropertyCharacteristic(k Kind, property Object, annotations ...Annotation) (PropertyCharacteristic, error) {
	if k < KindFunctionalObjectProperty || k > KindFunctionalDataProperty {
		return PropertyCharacteristic{}, kindError(k, "property characteristic")
	}

	return PropertyCharacteristic{Type: k, Property: property, Annotations: annotations}, nil
}

func (a PropertyCharacteristic) Kind() Kind { return a.Type }
func (a PropertyCharacteristic) AxiomAnnotations() []Annotation { return a.Annotations }
func (a PropertyCharacteristic) String() string { return render(a.Type, a.Annotations, a.Property) }

// HasKey declares the key properties of a class. Properties are an unordered set.
type HasKey struct {
	Class       Object
	Properties  []Object
	Annotations []Annotation
}

func (a HasKey) Kind() Kind { return KindHasKey }
func (a HasKey) AxiomAnnotations() []Annotation { return a.Annotations }
func (a HasKey) String() string {
	return render(KindHasKey, a.Annotations, append([]Object{a.Class}, a.Properties...)...)
}

// SubPropertyChainOf states that the ordered Chain implies Super.
type SubPropertyChainOf struct {
	Chain       []Object
	Super       Object
	Annotations []Annotation
}

func (a SubPropertyChainOf) Kind() Kind { return KindSubPropertyChainOf }
func (a SubPropertyChainOf) AxiomAnnotations() []Annotation { return a.Annotations }
func (a SubPropertyChainOf) String() string {
	return render(KindSubPropertyChainOf, a.Annotations, append(append([]Object(nil), a.Chain...), a.Super)...)
}

// DatatypeDefinition defines a datatype as a data range.
type DatatypeDefinition struct {
	Datatype    Entity // must have KindDatatype
	Range       Object
	Annotations []Annotation
}

func (a DatatypeDefinition) Kind() Kind { return KindDatatypeDefinition }
func (a DatatypeDefinition) AxiomAnnotations() []Annotation { return a.Annotations }
func (a DatatypeDefinition) String() string {
	return render(KindDatatypeDefinition, a.Annotations, a.Datatype, a.Range)
}

// Document is an ordered collection of ontology annotations and axioms.
type Document struct {
	IRI         IRI
	Annotations []Annotation
	Axioms      []Axiom
}
