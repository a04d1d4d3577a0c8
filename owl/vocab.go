package owl

// Well-known namespaces.
const (
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// Well-known datatype IRIs. The first three get dedicated literal markers.
var (
	XSDBoolean      = IRI{Namespace: XSDNamespace, Fragment: "boolean"}
	XSDString       = IRI{Namespace: XSDNamespace, Fragment: "string"}
	RDFPlainLiteral = IRI{Namespace: RDFNamespace, Fragment: "PlainLiteral"}
	XSDInteger      = IRI{Namespace: XSDNamespace, Fragment: "integer"}
	RDFSLiteral     = IRI{Namespace: RDFSNamespace, Fragment: "Literal"}
)

// Well-known entities.
var (
	OWLThing    = Class(IRI{Namespace: OWLNamespace, Fragment: "Thing"})
	OWLNothing  = Class(IRI{Namespace: OWLNamespace, Fragment: "Nothing"})
	RDFSLabel   = AnnotationProperty(IRI{Namespace: RDFSNamespace, Fragment: "label"})
	RDFSComment = AnnotationProperty(IRI{Namespace: RDFSNamespace, Fragment: "comment"})
	TopDatatype = Datatype(RDFSLiteral)
)
