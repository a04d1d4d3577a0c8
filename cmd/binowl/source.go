package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/arloliu/binowl/errs"
	"github.com/arloliu/binowl/owl"
	"gopkg.in/yaml.v3"
)

// sourceDocument is the YAML description accepted by the encode command.
// Names are either full IRIs or prefix:local pairs; a bare local name uses the
// empty prefix.
type sourceDocument struct {
	IRI              string            `yaml:"iri"`
	Prefixes         map[string]string `yaml:"prefixes"`
	Classes          []string          `yaml:"classes"`
	ObjectProperties []string          `yaml:"object_properties"`
	DataProperties   []string          `yaml:"data_properties"`
	Individuals      []string          `yaml:"individuals"`
	SubClassOf       []struct {
		Sub   string `yaml:"sub"`
		Super string `yaml:"super"`
	} `yaml:"subclass_of"`
	DisjointClasses [][]string `yaml:"disjoint_classes"`
	ClassAssertions []struct {
		Class      string `yaml:"class"`
		Individual string `yaml:"individual"`
	} `yaml:"class_assertions"`
	ObjectAssertions []struct {
		Subject  string `yaml:"subject"`
		Property string `yaml:"property"`
		Object   string `yaml:"object"`
	} `yaml:"object_assertions"`
	DataAssertions []struct {
		Subject  string `yaml:"subject"`
		Property string `yaml:"property"`
		Value    string `yaml:"value"`
		Datatype string `yaml:"datatype"`
	} `yaml:"data_assertions"`
	Labels []struct {
		Subject string `yaml:"subject"`
		Text    string `yaml:"text"`
		Lang    string `yaml:"lang"`
	} `yaml:"labels"`
}

var builtinPrefixes = map[string]string{
	"owl":  owl.OWLNamespace,
	"rdf":  owl.RDFNamespace,
	"rdfs": owl.RDFSNamespace,
	"xsd":  owl.XSDNamespace,
}

func parseSource(data []byte) (owl.Document, error) {
	var src sourceDocument

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		return owl.Document{}, fmt.Errorf("%w: failed to parse document: %v", errs.ErrInvalidConfig, err)
	}

	return src.build()
}

func (s *sourceDocument) expand(name string) (owl.IRI, error) {
	if name == "" {
		return owl.IRI{}, fmt.Errorf("%w: empty name", errs.ErrInvalidConfig)
	}

	prefix, local, found := strings.Cut(name, ":")
	if !found {
		ns, ok := s.Prefixes[""]
		if !ok {
			return owl.IRI{}, fmt.Errorf("%w: %q has no prefix and no default prefix is declared", errs.ErrInvalidConfig, name)
		}

		return owl.IRI{Namespace: ns, Fragment: name}, nil
	}

	if ns, ok := s.Prefixes[prefix]; ok {
		return owl.IRI{Namespace: ns, Fragment: local}, nil
	}
	if ns, ok := builtinPrefixes[prefix]; ok {
		return owl.IRI{Namespace: ns, Fragment: local}, nil
	}

	return owl.NewIRI(name), nil
}

func (s *sourceDocument) build() (owl.Document, error) {
	var (
		doc  owl.Document
		errv error
	)

	iri := func(name string) owl.IRI {
		v, err := s.expand(name)
		if err != nil && errv == nil {
			errv = err
		}

		return v
	}

	if s.IRI != "" {
		doc.IRI = owl.NewIRI(s.IRI)
	}

	declare := func(names []string, ctor func(owl.IRI) owl.Entity) {
		for _, n := range names {
			doc.Axioms = append(doc.Axioms, owl.Declaration{Entity: ctor(iri(n))})
		}
	}
	declare(s.Classes, owl.Class)
	declare(s.ObjectProperties, owl.ObjectProperty)
	declare(s.DataProperties, owl.DataProperty)
	declare(s.Individuals, owl.NamedIndividual)

	for _, ax := range s.SubClassOf {
		doc.Axioms = append(doc.Axioms, owl.SubClassOf{Sub: owl.Class(iri(ax.Sub)), Super: owl.Class(iri(ax.Super))})
	}
	for _, set := range s.DisjointClasses {
		operands := make([]owl.Object, len(set))
		for i, n := range set {
			operands[i] = owl.Class(iri(n))
		}
		doc.Axioms = append(doc.Axioms, owl.DisjointClasses(operands...))
	}
	for _, ax := range s.ClassAssertions {
		doc.Axioms = append(doc.Axioms, owl.ClassAssertion{
			Class:      owl.Class(iri(ax.Class)),
			Individual: owl.NamedIndividual(iri(ax.Individual)),
		})
	}
	for _, ax := range s.ObjectAssertions {
		doc.Axioms = append(doc.Axioms, owl.ObjectPropertyAssertion(
			owl.NamedIndividual(iri(ax.Subject)),
			owl.ObjectProperty(iri(ax.Property)),
			owl.NamedIndividual(iri(ax.Object)),
		))
	}
	for _, ax := range s.DataAssertions {
		lit := owl.NewStringLiteral(ax.Value)
		if ax.Datatype != "" {
			lit = owl.NewTypedLiteral(ax.Value, iri(ax.Datatype))
		}
		doc.Axioms = append(doc.Axioms, owl.DataPropertyAssertion(
			owl.NamedIndividual(iri(ax.Subject)),
			owl.DataProperty(iri(ax.Property)),
			lit,
		))
	}
	for _, l := range s.Labels {
		doc.Axioms = append(doc.Axioms, owl.AnnotationAssertion(iri(l.Subject), owl.RDFSLabel, owl.NewPlainLiteral(l.Text, l.Lang)))
	}

	if errv != nil {
		return owl.Document{}, errv
	}

	return doc, nil
}
