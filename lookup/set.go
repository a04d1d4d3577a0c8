package lookup

import (
	"github.com/arloliu/binowl/compare"
	"github.com/arloliu/binowl/delta"
	"github.com/arloliu/binowl/encoding"
	"github.com/arloliu/binowl/owl"
)

// Set bundles the identifier, literal and annotation tables of one document.
// Dictionaries are written and read in that order, because literal datatypes
// reference identifiers and annotations reference both.
type Set struct {
	IRIs        *IdentifierTable
	Literals    *LiteralTable
	Annotations *AnnotationTable
}

var _ compare.Indexer = (*Set)(nil)

// SetStats holds the delta statistics of each table.
type SetStats struct {
	IRIs        delta.Stats
	Literals    delta.Stats
	Annotations delta.Stats
}

// Total returns the sum over all tables.
func (s SetStats) Total() delta.Stats {
	return s.IRIs.Add(s.Literals).Add(s.Annotations)
}

// NewSet creates three empty tables with the same options.
func NewSet(opts ...TableOption) (*Set, error) {
	iris, err := NewIdentifierTable(opts...)
	if err != nil {
		return nil, err
	}

	literals, err := NewLiteralTable(iris, opts...)
	if err != nil {
		return nil, err
	}

	annotations, err := NewAnnotationTable(iris, literals, opts...)
	if err != nil {
		return nil, err
	}

	return &Set{IRIs: iris, Literals: literals, Annotations: annotations}, nil
}

// InternIRIs interns iris in order.
func (s *Set) InternIRIs(iris ...owl.IRI) error {
	for _, iri := range iris {
		if _, err := s.IRIs.Intern(iri); err != nil {
			return err
		}
	}

	return nil
}

// InternLiterals interns lits in order.
func (s *Set) InternLiterals(lits ...owl.Literal) error {
	for _, lit := range lits {
		if _, err := s.Literals.Intern(lit); err != nil {
			return err
		}
	}

	return nil
}

// InternAnnotations interns anns in order. Nested annotations are not interned
// on their own; they are written inline with their parent.
func (s *Set) InternAnnotations(anns ...owl.Annotation) error {
	for _, a := range anns {
		if _, err := s.Annotations.Intern(a); err != nil {
			return err
		}
	}

	return nil
}

// InternObject interns every IRI, literal and axiom annotation reachable from o,
// in first-seen order. Call it for all objects before writing anything, since
// the first write freezes the tables.
func (s *Set) InternObject(o owl.Object) error {
	if err := s.InternIRIs(owl.IRIs(o)...); err != nil {
		return err
	}
	if err := s.InternLiterals(owl.Literals(o)...); err != nil {
		return err
	}

	if ax, ok := o.(owl.Axiom); ok {
		return s.InternAnnotations(ax.AxiomAnnotations()...)
	}
	if a, ok := o.(owl.Annotation); ok {
		return s.InternAnnotations(a)
	}

	return nil
}

// Freeze freezes the tables in dependency order.
func (s *Set) Freeze() {
	s.IRIs.Freeze()
	s.Literals.Freeze()
	s.Annotations.Freeze()
}

// WriteDictionaries freezes the tables and writes the three dictionaries.
func (s *Set) WriteDictionaries(w *encoding.Writer) error {
	s.Freeze()
	s.IRIs.WriteDictionary(w)
	s.Literals.WriteDictionary(w)

	return s.Annotations.WriteDictionary(w)
}

// ReadSet reads three dictionaries written by WriteDictionaries.
func ReadSet(r *encoding.Reader, opts ...TableOption) (*Set, error) {
	iris, err := ReadIdentifierTable(r, opts...)
	if err != nil {
		return nil, err
	}

	literals, err := ReadLiteralTable(r, iris, opts...)
	if err != nil {
		return nil, err
	}

	annotations, err := ReadAnnotationTable(r, iris, literals, opts...)
	if err != nil {
		return nil, err
	}

	return &Set{IRIs: iris, Literals: literals, Annotations: annotations}, nil
}

// IRIIndex implements compare.Indexer.
func (s *Set) IRIIndex(iri owl.IRI) (int, bool) {
	return s.IRIs.IndexOf(iri)
}

// LiteralIndex implements compare.Indexer.
func (s *Set) LiteralIndex(lit owl.Literal) (int, bool) {
	return s.Literals.IndexOf(lit)
}

// Stats returns the per-table delta statistics.
func (s *Set) Stats() SetStats {
	return SetStats{
		IRIs:        s.IRIs.Stats(),
		Literals:    s.Literals.Stats(),
		Annotations: s.Annotations.Stats(),
	}
}
