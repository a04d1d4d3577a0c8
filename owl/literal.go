package owl

import (
	"cmp"
	"strconv"
)

// Literal is a lexical value with a datatype and an optional language tag.
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// The two canonical boolean literals.
var (
	True  = Literal{Lexical: "true", Datatype: XSDBoolean}
	False = Literal{Lexical: "false", Datatype: XSDBoolean}
)

// NewPlainLiteral returns an rdf:PlainLiteral with an optional language tag.
func NewPlainLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Datatype: RDFPlainLiteral, Lang: lang}
}

// NewStringLiteral returns an xsd:string literal.
func NewStringLiteral(lexical string) Literal {
	return Literal{Lexical: lexical, Datatype: XSDString}
}

// NewTypedLiteral returns a literal of the given datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// NewBoolean returns True or False.
func NewBoolean(v bool) Literal {
	if v {
		return True
	}

	return False
}

// Kind implements Object.
func (l Literal) Kind() Kind {
	return KindLiteral
}

// BoolValue returns the value of a canonical boolean literal. The second result is
// false for any literal other than True and False, including "1" and "0".
func (l Literal) BoolValue() (bool, bool) {
	if l.Datatype != XSDBoolean || l.Lang != "" {
		return false, false
	}

	switch l.Lexical {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// HasLang reports whether the literal carries a language tag.
func (l Literal) HasLang() bool {
	return l.Lang != ""
}

func (l Literal) String() string {
	s := strconv.Quote(l.Lexical)
	if l.Lang != "" {
		s += "@" + l.Lang
	}
	if l.Datatype != RDFPlainLiteral {
		s += "^^" + l.Datatype.String()
	}

	return s
}

// Compare orders literals by lexical value, then datatype, then language tag.
func (l Literal) Compare(o Literal) int {
	if c := cmp.Compare(l.Lexical, o.Lexical); c != 0 {
		return c
	}
	if c := l.Datatype.Compare(o.Datatype); c != 0 {
		return c
	}

	return cmp.Compare(l.Lang, o.Lang)
}
