package owl

import (
	"cmp"
	"strings"
)

// IRI is an identifier split into a namespace and a local fragment.
// Two IRIs are equal only when both parts are equal.
type IRI struct {
	Namespace string
	Fragment  string
}

// NewIRI splits full after the last '#', '/' or ':'. If none is present the whole
// string becomes the fragment.
func NewIRI(full string) IRI {
	i := strings.LastIndexAny(full, "#/:")
	if i < 0 {
		return IRI{Fragment: full}
	}

	return IRI{Namespace: full[:i+1], Fragment: full[i+1:]}
}

// Kind implements Object.
func (i IRI) Kind() Kind {
	return KindIRI
}

// Full returns the namespace and fragment concatenated.
func (i IRI) Full() string {
	return i.Namespace + i.Fragment
}

func (i IRI) String() string {
	return "<" + i.Namespace + i.Fragment + ">"
}

// IsZero reports whether both parts are empty.
func (i IRI) IsZero() bool {
	return i.Namespace == "" && i.Fragment == ""
}

// Compare orders IRIs by namespace, then fragment.
func (i IRI) Compare(o IRI) int {
	if c := cmp.Compare(i.Namespace, o.Namespace); c != 0 {
		return c
	}

	return cmp.Compare(i.Fragment, o.Fragment)
}
