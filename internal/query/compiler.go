package query

import (
	"strings"

	"github.com/google/uuid"
)

// Filter is a raw search request before compilation.
type Filter struct {
	SearchText string
	Tags       []string
}

// Compile translates a search request into a predicate tree.
//
// Semantics:
//   - owner scoping is always ANDed in, non-optional;
//   - SearchText is split on whitespace; each term must match either the
//     description or any tag (case-insensitive substring), and all terms
//     must match (OR within a term, AND across terms);
//   - every requested tag must be present on the transaction (AND, not ANY).
func Compile(ownerID uuid.UUID, f Filter) Predicate {
	operands := []Predicate{OwnerEquals{OwnerID: ownerID}}

	for _, term := range strings.Fields(f.SearchText) {
		operands = append(operands, Or{Operands: []Predicate{
			TextMatch{Field: FieldDescription, Term: term},
			TextMatch{Field: FieldTag, Term: term},
		}})
	}

	for _, tag := range f.Tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		operands = append(operands, HasTag{Tag: trimmed})
	}

	return And{Operands: operands}
}
